package service

import (
	"context"

	"github.com/packworks/coursecat-backend/internal/model"
	"github.com/packworks/coursecat-backend/internal/repository"
)

type TermService struct {
	termRepo *repository.TermRepository
}

func NewTermService(termRepo *repository.TermRepository) *TermService {
	return &TermService{termRepo: termRepo}
}

func (s *TermService) GetAll(ctx context.Context) ([]model.Term, error) {
	return s.termRepo.GetAll(ctx)
}

// GetCurrent returns the term whose date range covers today.
func (s *TermService) GetCurrent(ctx context.Context) (*model.Term, error) {
	return s.termRepo.GetCurrent(ctx)
}
