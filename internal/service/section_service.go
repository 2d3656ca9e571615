package service

import (
	"context"

	"github.com/packworks/coursecat-backend/internal/model"
	"github.com/packworks/coursecat-backend/internal/repository"
)

type SectionService struct {
	sectionRepo *repository.SectionRepository
}

func NewSectionService(sectionRepo *repository.SectionRepository) *SectionService {
	return &SectionService{sectionRepo: sectionRepo}
}

// GetDetails returns one section with its course, department, term and
// instructor context.
func (s *SectionService) GetDetails(ctx context.Context, id int) (*model.SectionDetails, error) {
	return s.sectionRepo.GetDetails(ctx, id)
}
