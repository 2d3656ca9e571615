package service

import (
	"context"

	"github.com/packworks/coursecat-backend/internal/model"
	"github.com/packworks/coursecat-backend/internal/repository"
)

type InstructorService struct {
	instructorRepo *repository.InstructorRepository
}

func NewInstructorService(instructorRepo *repository.InstructorRepository) *InstructorService {
	return &InstructorService{instructorRepo: instructorRepo}
}

// List returns all instructors, or a name-filtered subset when
// namePattern is non-empty.
func (s *InstructorService) List(ctx context.Context, namePattern string) ([]model.Instructor, error) {
	if namePattern != "" {
		return s.instructorRepo.SearchByName(ctx, namePattern)
	}
	return s.instructorRepo.GetAll(ctx)
}

// GetSections lists every section an instructor teaches.
func (s *InstructorService) GetSections(ctx context.Context, instructorID int) ([]model.Section, error) {
	if _, err := s.instructorRepo.GetByID(ctx, instructorID); err != nil {
		return nil, err
	}
	return s.instructorRepo.ListSections(ctx, instructorID)
}
