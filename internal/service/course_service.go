package service

import (
	"context"

	"github.com/packworks/coursecat-backend/internal/model"
	"github.com/packworks/coursecat-backend/internal/repository"
)

type CourseService struct {
	courseRepo  *repository.CourseRepository
	sectionRepo *repository.SectionRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, sectionRepo *repository.SectionRepository) *CourseService {
	return &CourseService{
		courseRepo:  courseRepo,
		sectionRepo: sectionRepo,
	}
}

// List returns one page of courses with the total count, optionally
// restricted to one subject.
func (s *CourseService) List(ctx context.Context, subject string, limit, offset int) ([]model.Course, int, error) {
	return s.courseRepo.ListPaginated(ctx, subject, limit, offset)
}

func (s *CourseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetSections lists all sections of a course.
func (s *CourseService) GetSections(ctx context.Context, courseID int) ([]model.Section, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.sectionRepo.ListByCourse(ctx, courseID)
}
