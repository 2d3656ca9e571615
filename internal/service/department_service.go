package service

import (
	"context"

	"github.com/packworks/coursecat-backend/internal/model"
	"github.com/packworks/coursecat-backend/internal/repository"
)

type DepartmentService struct {
	departmentRepo *repository.DepartmentRepository
	courseRepo     *repository.CourseRepository
}

func NewDepartmentService(departmentRepo *repository.DepartmentRepository, courseRepo *repository.CourseRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		courseRepo:     courseRepo,
	}
}

func (s *DepartmentService) GetAll(ctx context.Context) ([]model.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

func (s *DepartmentService) GetByID(ctx context.Context, id int) (*model.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// GetCourses lists the courses a department owns.
func (s *DepartmentService) GetCourses(ctx context.Context, departmentID int) ([]model.Course, error) {
	// Verify the department exists so a bad ID yields 404, not an empty list.
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.courseRepo.ListByDepartment(ctx, departmentID)
}
