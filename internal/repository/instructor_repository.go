package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/packworks/coursecat-backend/internal/model"
)

// InstructorRepository handles instructor data access.
type InstructorRepository struct {
	pool *pgxpool.Pool
}

// NewInstructorRepository creates a new InstructorRepository.
func NewInstructorRepository(pool *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{pool: pool}
}

// GetAll retrieves every instructor ordered by name.
func (r *InstructorRepository) GetAll(ctx context.Context) ([]model.Instructor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name
		 FROM instructor
		 ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInstructors(rows)
}

// GetByID retrieves an instructor by ID.
func (r *InstructorRepository) GetByID(ctx context.Context, id int) (*model.Instructor, error) {
	in := &model.Instructor{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name FROM instructor WHERE id = $1`, id,
	).Scan(&in.ID, &in.FirstName, &in.LastName)
	if err != nil {
		return nil, err
	}
	return in, nil
}

// SearchByName retrieves instructors whose first or last name contains
// the pattern, case-insensitively.
func (r *InstructorRepository) SearchByName(ctx context.Context, namePattern string) ([]model.Instructor, error) {
	pattern := "%" + namePattern + "%"
	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name
		 FROM instructor
		 WHERE first_name ILIKE $1 OR last_name ILIKE $1
		 ORDER BY last_name, first_name`, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInstructors(rows)
}

// ListSections retrieves every section an instructor is assigned to.
func (r *InstructorRepository) ListSections(ctx context.Context, instructorID int) ([]model.Section, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.id, s.course_id, s.term_id, s.section_num, s.component,
		        s.instruction_mode, s.class_days, s.start_time::text, s.end_time::text,
		        s.combined, s.class_status, s.enrollment_capacity, s.room_code
		 FROM section s
		 JOIN section_instructor si ON s.id = si.section_id
		 WHERE si.instructor_id = $1
		 ORDER BY s.section_num`, instructorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []model.Section
	for rows.Next() {
		var s model.Section
		if err := rows.Scan(&s.ID, &s.CourseID, &s.TermID, &s.SectionNum, &s.Component,
			&s.InstructionMode, &s.ClassDays, &s.StartTime, &s.EndTime, &s.Combined,
			&s.ClassStatus, &s.EnrollmentCapacity, &s.RoomCode); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func scanInstructors(rows pgx.Rows) ([]model.Instructor, error) {
	var instructors []model.Instructor
	for rows.Next() {
		var in model.Instructor
		if err := rows.Scan(&in.ID, &in.FirstName, &in.LastName); err != nil {
			return nil, err
		}
		instructors = append(instructors, in)
	}
	return instructors, rows.Err()
}
