package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/packworks/coursecat-backend/internal/model"
)

// SectionRepository handles section data access.
type SectionRepository struct {
	pool *pgxpool.Pool
}

// NewSectionRepository creates a new SectionRepository.
func NewSectionRepository(pool *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{pool: pool}
}

// GetDetails retrieves one section with its course, department and term
// context plus the full instructor list. Two fixed queries regardless of
// instructor count.
func (r *SectionRepository) GetDetails(ctx context.Context, id int) (*model.SectionDetails, error) {
	d := &model.SectionDetails{
		DepartmentInfo: &model.Department{},
		TermInfo:       &model.Term{},
	}

	err := r.pool.QueryRow(ctx,
		`SELECT s.id, s.course_id, s.term_id, s.section_num, s.component,
		        s.instruction_mode, s.class_days, s.start_time::text, s.end_time::text,
		        s.combined, s.class_status, s.enrollment_capacity, s.room_code,
		        c.id, c.department_id, c.subject, c.catalog_num, c.title, c.description, c.units,
		        d.id, d.college, d.department_code,
		        t.id, t.session_code, t.year, t.start_date, t.end_date
		 FROM section s
		 JOIN course c ON s.course_id = c.id
		 JOIN department d ON c.department_id = d.id
		 JOIN term t ON s.term_id = t.id
		 WHERE s.id = $1`, id,
	).Scan(
		&d.SectionInfo.ID, &d.SectionInfo.CourseID, &d.SectionInfo.TermID,
		&d.SectionInfo.SectionNum, &d.SectionInfo.Component, &d.SectionInfo.InstructionMode,
		&d.SectionInfo.ClassDays, &d.SectionInfo.StartTime, &d.SectionInfo.EndTime,
		&d.SectionInfo.Combined, &d.SectionInfo.ClassStatus, &d.SectionInfo.EnrollmentCapacity,
		&d.SectionInfo.RoomCode,
		&d.CourseInfo.ID, &d.CourseInfo.DepartmentID, &d.CourseInfo.Subject,
		&d.CourseInfo.CatalogNum, &d.CourseInfo.Title, &d.CourseInfo.Description,
		&d.CourseInfo.Units,
		&d.DepartmentInfo.ID, &d.DepartmentInfo.College, &d.DepartmentInfo.DepartmentCode,
		&d.TermInfo.ID, &d.TermInfo.SessionCode, &d.TermInfo.Year,
		&d.TermInfo.StartDate, &d.TermInfo.EndDate,
	)
	if err != nil {
		return nil, err
	}

	instructors, err := r.listInstructors(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Instructors = instructors
	return d, nil
}

// ListByCourse retrieves all sections of a course ordered by section
// number.
func (r *SectionRepository) ListByCourse(ctx context.Context, courseID int) ([]model.Section, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, course_id, term_id, section_num, component, instruction_mode,
		        class_days, start_time::text, end_time::text, combined, class_status,
		        enrollment_capacity, room_code
		 FROM section
		 WHERE course_id = $1
		 ORDER BY section_num`, courseID)
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

func (r *SectionRepository) listInstructors(ctx context.Context, sectionID int) ([]model.Instructor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT i.id, i.first_name, i.last_name
		 FROM instructor i
		 JOIN section_instructor si ON i.id = si.instructor_id
		 WHERE si.section_id = $1
		 ORDER BY i.last_name, i.first_name`, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	instructors := []model.Instructor{}
	for rows.Next() {
		var in model.Instructor
		if err := rows.Scan(&in.ID, &in.FirstName, &in.LastName); err != nil {
			return nil, err
		}
		instructors = append(instructors, in)
	}
	return instructors, rows.Err()
}
