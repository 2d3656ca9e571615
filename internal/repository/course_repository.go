package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/packworks/coursecat-backend/internal/model"
)

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	c := &model.Course{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, department_id, subject, catalog_num, title, description, units
		 FROM course WHERE id = $1`, id,
	).Scan(&c.ID, &c.DepartmentID, &c.Subject, &c.CatalogNum, &c.Title, &c.Description, &c.Units)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetBySubjectCatalog retrieves a course by its natural key.
func (r *CourseRepository) GetBySubjectCatalog(ctx context.Context, subject string, catalogNum int) (*model.Course, error) {
	c := &model.Course{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, department_id, subject, catalog_num, title, description, units
		 FROM course WHERE subject = $1 AND catalog_num = $2`, subject, catalogNum,
	).Scan(&c.ID, &c.DepartmentID, &c.Subject, &c.CatalogNum, &c.Title, &c.Description, &c.Units)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListPaginated retrieves courses with pagination and an optional exact
// subject filter.
func (r *CourseRepository) ListPaginated(ctx context.Context, subject string, limit, offset int) ([]model.Course, int, error) {
	// 1. Get total count
	countQuery := `SELECT COUNT(*) FROM course`
	var countArgs []interface{}
	if subject != "" {
		countQuery += ` WHERE subject = $1`
		countArgs = append(countArgs, subject)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// 2. Get paginated data
	query := `SELECT id, department_id, subject, catalog_num, title, description, units FROM course`
	var args []interface{}
	argIdx := 1

	if subject != "" {
		query += ` WHERE subject = $1`
		args = append(args, subject)
		argIdx++
	}

	query += ` ORDER BY subject, catalog_num LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.DepartmentID, &c.Subject, &c.CatalogNum, &c.Title, &c.Description, &c.Units); err != nil {
			return nil, 0, err
		}
		courses = append(courses, c)
	}
	return courses, total, rows.Err()
}

// ListByDepartment retrieves every course owned by a department.
func (r *CourseRepository) ListByDepartment(ctx context.Context, departmentID int) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, department_id, subject, catalog_num, title, description, units
		 FROM course
		 WHERE department_id = $1
		 ORDER BY subject, catalog_num`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.DepartmentID, &c.Subject, &c.CatalogNum, &c.Title, &c.Description, &c.Units); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
