package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/packworks/coursecat-backend/internal/model"
)

// DepartmentRepository handles department data access. The catalog is
// read-only from the API's perspective; rows are created by the
// ingestion pipeline.
type DepartmentRepository struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository creates a new DepartmentRepository.
func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

// GetAll retrieves every department ordered by college then code.
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]model.Department, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, college, department_code
		 FROM department
		 ORDER BY college, department_code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []model.Department
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.College, &d.DepartmentCode); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// GetByID retrieves a department by ID.
func (r *DepartmentRepository) GetByID(ctx context.Context, id int) (*model.Department, error) {
	d := &model.Department{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, college, department_code FROM department WHERE id = $1`, id,
	).Scan(&d.ID, &d.College, &d.DepartmentCode)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// GetByCode retrieves a department by its unique code.
func (r *DepartmentRepository) GetByCode(ctx context.Context, code string) (*model.Department, error) {
	d := &model.Department{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, college, department_code FROM department WHERE department_code = $1`, code,
	).Scan(&d.ID, &d.College, &d.DepartmentCode)
	if err != nil {
		return nil, err
	}
	return d, nil
}
