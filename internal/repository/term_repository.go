package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/packworks/coursecat-backend/internal/model"
)

// TermRepository handles term data access.
type TermRepository struct {
	pool *pgxpool.Pool
}

// NewTermRepository creates a new TermRepository.
func NewTermRepository(pool *pgxpool.Pool) *TermRepository {
	return &TermRepository{pool: pool}
}

// GetAll retrieves every term, newest first.
func (r *TermRepository) GetAll(ctx context.Context) ([]model.Term, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, session_code, year, start_date, end_date
		 FROM term
		 ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []model.Term
	for rows.Next() {
		var t model.Term
		if err := rows.Scan(&t.ID, &t.SessionCode, &t.Year, &t.StartDate, &t.EndDate); err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

// GetByID retrieves a term by ID.
func (r *TermRepository) GetByID(ctx context.Context, id int) (*model.Term, error) {
	t := &model.Term{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, session_code, year, start_date, end_date FROM term WHERE id = $1`, id,
	).Scan(&t.ID, &t.SessionCode, &t.Year, &t.StartDate, &t.EndDate)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetCurrent retrieves the term whose date range covers today.
func (r *TermRepository) GetCurrent(ctx context.Context) (*model.Term, error) {
	t := &model.Term{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, session_code, year, start_date, end_date
		 FROM term
		 WHERE start_date <= CURRENT_DATE AND end_date >= CURRENT_DATE
		 ORDER BY start_date DESC
		 LIMIT 1`,
	).Scan(&t.ID, &t.SessionCode, &t.Year, &t.StartDate, &t.EndDate)
	if err != nil {
		return nil, err
	}
	return t, nil
}
