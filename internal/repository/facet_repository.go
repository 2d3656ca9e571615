package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/packworks/coursecat-backend/internal/model"
)

// FacetRepository computes the distinct value lists the search form
// offers as dropdowns. Only the facet worker and the cache-miss path hit
// these queries.
type FacetRepository struct {
	pool *pgxpool.Pool
}

// NewFacetRepository creates a new FacetRepository.
func NewFacetRepository(pool *pgxpool.Pool) *FacetRepository {
	return &FacetRepository{pool: pool}
}

// GetFacets retrieves all facet lists in one pass.
func (r *FacetRepository) GetFacets(ctx context.Context) (*model.Facets, error) {
	f := &model.Facets{}

	queries := []struct {
		sql  string
		dest *[]string
	}{
		{`SELECT DISTINCT subject FROM course ORDER BY subject`, &f.Subjects},
		{`SELECT DISTINCT college FROM department ORDER BY college`, &f.Colleges},
		{`SELECT DISTINCT session_code FROM term ORDER BY session_code`, &f.Terms},
		{`SELECT DISTINCT component FROM section ORDER BY component`, &f.Components},
		{`SELECT DISTINCT instruction_mode FROM section ORDER BY instruction_mode`, &f.InstructionModes},
		{`SELECT DISTINCT class_status FROM section ORDER BY class_status`, &f.Statuses},
	}

	for _, q := range queries {
		values, err := r.distinctValues(ctx, q.sql)
		if err != nil {
			return nil, err
		}
		*q.dest = values
	}
	return f, nil
}

func (r *FacetRepository) distinctValues(ctx context.Context, sql string) ([]string, error) {
	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
