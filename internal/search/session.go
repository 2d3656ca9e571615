package search

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/packworks/coursecat-backend/internal/model"
)

// Querier is the subset of pgxpool.Pool the search engine needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Factory spawns independent search sessions over a shared store.
type Factory struct {
	db  Querier
	log zerolog.Logger
}

// NewFactory creates a session factory bound to a query interface,
// normally a *pgxpool.Pool.
func NewFactory(db Querier, log zerolog.Logger) *Factory {
	return &Factory{
		db:  db,
		log: log.With().Str("component", "search").Logger(),
	}
}

// NewSession returns a fresh session with no filters. One session serves
// exactly one logical search; concurrent callers must each take their
// own so filter and result state never cross-contaminates.
func (f *Factory) NewSession() *Session {
	return &Session{db: f.db, log: f.log, filters: NewFilters()}
}

// Session holds the filter registry and cached results of one search.
type Session struct {
	db      Querier
	log     zerolog.Logger
	filters *Filters
	results []*Result
}

// AddFilter registers a filter value; empty values are ignored.
func (s *Session) AddFilter(name, value string) {
	s.filters.Add(name, value)
}

// ClearFilters resets the registered filters and any cached results.
func (s *Session) ClearFilters() {
	s.filters.Clear()
	s.results = nil
}

// Filters returns a copy of the currently registered filters.
func (s *Session) Filters() map[string]string {
	return s.filters.Map()
}

// ExecuteSearch compiles the current filter set, runs the single joined
// query, and folds the rows into aggregated results, replacing any prior
// ones. Store errors propagate annotated with the active filters; zero
// matches is a success with an empty result set.
func (s *Session) ExecuteSearch(ctx context.Context) ([]*Result, error) {
	query, args, err := Compile(s.filters)
	if err != nil {
		return nil, fmt.Errorf("compile search query: %w", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search with filters %v: %w", s.filters.Map(), err)
	}
	defer rows.Close()

	var scanned []Row
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan search row: %w", err)
		}
		scanned = append(scanned, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search with filters %v: %w", s.filters.Map(), err)
	}

	s.results = Aggregate(scanned)
	s.log.Debug().
		Int("rows", len(scanned)).
		Int("sections", len(s.results)).
		Msg("Search executed")
	return s.results, nil
}

// Results returns the aggregated records of the last ExecuteSearch.
func (s *Session) Results() []*Result {
	return s.results
}

// Summaries projects the aggregated results into the flat summary shape,
// in result order.
func (s *Session) Summaries() []model.SectionSummary {
	out := make([]model.SectionSummary, 0, len(s.results))
	for _, r := range s.results {
		out = append(out, r.Summary())
	}
	return out
}

// Count returns the number of aggregated sections, not raw join rows.
func (s *Session) Count() int {
	return len(s.results)
}

// scanRow reads one tuple in the fixed column order of the compiled
// query. The three instructor columns are nullable because of the outer
// join.
func scanRow(rows pgx.Rows) (Row, error) {
	var (
		row          Row
		instructorID *int
		firstName    *string
		lastName     *string
	)

	err := rows.Scan(
		&row.Section.ID, &row.Section.CourseID, &row.Section.TermID,
		&row.Section.SectionNum, &row.Section.Component, &row.Section.InstructionMode,
		&row.Section.ClassDays, &row.Section.StartTime, &row.Section.EndTime,
		&row.Section.Combined, &row.Section.ClassStatus, &row.Section.EnrollmentCapacity,
		&row.Section.RoomCode,
		&row.Course.ID, &row.Course.DepartmentID, &row.Course.Subject,
		&row.Course.CatalogNum, &row.Course.Title, &row.Course.Description,
		&row.Course.Units,
		&instructorID, &firstName, &lastName,
	)
	if err != nil {
		return Row{}, err
	}

	if instructorID != nil {
		in := &model.Instructor{ID: *instructorID}
		if firstName != nil {
			in.FirstName = *firstName
		}
		if lastName != nil {
			in.LastName = *lastName
		}
		row.Instructor = in
	}
	return row, nil
}
