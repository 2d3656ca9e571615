package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packworks/coursecat-backend/internal/search"
	"github.com/packworks/coursecat-backend/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Setup()
}

// emptyRows is a pgx.Rows that yields no tuples.
type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(...any) error                            { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

type stubDB struct {
	err      error
	lastSQL  string
	lastArgs []any
}

func (s *stubDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	s.lastSQL = sql
	s.lastArgs = args
	if s.err != nil {
		return nil, s.err
	}
	return emptyRows{}, nil
}

type searchEnvelope struct {
	Data *struct {
		Sections    []json.RawMessage `json:"sections"`
		Count       int               `json:"count"`
		FiltersUsed map[string]string `json:"filters_used"`
	} `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

func doSearch(t *testing.T, db *stubDB, query string) (int, searchEnvelope) {
	t.Helper()

	h := NewSearchHandler(search.NewFactory(db, zerolog.Nop()), zerolog.Nop())
	router := gin.New()
	router.GET("/api/v1/courses/search", h.Search)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/search"+query, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env searchEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestSearchNoFilters(t *testing.T) {
	db := &stubDB{}
	code, env := doSearch(t, db, "")

	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Data)
	assert.Zero(t, env.Data.Count)
	assert.Empty(t, env.Data.Sections)
	assert.Empty(t, env.Data.FiltersUsed)
	assert.NotContains(t, db.lastSQL, "WHERE")
}

func TestSearchEchoesFiltersUsed(t *testing.T) {
	db := &stubDB{}
	code, env := doSearch(t, db, "?subject=CS&units=3&units_operator=greater_equal&title=")

	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Data)
	assert.Equal(t, map[string]string{
		"subject":        "CS",
		"units":          "3",
		"units_operator": "greater_equal",
	}, env.Data.FiltersUsed)
	assert.Contains(t, db.lastSQL, "c.units >= $2")
	assert.Equal(t, []any{"CS", "3"}, db.lastArgs)
}

func TestSearchRejectsUnknownOperator(t *testing.T) {
	code, env := doSearch(t, &stubDB{}, "?units=3&units_operator=between")

	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Fields, "units_operator")
}

func TestSearchRejectsUnknownCareer(t *testing.T) {
	code, env := doSearch(t, &stubDB{}, "?course_career=Postdoc")

	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Fields, "course_career")
}

func TestSearchRejectsUnknownLevel(t *testing.T) {
	code, env := doSearch(t, &stubDB{}, "?level=9")

	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Fields, "level")
}

func TestSearchMalformedNumberMapsToInvalidFilter(t *testing.T) {
	db := &stubDB{err: &pgconn.PgError{Code: pgInvalidTextRepresentation}}
	code, env := doSearch(t, db, "?units=three")

	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_FILTER", env.Error.Code)
}

func TestSearchStoreFailureMapsToSearchFailed(t *testing.T) {
	db := &stubDB{err: errors.New("connection refused")}
	code, env := doSearch(t, db, "?subject=CS")

	assert.Equal(t, http.StatusInternalServerError, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SEARCH_FAILED", env.Error.Code)
}
