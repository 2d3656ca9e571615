package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/packworks/coursecat-backend/internal/model"
	"github.com/packworks/coursecat-backend/internal/response"
	"github.com/packworks/coursecat-backend/internal/search"
	"github.com/packworks/coursecat-backend/internal/validator"
)

// pgInvalidTextRepresentation is raised when a bound value cannot be
// cast to its column type, e.g. a non-numeric units filter.
const pgInvalidTextRepresentation = "22P02"

// SearchHandler exposes the multi-criteria course search.
type SearchHandler struct {
	factory *search.Factory
	log     zerolog.Logger
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(factory *search.Factory, log zerolog.Logger) *SearchHandler {
	return &SearchHandler{
		factory: factory,
		log:     log.With().Str("component", "search_handler").Logger(),
	}
}

// Search godoc
// GET /api/v1/courses/search
// Runs one search session over the recognized query parameters and
// returns the aggregated section summaries.
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if fields := validator.BindQuery(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	// One session per request; sessions must never be shared across
	// concurrent searches.
	sess := h.factory.NewSession()
	registerFilters(sess, &req)

	if _, err := sess.ExecuteSearch(c.Request.Context()); err != nil {
		h.log.Error().Err(err).Msg("Search failed")

		var filterErr *search.FilterError
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &filterErr):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidFilter,
				map[string]string{filterErr.Name: filterErr.Error()})
		case errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation:
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidFilter)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrSearchFailed)
		}
		return
	}

	response.Success(c, http.StatusOK, model.SearchResponse{
		Sections:    sess.Summaries(),
		Count:       sess.Count(),
		FiltersUsed: sess.Filters(),
	})
}

// registerFilters forwards every recognized query parameter to the
// session's filter registry. Empty values are no-ops there.
func registerFilters(sess *search.Session, req *model.SearchRequest) {
	sess.AddFilter("subject", req.Subject)
	sess.AddFilter("catalog_num", req.CatalogNum)
	sess.AddFilter("catalog_num_operator", req.CatalogNumOperator)
	sess.AddFilter("college", req.College)
	sess.AddFilter("department", req.Department)
	sess.AddFilter("search_query", req.SearchQuery)
	sess.AddFilter("title", req.Title)
	sess.AddFilter("instructor", req.Instructor)
	sess.AddFilter("days", req.Days)
	sess.AddFilter("term", req.Term)
	sess.AddFilter("units", req.Units)
	sess.AddFilter("units_operator", req.UnitsOperator)
	sess.AddFilter("min_units", req.MinUnits)
	sess.AddFilter("max_units", req.MaxUnits)
	sess.AddFilter("instruction_mode", req.InstructionMode)
	sess.AddFilter("component", req.Component)
	sess.AddFilter("status", req.Status)
	sess.AddFilter("course_career", req.CourseCareer)
	sess.AddFilter("level", req.Level)
	sess.AddFilter("room", req.Room)
}
