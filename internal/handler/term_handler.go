package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/packworks/coursecat-backend/internal/model"
	"github.com/packworks/coursecat-backend/internal/response"
	"github.com/packworks/coursecat-backend/internal/service"
)

// TermHandler handles term browsing.
type TermHandler struct {
	termService *service.TermService
}

// NewTermHandler creates a new TermHandler.
func NewTermHandler(termService *service.TermService) *TermHandler {
	return &TermHandler{termService: termService}
}

// List godoc
// GET /api/v1/terms
func (h *TermHandler) List(c *gin.Context) {
	terms, err := h.termService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if terms == nil {
		terms = []model.Term{}
	}

	response.Success(c, http.StatusOK, gin.H{"terms": terms})
}

// GetCurrent godoc
// GET /api/v1/terms/current
// Returns the term whose date range covers today, 404 outside any term.
func (h *TermHandler) GetCurrent(c *gin.Context) {
	term, err := h.termService.GetCurrent(c.Request.Context())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"term": term})
}
