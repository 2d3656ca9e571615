package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/packworks/coursecat-backend/internal/model"
	"github.com/packworks/coursecat-backend/internal/response"
	"github.com/packworks/coursecat-backend/internal/service"
)

// InstructorHandler handles instructor browsing.
type InstructorHandler struct {
	instructorService *service.InstructorService
}

// NewInstructorHandler creates a new InstructorHandler.
func NewInstructorHandler(instructorService *service.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructorService: instructorService}
}

// List godoc
// GET /api/v1/instructors
// Lists instructors, optionally filtered by ?name= substring.
func (h *InstructorHandler) List(c *gin.Context) {
	instructors, err := h.instructorService.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if instructors == nil {
		instructors = []model.Instructor{}
	}

	response.Success(c, http.StatusOK, gin.H{"instructors": instructors})
}

// ListSections godoc
// GET /api/v1/instructors/:id/sections
func (h *InstructorHandler) ListSections(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	sections, err := h.instructorService.GetSections(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if sections == nil {
		sections = []model.Section{}
	}

	response.Success(c, http.StatusOK, gin.H{"sections": sections})
}
