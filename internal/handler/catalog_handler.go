package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/packworks/coursecat-backend/internal/response"
	"github.com/packworks/coursecat-backend/internal/service"
)

// CatalogHandler serves catalog-wide helpers for the search form.
type CatalogHandler struct {
	facetService *service.FacetService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(facetService *service.FacetService) *CatalogHandler {
	return &CatalogHandler{facetService: facetService}
}

// GetFacets godoc
// GET /api/v1/catalog/facets
// Returns the distinct filter values the search form offers as dropdowns.
func (h *CatalogHandler) GetFacets(c *gin.Context) {
	facets, err := h.facetService.GetFacets(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"facets": facets})
}
