package handlers

import (
	"net/http"
	"poi-viewer/internal/api/dto"
	"poi-viewer/internal/domain"
	"poi-viewer/internal/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MarkerHandler serves the per-category marker endpoints.
type MarkerHandler struct {
	repo ports.MarkerRepository
}

func NewMarkerHandler(repo ports.MarkerRepository) *MarkerHandler {
	return &MarkerHandler{repo: repo}
}

// List handles GET /api/:category.
func (h *MarkerHandler) List(c *gin.Context) {
	category, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category"})
		return
	}

	ctx := c.Request.Context()
	markers, err := h.repo.ListMarkers(ctx, category)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("category", string(category)).Msg("list markers failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.FromMarkers(markers))
}
