package api

import (
	"net/http"
	"poi-viewer/internal/api/handlers"
	"poi-viewer/internal/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.MarkerRepository, logger zerolog.Logger) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	markerHandler := handlers.NewMarkerHandler(repo)

	r.GET("/health", handlers.Health)
	r.GET("/api/:category", markerHandler.List)

	return r
}
