// Package handlers contains HTTP handler functions for the API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides request
// data and response methods. Related handlers share a Handler struct that
// holds their dependencies — injected at construction, never global.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/models"
	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/services/analysis"
	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/services/fetcher"
)

// serviceName identifies the API in health responses.
const serviceName = "legalbridge-pdf-api"

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	Fetcher  *fetcher.Service
	Analyzer *analysis.Service
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(f *fetcher.Service, a *analysis.Service) *Handler {
	return &Handler{
		Fetcher:  f,
		Analyzer: a,
	}
}

// Root returns basic API info.
// GET /
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.RootResponse{
		Message: "LegalBridge PDF Analysis API",
		Status:  "ok",
	})
}

// HealthCheck returns the API health status.
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:           "healthy",
		Service:          serviceName,
		OpenAIConfigured: h.Analyzer.IsConfigured(),
	})
}
