// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/handlers"
	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/middleware"
	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/services/analysis"
	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/services/fetcher"
)

// Setup creates and configures the Gin router with all routes.
// Every endpoint is stateless and unauthenticated — each request is
// independent, there is no session and no rate limiting.
func Setup(f *fetcher.Service, a *analysis.Service, allowedOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS(allowedOrigins))

	h := handlers.NewHandler(f, a)

	r.GET("/", h.Root)
	r.GET("/health", h.HealthCheck)

	r.POST("/analyze-pdf", h.AnalyzePDF)
	r.POST("/analyze-pdf/upload", h.AnalyzePDFUpload)
	r.POST("/generate-pdf", h.GeneratePDF)
	r.POST("/split-pdf", h.SplitPDF)

	return r
}
