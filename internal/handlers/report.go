// report.go handles PDF report generation.
//
// POST /generate-pdf — render analysis text into a formatted PDF report
package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/models"
	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/services/report"
)

// GeneratePDF renders analysis text into a downloadable PDF report.
// POST /generate-pdf
//
// The document is created per call and returned immediately — nothing is
// stored server-side.
func (h *Handler) GeneratePDF(c *gin.Context) {
	var req models.GeneratePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.AnalysisText) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "analysis_text is required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	now := time.Now()
	out, err := report.Render(req.AnalysisText, req.DocumentTitle, req.ClientName, now)
	if err != nil {
		log.Printf("Report rendering failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "render_failed",
			Message: "Failed to generate PDF report: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	filename := "Analyse_LegalBridge_" + now.Format("20060102_150405") + ".pdf"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", out)
}
