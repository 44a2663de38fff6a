// pdf.go handles the PDF analysis and split endpoints.
//
// POST /analyze-pdf        — analyze a PDF fetched by URL
// POST /analyze-pdf/upload — analyze an uploaded PDF file
// POST /split-pdf          — rebuild a page range of a PDF as a new document
//
// The analyze endpoints are deliberately lenient: once the request body
// parses, every outcome is a 200 with failures reported in-band. The Bubble
// front-end expects a response object on every call.
package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/models"
	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/services/analysis"
	pdfservice "github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/services/pdf"
	"github.com/LegalBridgeFouderCEO/bubble-pdf-split/internal/services/report"
)

// maxPDFSize is the max upload size for PDF files (50MB).
const maxPDFSize = 50 << 20

// AnalyzePDF fetches a PDF by URL, extracts its text, and runs the
// legal-contract analysis.
// POST /analyze-pdf
func (h *Handler) AnalyzePDF(c *gin.Context) {
	var req models.AnalyzePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "file_url is required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	data, err := h.Fetcher.Fetch(c.Request.Context(), req.FileURL)
	if err != nil {
		log.Printf("PDF fetch failed for %s: %v", req.FileURL, err)
		c.JSON(http.StatusOK, models.AnalyzePDFResponse{
			PDFText:    "",
			GPTAnalyse: "could not download document: " + err.Error(),
			Metadata:   models.ExtractionMetadata{Error: err.Error()},
		})
		return
	}

	h.analyze(c, data, req.SplitPoints)
}

// AnalyzePDFUpload accepts a multipart PDF upload and runs the same
// pipeline as AnalyzePDF.
// POST /analyze-pdf/upload
//
// Accepts a multipart file upload with field name "file". Only .pdf files
// are accepted; processing is synchronous.
func (h *Handler) AnalyzePDFUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPDFSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "No PDF file provided. Upload a file with the field name 'file'. Max size: 50MB.",
			Code:    http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_file_type",
			Message: fmt.Sprintf("Unsupported file format '%s'. Only .pdf files are accepted.", ext),
			Code:    http.StatusBadRequest,
		})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "read_error",
			Message: "Failed to read uploaded file",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if !pdfservice.ValidatePDF(data) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_pdf",
			Message: "The uploaded file does not appear to be a valid PDF",
			Code:    http.StatusBadRequest,
		})
		return
	}

	splitPoints := c.Request.FormValue("split_points") == "true"
	h.analyze(c, data, splitPoints)
}

// analyze runs extraction and analysis over PDF bytes and writes the
// in-band response. Shared by the URL and upload variants.
func (h *Handler) analyze(c *gin.Context, data []byte, splitPoints bool) {
	result, err := pdfservice.Extract(data)
	if err != nil {
		log.Printf("PDF extraction failed: %v", err)
		msg := "could not extract text: " + err.Error()
		c.JSON(http.StatusOK, models.AnalyzePDFResponse{
			PDFText:    "",
			GPTAnalyse: msg,
			Metadata:   models.ExtractionMetadata{Error: err.Error()},
		})
		return
	}

	meta := models.ExtractionMetadata{
		Pages:      result.PageCount,
		Characters: result.Characters,
		EmptyPages: result.EmptyPages,
		IsScanned:  result.IsScanned,
		Error:      result.Err,
	}

	// No extractable text is a data outcome (likely a scanned document),
	// not a fault — report it in-band without calling the model.
	if result.Err != "" {
		c.JSON(http.StatusOK, models.AnalyzePDFResponse{
			PDFText:    "",
			GPTAnalyse: "no extractable text in document (likely a scanned PDF)",
			Metadata:   meta,
		})
		return
	}

	resp := models.AnalyzePDFResponse{
		PDFText:  result.Text,
		Metadata: meta,
	}

	// Analysis failures never discard the extracted text: return whatever
	// was successfully produced, with the failure reported in-band.
	res, err := h.Analyzer.Analyze(c.Request.Context(), result.Text)
	if err != nil {
		log.Printf("Analysis failed: %v", err)
		resp.GPTAnalyse = "analysis failed: " + err.Error()
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.GPTAnalyse = res.Cleaned
	if splitPoints {
		resp.Points = analysis.SplitPoints(res.Cleaned)
	}
	c.JSON(http.StatusOK, resp)
}

// SplitPDF fetches a PDF, extracts the requested page range, and returns a
// rebuilt document containing just those pages' text.
// POST /split-pdf
func (h *Handler) SplitPDF(c *gin.Context) {
	var req models.SplitPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "file_url, start_page and end_page are required; pages are 1-indexed",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if req.EndPage < req.StartPage {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_range",
			Message: fmt.Sprintf("end_page %d is before start_page %d", req.EndPage, req.StartPage),
			Code:    http.StatusBadRequest,
		})
		return
	}

	data, err := h.Fetcher.Fetch(c.Request.Context(), req.FileURL)
	if err != nil {
		log.Printf("PDF fetch failed for %s: %v", req.FileURL, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "fetch_failed",
			Message: err.Error(),
			Code:    http.StatusBadGateway,
		})
		return
	}

	pages, err := pdfservice.Pages(data)
	if err != nil {
		log.Printf("PDF extraction failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "extraction_failed",
			Message: "PDF text extraction failed: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if req.StartPage > len(pages) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_range",
			Message: fmt.Sprintf("start_page %d is past the last page (%d)", req.StartPage, len(pages)),
			Code:    http.StatusBadRequest,
		})
		return
	}

	end := req.EndPage
	if end > len(pages) {
		end = len(pages)
	}

	out, err := report.RenderPages(pages[req.StartPage-1 : end])
	if err != nil {
		log.Printf("Split render failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "render_failed",
			Message: "Failed to rebuild PDF: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	filename := "split_" + uuid.New().String() + ".pdf"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", out)
}
