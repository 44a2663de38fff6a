// Package models defines the data structures used throughout the application.
//
// Go Pattern: Models are plain structs with JSON tags for serialization.
// Everything here is request-scoped — the service persists nothing, so these
// are pure API DTOs, not database records.
package models

// AnalyzePDFRequest is the JSON body for POST /analyze-pdf.
type AnalyzePDFRequest struct {
	FileURL string `json:"file_url" binding:"required"`
	// SplitPoints requests the optional numbered-list transform on the
	// analysis output. Full text remains the canonical mode.
	SplitPoints bool `json:"split_points,omitempty"`
}

// ExtractionMetadata describes the outcome of the text-extraction step.
type ExtractionMetadata struct {
	Pages      int    `json:"pages"`
	Characters int    `json:"characters"`
	EmptyPages int    `json:"empty_pages"`
	IsScanned  bool   `json:"is_scanned"`
	Error      string `json:"error,omitempty"` // In-band failure marker; empty on success
}

// AnalyzePDFResponse is the response for POST /analyze-pdf.
//
// The contract with the front-end is lenient on purpose: every call gets a
// 200 with this shape, and failures downstream of request parsing are
// reported in-band (GPTAnalyse carries the message, Metadata.Error is set).
type AnalyzePDFResponse struct {
	PDFText    string             `json:"pdf_text"`
	GPTAnalyse string             `json:"gpt_analyse"`
	Points     []string           `json:"points,omitempty"` // Set only when split_points was requested
	Metadata   ExtractionMetadata `json:"metadata"`
}

// GeneratePDFRequest is the JSON body for POST /generate-pdf.
type GeneratePDFRequest struct {
	AnalysisText  string `json:"analysis_text" binding:"required"`
	DocumentTitle string `json:"document_title,omitempty"` // Defaults to "Analyse Juridique LegalBridge"
	ClientName    string `json:"client_name,omitempty"`
}

// SplitPDFRequest is the JSON body for POST /split-pdf.
// Pages are 1-indexed and the range is inclusive.
type SplitPDFRequest struct {
	FileURL   string `json:"file_url" binding:"required"`
	StartPage int    `json:"start_page" binding:"required,min=1"`
	EndPage   int    `json:"end_page" binding:"required,min=1"`
}

// ErrorResponse is a standard error format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	OpenAIConfigured bool   `json:"openai_configured"`
}

// RootResponse is returned by GET /.
type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
