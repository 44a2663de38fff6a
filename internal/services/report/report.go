// Package report renders analysis text into a formatted PDF document.
//
// The layout is a deterministic single pass over the text: a fixed header
// block, then line-by-line heading detection, then a fixed footer. This is
// a heuristic layout, not a markdown parser — malformed markup falls through
// to body text, and that behavior is part of the contract with the front-end.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
)

// DefaultTitle is used when the caller provides no document title.
const DefaultTitle = "Analyse Juridique LegalBridge"

// productName is the large header line on every generated report.
const productName = "LegalBridge"

// attribution is the italic footer line.
const attribution = "Rapport généré automatiquement par LegalBridge — ne constitue pas un avis juridique."

// maxHeadingLen bounds the all-caps heading heuristic: longer all-caps lines
// are treated as body text.
const maxHeadingLen = 100

// Render produces a complete PDF report for the given analysis text.
// An empty title falls back to DefaultTitle; an empty clientName omits the
// client line. The date line uses DD/MM/YYYY of the given time.
func Render(analysisText, title, clientName string, at time.Time) ([]byte, error) {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(title, true)
	doc.SetMargins(15, 15, 15)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	// Core fonts are latin-1; the translator maps the French accents.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	// Header block
	doc.SetFont("Arial", "B", 18)
	doc.CellFormat(0, 12, tr(productName), "", 1, "C", false, 0, "")
	doc.SetFont("Arial", "", 14)
	doc.CellFormat(0, 9, tr(title), "", 1, "C", false, 0, "")
	if clientName != "" {
		doc.SetFont("Arial", "I", 11)
		doc.CellFormat(0, 7, tr("Client : "+clientName), "", 1, "C", false, 0, "")
	}
	doc.SetFont("Arial", "", 10)
	doc.CellFormat(0, 7, at.Format("02/01/2006"), "", 1, "C", false, 0, "")
	doc.Ln(6)

	// Body: one pass over the lines, original order preserved
	for _, line := range strings.Split(analysisText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			doc.Ln(3)
			continue
		}

		if text, ok := headingText(trimmed); ok {
			doc.Ln(2)
			doc.SetFont("Arial", "B", 13)
			doc.MultiCell(0, 7, tr(text), "", "L", false)
			doc.Ln(1)
			continue
		}

		doc.SetFont("Arial", "", 11)
		doc.MultiCell(0, 6, tr(trimmed), "", "J", false)
	}

	// Footer block
	doc.Ln(8)
	doc.SetDrawColor(128, 128, 128)
	y := doc.GetY()
	doc.Line(15, y, 195, y)
	doc.Ln(4)
	doc.SetFont("Arial", "I", 9)
	doc.SetTextColor(100, 100, 100)
	doc.MultiCell(0, 5, tr(attribution), "", "C", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF report: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPages rebuilds a plain document from per-page text, one output page
// per input page. Used by the split endpoint.
func RenderPages(pages []string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(15, 15, 15)
	doc.SetAutoPageBreak(true, 20)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, pageText := range pages {
		doc.AddPage()
		doc.SetFont("Arial", "", 11)
		for _, line := range strings.Split(pageText, "\n") {
			doc.MultiCell(0, 5, tr(line), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render split PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// headingText decides whether a (trimmed, non-empty) line renders as a
// section heading, and returns the line with its markers stripped.
//
// A line is a heading when it starts with '#', is wrapped in "**...**", or
// is fully upper-case and shorter than 100 characters. Anything else —
// including unmatched bold markers — is body text.
func headingText(line string) (string, bool) {
	if strings.HasPrefix(line, "#") {
		return strings.TrimSpace(strings.TrimLeft(line, "#")), true
	}
	if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4 {
		return strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "**"), "**")), true
	}
	if utf8.RuneCountInString(line) < maxHeadingLen && isAllUpper(line) {
		return line, true
	}
	return line, false
}

// isAllUpper reports whether the line contains at least one letter and no
// lower-case letters. Digits and punctuation are ignored.
func isAllUpper(line string) bool {
	return line == strings.ToUpper(line) && line != strings.ToLower(line)
}
