// Package pdf provides PDF text extraction and the scanned-document heuristic.
//
// We use the ledongthuc/pdf library for text extraction. It's a pure Go
// implementation — no CGO or external dependencies required, so deployment
// stays a single binary.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// NoExtractableText is the in-band marker set on results where the parser
// succeeded but no page yielded any text — typically a scanned document.
// It is a data outcome, not a fault.
const NoExtractableText = "no extractable text"

// ExtractionResult holds the output from a PDF text extraction.
type ExtractionResult struct {
	Text       string // Extracted text: page texts joined by newlines, trimmed
	PageCount  int    // Number of pages
	Characters int    // Length of Text in bytes
	EmptyPages int    // Pages that yielded only whitespace
	IsScanned  bool   // Scan heuristic result, see IsScanned
	Err        string // In-band error marker; empty iff Text is usable
}

// Extract reads a PDF from memory and extracts all text content.
//
// Go Pattern: We accept a byte slice instead of a filename because the data
// comes from an HTTP fetch or upload (in memory), not a file on disk. The
// pdf library requires a ReaderAt for random access to the PDF structure.
func Extract(data []byte) (*ExtractionResult, error) {
	pages, err := Pages(data)
	if err != nil {
		return nil, err
	}

	result := &ExtractionResult{PageCount: len(pages)}

	var allText strings.Builder
	for _, pageText := range pages {
		if strings.TrimSpace(pageText) == "" {
			result.EmptyPages++
		}
		// Each page is followed by a newline; the final string is trimmed.
		allText.WriteString(pageText)
		allText.WriteString("\n")
	}

	result.Text = strings.TrimSpace(allText.String())
	result.Characters = len(result.Text)
	result.IsScanned = IsScanned(result.EmptyPages, result.PageCount)

	if result.Text == "" {
		result.Err = NoExtractableText
	}

	return result, nil
}

// Pages extracts the ordered per-page text of a PDF.
//
// A page whose text extraction fails is returned as an empty string rather
// than failing the whole document — image-only pages are common. Only a
// document-level parse failure is an error.
func Pages(data []byte) ([]string, error) {
	reader := bytes.NewReader(data)

	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	pageCount := pdfReader.NumPage()
	pages := make([]string, 0, pageCount)

	for i := 1; i <= pageCount; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	return pages, nil
}

// IsScanned reports whether a document looks like a scanned (rasterized) PDF:
// more than half of its pages yielded no extractable text.
//
// This is a coarse heuristic, not a content classifier — it produces false
// positives and negatives and there is no correction mechanism.
func IsScanned(emptyPages, pageCount int) bool {
	if pageCount == 0 {
		return false
	}
	return float64(emptyPages)/float64(pageCount) > 0.5
}

// ValidatePDF checks if the data looks like a valid PDF by checking the magic bytes.
func ValidatePDF(data []byte) bool {
	// PDF files start with "%PDF-"
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
