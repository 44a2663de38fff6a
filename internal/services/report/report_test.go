// report_test.go — Unit tests for the heading heuristic and PDF rendering.
package report

import (
	"bytes"
	"testing"
	"time"
)

// TestHeadingText covers the heading detection rules: markdown '#' prefixes,
// bold wrapping, and short all-caps lines.
func TestHeadingText(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantText  string
		wantFound bool
	}{
		{
			name:      "markdown h2",
			line:      "## Section 1",
			wantText:  "Section 1",
			wantFound: true,
		},
		{
			name:      "markdown h1",
			line:      "# Contexte",
			wantText:  "Contexte",
			wantFound: true,
		},
		{
			name:      "bold wrapped line",
			line:      "**Risques juridiques**",
			wantText:  "Risques juridiques",
			wantFound: true,
		},
		{
			name:      "short all-caps line",
			line:      "RECOMMANDATIONS",
			wantText:  "RECOMMANDATIONS",
			wantFound: true,
		},
		{
			name:      "all-caps with digits",
			line:      "ARTICLE 12",
			wantText:  "ARTICLE 12",
			wantFound: true,
		},
		{
			name:      "regular sentence",
			line:      "Le contrat prévoit une clause de résiliation.",
			wantText:  "Le contrat prévoit une clause de résiliation.",
			wantFound: false,
		},
		{
			name:      "unmatched bold marker is body text",
			line:      "**Risques juridiques",
			wantText:  "**Risques juridiques",
			wantFound: false,
		},
		{
			name:      "bare double star pair is body text",
			line:      "****",
			wantText:  "****",
			wantFound: false,
		},
		{
			name:      "digits only is body text",
			line:      "12345",
			wantText:  "12345",
			wantFound: false,
		},
		{
			// 95 characters but 103 bytes: the length rule counts
			// characters, so the accents must not push it over.
			name:      "accented all-caps line near the length bound",
			line:      "SYNTHÈSE GÉNÉRALE DES OBLIGATIONS CONTRACTUELLES LIÉES À LA CESSION DES CRÉANCES ET DES SÛRETÉS",
			wantText:  "SYNTHÈSE GÉNÉRALE DES OBLIGATIONS CONTRACTUELLES LIÉES À LA CESSION DES CRÉANCES ET DES SÛRETÉS",
			wantFound: true,
		},
		{
			name:      "long all-caps line is body text",
			line:      "CETTE LIGNE EST ENTIEREMENT EN MAJUSCULES MAIS BEAUCOUP TROP LONGUE POUR PASSER POUR UN TITRE DE SECTION DU RAPPORT",
			wantText:  "CETTE LIGNE EST ENTIEREMENT EN MAJUSCULES MAIS BEAUCOUP TROP LONGUE POUR PASSER POUR UN TITRE DE SECTION DU RAPPORT",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotText, gotFound := headingText(tt.line)
			if gotFound != tt.wantFound {
				t.Errorf("headingText(%q) found = %v, want %v", tt.line, gotFound, tt.wantFound)
			}
			if gotText != tt.wantText {
				t.Errorf("headingText(%q) text = %q, want %q", tt.line, gotText, tt.wantText)
			}
		})
	}
}

// TestRender checks that rendering produces a complete PDF byte stream.
func TestRender(t *testing.T) {
	text := "## Section 1\n\nLe contrat présente plusieurs risques.\n\nRECOMMANDATIONS\n\nFaire relire la clause 4."

	got, err := Render(text, "", "Cabinet Dupont", time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !bytes.HasPrefix(got, []byte("%PDF-")) {
		t.Errorf("Render() output does not start with PDF magic bytes")
	}
	if !bytes.Contains(got, []byte("%%EOF")) {
		t.Errorf("Render() output is not a complete PDF (missing %%EOF)")
	}
}

// TestRender_EmptyClientOmitsNothingFatal ensures the optional client line
// can be left out without affecting rendering.
func TestRender_EmptyClient(t *testing.T) {
	got, err := Render("Texte simple.", "Titre", "", time.Now())
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if len(got) == 0 {
		t.Error("Render() returned empty output")
	}
}

// TestRenderPages checks the page-split rebuild path.
func TestRenderPages(t *testing.T) {
	got, err := RenderPages([]string{"page un", "page deux"})
	if err != nil {
		t.Fatalf("RenderPages() unexpected error: %v", err)
	}
	if !bytes.HasPrefix(got, []byte("%PDF-")) {
		t.Errorf("RenderPages() output does not start with PDF magic bytes")
	}
}
