// analysis_test.go — Unit tests for output cleanup and point splitting.
package analysis

import (
	"reflect"
	"testing"
)

// TestClean verifies blank-line collapsing and carriage-return removal.
func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "run of blank lines collapses to one",
			input: "Line1\n\n\n\nLine2",
			want:  "Line1\n\nLine2",
		},
		{
			name:  "single blank line kept as is",
			input: "Line1\n\nLine2",
			want:  "Line1\n\nLine2",
		},
		{
			name:  "carriage returns removed",
			input: "Line1\r\nLine2\rLine3",
			want:  "Line1\nLine2\nLine3",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "\n\n  Texte  \n\n",
			want:  "Texte",
		},
		{
			name:  "windows blank runs collapse too",
			input: "A\r\n\r\n\r\nB",
			want:  "A\n\nB",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	// Cleanup is idempotent: a second pass has nothing left to collapse.
	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"Line1\n\n\n\nLine2",
			"A\r\n\r\nB\n\n\n\n\nC",
			"  \n\nTexte\n\n  ",
		}
		for _, in := range inputs {
			once := Clean(in)
			twice := Clean(once)
			if once != twice {
				t.Errorf("Clean not idempotent for %q: %q != %q", in, once, twice)
			}
		}
	})
}

// TestSplitPoints verifies numbered-list decomposition.
func TestSplitPoints(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple numbered list",
			input: "1. Premier point 2. Deuxième point 3. Troisième point",
			want:  []string{"Premier point", "Deuxième point", "Troisième point"},
		},
		{
			name:  "newlines flattened before splitting",
			input: "1. Clause de résiliation\nabusive\n2. Pénalités de retard",
			want:  []string{"Clause de résiliation abusive", "Pénalités de retard"},
		},
		{
			name:  "preamble before the first number is dropped",
			input: "Points clés :\n1. Premier\n2. Second",
			want:  []string{"Premier", "Second"},
		},
		{
			name:  "no numbered list",
			input: "Aucun point numéroté ici.",
			want:  nil,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "decimal inside a point does not split",
			input: "1. Montant de 1000 euros 2. Délai de 30 jours",
			want:  []string{"Montant de 1000 euros", "Délai de 30 jours"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPoints(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitPoints(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}
