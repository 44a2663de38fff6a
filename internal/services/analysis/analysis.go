// Package analysis handles AI-powered legal contract analysis via OpenAI.
//
// A single chat-completion call per document: the system message establishes
// the legal-assistant persona, the user message carries the full extracted
// text (not chunked, not summarized). No retries — a failed call is reported
// to the handler, which degrades the response in-band.
package analysis

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// systemPrompt establishes the legal-assistant persona. The report structure
// it asks for is what the report renderer's heading heuristic expects.
const systemPrompt = `Tu es un assistant juridique expert de LegalBridge. Analyse le contrat fourni et produis un rapport structuré avec les sections suivantes : contexte du document, points signalés avec leur niveau de risque (faible, moyen, élevé), risques juridiques, recommandations. Sépare chaque section et chaque paragraphe par une ligne vide complète, sans retours à la ligne isolés.`

// Service generates contract analyses.
//
// Go Pattern: The client is injected at construction and scoped to the
// process lifetime — no package-level API client, no ambient global state.
type Service struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// New creates an analysis service. An empty apiKey yields an unconfigured
// service: IsConfigured reports false and Analyze fails fast.
func New(apiKey, model string, maxTokens int, temperature float32) *Service {
	s := &Service{
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
	if apiKey != "" {
		cfg := openai.DefaultConfig(apiKey)
		// Go Pattern: Always configure timeouts on HTTP clients.
		// LLMs can be slow, but not infinitely slow.
		cfg.HTTPClient = &http.Client{Timeout: 120 * time.Second}
		s.client = openai.NewClientWithConfig(cfg)
	}
	return s
}

// IsConfigured reports whether an OpenAI API key was provided.
func (s *Service) IsConfigured() bool {
	return s.client != nil
}

// Result holds the generated analysis.
type Result struct {
	Raw     string // Model output as received
	Cleaned string // Raw after newline cleanup, see Clean
}

// Analyze sends the extracted contract text to OpenAI and returns the
// generated analysis.
func (s *Service) Analyze(ctx context.Context, text string) (*Result, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI API key not configured; set OPENAI_API_KEY")
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text to analyze")
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from model")
	}

	raw := resp.Choices[0].Message.Content
	return &Result{Raw: raw, Cleaned: Clean(raw)}, nil
}

// blankRuns matches runs of three or more newlines (one or more blank lines).
var blankRuns = regexp.MustCompile(`\n{3,}`)

// Clean normalizes model output: carriage returns dropped, runs of repeated
// blank lines collapsed to a single blank line, surrounding whitespace
// trimmed. Applying Clean twice yields the same string as applying it once.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// pointStart locates the "1. ", "2. ", ... markers of a numbered list.
var pointStart = regexp.MustCompile(`(?:^|\s)\d+\.\s+`)

// SplitPoints decomposes an analysis into its numbered points: newlines are
// flattened to spaces, then the text is split at each "<number>. " marker.
// Each point runs until the next marker or the end of the string, with the
// number prefix stripped. Returns nil when the text contains no numbered list.
func SplitPoints(text string) []string {
	flat := strings.Join(strings.Fields(text), " ")

	locs := pointStart.FindAllStringIndex(flat, -1)
	if len(locs) == 0 {
		return nil
	}

	points := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(flat)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		point := strings.TrimSpace(flat[loc[1]:end])
		if point != "" {
			points = append(points, point)
		}
	}
	return points
}
