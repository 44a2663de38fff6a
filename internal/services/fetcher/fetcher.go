// Package fetcher downloads PDF documents for analysis.
//
// A single bounded-timeout attempt per request: no retries, failures come
// back as typed errors so the HTTP layer can map each case to its in-band
// response message.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrorKind classifies fetch failures.
type ErrorKind string

const (
	KindTimeout      ErrorKind = "timeout"
	KindDownload     ErrorKind = "download"
	KindEmptyPayload ErrorKind = "empty_payload"
)

// Error is a typed fetch failure.
type Error struct {
	Kind ErrorKind
	URL  string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTimeout:
		return fmt.Sprintf("fetch timed out for %s: %v", e.URL, e.Err)
	case KindEmptyPayload:
		return fmt.Sprintf("fetched empty payload from %s", e.URL)
	default:
		if e.Err != nil {
			return fmt.Sprintf("download failed for %s: %v", e.URL, e.Err)
		}
		return fmt.Sprintf("download failed for %s", e.URL)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Service performs outbound document fetches.
type Service struct {
	client *resty.Client
}

// New creates a fetcher with the given per-request timeout.
func New(timeout time.Duration) *Service {
	return &Service{
		// Go Pattern: Always configure timeouts on HTTP clients.
		// The default client has none — a dead host would hang the request.
		client: resty.New().SetTimeout(timeout),
	}
}

// Fetch downloads the document at rawURL and returns its bytes.
// Protocol-relative URLs ("//host/doc.pdf") are rewritten to https first.
func (s *Service) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	url := normalizeURL(rawURL)

	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		if isTimeout(err) {
			return nil, &Error{Kind: KindTimeout, URL: url, Err: err}
		}
		return nil, &Error{Kind: KindDownload, URL: url, Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &Error{
			Kind: KindDownload,
			URL:  url,
			Err:  fmt.Errorf("unexpected status %d", resp.StatusCode()),
		}
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, &Error{Kind: KindEmptyPayload, URL: url}
	}

	return body, nil
}

// normalizeURL prefixes protocol-relative URLs with https.
// The LegalBridge front-end occasionally hands us "//cdn.example.com/x.pdf".
func normalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if strings.HasPrefix(rawURL, "//") {
		return "https:" + rawURL
	}
	return rawURL
}

// isTimeout reports whether err is a deadline or network timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
