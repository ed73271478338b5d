// Package http fetches pages and sitemaps from CDP documentation sites.
// The targeted sites are server-rendered, so plain HTTP requests suffice.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cdpdoc/cdpdoc"
)

// DefaultFetchTimeout bounds a single page request.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the crawler to documentation sites.
const DefaultUserAgent = "cdpdoc/1.0 (documentation retrieval; +https://github.com/cdpdoc/cdpdoc)"

// StatusError reports a non-200 response. Callers branch on Status to
// decide whether a fetch is worth retrying.
type StatusError struct {
	Status int
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.Status, e.URL)
}

// HTTPStatus returns the response status code.
func (e *StatusError) HTTPStatus() int {
	return e.Status
}

// Compile-time interface verification.
var _ cdpdoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML over plain HTTP. It does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates an HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch returns the HTML body at url. Non-200 responses return a
// *StatusError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Status: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. A no-op for the plain HTTP client.
func (f *Fetcher) Close() error {
	return nil
}
