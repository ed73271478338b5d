package cdpdoc

import "context"

// Fetcher retrieves raw HTML from URLs. The documentation sites this system
// targets are server-rendered, so plain HTTP fetching suffices.
type Fetcher interface {
	// Fetch returns the HTML body at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
