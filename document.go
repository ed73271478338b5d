package cdpdoc

import (
	"context"
	"strings"
	"time"
)

// Document represents one crawled documentation page in canonical form:
// UTF-8 text with markup already stripped, tagged with the CDP it came from.
// Documents are immutable once stored and deduplicated by (CDPID, URL).
type Document struct {
	ID          string    `json:"id"`
	CDPID       string    `json:"cdpId"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
// Returns EEMPTYDOC if the document carries no extractable text, since an
// empty passage poisons similarity scoring.
func (d *Document) Validate() error {
	if d.CDPID == "" {
		return Errorf(EINVALID, "document CDP ID required")
	}
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if strings.TrimSpace(d.Text) == "" {
		return Errorf(EEMPTYDOC, "document %q has no extractable text", d.URL)
	}
	return nil
}

// PageStore persists canonical documents keyed by (CDPID, URL).
type PageStore interface {
	// Put inserts the document, or overwrites the record stored under
	// (CDPID, URL); a re-fetch replaces, never duplicates, and keeps the
	// original insertion position. It reports whether the stored content
	// changed so callers can skip re-chunking unchanged pages on re-crawl.
	// Returns EEMPTYDOC if the document has no extractable text.
	Put(ctx context.Context, doc *Document) (changed bool, err error)

	// Documents retrieves documents matching the filter, in insertion
	// order within each CDP.
	Documents(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// CountDocuments returns the number of stored documents for a CDP,
	// or for all CDPs when cdpID is empty.
	CountDocuments(ctx context.Context, cdpID string) (int, error)
}

// DocumentFilter represents a filter for PageStore.Documents.
type DocumentFilter struct {
	ID    *string `json:"id"`
	CDPID *string `json:"cdpId"`
	URL   *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DocumentSource yields canonical documents for ingestion into a PageStore.
// Implementations hide where pages come from (live crawl, JSON corpus dump).
type DocumentSource interface {
	// Documents invokes fn for each document in source order. It stops and
	// returns fn's error if fn fails, or ctx.Err() on cancellation.
	Documents(ctx context.Context, fn func(*Document) error) error
}

// DocumentWriter exports canonical documents, one corpus unit per CDP.
type DocumentWriter interface {
	// WriteDocuments writes a CDP's documents as a single corpus unit,
	// replacing any previous export for that CDP.
	WriteDocuments(ctx context.Context, cdpID string, docs []*Document) error
}
