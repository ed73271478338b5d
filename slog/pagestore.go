package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/cdpdoc/cdpdoc"
)

// Ensure LoggingPageStore implements cdpdoc.PageStore.
var _ cdpdoc.PageStore = (*LoggingPageStore)(nil)

// LoggingPageStore wraps a PageStore with put logging. Empty-document
// rejections log at warn level, so pages a crawl skips stay visible.
type LoggingPageStore struct {
	next   cdpdoc.PageStore
	logger *slog.Logger
}

// NewLoggingPageStore creates a new LoggingPageStore.
func NewLoggingPageStore(next cdpdoc.PageStore, logger *slog.Logger) *LoggingPageStore {
	return &LoggingPageStore{next: next, logger: logger}
}

// Put delegates to the wrapped store and logs the outcome.
func (s *LoggingPageStore) Put(ctx context.Context, doc *cdpdoc.Document) (changed bool, err error) {
	defer func(begin time.Time) {
		if cdpdoc.ErrorCode(err) == cdpdoc.EEMPTYDOC {
			s.logger.Warn("empty document skipped",
				"cdp", doc.CDPID,
				"url", doc.URL,
			)
			return
		}
		s.logger.Info("document put",
			"cdp", doc.CDPID,
			"url", doc.URL,
			"changed", changed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Put(ctx, doc)
}

// Documents delegates to the wrapped store.
func (s *LoggingPageStore) Documents(ctx context.Context, filter cdpdoc.DocumentFilter) ([]*cdpdoc.Document, error) {
	return s.next.Documents(ctx, filter)
}

// CountDocuments delegates to the wrapped store.
func (s *LoggingPageStore) CountDocuments(ctx context.Context, cdpID string) (int, error) {
	return s.next.CountDocuments(ctx, cdpID)
}
