package mock

import (
	"context"

	"github.com/cdpdoc/cdpdoc"
)

var _ cdpdoc.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of cdpdoc.PageStore.
type PageStore struct {
	PutFn            func(ctx context.Context, doc *cdpdoc.Document) (bool, error)
	DocumentsFn      func(ctx context.Context, filter cdpdoc.DocumentFilter) ([]*cdpdoc.Document, error)
	CountDocumentsFn func(ctx context.Context, cdpID string) (int, error)
}

func (s *PageStore) Put(ctx context.Context, doc *cdpdoc.Document) (bool, error) {
	return s.PutFn(ctx, doc)
}

func (s *PageStore) Documents(ctx context.Context, filter cdpdoc.DocumentFilter) ([]*cdpdoc.Document, error) {
	return s.DocumentsFn(ctx, filter)
}

func (s *PageStore) CountDocuments(ctx context.Context, cdpID string) (int, error) {
	return s.CountDocumentsFn(ctx, cdpID)
}

var _ cdpdoc.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of cdpdoc.DocumentSource.
type DocumentSource struct {
	DocumentsFn func(ctx context.Context, fn func(*cdpdoc.Document) error) error
}

func (s *DocumentSource) Documents(ctx context.Context, fn func(*cdpdoc.Document) error) error {
	return s.DocumentsFn(ctx, fn)
}

var _ cdpdoc.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of cdpdoc.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentsFn func(ctx context.Context, cdpID string, docs []*cdpdoc.Document) error
}

func (w *DocumentWriter) WriteDocuments(ctx context.Context, cdpID string, docs []*cdpdoc.Document) error {
	return w.WriteDocumentsFn(ctx, cdpID, docs)
}
