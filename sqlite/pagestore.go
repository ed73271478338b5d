package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ cdpdoc.PageStore = (*PageStore)(nil)

// PageStore implements cdpdoc.PageStore using SQLite. Documents are keyed
// by (cdp_id, url): a re-fetch overwrites the stored content but keeps the
// document's identity and insertion position, so index rebuilds see pages
// in the order the crawler first found them.
type PageStore struct {
	db *DB
}

// NewPageStore creates a new PageStore.
func NewPageStore(db *DB) *PageStore {
	return &PageStore{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// Put inserts the document or overwrites the record stored under its
// (CDPID, URL) key. It reports whether the stored content changed, so a
// re-crawl of unchanged pages can skip re-chunking. A document with no
// extractable text is rejected with EEMPTYDOC and never stored.
func (s *PageStore) Put(ctx context.Context, doc *cdpdoc.Document) (bool, error) {
	if err := doc.Validate(); err != nil {
		return false, err
	}

	doc.ContentHash = hashContent(doc.Text)
	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = time.Now().UTC()
	}

	var existingID, existingHash string
	var existingPosition int
	err := s.db.QueryRowContext(ctx, `
		SELECT id, content_hash, position
		FROM documents
		WHERE cdp_id = ? AND url = ?
	`, doc.CDPID, doc.URL).Scan(&existingID, &existingHash, &existingPosition)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		doc.ID = uuid.New().String()
		doc.Position, err = s.nextPosition(ctx, doc.CDPID)
		if err != nil {
			return false, err
		}

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO documents (id, cdp_id, url, title, content, content_hash, position, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, doc.ID, doc.CDPID, doc.URL, doc.Title, doc.Text, doc.ContentHash,
			doc.Position, doc.FetchedAt.Format(time.RFC3339))
		if err != nil {
			return false, err
		}
		return true, nil

	case err != nil:
		return false, err
	}

	// Replace, never duplicate: identity and position survive the re-fetch.
	doc.ID = existingID
	doc.Position = existingPosition

	_, err = s.db.ExecContext(ctx, `
		UPDATE documents
		SET title = ?, content = ?, content_hash = ?, fetched_at = ?
		WHERE id = ?
	`, doc.Title, doc.Text, doc.ContentHash, doc.FetchedAt.Format(time.RFC3339), doc.ID)
	if err != nil {
		return false, err
	}

	return doc.ContentHash != existingHash, nil
}

// nextPosition returns the insertion position for a new document of a CDP.
func (s *PageStore) nextPosition(ctx context.Context, cdpID string) (int, error) {
	var position int
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(position) + 1, 0)
		FROM documents
		WHERE cdp_id = ?
	`, cdpID).Scan(&position)
	return position, err
}

// Documents retrieves documents matching the filter, ordered by CDP then
// insertion position within each CDP.
func (s *PageStore) Documents(ctx context.Context, filter cdpdoc.DocumentFilter) ([]*cdpdoc.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, cdp_id, url, title, content, content_hash, position, fetched_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CDPID != nil {
		query.WriteString(" AND cdp_id = ?")
		args = append(args, *filter.CDPID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY cdp_id ASC, position ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*cdpdoc.Document
	for rows.Next() {
		var doc cdpdoc.Document
		var fetchedAt string

		if err := rows.Scan(&doc.ID, &doc.CDPID, &doc.URL, &doc.Title,
			&doc.Text, &doc.ContentHash, &doc.Position, &fetchedAt); err != nil {
			return nil, err
		}

		doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// appendPagination appends LIMIT and OFFSET clauses when the values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// CountDocuments returns the number of stored documents for a CDP, or for
// all CDPs when cdpID is empty.
func (s *PageStore) CountDocuments(ctx context.Context, cdpID string) (int, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT COUNT(*) FROM documents")
	if cdpID != "" {
		query.WriteString(" WHERE cdp_id = ?")
		args = append(args, cdpID)
	}

	var count int
	err := s.db.QueryRowContext(ctx, query.String(), args...).Scan(&count)
	return count, err
}
