package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cdpdoc/cdpdoc"
)

// Compile-time interface verification.
var _ cdpdoc.DocumentWriter = (*Writer)(nil)

// Writer exports documents to corpus files with atomic replace semantics:
// each CDP's pages are written to a temporary file in the target directory
// and renamed over <cdp>_docs.json, so readers never see a partial corpus.
type Writer struct {
	dir string
}

// NewWriter creates a Writer exporting to dir. The directory is created on
// first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteDocuments writes a CDP's documents as <cdpID>_docs.json, replacing
// any previous export for that CDP.
func (w *Writer) WriteDocuments(ctx context.Context, cdpID string, docs []*cdpdoc.Document) error {
	if cdpID == "" {
		return cdpdoc.Errorf(cdpdoc.EINVALID, "cdp ID required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	records := make([]record, 0, len(docs))
	for _, doc := range docs {
		rec := record{
			URL:      doc.URL,
			Title:    doc.Title,
			Platform: doc.CDPID,
			Content:  doc.Text,
		}
		if !doc.FetchedAt.IsZero() {
			rec.FetchedAt = doc.FetchedAt.UTC().Format(time.RFC3339)
		}
		records = append(records, rec)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	// The temp file lives in the target directory so the rename never
	// crosses filesystems.
	tmp, err := os.CreateTemp(w.dir, cdpID+"_docs-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	finalPath := filepath.Join(w.dir, cdpID+corpusSuffix)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return nil
}
