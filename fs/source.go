// Package fs reads and writes JSON corpus files: one <cdp>_docs.json per
// CDP holding an array of crawled pages. The file shape is shared with the
// standalone scrapers, so corpora can move between tools as plain files.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cdpdoc/cdpdoc"
)

// corpusSuffix names corpus files: <cdp>_docs.json.
const corpusSuffix = "_docs.json"

// record is the on-disk JSON shape of one crawled page. Corpus files may
// carry extra keys (keywords, categories); they are ignored on read.
type record struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Platform  string `json:"platform"`
	Content   string `json:"content"`
	FetchedAt string `json:"fetched_at,omitempty"`
}

// Compile-time interface verification.
var _ cdpdoc.DocumentSource = (*Source)(nil)

// Source yields documents from a directory of corpus files.
type Source struct {
	dir string
}

// NewSource creates a Source reading from dir.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Documents invokes fn for every document in the corpus directory, walking
// files in lexical order and preserving array order within each file.
// Returns EINVALID naming the offending file if one is not a JSON array of
// page records.
func (s *Source) Documents(ctx context.Context, fn func(*cdpdoc.Document) error) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), corpusSuffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.readFile(ctx, name, fn); err != nil {
			return err
		}
	}

	return nil
}

func (s *Source) readFile(ctx context.Context, name string, fn func(*cdpdoc.Document) error) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return cdpdoc.Errorf(cdpdoc.EINVALID, "corpus file %q is not a JSON array of pages", name)
	}

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}

		doc := &cdpdoc.Document{
			CDPID:    rec.Platform,
			URL:      rec.URL,
			Title:    rec.Title,
			Text:     rec.Content,
			Position: i,
		}
		// Older corpus files omit the platform field; the filename
		// prefix carries the same ID.
		if doc.CDPID == "" {
			doc.CDPID = strings.TrimSuffix(name, corpusSuffix)
		}
		if rec.FetchedAt != "" {
			fetchedAt, err := time.Parse(time.RFC3339, rec.FetchedAt)
			if err != nil {
				return cdpdoc.Errorf(cdpdoc.EINVALID, "corpus file %q has a malformed fetched_at timestamp", name)
			}
			doc.FetchedAt = fetchedAt
		}

		if err := fn(doc); err != nil {
			return err
		}
	}

	return nil
}
