// Package index builds and serves the per-CDP vector indexes. A build
// produces an immutable Snapshot; the Engine publishes snapshots atomically
// and answers scope classification and passage retrieval against the
// current one, so queries arriving mid-rebuild see the old complete index.
package index

import (
	"sort"
	"time"

	"github.com/cdpdoc/cdpdoc"
)

// Snapshot is one complete build artifact: the frozen vectorizer, one
// corpus per CDP, and the global corpus used only for scope detection.
// Snapshots are immutable and safe for concurrent reads.
type Snapshot struct {
	vectorizer cdpdoc.Vectorizer
	byCDP      map[string]*CorpusIndex
	global     *CorpusIndex
	builtAt    time.Time
	documents  int
}

// Vectorizer returns the vectorizer frozen for this snapshot's lifetime.
func (s *Snapshot) Vectorizer() cdpdoc.Vectorizer { return s.vectorizer }

// Corpus returns the index for one CDP.
func (s *Snapshot) Corpus(cdpID string) (*CorpusIndex, bool) {
	c, ok := s.byCDP[cdpID]
	return c, ok
}

// Global returns the union corpus used for scope gating.
func (s *Snapshot) Global() *CorpusIndex { return s.global }

// CDPIDs returns the indexed CDP ids in lexical order.
func (s *Snapshot) CDPIDs() []string {
	ids := make([]string, 0, len(s.byCDP))
	for id := range s.byCDP {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Passage resolves a passage identifier against the global corpus.
func (s *Snapshot) Passage(id string) (*cdpdoc.Passage, bool) {
	return s.global.Passage(id)
}

// BuiltAt returns when the build completed.
func (s *Snapshot) BuiltAt() time.Time { return s.builtAt }

// DocumentCount returns the number of documents the snapshot was built from.
func (s *Snapshot) DocumentCount() int { return s.documents }

// PassageCount returns the number of indexed passages.
func (s *Snapshot) PassageCount() int { return s.global.Len() }
