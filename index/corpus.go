package index

import "github.com/cdpdoc/cdpdoc"

// CorpusIndex holds one corpus's passages with their vectors, in document
// position then chunk order. Immutable once built; lookups and scans need
// no locking.
type CorpusIndex struct {
	cdpID    string
	passages []cdpdoc.Passage
	byID     map[string]int
}

func newCorpusIndex(cdpID string, passages []cdpdoc.Passage) *CorpusIndex {
	byID := make(map[string]int, len(passages))
	for i, p := range passages {
		byID[p.ID] = i
	}
	return &CorpusIndex{cdpID: cdpID, passages: passages, byID: byID}
}

// CDPID returns the corpus owner; empty for the global corpus.
func (c *CorpusIndex) CDPID() string { return c.cdpID }

// Len returns the number of indexed passages.
func (c *CorpusIndex) Len() int { return len(c.passages) }

// Passage returns the passage stored under id.
func (c *CorpusIndex) Passage(id string) (*cdpdoc.Passage, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.passages[i], true
}

// Best returns the highest similarity between query and any passage in the
// corpus; zero for an empty corpus or zero query vector.
func (c *CorpusIndex) Best(query []float32) float64 {
	best := 0.0
	for i := range c.passages {
		if s := similarity(query, c.passages[i].Vector); s > best {
			best = s
		}
	}
	return best
}

// Search scans the full corpus and returns every passage scoring at least
// minScore, in corpus order. Callers merge and rank across corpora.
func (c *CorpusIndex) Search(query []float32, minScore float64) []cdpdoc.ScoredPassage {
	var results []cdpdoc.ScoredPassage
	for i := range c.passages {
		s := similarity(query, c.passages[i].Vector)
		if s < minScore {
			continue
		}
		results = append(results, cdpdoc.ScoredPassage{Passage: &c.passages[i], Score: s})
	}
	return results
}

// similarity is the dot product of two L2-normalized vectors, which equals
// their cosine similarity, clamped to [0, 1] against rounding drift.
func similarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}
