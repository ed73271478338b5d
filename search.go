package cdpdoc

import (
	"context"
	"sort"
)

// Classification is the scope decision for one query: either NoMatch
// (off-topic for every corpus) or a candidate set of CDPs to search.
type Classification struct {
	// NoMatch reports that the query is out of scope for all corpora.
	NoMatch bool `json:"noMatch"`

	// CDPIDs holds the candidate corpora, best score first. Empty when
	// NoMatch is true.
	CDPIDs []string `json:"cdpIds,omitempty"`

	// Confidence is the best similarity observed against the global index.
	Confidence float64 `json:"confidence"`
}

// Classifier decides whether a query is in scope for at least one CDP
// corpus and, if so, which corpora it plausibly targets.
type Classifier interface {
	// Classify gates the query for topical scope. Returns EUNAVAILABLE if
	// called before any successful index build.
	Classify(ctx context.Context, query string) (*Classification, error)
}

// ScoredPassage pairs a passage with its cosine similarity to a query.
// Scores fall in [0, 1].
type ScoredPassage struct {
	Passage *Passage `json:"passage"`
	Score   float64  `json:"score"`
}

// Retriever returns the best-matching passages for a query from a set of
// CDP corpora.
type Retriever interface {
	// Retrieve returns at most k passages scoring at least the configured
	// minimum, ordered by SortScoredPassages. An empty result is the normal
	// "not found in docs" outcome, not an error. Returns EUNAVAILABLE if
	// called before any successful index build.
	Retrieve(ctx context.Context, query string, cdpIDs []string, k int) ([]ScoredPassage, error)
}

// SortScoredPassages orders results by score descending, breaking ties by
// smaller chunk index, then lexical URL. The ordering is total for passages
// of a well-formed index, which keeps retrieval output deterministic.
func SortScoredPassages(results []ScoredPassage) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Passage.ChunkIndex != b.Passage.ChunkIndex {
			return a.Passage.ChunkIndex < b.Passage.ChunkIndex
		}
		return a.Passage.URL < b.Passage.URL
	})
}
