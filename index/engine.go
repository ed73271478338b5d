package index

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/cdpdoc/cdpdoc"
)

// Compile-time checks that Engine implements the domain interfaces.
var (
	_ cdpdoc.Classifier = (*Engine)(nil)
	_ cdpdoc.Retriever  = (*Engine)(nil)
)

// Engine answers scope classification and passage retrieval against the
// most recently published snapshot. Publication is an atomic pointer swap,
// so in-flight queries keep reading the snapshot they started with.
type Engine struct {
	params cdpdoc.Params
	snap   atomic.Pointer[Snapshot]
}

// NewEngine creates an Engine with no published snapshot. Classify and
// Retrieve return EUNAVAILABLE until Publish is called.
func NewEngine(params cdpdoc.Params) *Engine {
	return &Engine{params: params.Normalize()}
}

// Publish makes snap the served index.
func (e *Engine) Publish(snap *Snapshot) {
	e.snap.Store(snap)
}

// Current returns the published snapshot.
// Returns EUNAVAILABLE if no build has been published.
func (e *Engine) Current() (*Snapshot, error) {
	snap := e.snap.Load()
	if snap == nil {
		return nil, cdpdoc.Errorf(cdpdoc.EUNAVAILABLE, "documentation index has not been built yet")
	}
	return snap, nil
}

// Classify gates query for scope. The best global similarity below the
// scope threshold means NoMatch; otherwise the candidate set holds every
// CDP whose best score is within the tie margin of the top one, best first.
func (e *Engine) Classify(ctx context.Context, query string) (*cdpdoc.Classification, error) {
	snap, err := e.Current()
	if err != nil {
		return nil, err
	}

	vec := e.queryVector(snap, query)
	best := snap.Global().Best(vec)
	if best < e.params.ScopeThreshold {
		return &cdpdoc.Classification{NoMatch: true, Confidence: best}, nil
	}

	type corpusScore struct {
		id    string
		score float64
	}
	scores := make([]corpusScore, 0, len(snap.CDPIDs()))
	top := 0.0
	for _, id := range snap.CDPIDs() {
		corpus, _ := snap.Corpus(id)
		s := corpus.Best(vec)
		scores = append(scores, corpusScore{id: id, score: s})
		if s > top {
			top = s
		}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].id < scores[j].id
	})

	var ids []string
	for _, cs := range scores {
		if cs.score >= top-e.params.TieMargin {
			ids = append(ids, cs.id)
		}
	}
	return &cdpdoc.Classification{CDPIDs: ids, Confidence: best}, nil
}

// Retrieve scans the requested corpora (all of them when cdpIDs is empty),
// drops scores below the retrieval minimum, and returns the top k results
// under the ScoredPassage ordering.
func (e *Engine) Retrieve(ctx context.Context, query string, cdpIDs []string, k int) ([]cdpdoc.ScoredPassage, error) {
	snap, err := e.Current()
	if err != nil {
		return nil, err
	}
	if k <= 0 {
		k = e.params.K
	}
	if len(cdpIDs) == 0 {
		cdpIDs = snap.CDPIDs()
	}

	vec := e.queryVector(snap, query)
	var merged []cdpdoc.ScoredPassage
	seen := make(map[string]struct{}, len(cdpIDs))
	for _, id := range cdpIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		corpus, ok := snap.Corpus(id)
		if !ok {
			continue
		}
		merged = append(merged, corpus.Search(vec, e.params.MinRetrievalScore)...)
	}
	cdpdoc.SortScoredPassages(merged)
	if len(merged) > k {
		merged = merged[:k]
	}
	return merged, nil
}

// queryVector normalizes, truncates, and vectorizes a query with the
// snapshot's frozen vectorizer. Truncation happens before vectorization so
// cost stays bounded for arbitrarily long queries.
func (e *Engine) queryVector(snap *Snapshot, query string) []float32 {
	q := strings.Join(strings.Fields(query), " ")
	q = snap.Vectorizer().Truncate(q, e.params.MaxQueryTokens)
	return snap.Vectorizer().Vectorize(q)
}
