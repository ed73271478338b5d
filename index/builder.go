package index

import (
	"context"
	"fmt"
	"time"

	"github.com/cdpdoc/cdpdoc"
	"golang.org/x/sync/errgroup"
)

// FitVectorizer is a vectorizer that can still be fitted to a corpus.
// After Fit it must behave as a frozen cdpdoc.Vectorizer.
type FitVectorizer interface {
	cdpdoc.Vectorizer
	Fit(corpus []string) error
}

// Builder assembles snapshots from a PageStore. A build is a batch,
// single-pass operation: chunk every document, fit the vectorizer in one
// sequential pass over all passage text, then vectorize per document in
// parallel. The PageStore is never mutated.
type Builder struct {
	Pages         cdpdoc.PageStore
	Chunker       cdpdoc.Chunker
	NewVectorizer func() FitVectorizer
	Concurrency   int
}

// Build produces a new Snapshot from the current PageStore contents.
// Returns EINVALID when the store holds nothing to index.
func (b *Builder) Build(ctx context.Context) (*Snapshot, error) {
	docs, err := b.Pages.Documents(ctx, cdpdoc.DocumentFilter{})
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	if len(docs) == 0 {
		return nil, cdpdoc.Errorf(cdpdoc.EINVALID, "page store holds no documents to index")
	}

	// Chunk in store order so vocabulary fitting sees a stable corpus.
	perDoc := make([][]cdpdoc.Passage, len(docs))
	var corpus []string
	for i, doc := range docs {
		perDoc[i] = b.Chunker.Chunk(doc)
		for _, p := range perDoc[i] {
			corpus = append(corpus, p.Text)
		}
	}

	vectorizer := b.NewVectorizer()
	if err := vectorizer.Fit(corpus); err != nil {
		return nil, fmt.Errorf("fit vectorizer: %w", err)
	}

	// Per-document vectorization writes into disjoint slices; the frozen
	// vectorizer is the only shared state.
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := range perDoc {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for j := range perDoc[i] {
				perDoc[i][j].Vector = vectorizer.Vectorize(perDoc[i][j].Text)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("vectorize passages: %w", err)
	}

	var global []cdpdoc.Passage
	grouped := make(map[string][]cdpdoc.Passage)
	for _, passages := range perDoc {
		for _, p := range passages {
			grouped[p.CDPID] = append(grouped[p.CDPID], p)
			global = append(global, p)
		}
	}
	byCDP := make(map[string]*CorpusIndex, len(grouped))
	for cdpID, passages := range grouped {
		byCDP[cdpID] = newCorpusIndex(cdpID, passages)
	}

	return &Snapshot{
		vectorizer: vectorizer,
		byCDP:      byCDP,
		global:     newCorpusIndex("", global),
		builtAt:    time.Now(),
		documents:  len(docs),
	}, nil
}
