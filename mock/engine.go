package mock

import (
	"context"

	"github.com/cdpdoc/cdpdoc"
)

var _ cdpdoc.Chunker = (*Chunker)(nil)

// Chunker is a mock implementation of cdpdoc.Chunker.
type Chunker struct {
	ChunkFn func(doc *cdpdoc.Document) []cdpdoc.Passage
}

func (c *Chunker) Chunk(doc *cdpdoc.Document) []cdpdoc.Passage {
	return c.ChunkFn(doc)
}

var _ cdpdoc.Vectorizer = (*Vectorizer)(nil)

// Vectorizer is a mock implementation of cdpdoc.Vectorizer.
type Vectorizer struct {
	VectorizeFn func(text string) []float32
	DimensionFn func() int
	TruncateFn  func(text string, maxTokens int) string
}

func (v *Vectorizer) Vectorize(text string) []float32 {
	return v.VectorizeFn(text)
}

func (v *Vectorizer) Dimension() int {
	return v.DimensionFn()
}

func (v *Vectorizer) Truncate(text string, maxTokens int) string {
	return v.TruncateFn(text, maxTokens)
}

var _ cdpdoc.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of cdpdoc.Classifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, query string) (*cdpdoc.Classification, error)
}

func (c *Classifier) Classify(ctx context.Context, query string) (*cdpdoc.Classification, error) {
	return c.ClassifyFn(ctx, query)
}

var _ cdpdoc.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of cdpdoc.Retriever.
type Retriever struct {
	RetrieveFn func(ctx context.Context, query string, cdpIDs []string, k int) ([]cdpdoc.ScoredPassage, error)
}

func (r *Retriever) Retrieve(ctx context.Context, query string, cdpIDs []string, k int) ([]cdpdoc.ScoredPassage, error) {
	return r.RetrieveFn(ctx, query, cdpIDs, k)
}

var _ cdpdoc.Synthesizer = (*Synthesizer)(nil)

// Synthesizer is a mock implementation of cdpdoc.Synthesizer.
type Synthesizer struct {
	SynthesizeFn func(query string, c *cdpdoc.Classification, passages []cdpdoc.ScoredPassage) *cdpdoc.Answer
}

func (s *Synthesizer) Synthesize(query string, c *cdpdoc.Classification, passages []cdpdoc.ScoredPassage) *cdpdoc.Answer {
	return s.SynthesizeFn(query, c, passages)
}

var _ cdpdoc.Rewriter = (*Rewriter)(nil)

// Rewriter is a mock implementation of cdpdoc.Rewriter.
type Rewriter struct {
	RewriteFn func(ctx context.Context, query string, answer *cdpdoc.Answer, passages []cdpdoc.ScoredPassage) (string, error)
}

func (r *Rewriter) Rewrite(ctx context.Context, query string, answer *cdpdoc.Answer, passages []cdpdoc.ScoredPassage) (string, error) {
	return r.RewriteFn(ctx, query, answer, passages)
}

var _ cdpdoc.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of cdpdoc.Answerer.
type Answerer struct {
	AnswerQueryFn func(ctx context.Context, query string) (*cdpdoc.Answer, error)
}

func (a *Answerer) AnswerQuery(ctx context.Context, query string) (*cdpdoc.Answer, error) {
	return a.AnswerQueryFn(ctx, query)
}
