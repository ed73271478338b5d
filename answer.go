package cdpdoc

import "context"

// Answer is the final response for one chat turn.
type Answer struct {
	// Text is the user-facing answer.
	Text string `json:"text"`

	// Sources lists the distinct URLs of documents the answer was lifted
	// from, in first-use order. Empty for out-of-scope and not-found
	// answers.
	Sources []string `json:"sources,omitempty"`
}

// Synthesizer composes the user-facing answer from retrieval output.
// Synthesis is extractive: answer text is lifted from the passages, never
// generated.
type Synthesizer interface {
	// Synthesize builds the answer for a query. A NoMatch classification
	// yields the fixed out-of-scope response; an empty passage list yields
	// the fixed not-found response; otherwise passages are stitched in
	// score order within the answer length budget.
	Synthesize(query string, c *Classification, passages []ScoredPassage) *Answer
}

// Rewriter optionally polishes an extractive answer without changing its
// sources. Rewriting is best-effort: callers fall back to the extractive
// text on any error.
type Rewriter interface {
	Rewrite(ctx context.Context, query string, answer *Answer, passages []ScoredPassage) (string, error)
}

// Answerer is the single operation exposed to chat surfaces. Each call is
// an independent turn; no state carries across calls.
type Answerer interface {
	// AnswerQuery classifies, retrieves, and synthesizes an answer for one
	// raw query string. Returns EINVALID for an empty query and
	// EUNAVAILABLE if no index has been built.
	AnswerQuery(ctx context.Context, query string) (*Answer, error)
}
