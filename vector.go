package cdpdoc

// Vectorizer converts text to fixed-width vectors. Implementations are
// frozen once fitted to a corpus: the same text always yields the same
// vector, so an index can be rebuilt deterministically from its PageStore.
type Vectorizer interface {
	// Vectorize returns the L2-normalized vector for text. Text that yields
	// no usable terms (stop-words only, non-text bytes) produces the zero
	// vector rather than an error.
	Vectorize(text string) []float32

	// Dimension returns the vector width.
	Dimension() int

	// Truncate returns text cut to at most maxTokens tokens under the same
	// tokenization Vectorize uses. Text already under the limit is returned
	// unchanged, so truncation never alters the outcome for short inputs.
	Truncate(text string, maxTokens int) string
}
