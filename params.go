package cdpdoc

// Params holds the tuning values the engine accepts rather than hardcodes.
// Zero values mean "use the default"; Normalize resolves them.
type Params struct {
	// MaxChunkChars bounds passage length during chunking.
	MaxChunkChars int `yaml:"max_chunk_chars"`

	// MinChunkChars is the length under which a document yields exactly
	// one passage.
	MinChunkChars int `yaml:"min_chunk_chars"`

	// OverlapSentences is the number of trailing sentences repeated at the
	// start of the next passage.
	OverlapSentences int `yaml:"overlap_sentences"`

	// ScopeThreshold is the minimum best global similarity for a query to
	// count as in scope.
	ScopeThreshold float64 `yaml:"scope_threshold"`

	// TieMargin is how close to the top per-CDP score another CDP must be
	// to join the candidate set.
	TieMargin float64 `yaml:"tie_margin"`

	// MinRetrievalScore filters passages below this similarity out of
	// retrieval results.
	MinRetrievalScore float64 `yaml:"min_retrieval_score"`

	// K is the maximum number of passages retrieval returns.
	K int `yaml:"k"`

	// MaxQueryTokens bounds query length before vectorization.
	MaxQueryTokens int `yaml:"max_query_tokens"`

	// MaxAnswerChars bounds the stitched extractive answer.
	MaxAnswerChars int `yaml:"max_answer_chars"`

	// MaxFeatures caps the vectorizer vocabulary size.
	MaxFeatures int `yaml:"max_features"`
}

// DefaultParams returns the shipped tuning values.
func DefaultParams() Params {
	return Params{
		MaxChunkChars:     1000,
		MinChunkChars:     200,
		OverlapSentences:  2,
		ScopeThreshold:    0.12,
		TieMargin:         0.08,
		MinRetrievalScore: 0.08,
		K:                 5,
		MaxQueryTokens:    256,
		MaxAnswerChars:    1200,
		MaxFeatures:       10000,
	}
}

// Normalize returns a copy of p with zero values replaced by defaults.
func (p Params) Normalize() Params {
	def := DefaultParams()
	if p.MaxChunkChars == 0 {
		p.MaxChunkChars = def.MaxChunkChars
	}
	if p.MinChunkChars == 0 {
		p.MinChunkChars = def.MinChunkChars
	}
	if p.OverlapSentences == 0 {
		p.OverlapSentences = def.OverlapSentences
	}
	if p.ScopeThreshold == 0 {
		p.ScopeThreshold = def.ScopeThreshold
	}
	if p.TieMargin == 0 {
		p.TieMargin = def.TieMargin
	}
	if p.MinRetrievalScore == 0 {
		p.MinRetrievalScore = def.MinRetrievalScore
	}
	if p.K == 0 {
		p.K = def.K
	}
	if p.MaxQueryTokens == 0 {
		p.MaxQueryTokens = def.MaxQueryTokens
	}
	if p.MaxAnswerChars == 0 {
		p.MaxAnswerChars = def.MaxAnswerChars
	}
	if p.MaxFeatures == 0 {
		p.MaxFeatures = def.MaxFeatures
	}
	return p
}

// Validate returns an error if the params contain unusable values.
func (p Params) Validate() error {
	if p.MaxChunkChars <= 0 {
		return Errorf(EINVALID, "max_chunk_chars must be positive")
	}
	if p.MinChunkChars <= 0 || p.MinChunkChars > p.MaxChunkChars {
		return Errorf(EINVALID, "min_chunk_chars must be in (0, max_chunk_chars]")
	}
	if p.OverlapSentences < 0 {
		return Errorf(EINVALID, "overlap_sentences must not be negative")
	}
	if p.ScopeThreshold < 0 || p.ScopeThreshold > 1 {
		return Errorf(EINVALID, "scope_threshold must be in [0, 1]")
	}
	if p.TieMargin < 0 || p.TieMargin > 1 {
		return Errorf(EINVALID, "tie_margin must be in [0, 1]")
	}
	if p.MinRetrievalScore < 0 || p.MinRetrievalScore > 1 {
		return Errorf(EINVALID, "min_retrieval_score must be in [0, 1]")
	}
	if p.K <= 0 {
		return Errorf(EINVALID, "k must be positive")
	}
	if p.MaxQueryTokens <= 0 {
		return Errorf(EINVALID, "max_query_tokens must be positive")
	}
	if p.MaxAnswerChars <= 0 {
		return Errorf(EINVALID, "max_answer_chars must be positive")
	}
	if p.MaxFeatures <= 0 {
		return Errorf(EINVALID, "max_features must be positive")
	}
	return nil
}
