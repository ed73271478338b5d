// Package tfidf implements a deterministic TF-IDF vectorizer. A vectorizer
// is fitted once per index build from the full passage corpus and frozen:
// vocabulary assignment is lexically stable, so rebuilding from the same
// corpus reproduces identical vectors.
package tfidf

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/cdpdoc/cdpdoc"
)

// Compile-time check that Vectorizer implements the domain interface.
var _ cdpdoc.Vectorizer = (*Vectorizer)(nil)

const defaultMaxFeatures = 10000

var tokenPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// Vectorizer converts text into L2-normalized TF-IDF vectors over a
// vocabulary of unigrams and bigrams.
type Vectorizer struct {
	maxFeatures int
	vocabulary  map[string]int
	idf         []float64
	dimension   int
	fitted      bool
	stopwords   map[string]struct{}
}

// Option configures a Vectorizer.
type Option func(*Vectorizer)

// WithMaxFeatures caps the vocabulary at the n most frequent terms.
func WithMaxFeatures(n int) Option {
	return func(v *Vectorizer) {
		v.maxFeatures = n
	}
}

// New creates an unfitted Vectorizer.
func New(opts ...Option) *Vectorizer {
	v := &Vectorizer{
		maxFeatures: defaultMaxFeatures,
		vocabulary:  make(map[string]int),
		stopwords:   englishStopwords(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Fit builds the vocabulary and IDF table from the corpus. The pass is
// strictly sequential; once Fit returns, the vectorizer is safe for
// concurrent Vectorize calls.
func (v *Vectorizer) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return cdpdoc.Errorf(cdpdoc.EINVALID, "empty corpus for TF-IDF fit")
	}

	// Document frequency and corpus-wide term count per term.
	df := make(map[string]int)
	count := make(map[string]int)
	for _, text := range corpus {
		terms := v.terms(text)
		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			count[term]++
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if len(df) == 0 {
		return cdpdoc.Errorf(cdpdoc.EINVALID, "no indexable terms in corpus")
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	// Cap by corpus frequency, ties lexical, then assign indexes in lexical
	// order for stable vector layout.
	if len(terms) > v.maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if count[terms[i]] != count[terms[j]] {
				return count[terms[i]] > count[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.maxFeatures]
	}
	sort.Strings(terms)

	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	v.dimension = len(terms)
	v.fitted = true
	return nil
}

// Vectorize returns the L2-normalized TF-IDF vector for text. Text with no
// in-vocabulary terms yields the zero vector. Calling Vectorize before Fit
// returns nil.
func (v *Vectorizer) Vectorize(text string) []float32 {
	if !v.fitted {
		return nil
	}

	// Term frequency counts vocabulary hits only: appending
	// out-of-vocabulary tokens leaves the normalized vector unchanged.
	tf := make(map[int]int)
	total := 0
	for _, term := range v.terms(text) {
		if idx, ok := v.vocabulary[term]; ok {
			tf[idx]++
			total++
		}
	}
	vec := make([]float32, v.dimension)
	if total == 0 {
		return vec
	}

	// Accumulate in index order; map-order summation would let rebuilt
	// vectors drift in the last bit.
	idxs := make([]int, 0, len(tf))
	for idx := range tf {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)

	norm := 0.0
	weights := make([]float64, len(idxs))
	for i, idx := range idxs {
		w := float64(tf[idx]) / float64(total) * v.idf[idx]
		weights[i] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for i, idx := range idxs {
		vec[idx] = float32(weights[i] / norm)
	}
	return vec
}

// Dimension returns the vector width. Zero before Fit.
func (v *Vectorizer) Dimension() int { return v.dimension }

// Truncate returns text cut after its first maxTokens tokens. Text at or
// under the limit is returned unchanged, so truncation is monotonic: it
// never reorders or rewrites what it keeps.
func (v *Vectorizer) Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	spans := tokenPattern.FindAllStringIndex(text, -1)
	if len(spans) <= maxTokens {
		return text
	}
	return text[:spans[maxTokens-1][1]]
}

// terms tokenizes text into lowercased, stopword-filtered unigrams plus
// adjacent bigrams, matching the vocabulary construction.
func (v *Vectorizer) terms(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(raw) == 0 {
		return nil
	}
	words := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, isStop := v.stopwords[t]; isStop {
			continue
		}
		words = append(words, t)
	}
	if len(words) == 0 {
		return nil
	}
	terms := make([]string, 0, 2*len(words)-1)
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}

func englishStopwords() map[string]struct{} {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "am",
		"an", "and", "any", "are", "as", "at", "be", "because", "been",
		"before", "being", "below", "between", "both", "but", "by", "can",
		"cannot", "could", "did", "do", "does", "doing", "down", "during",
		"each", "few", "for", "from", "further", "had", "has", "have",
		"having", "he", "her", "here", "hers", "him", "his", "how", "i",
		"if", "in", "into", "is", "it", "its", "itself", "just", "me",
		"more", "most", "my", "myself", "no", "nor", "not", "now", "of",
		"off", "on", "once", "only", "or", "other", "our", "ours", "out",
		"over", "own", "same", "she", "should", "so", "some", "such",
		"than", "that", "the", "their", "theirs", "them", "then", "there",
		"these", "they", "this", "those", "through", "to", "too", "under",
		"until", "up", "very", "was", "we", "were", "what", "when",
		"where", "which", "while", "who", "whom", "why", "will", "with",
		"would", "you", "your", "yours", "yourself",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
