// Package chunker splits documents into overlapping passages. Boundaries
// are deterministic: the same document always yields the same passages,
// which keeps passage identifiers stable across index rebuilds.
package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cdpdoc/cdpdoc"
)

// Compile-time check that Chunker implements the domain interface.
var _ cdpdoc.Chunker = (*Chunker)(nil)

// sentencePattern matches runs of text up to and including terminal
// punctuation; a trailing run without punctuation matches too.
var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)

// Chunker packs whitespace-normalized sentences into windows bounded by
// MaxChunkChars, repeating the last OverlapSentences sentences across
// window boundaries so no sentence-boundary context is lost.
type Chunker struct {
	maxChars int
	minChars int
	overlap  int
}

// New creates a Chunker from engine params.
func New(params cdpdoc.Params) *Chunker {
	params = params.Normalize()
	return &Chunker{
		maxChars: params.MaxChunkChars,
		minChars: params.MinChunkChars,
		overlap:  params.OverlapSentences,
	}
}

// Chunk splits doc into passages. A document shorter than MinChunkChars
// yields exactly one passage; a document with no text yields none.
func (c *Chunker) Chunk(doc *cdpdoc.Document) []cdpdoc.Passage {
	text := normalize(doc.Text)
	if text == "" {
		return nil
	}
	if len(text) < c.minChars {
		return []cdpdoc.Passage{c.passage(doc, 0, text)}
	}

	var passages []cdpdoc.Passage
	var window []string
	for _, sentence := range c.split(text) {
		if len(window) > 0 && joinLen(window)+1+len(sentence) > c.maxChars {
			passages = append(passages, c.passage(doc, len(passages), strings.Join(window, " ")))

			// Seed the next window with the trailing overlap, trimmed from
			// the front until the incoming sentence fits.
			seed := window
			if len(seed) > c.overlap {
				seed = seed[len(seed)-c.overlap:]
			}
			for len(seed) > 0 && joinLen(seed)+1+len(sentence) > c.maxChars {
				seed = seed[1:]
			}
			window = append(window[:0:0], seed...)
		}
		window = append(window, sentence)
	}
	if len(window) > 0 {
		passages = append(passages, c.passage(doc, len(passages), strings.Join(window, " ")))
	}
	return passages
}

func (c *Chunker) passage(doc *cdpdoc.Document, index int, text string) cdpdoc.Passage {
	return cdpdoc.Passage{
		ID:         cdpdoc.PassageID(doc.ID, index),
		DocumentID: doc.ID,
		CDPID:      doc.CDPID,
		URL:        doc.URL,
		Title:      doc.Title,
		ChunkIndex: index,
		Text:       text,
	}
}

// split returns trimmed sentences; a sentence longer than the window is
// hard-split at rune boundaries so every sentence fits on its own.
func (c *Chunker) split(text string) []string {
	var sentences []string
	for _, raw := range sentencePattern.FindAllString(text, -1) {
		s := strings.TrimSpace(raw)
		for len(s) > c.maxChars {
			cut := c.maxChars
			for cut > 0 && !utf8.RuneStart(s[cut]) {
				cut--
			}
			if cut == 0 {
				_, cut = utf8.DecodeRuneInString(s)
			}
			sentences = append(sentences, s[:cut])
			s = strings.TrimSpace(s[cut:])
		}
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// joinLen is the length of strings.Join(ss, " ") without building it.
func joinLen(ss []string) int {
	n := 0
	for i, s := range ss {
		if i > 0 {
			n++
		}
		n += len(s)
	}
	return n
}

// normalize collapses all whitespace runs to single spaces.
func normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
