// Package synth composes user-facing answers from retrieval output.
// Synthesis is extractive: every line of an answer is lifted from a
// retrieved passage, so each answer can cite exactly where its text came
// from.
package synth

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cdpdoc/cdpdoc"
)

// Fixed responses for the two no-answer outcomes. Scope misses and
// retrieval misses are first-class results, not errors.
const (
	// OutOfScopeText answers queries unrelated to every indexed platform.
	OutOfScopeText = "I'm sorry, that question doesn't appear to be related to the CDP platforms I support."

	// NotFoundText answers in-scope queries that matched no documentation.
	NotFoundText = "I'm sorry, I couldn't find any relevant information for your question."
)

// Compile-time interface verification.
var _ cdpdoc.Synthesizer = (*Synthesizer)(nil)

// Synthesizer builds extractive answers bounded by the answer budget.
type Synthesizer struct {
	maxAnswerChars int
}

// New creates a Synthesizer from engine params.
func New(params cdpdoc.Params) *Synthesizer {
	params = params.Normalize()
	return &Synthesizer{maxAnswerChars: params.MaxAnswerChars}
}

// Synthesize builds the answer for one turn. A NoMatch classification
// yields the fixed out-of-scope response and an empty retrieval yields the
// fixed not-found response, both with no sources. Otherwise passages are
// stitched in score order within the answer budget; when the candidate set
// spans several CDPs the answer is grouped per platform.
func (s *Synthesizer) Synthesize(query string, c *cdpdoc.Classification, passages []cdpdoc.ScoredPassage) *cdpdoc.Answer {
	if c == nil || c.NoMatch {
		return &cdpdoc.Answer{Text: OutOfScopeText}
	}
	if len(passages) == 0 {
		return &cdpdoc.Answer{Text: NotFoundText}
	}

	used := s.selectPassages(passages)

	var text string
	if groups := groupByCDP(used, c.CDPIDs); len(groups) > 1 {
		text = renderComparison(groups)
	} else {
		text = renderSingle(used)
	}

	return &cdpdoc.Answer{Text: text, Sources: sourceURLs(used)}
}

// selectPassages takes the minimal prefix of passages that fits the answer
// budget, skipping chunk neighbors. An oversized best passage is clipped
// rather than dropped so an answer is never empty.
func (s *Synthesizer) selectPassages(passages []cdpdoc.ScoredPassage) []*cdpdoc.Passage {
	var used []*cdpdoc.Passage
	total := 0
	for i := range passages {
		p := passages[i].Passage
		if isChunkNeighbor(used, p) {
			continue
		}
		if len(used) == 0 && len(p.Text) > s.maxAnswerChars {
			clipped := *p
			clipped.Text = truncate(p.Text, s.maxAnswerChars)
			return []*cdpdoc.Passage{&clipped}
		}
		if total+len(p.Text) > s.maxAnswerChars {
			break
		}
		used = append(used, p)
		total += len(p.Text)
	}
	return used
}

// isChunkNeighbor reports whether p is an adjacent chunk of a document
// already selected. Adjacent chunks repeat their overlap sentences, so
// only the better-scoring one is kept.
func isChunkNeighbor(used []*cdpdoc.Passage, p *cdpdoc.Passage) bool {
	for _, u := range used {
		if u.DocumentID != p.DocumentID {
			continue
		}
		d := p.ChunkIndex - u.ChunkIndex
		if d >= -1 && d <= 1 {
			return true
		}
	}
	return false
}

// cdpGroup holds one platform's share of the selected passages.
type cdpGroup struct {
	cdpID    string
	passages []*cdpdoc.Passage
}

// groupByCDP splits the selected passages into per-CDP groups, following
// the candidate order (best-scoring CDP first). CDPs that contributed no
// passage get no group.
func groupByCDP(used []*cdpdoc.Passage, cdpIDs []string) []cdpGroup {
	var groups []cdpGroup
	for _, id := range cdpIDs {
		g := cdpGroup{cdpID: id}
		for _, p := range used {
			if p.CDPID == id {
				g.passages = append(g.passages, p)
			}
		}
		if len(g.passages) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// renderSingle renders an answer drawn from one platform, led by a phrase
// built from the best passage's title.
func renderSingle(used []*cdpdoc.Passage) string {
	return heading(used[0].Title) + "\n\n" + renderBody(used)
}

// renderComparison renders a multi-platform answer with one block per CDP,
// the shape used when the candidate set is ambiguous.
func renderComparison(groups []cdpGroup) string {
	var b strings.Builder
	b.WriteString("Here's how different platforms handle this:")
	for _, g := range groups {
		b.WriteString("\n\n")
		b.WriteString(strings.ToUpper(g.cdpID))
		b.WriteString(":\n")
		b.WriteString(renderBody(g.passages))
	}
	return b.String()
}

// renderBody stitches passage texts, re-rendering the best passage one
// step per line when it carries a usable step list.
func renderBody(passages []*cdpdoc.Passage) string {
	parts := make([]string, 0, len(passages))
	for i, p := range passages {
		if i == 0 {
			// A single extracted "step" is usually a numbered heading or a
			// stray hyphen, not a procedure.
			if steps := ExtractSteps(p.Text); len(steps) >= 2 {
				parts = append(parts, renderSteps(steps))
				continue
			}
		}
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n\n")
}

// heading phrases the answer lead-in from the best passage's title.
func heading(title string) string {
	if title == "" {
		return "Here's what I found:"
	}
	if isHowToTitle(title) {
		t := strings.TrimPrefix(strings.ToLower(title), "how to ")
		return fmt.Sprintf("Here's how to %s:", t)
	}
	return fmt.Sprintf("Here's what I found about %s:", title)
}

// isHowToTitle reports whether a page title reads as a procedure.
func isHowToTitle(title string) bool {
	t := strings.ToLower(title)
	return strings.Contains(t, "how to") ||
		strings.Contains(t, "guide") ||
		strings.Contains(t, "tutorial")
}

func renderSteps(steps []string) string {
	var b strings.Builder
	for i, step := range steps {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, step)
	}
	return b.String()
}

// sourceURLs returns the distinct URLs of the selected passages in
// first-use order.
func sourceURLs(used []*cdpdoc.Passage) []string {
	seen := make(map[string]struct{}, len(used))
	var urls []string
	for _, p := range used {
		if _, ok := seen[p.URL]; ok {
			continue
		}
		seen[p.URL] = struct{}{}
		urls = append(urls, p.URL)
	}
	return urls
}

var (
	numberedStep = regexp.MustCompile(`\d+\.\s+`)
	bulletStep   = regexp.MustCompile(`[•\-\*]\s+`)
)

// ExtractSteps pulls an ordered step list out of passage text: numbered
// steps when present, bulleted steps otherwise. Returns nil when the text
// carries neither.
func ExtractSteps(text string) []string {
	if steps := splitAfter(text, numberedStep); len(steps) > 0 {
		return steps
	}
	return splitAfter(text, bulletStep)
}

// splitAfter returns the trimmed text between successive delimiter matches.
// Text before the first match is dropped.
func splitAfter(text string, delim *regexp.Regexp) []string {
	locs := delim.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	steps := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		if step := strings.TrimSpace(text[loc[1]:end]); step != "" {
			steps = append(steps, step)
		}
	}
	return steps
}

// truncate clips text to at most max bytes at a rune boundary, marking the
// cut with an ellipsis.
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max - 3
	if cut < 0 {
		cut = 0
	}
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
