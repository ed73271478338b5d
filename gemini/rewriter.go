// Package gemini polishes extractive answers with the Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/cdpdoc/cdpdoc"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Rewriter implements cdpdoc.Rewriter at compile time.
var _ cdpdoc.Rewriter = (*Rewriter)(nil)

// Rewriter smooths a stitched extractive answer into fluent prose.
// The rewrite must not introduce facts beyond the retrieved passages;
// the system instruction pins the model to the excerpts, and callers
// fall back to the extractive text on any error.
type Rewriter struct {
	client *genai.Client
}

// NewRewriter creates a new Rewriter.
func NewRewriter(client *genai.Client) *Rewriter {
	return &Rewriter{client: client}
}

// Rewrite polishes the extractive answer text. Sources stay with the
// caller; only prose comes back.
func (r *Rewriter) Rewrite(ctx context.Context, query string, answer *cdpdoc.Answer, passages []cdpdoc.ScoredPassage) (string, error) {
	if query == "" {
		return "", cdpdoc.Errorf(cdpdoc.EINVALID, "query required")
	}
	if answer == nil || answer.Text == "" {
		return "", cdpdoc.Errorf(cdpdoc.EINVALID, "answer required")
	}

	prompt := BuildUserPrompt(query, answer, passages)
	config := BuildConfig()

	result, err := r.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", cdpdoc.Errorf(cdpdoc.EINTERNAL, "gemini returned nil result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", cdpdoc.Errorf(cdpdoc.EINTERNAL, "gemini returned empty text")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for rewrite calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You polish answers assembled from documentation excerpts. " +
					"Rewrite the draft into clear, fluent prose. Keep every fact, step, " +
					"and number from the draft; add nothing that is not in the excerpts. " +
					"Keep numbered steps as a numbered list. Do not mention the excerpts " +
					"and do not cite URLs.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the rewrite prompt from the query, the draft
// answer, and the passages the draft was lifted from.
func BuildUserPrompt(query string, answer *cdpdoc.Answer, passages []cdpdoc.ScoredPassage) string {
	var sb strings.Builder
	sb.WriteString("<excerpts>\n")
	sb.WriteString(cdpdoc.FormatPassages(passages))
	sb.WriteString("\n</excerpts>\n\n")
	fmt.Fprintf(&sb, "Question: %s\n\n", query)
	fmt.Fprintf(&sb, "Draft answer:\n%s", answer.Text)
	return sb.String()
}
