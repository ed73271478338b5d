// Package chat wires classification, retrieval, and synthesis into the
// single operation every chat surface calls.
package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cdpdoc/cdpdoc"
)

// Compile-time interface verification.
var _ cdpdoc.Answerer = (*Service)(nil)

// Service answers one query per call. Turns are independent and carry no
// state across calls, so a Service is safe for concurrent use.
type Service struct {
	Classifier  cdpdoc.Classifier
	Retriever   cdpdoc.Retriever
	Synthesizer cdpdoc.Synthesizer

	// Rewriter optionally polishes the extractive answer. Nil disables
	// rewriting.
	Rewriter cdpdoc.Rewriter

	// Logger receives diagnostics for swallowed rewrite failures. Nil
	// disables logging.
	Logger *slog.Logger

	// K caps retrieved passages per turn. Zero means the engine default.
	K int
}

// AnswerQuery runs one turn: classify the query, retrieve passages for the
// candidate CDPs, and synthesize the answer. An out-of-scope query skips
// retrieval. Returns EINVALID for a blank query and EUNAVAILABLE if no
// index has been built.
func (s *Service) AnswerQuery(ctx context.Context, query string) (*cdpdoc.Answer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, cdpdoc.Errorf(cdpdoc.EINVALID, "query required")
	}

	c, err := s.Classifier.Classify(ctx, query)
	if err != nil {
		return nil, err
	}

	var passages []cdpdoc.ScoredPassage
	if !c.NoMatch {
		passages, err = s.Retriever.Retrieve(ctx, query, c.CDPIDs, s.K)
		if err != nil {
			return nil, err
		}
	}

	answer := s.Synthesizer.Synthesize(query, c, passages)

	// Rewriting is best-effort and only touches answers that cite sources;
	// the fixed out-of-scope and not-found responses pass through as is.
	if s.Rewriter != nil && len(answer.Sources) > 0 {
		text, err := s.Rewriter.Rewrite(ctx, query, answer, passages)
		switch {
		case err != nil:
			if s.Logger != nil {
				s.Logger.Warn("answer rewrite failed, keeping extractive text", "err", err)
			}
		case strings.TrimSpace(text) != "":
			answer.Text = text
		}
	}

	return answer, nil
}
