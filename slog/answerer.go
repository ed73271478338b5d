package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/cdpdoc/cdpdoc"
)

// Ensure LoggingAnswerer implements cdpdoc.Answerer.
var _ cdpdoc.Answerer = (*LoggingAnswerer)(nil)

// LoggingAnswerer wraps an Answerer and logs every chat turn.
type LoggingAnswerer struct {
	next   cdpdoc.Answerer
	logger *slog.Logger
}

// NewLoggingAnswerer creates a new LoggingAnswerer.
func NewLoggingAnswerer(next cdpdoc.Answerer, logger *slog.Logger) *LoggingAnswerer {
	return &LoggingAnswerer{next: next, logger: logger}
}

// AnswerQuery delegates to the wrapped answerer and logs the turn.
func (a *LoggingAnswerer) AnswerQuery(ctx context.Context, query string) (answer *cdpdoc.Answer, err error) {
	defer func(begin time.Time) {
		sources := 0
		if answer != nil {
			sources = len(answer.Sources)
		}
		a.logger.Info("answer query",
			"query", query,
			"sources", sources,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.AnswerQuery(ctx, query)
}
