package main

import (
	"fmt"

	"github.com/cdpdoc/cdpdoc"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	documents, passages, err := deps.Indexer.Rebuild(deps.Ctx)
	if err != nil {
		if cdpdoc.ErrorCode(err) == cdpdoc.EINVALID {
			fmt.Fprintln(deps.Stderr, "error: no documents to search. Run 'cdpdoc crawl' or 'cdpdoc import' first.")
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		}
		return err
	}
	// Build chatter goes to stderr so stdout carries only the answer.
	fmt.Fprintf(deps.Stderr, "Indexed %d documents (%d passages)\n", documents, passages)

	answer, err := deps.Answerer.AnswerQuery(deps.Ctx, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, cdpdoc.FormatAnswer(answer))
	return nil
}
