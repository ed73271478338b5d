package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/tui"
)

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	// An empty page store is not fatal here: the UI reports the unbuilt
	// index per query, and a watched corpus directory can fill it later.
	if _, _, err := deps.Indexer.Rebuild(deps.Ctx); err != nil && cdpdoc.ErrorCode(err) != cdpdoc.EINVALID {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	program := tea.NewProgram(tui.New(deps.Answerer), tea.WithAltScreen())

	if c.Watch != "" {
		watcher, err := NewCorpusWatcher(c.Watch, deps.Pages, deps.Indexer)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
			return err
		}
		defer watcher.Close()

		ctx, cancel := context.WithCancel(deps.Ctx)
		defer cancel()
		go watcher.Run(ctx, program.Send)
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("chat session failed: %w", err)
	}
	return nil
}
