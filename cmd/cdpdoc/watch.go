package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/fs"
	"github.com/cdpdoc/cdpdoc/tui"
)

// settleDelay is how long the watcher waits after the first filesystem
// event before reimporting. Exporters write with temp-file-and-rename,
// which produces several events per corpus file.
const settleDelay = 500 * time.Millisecond

// CorpusWatcher reimports a corpus directory when its files change and
// reports the result to a running chat program.
type CorpusWatcher struct {
	dir     string
	pages   cdpdoc.PageStore
	indexer Indexer
	watcher *fsnotify.Watcher
}

// NewCorpusWatcher watches dir for corpus file changes.
func NewCorpusWatcher(dir string, pages cdpdoc.PageStore, indexer Indexer) (*CorpusWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start corpus watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %q: %w", dir, err)
	}
	return &CorpusWatcher{dir: dir, pages: pages, indexer: indexer, watcher: watcher}, nil
}

// Run blocks until ctx is cancelled or the watcher closes, delivering a
// tui.ReloadMsg through send after each settled batch of corpus changes.
// send must be safe to call from this goroutine; (*tea.Program).Send is.
func (w *CorpusWatcher) Run(ctx context.Context, send func(tea.Msg)) {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isCorpusChange(event) {
				continue
			}
			if fire == nil {
				timer = time.NewTimer(settleDelay)
				fire = timer.C
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			send(tui.ReloadMsg{Err: err})
		case <-fire:
			timer, fire = nil, nil
			send(w.reload(ctx))
		}
	}
}

// Close stops the underlying filesystem watcher, which also ends Run.
func (w *CorpusWatcher) Close() error {
	return w.watcher.Close()
}

func (w *CorpusWatcher) reload(ctx context.Context) tui.ReloadMsg {
	if _, err := importDocuments(ctx, fs.NewSource(w.dir), w.pages); err != nil {
		return tui.ReloadMsg{Err: err}
	}
	documents, passages, err := w.indexer.Rebuild(ctx)
	if err != nil {
		return tui.ReloadMsg{Err: err}
	}
	return tui.ReloadMsg{Documents: documents, Passages: passages}
}

func isCorpusChange(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	return strings.HasSuffix(event.Name, "_docs.json")
}
