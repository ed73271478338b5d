package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/crawl"
	"github.com/cdpdoc/cdpdoc/sqlite"
)

// Indexer rebuilds the search index from the page store and publishes the
// result for querying.
type Indexer interface {
	// Rebuild builds a fresh snapshot and swaps it in, returning the
	// published document and passage counts.
	Rebuild(ctx context.Context) (documents, passages int, err error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Params   cdpdoc.Params
	DB       *sqlite.DB
	CDPs     cdpdoc.CDPService
	Pages    cdpdoc.PageStore
	Crawler  *crawl.Crawler
	Indexer  Indexer
	Answerer cdpdoc.Answerer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add    AddCmd    `cmd:"" help:"Register a CDP"`
	List   ListCmd   `cmd:"" help:"List registered CDPs with document counts"`
	Delete DeleteCmd `cmd:"" help:"Delete a CDP and its documents"`
	Crawl  CrawlCmd  `cmd:"" help:"Crawl documentation for one or all CDPs"`
	Import ImportCmd `cmd:"" help:"Import a directory of JSON corpus files"`
	Export ExportCmd `cmd:"" help:"Export stored documents as JSON corpus files"`
	Ask    AskCmd    `cmd:"" help:"Answer one question and exit"`
	Chat   ChatCmd   `cmd:"" help:"Start an interactive chat session"`

	DB      string `help:"SQLite database path (default: $CDPDOC_DB_PATH or ~/.cdpdoc/cdpdoc.db)"`
	Config  string `help:"YAML file of tuning parameters" type:"path"`
	Verbose bool   `short:"v" help:"Log service operations to stderr"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	ID      string `arg:"" help:"CDP identifier (e.g. segment)"`
	Name    string `arg:"" help:"Display name"`
	BaseURL string `arg:"" name:"base-url" help:"Documentation base URL"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"CDP identifier"`
	Force bool   `help:"Confirm deletion"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	ID       string `arg:"" optional:"" help:"CDP to crawl (default: all registered)"`
	MaxPages int    `default:"200" help:"Page budget per CDP"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Dir string `arg:"" type:"existingdir" help:"Directory of <cdp>_docs.json files"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Destination directory"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to answer"`
	Polish   bool   `help:"Polish the answer with Gemini (requires GEMINI_API_KEY)"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Watch  string `type:"existingdir" help:"Corpus directory to re-import and re-index on change"`
	Polish bool   `help:"Polish answers with Gemini (requires GEMINI_API_KEY)"`
}
