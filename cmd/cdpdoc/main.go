package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/chat"
	"github.com/cdpdoc/cdpdoc/chunker"
	"github.com/cdpdoc/cdpdoc/crawl"
	"github.com/cdpdoc/cdpdoc/gemini"
	"github.com/cdpdoc/cdpdoc/goquery"
	"github.com/cdpdoc/cdpdoc/htmltomarkdown"
	cdphttp "github.com/cdpdoc/cdpdoc/http"
	"github.com/cdpdoc/cdpdoc/index"
	"github.com/cdpdoc/cdpdoc/readability"
	cdpslog "github.com/cdpdoc/cdpdoc/slog"
	"github.com/cdpdoc/cdpdoc/sqlite"
	"github.com/cdpdoc/cdpdoc/synth"
	"github.com/cdpdoc/cdpdoc/tfidf"
	"github.com/cdpdoc/cdpdoc/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database behind the CDP registry and page store.
	DB *sqlite.DB

	// Services kept for end-to-end testing.
	CDPService cdpdoc.CDPService
	PageStore  cdpdoc.PageStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// .env carries GEMINI_API_KEY and CDPDOC_DB_PATH for development setups.
	_ = godotenv.Load()

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cdpdoc"),
		kong.Description("Answers how-to questions against crawled CDP documentation."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cdpdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	params, err := LoadParams(cli.Config)
	if err != nil {
		return err
	}
	deps.Params = params

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}
	deps.Logger = logger

	// Open database
	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set CDPDOC_DB_PATH or pass --db to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.CDPService = sqlite.NewCDPService(m.DB)
	pages := cdpdoc.PageStore(sqlite.NewPageStore(m.DB))
	if cli.Verbose {
		pages = cdpslog.NewLoggingPageStore(pages, logger)
	}
	m.PageStore = pages

	if err := seedDefaultCDPs(ctx, m.CDPService); err != nil {
		return fmt.Errorf("failed to seed default CDPs: %w", err)
	}

	deps.DB = m.DB
	deps.CDPs = m.CDPService
	deps.Pages = pages

	// Wire command-specific dependencies based on command
	if cmd == "crawl" {
		fetcher := cdpdoc.Fetcher(cdphttp.NewFetcher())
		if cli.Verbose {
			fetcher = cdpslog.NewLoggingFetcher(fetcher, logger)
		}
		defer fetcher.Close()

		sitemaps := cdpdoc.SitemapService(cdphttp.NewSitemapService(nil))
		if cli.Verbose {
			sitemaps = cdpslog.NewLoggingSitemapService(sitemaps, logger)
		}

		detector := goquery.NewDetector()
		selectors := cdpdoc.LinkSelectorRegistry(newSelectorRegistry(detector))
		if cli.Verbose {
			selectors = cdpslog.NewLoggingRegistry(selectors, detector, logger)
		}

		deps.Crawler = &crawl.Crawler{
			Fetcher:   fetcher,
			Extractor: trafilatura.NewExtractor(),
			Fallback:  readability.NewExtractor(),
			Converter: htmltomarkdown.NewConverter(),
			Pages:     pages,
			Selectors: selectors,
			Sitemaps:  sitemaps,
			Limiter:   crawl.NewDomainLimiter(crawl.DefaultRPS),
			MaxPages:  cli.Crawl.MaxPages,
		}
	}

	if cmd == "ask" || cmd == "chat" {
		engine := index.NewEngine(params)
		deps.Indexer = &rebuilder{
			builder: &index.Builder{
				Pages:   pages,
				Chunker: chunker.New(params),
				NewVectorizer: func() index.FitVectorizer {
					return tfidf.New(tfidf.WithMaxFeatures(params.MaxFeatures))
				},
			},
			engine: engine,
		}

		service := &chat.Service{
			Classifier:  engine,
			Retriever:   engine,
			Synthesizer: synth.New(params),
			Logger:      logger,
			K:           params.K,
		}
		if (cmd == "ask" && cli.Ask.Polish) || (cmd == "chat" && cli.Chat.Polish) {
			rewriter, err := newRewriter(ctx)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Get an API key at https://aistudio.google.com/apikey or drop --polish")
				return err
			}
			service.Rewriter = rewriter
		}

		answerer := cdpdoc.Answerer(service)
		if cli.Verbose {
			answerer = cdpslog.NewLoggingAnswerer(answerer, logger)
		}
		deps.Answerer = answerer
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CDPDOC_DB_PATH"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "cdpdoc.db"
	}
	dir := filepath.Join(home, ".cdpdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cdpdoc.db")
}

// seedDefaultCDPs registers the shipped platforms into an empty registry.
// A registry that already has entries is left alone, so deletions stick.
func seedDefaultCDPs(ctx context.Context, cdps cdpdoc.CDPService) error {
	existing, err := cdps.FindCDPs(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}
	for _, cdp := range cdpdoc.DefaultCDPs() {
		if err := cdps.CreateCDP(ctx, cdp); err != nil {
			return err
		}
	}
	return nil
}

// newSelectorRegistry wires the framework-specific link selectors over the
// generic fallback.
func newSelectorRegistry(detector cdpdoc.FrameworkDetector) *goquery.Registry {
	registry := goquery.NewRegistry(detector, goquery.NewGenericSelector())
	registry.Register(cdpdoc.FrameworkDocusaurus, goquery.NewDocusaurusSelector())
	registry.Register(cdpdoc.FrameworkGitBook, goquery.NewGitBookSelector())
	return registry
}

// newRewriter builds the Gemini-backed answer polisher.
func newRewriter(ctx context.Context) (cdpdoc.Rewriter, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	return gemini.NewRewriter(client), nil
}
