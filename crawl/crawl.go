// Package crawl orchestrates documentation crawls: sitemap seeding,
// breadth-first link following, content extraction, and storage.
package crawl

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cdpdoc/cdpdoc"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxPages bounds the pages fetched per CDP in one crawl.
const DefaultMaxPages = 200

// Frontier sizing. The page budget caps what gets fetched, but the
// frontier sees every URL discovered along the way, so it is sized an
// order of magnitude larger.
const (
	frontierExpectedURLs      = 100000
	frontierFalsePositiveRate = 0.001
)

// Crawler walks a CDP's documentation site and stores each page as a
// canonical document. The crawl is scoped to the host and path prefix
// of the CDP's base URL and bounded by MaxPages.
type Crawler struct {
	Fetcher   cdpdoc.Fetcher
	Extractor cdpdoc.Extractor
	Converter cdpdoc.Converter
	Pages     cdpdoc.PageStore
	Selectors cdpdoc.LinkSelectorRegistry

	// Fallback, when set, handles pages the primary Extractor cannot.
	Fallback cdpdoc.Extractor

	// Sitemaps seeds the frontier when the site advertises a sitemap.
	// Optional: without it the crawl starts from the base URL alone.
	Sitemaps cdpdoc.SitemapService

	// Limiter throttles requests per documentation host. Optional.
	Limiter cdpdoc.DomainLimiter

	// MaxPages caps fetched pages per CDP. Defaults to DefaultMaxPages.
	MaxPages int

	// RetryDelays overrides the backoff schedule for retryable fetch
	// failures. Defaults to DefaultRetryDelays.
	RetryDelays []time.Duration
}

// Result summarizes one CDP crawl.
type Result struct {
	Visited int // pages fetched
	Saved   int // documents stored
	Skipped int // pages with no extractable text
	Failed  int // fetch or storage failures
	Bytes   int // markdown bytes stored
}

// ProgressEvent reports one processed page during a crawl.
// Visited, Saved, and Skipped are running counts as of the event.
type ProgressEvent struct {
	Type    ProgressType
	CDPID   string
	URL     string
	Err     error // set for ProgressFailed
	Visited int
	Saved   int
	Skipped int
}

// ProgressType indicates what happened to the reported page.
type ProgressType int

const (
	ProgressSaved ProgressType = iota
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress. Events may
// arrive from multiple goroutines when CDPs are crawled concurrently.
type ProgressFunc func(event ProgressEvent)

// CrawlCDP crawls one CDP's documentation and stores every page with
// extractable content. Pages that yield no text are skipped, never
// fatal. On cancellation it returns the partial Result alongside the
// context error.
func (c *Crawler) CrawlCDP(ctx context.Context, cdp *cdpdoc.CDP, progress ProgressFunc) (*Result, error) {
	base, err := url.Parse(cdp.BaseURL)
	if err != nil {
		return nil, cdpdoc.Errorf(cdpdoc.EINVALID, "invalid base URL %q: %v", cdp.BaseURL, err)
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(cdpdoc.DiscoveredLink{
		URL:      cdp.BaseURL,
		Priority: cdpdoc.PriorityNavigation,
		Source:   "seed",
	})
	c.seedFromSitemap(ctx, cdp.BaseURL, base, frontier)

	res := &Result{}
	emit := func(event ProgressEvent) {
		if progress == nil {
			return
		}
		event.CDPID = cdp.ID
		event.Visited = res.Visited
		event.Saved = res.Saved
		event.Skipped = res.Skipped
		progress(event)
	}

	// A popped URL consumes page budget whether or not its fetch
	// succeeds, so a site that errors forever cannot stall the crawl.
	attempts := 0

	for attempts < maxPages {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		attempts++

		if err := ctx.Err(); err != nil {
			return res, err
		}

		linkURL, err := url.Parse(link.URL)
		if err != nil {
			res.Failed++
			continue
		}
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx, linkURL.Host); err != nil {
				return res, err
			}
		}

		html, err := FetchWithRetry(ctx, link.URL, c.Fetcher.Fetch, c.RetryDelays)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, ctxErr
			}
			res.Failed++
			emit(ProgressEvent{Type: ProgressFailed, URL: link.URL, Err: err})
			continue
		}
		res.Visited++

		c.enqueueLinks(html, link.URL, base, frontier)

		doc, err := c.buildDocument(cdp.ID, link.URL, html)
		if err != nil {
			res.Failed++
			emit(ProgressEvent{Type: ProgressFailed, URL: link.URL, Err: err})
			continue
		}

		if _, err := c.Pages.Put(ctx, doc); err != nil {
			if cdpdoc.ErrorCode(err) == cdpdoc.EEMPTYDOC {
				res.Skipped++
				emit(ProgressEvent{Type: ProgressSkipped, URL: link.URL})
				continue
			}
			res.Failed++
			emit(ProgressEvent{Type: ProgressFailed, URL: link.URL, Err: err})
			continue
		}

		res.Saved++
		res.Bytes += len(doc.Text)
		emit(ProgressEvent{Type: ProgressSaved, URL: link.URL})
	}

	emit(ProgressEvent{Type: ProgressFinished})
	return res, nil
}

// CrawlAll crawls every CDP concurrently and returns per-CDP results
// keyed by CDP ID. Per-domain rate limits keep concurrent crawls
// polite: each CDP's documentation lives on its own host. The first
// hard failure cancels the remaining crawls.
func (c *Crawler) CrawlAll(ctx context.Context, cdps []*cdpdoc.CDP, progress ProgressFunc) (map[string]*Result, error) {
	var mu sync.Mutex
	results := make(map[string]*Result, len(cdps))

	g, gctx := errgroup.WithContext(ctx)
	for _, cdp := range cdps {
		g.Go(func() error {
			res, err := c.CrawlCDP(gctx, cdp, progress)
			if res != nil {
				mu.Lock()
				results[cdp.ID] = res
				mu.Unlock()
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// seedFromSitemap pushes sitemap URLs at top priority. Sitemap failures
// are not fatal: the crawl still proceeds from the base URL.
func (c *Crawler) seedFromSitemap(ctx context.Context, baseURL string, base *url.URL, frontier *Frontier) {
	if c.Sitemaps == nil {
		return
	}
	urls, err := c.Sitemaps.DiscoverURLs(ctx, baseURL, nil)
	if err != nil {
		return
	}
	for _, u := range urls {
		if !inScope(u, base) {
			continue
		}
		frontier.Push(cdpdoc.DiscoveredLink{
			URL:      u,
			Priority: cdpdoc.PrioritySitemap,
			Source:   "sitemap",
		})
	}
}

// enqueueLinks extracts links from a fetched page and pushes the
// in-scope ones onto the frontier. Extraction failures leave the
// frontier as it was.
func (c *Crawler) enqueueLinks(html, pageURL string, base *url.URL, frontier *Frontier) {
	if c.Selectors == nil {
		return
	}
	selector := c.Selectors.GetForHTML(html)
	if selector == nil {
		return
	}
	links, err := selector.ExtractLinks(html, pageURL)
	if err != nil {
		return
	}
	for _, link := range links {
		if !inScope(link.URL, base) {
			continue
		}
		frontier.Push(link)
	}
}

// buildDocument extracts a page's main content and converts it to
// markdown. A page where both extractors come up empty yields a
// document with no text, which the PageStore rejects as EEMPTYDOC and
// the crawl records as a skip.
func (c *Crawler) buildDocument(cdpID, pageURL, html string) (*cdpdoc.Document, error) {
	extracted := c.extractContent(html)

	doc := &cdpdoc.Document{
		CDPID: cdpID,
		URL:   pageURL,
		Title: extracted.Title,
	}

	if strings.TrimSpace(extracted.ContentHTML) == "" {
		return doc, nil
	}

	markdown, err := c.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}
	doc.Text = markdown
	return doc, nil
}

// extractContent runs the primary extractor and falls back when it
// errors or extracts nothing. The result is never nil.
func (c *Crawler) extractContent(html string) *cdpdoc.ExtractResult {
	result, err := c.Extractor.Extract(html)
	if err == nil && strings.TrimSpace(result.ContentHTML) != "" {
		return result
	}
	if c.Fallback != nil {
		if fallback, ferr := c.Fallback.Extract(html); ferr == nil {
			return fallback
		}
	}
	if result == nil {
		result = &cdpdoc.ExtractResult{}
	}
	return result
}

// inScope reports whether a URL belongs to the crawl: same host as the
// base URL, within its path prefix, and not a skippable asset or
// account page.
func inScope(rawURL string, base *url.URL) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Host != base.Host {
		return false
	}
	if !strings.HasPrefix(u.Path, base.Path) {
		return false
	}
	return !cdpdoc.SkipURL(rawURL)
}
