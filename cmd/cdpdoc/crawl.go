package main

import (
	"fmt"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	var cdps []*cdpdoc.CDP
	if c.ID != "" {
		cdp, err := deps.CDPs.FindCDPByID(deps.Ctx, c.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
			return err
		}
		cdps = []*cdpdoc.CDP{cdp}
	} else {
		all, err := deps.CDPs.FindCDPs(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
			return err
		}
		if len(all) == 0 {
			fmt.Fprintln(deps.Stdout, "No CDPs registered. Use 'cdpdoc add' to register one.")
			return nil
		}
		cdps = all
	}

	for _, cdp := range cdps {
		fmt.Fprintf(deps.Stdout, "Crawling %s (%s)\n", cdp.Name, cdp.BaseURL)
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  %s skip %s: %v\n",
				event.CDPID, crawl.TruncateURL(event.URL, 60), event.Err)
		case crawl.ProgressFinished:
			fmt.Fprintf(deps.Stdout, "  %s done: %d visited, %d saved, %d skipped\n",
				event.CDPID, event.Visited, event.Saved, event.Skipped)
		}
	}

	results, err := deps.Crawler.CrawlAll(deps.Ctx, cdps, progress)

	// Per-CDP summaries print even when a crawl failed partway.
	for _, cdp := range cdps {
		res, ok := results[cdp.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s: saved %d pages (%s)\n",
			cdp.ID, res.Saved, crawl.FormatBytes(res.Bytes))
	}

	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}
	return nil
}
