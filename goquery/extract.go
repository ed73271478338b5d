package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cdpdoc/cdpdoc"
)

// SelectorConfig pairs a CSS selector with the priority and source label
// its links receive.
type SelectorConfig struct {
	Selector string
	Priority cdpdoc.LinkPriority
	Source   string
}

// ExtractLinksWithConfigs extracts same-host links from HTML using the given
// selector configurations. Links are deduplicated by URL, keeping the highest
// priority version, in first-occurrence order. Assets and account/search
// pages are dropped (cdpdoc.SkipURL), as are mailto/javascript links and
// anchor-only self references.
func ExtractLinksWithConfigs(html string, baseURL string, configs []SelectorConfig) ([]cdpdoc.DiscoveredLink, error) {
	return extractLinks(html, baseURL, configs, false)
}

// ExtractLinksWithFallback is ExtractLinksWithConfigs plus a final sweep of
// every anchor under the base URL's path prefix at PriorityFallback. Docs
// sites with non-semantic markup still get their links discovered that way,
// while links already matched by a real selector keep their higher priority.
func ExtractLinksWithFallback(html string, baseURL string, configs []SelectorConfig) ([]cdpdoc.DiscoveredLink, error) {
	return extractLinks(html, baseURL, configs, true)
}

func extractLinks(html string, baseURL string, configs []SelectorConfig, fallback bool) ([]cdpdoc.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, cdpdoc.Errorf(cdpdoc.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cdpdoc.Errorf(cdpdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	// seen maps URL to its index in links so a higher-priority duplicate
	// can replace the entry in place without disturbing document order.
	seen := make(map[string]int)
	var links []cdpdoc.DiscoveredLink

	collect := func(selector string, priority cdpdoc.LinkPriority, source, pathPrefix string) {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, ok := sel.Attr("href")
			if !ok || href == "" || isNonHTTPLink(href) {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == "" {
				return
			}
			if !isSameHost(base, resolved) || cdpdoc.SkipURL(resolved) {
				return
			}
			if pathPrefix != "" && !hasPathPrefix(resolved, pathPrefix) {
				return
			}

			link := cdpdoc.DiscoveredLink{
				URL:      resolved,
				Priority: priority,
				Text:     strings.TrimSpace(sel.Text()),
				Source:   source,
			}

			if idx, ok := seen[resolved]; ok {
				if priority > links[idx].Priority {
					links[idx] = link
				}
				return
			}
			seen[resolved] = len(links)
			links = append(links, link)
		})
	}

	for _, config := range configs {
		collect(config.Selector, config.Priority, config.Source, "")
	}

	// The fallback sweep is scoped to the base URL's path so a docs page
	// never feeds marketing pages from the same host into the frontier.
	if fallback {
		collect("a[href]", cdpdoc.PriorityFallback, "fallback", base.Path)
	}

	return links, nil
}

func hasPathPrefix(raw, prefix string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return strings.HasPrefix(u.Path, prefix)
}

// resolveURL resolves href against base, strips the fragment, and drops
// self-referential results so anchor-only links never reach the frontier.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost requires an exact host match; subdomains count as external.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
