package goquery

import "github.com/cdpdoc/cdpdoc"

var _ cdpdoc.LinkSelector = (*DocusaurusSelector)(nil)

// DocusaurusSelector extracts links from Docusaurus documentation sites
// (docs.lytics.com). Validated against Docusaurus v2.x and v3.x markup:
// .theme-doc-sidebar-container for the docs sidebar, .table-of-contents
// for the on-page TOC, .navbar for the top bar.
type DocusaurusSelector struct{}

// NewDocusaurusSelector creates a new DocusaurusSelector.
func NewDocusaurusSelector() *DocusaurusSelector {
	return &DocusaurusSelector{}
}

// Name returns the selector's identifier.
func (s *DocusaurusSelector) Name() string {
	return "docusaurus"
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Sidebar, TOC, and navbar links rank above in-content links so the crawl
// walks the documentation tree before chasing cross references.
func (s *DocusaurusSelector) ExtractLinks(html string, baseURL string) ([]cdpdoc.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: ".theme-doc-sidebar-container a[href]", Priority: cdpdoc.PriorityNavigation, Source: "sidebar"},
		{Selector: ".table-of-contents a[href]", Priority: cdpdoc.PriorityNavigation, Source: "toc"},
		{Selector: "nav.navbar a[href]", Priority: cdpdoc.PriorityNavigation, Source: "navbar"},
		{Selector: "article a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "main a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "footer a[href]", Priority: cdpdoc.PriorityFooter, Source: "footer"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
