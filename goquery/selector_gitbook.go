package goquery

import "github.com/cdpdoc/cdpdoc"

var _ cdpdoc.LinkSelector = (*GitBookSelector)(nil)

// GitBookSelector extracts links from hosted GitBook spaces
// (docs.zeotap.com). GitBook renders navigation behind stable data-testid
// attributes: space.sidebar for the main tree, page.desktopTableOfContents
// for the on-page TOC, space.header for the top bar.
type GitBookSelector struct{}

// NewGitBookSelector creates a new GitBookSelector.
func NewGitBookSelector() *GitBookSelector {
	return &GitBookSelector{}
}

// Name returns the selector's identifier.
func (s *GitBookSelector) Name() string {
	return "gitbook"
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Sidebar, TOC, and header links rank above in-content links.
func (s *GitBookSelector) ExtractLinks(html string, baseURL string) ([]cdpdoc.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: "[data-testid='space.sidebar'] a[href]", Priority: cdpdoc.PriorityNavigation, Source: "sidebar"},
		{Selector: "[data-testid='page.desktopTableOfContents'] a[href]", Priority: cdpdoc.PriorityNavigation, Source: "toc"},
		{Selector: "[data-testid='space.header'] a[href]", Priority: cdpdoc.PriorityNavigation, Source: "header"},
		{Selector: "[data-testid='page.contentEditor'] a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "main a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "article a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "footer a[href]", Priority: cdpdoc.PriorityFooter, Source: "footer"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
