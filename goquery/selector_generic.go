package goquery

import "github.com/cdpdoc/cdpdoc"

var _ cdpdoc.LinkSelector = (*GenericSelector)(nil)

// GenericSelector extracts links using universal CSS patterns that hold
// across documentation stacks. It serves the CDPs without a framework
// selector: Segment's Jekyll site and mParticle's custom site both render
// semantic nav/main/footer markup, and the path-scoped fallback sweep picks
// up anything their templates hide behind bare divs.
type GenericSelector struct{}

// NewGenericSelector creates a new GenericSelector.
func NewGenericSelector() *GenericSelector {
	return &GenericSelector{}
}

// Name returns the selector's identifier.
func (s *GenericSelector) Name() string {
	return "generic"
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Sidebar and nav links rank above content links, content above footer.
func (s *GenericSelector) ExtractLinks(html string, baseURL string) ([]cdpdoc.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: ".toc a[href], .table-of-contents a[href], .sidebar a[href], aside a[href]", Priority: cdpdoc.PriorityNavigation, Source: "sidebar"},
		{Selector: "nav a[href], [role=\"navigation\"] a[href], .nav a[href], .menu a[href], .navbar a[href]", Priority: cdpdoc.PriorityNavigation, Source: "nav"},
		{Selector: "main a[href], article a[href], .content a[href], .doc-content a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "footer a[href], .footer a[href]", Priority: cdpdoc.PriorityFooter, Source: "footer"},
	}
	return ExtractLinksWithFallback(html, baseURL, configs)
}
