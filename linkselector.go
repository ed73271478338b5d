package cdpdoc

import (
	"net/url"
	"strings"
)

// LinkPriority represents crawl priority (higher = more important).
type LinkPriority int

// Link priority levels for crawl ordering.
const (
	PriorityIgnore     LinkPriority = 0
	PriorityFallback   LinkPriority = 10
	PriorityFooter     LinkPriority = 20
	PriorityContent    LinkPriority = 50
	PriorityNavigation LinkPriority = 100
	PrioritySitemap    LinkPriority = 110
)

// DiscoveredLink represents a URL with priority metadata.
type DiscoveredLink struct {
	URL      string
	Priority LinkPriority
	Text     string
	Source   string // "nav", "sidebar", "content", "footer", "sitemap"
}

// Asset extensions and account/search paths carry no documentation content.
var (
	skipExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".pdf", ".zip"}
	skipPathWords  = []string{"login", "sign-in", "signin", "sign-up", "signup", "search"}
)

// SkipURL reports whether a documentation crawl should ignore a URL.
// Binary assets are matched by extension; login, signup, and search pages
// by path segment, so "/docs/research/" is not mistaken for a search page.
func SkipURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return true
	}
	path := strings.ToLower(u.Path)
	for _, ext := range skipExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	for _, seg := range strings.Split(path, "/") {
		for _, word := range skipPathWords {
			if seg == word {
				return true
			}
		}
	}
	return false
}

// Framework identifies a documentation site framework. Each CDP publishes
// docs on a different stack; selectors vary by framework, never by CDP.
type Framework string

// Frameworks with dedicated link selectors.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkGitBook    Framework = "gitbook"
)

// LinkSelector extracts prioritized links from HTML.
type LinkSelector interface {
	// ExtractLinks parses HTML and returns discovered links with priority.
	// The baseURL is used to resolve relative URLs.
	ExtractLinks(html string, baseURL string) ([]DiscoveredLink, error)

	// Name returns the selector's identifier (e.g., "docusaurus", "generic").
	Name() string
}

// FrameworkDetector identifies documentation frameworks from HTML.
type FrameworkDetector interface {
	// Detect analyzes HTML and returns the identified framework.
	// Returns FrameworkUnknown if the framework cannot be determined.
	Detect(html string) Framework
}

// LinkSelectorRegistry manages framework-specific selectors.
type LinkSelectorRegistry interface {
	// Get returns the selector for a specific framework.
	// Returns nil if no selector is registered for the framework.
	Get(framework Framework) LinkSelector

	// GetForHTML detects the framework from HTML and returns the appropriate selector.
	// Falls back to a generic selector if the framework is unknown.
	GetForHTML(html string) LinkSelector

	// Register adds a selector for a framework.
	Register(framework Framework, selector LinkSelector)

	// List returns all registered frameworks.
	List() []Framework
}
