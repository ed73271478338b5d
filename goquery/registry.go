package goquery

import "github.com/cdpdoc/cdpdoc"

var _ cdpdoc.LinkSelectorRegistry = (*Registry)(nil)

// Registry maps detected documentation frameworks to their link selectors.
// Pages from an unrecognized stack (Segment, mParticle) get the fallback
// selector, so every crawled page yields links regardless of framework.
type Registry struct {
	detector  cdpdoc.FrameworkDetector
	fallback  cdpdoc.LinkSelector
	selectors map[cdpdoc.Framework]cdpdoc.LinkSelector
}

// NewRegistry creates a Registry with the given detector and fallback
// selector. Framework selectors are added with Register.
func NewRegistry(detector cdpdoc.FrameworkDetector, fallback cdpdoc.LinkSelector) *Registry {
	return &Registry{
		detector:  detector,
		fallback:  fallback,
		selectors: make(map[cdpdoc.Framework]cdpdoc.LinkSelector),
	}
}

// Get returns the selector for a specific framework.
// Returns nil if no selector is registered for the framework.
func (r *Registry) Get(framework cdpdoc.Framework) cdpdoc.LinkSelector {
	return r.selectors[framework]
}

// GetForHTML detects the framework from HTML and returns the appropriate
// selector, or the fallback when the framework is unknown or unregistered.
func (r *Registry) GetForHTML(html string) cdpdoc.LinkSelector {
	framework := r.detector.Detect(html)
	if selector, ok := r.selectors[framework]; ok {
		return selector
	}
	return r.fallback
}

// Register adds a selector for a framework, replacing any existing one.
func (r *Registry) Register(framework cdpdoc.Framework, selector cdpdoc.LinkSelector) {
	r.selectors[framework] = selector
}

// List returns all registered frameworks.
func (r *Registry) List() []cdpdoc.Framework {
	frameworks := make([]cdpdoc.Framework, 0, len(r.selectors))
	for f := range r.selectors {
		frameworks = append(frameworks, f)
	}
	return frameworks
}
