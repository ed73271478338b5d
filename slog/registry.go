package slog

import (
	"log/slog"
	"time"

	"github.com/cdpdoc/cdpdoc"
)

// Ensure LoggingRegistry implements cdpdoc.LinkSelectorRegistry.
var _ cdpdoc.LinkSelectorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a LinkSelectorRegistry and logs framework
// detection, which is the only part of selection worth watching: a page
// routed to the wrong selector crawls badly with no other symptom.
type LoggingRegistry struct {
	next     cdpdoc.LinkSelectorRegistry
	detector cdpdoc.FrameworkDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next cdpdoc.LinkSelectorRegistry, detector cdpdoc.FrameworkDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(framework cdpdoc.Framework) cdpdoc.LinkSelector {
	return r.next.Get(framework)
}

// GetForHTML detects the framework, logs it, and returns the selector.
func (r *LoggingRegistry) GetForHTML(html string) cdpdoc.LinkSelector {
	begin := time.Now()
	framework := r.detector.Detect(html)
	frameworkName := string(framework)
	if framework == cdpdoc.FrameworkUnknown {
		frameworkName = "(unknown)"
	}
	r.logger.Info("framework detection",
		"framework", frameworkName,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(framework cdpdoc.Framework, selector cdpdoc.LinkSelector) {
	r.next.Register(framework, selector)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []cdpdoc.Framework {
	return r.next.List()
}
