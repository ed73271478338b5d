package mock

import (
	"context"

	"github.com/cdpdoc/cdpdoc"
)

var _ cdpdoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of cdpdoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ cdpdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cdpdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*cdpdoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*cdpdoc.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ cdpdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of cdpdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ cdpdoc.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of cdpdoc.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *cdpdoc.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *cdpdoc.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

var _ cdpdoc.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of cdpdoc.URLFrontier.
type URLFrontier struct {
	PushFn func(link cdpdoc.DiscoveredLink) bool
	PopFn  func() (cdpdoc.DiscoveredLink, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (f *URLFrontier) Push(link cdpdoc.DiscoveredLink) bool {
	return f.PushFn(link)
}

func (f *URLFrontier) Pop() (cdpdoc.DiscoveredLink, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

func (f *URLFrontier) Seen(url string) bool {
	return f.SeenFn(url)
}

var _ cdpdoc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of cdpdoc.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ cdpdoc.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of cdpdoc.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]cdpdoc.DiscoveredLink, error)
	NameFn         func() string
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]cdpdoc.DiscoveredLink, error) {
	return s.ExtractLinksFn(html, baseURL)
}

func (s *LinkSelector) Name() string {
	return s.NameFn()
}

var _ cdpdoc.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of cdpdoc.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) cdpdoc.Framework
}

func (d *FrameworkDetector) Detect(html string) cdpdoc.Framework {
	return d.DetectFn(html)
}

var _ cdpdoc.LinkSelectorRegistry = (*LinkSelectorRegistry)(nil)

// LinkSelectorRegistry is a mock implementation of cdpdoc.LinkSelectorRegistry.
type LinkSelectorRegistry struct {
	GetFn        func(framework cdpdoc.Framework) cdpdoc.LinkSelector
	GetForHTMLFn func(html string) cdpdoc.LinkSelector
	RegisterFn   func(framework cdpdoc.Framework, selector cdpdoc.LinkSelector)
	ListFn       func() []cdpdoc.Framework
}

func (r *LinkSelectorRegistry) Get(framework cdpdoc.Framework) cdpdoc.LinkSelector {
	return r.GetFn(framework)
}

func (r *LinkSelectorRegistry) GetForHTML(html string) cdpdoc.LinkSelector {
	return r.GetForHTMLFn(html)
}

func (r *LinkSelectorRegistry) Register(framework cdpdoc.Framework, selector cdpdoc.LinkSelector) {
	r.RegisterFn(framework, selector)
}

func (r *LinkSelectorRegistry) List() []cdpdoc.Framework {
	return r.ListFn()
}
