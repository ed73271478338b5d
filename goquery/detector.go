package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cdpdoc/cdpdoc"
)

// Detector identifies the documentation framework behind a page. Of the
// supported CDPs, Lytics publishes on Docusaurus and Zeotap on GitBook;
// Segment and mParticle run custom stacks that fall through to
// FrameworkUnknown and are handled by the generic selector.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified framework.
// Returns FrameworkUnknown if the framework cannot be determined.
func (d *Detector) Detect(html string) cdpdoc.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return cdpdoc.FrameworkUnknown
	}

	// The meta generator tag is the most reliable signal when present.
	if framework := d.detectFromMetaGenerator(doc); framework != cdpdoc.FrameworkUnknown {
		return framework
	}

	// __docusaurus_skipToContent_fallback is highly specific to Docusaurus.
	if d.hasSelector(doc, "#__docusaurus_skipToContent_fallback") ||
		d.hasSelector(doc, ".theme-doc-sidebar-container") ||
		d.hasSelector(doc, "[data-rh]") && d.hasSelector(doc, "[data-theme]") {
		return cdpdoc.FrameworkDocusaurus
	}

	if d.hasSelector(doc, "[data-testid='space.sidebar']") ||
		d.hasSelector(doc, "[data-testid='page.desktopTableOfContents']") ||
		d.hasGitBookClasses(doc) {
		return cdpdoc.FrameworkGitBook
	}

	return cdpdoc.FrameworkUnknown
}

// detectFromMetaGenerator checks the meta generator tag for framework identification.
func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) cdpdoc.Framework {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	switch {
	case strings.Contains(generator, "docusaurus"):
		return cdpdoc.FrameworkDocusaurus
	case strings.Contains(generator, "gitbook"):
		return cdpdoc.FrameworkGitBook
	}

	return cdpdoc.FrameworkUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// hasGitBookClasses checks for GitBook's distinctive class combination on
// the html element: circular-corners, theme-clean, tint. Hosted GitBook
// spaces set at least two of these.
func (d *Detector) hasGitBookClasses(doc *goquery.Document) bool {
	htmlClass := ""
	doc.Find("html").Each(func(_ int, s *goquery.Selection) {
		if class, exists := s.Attr("class"); exists {
			htmlClass = class
		}
	})

	if htmlClass == "" {
		return false
	}

	count := 0
	for _, marker := range []string{"circular-corners", "theme-clean", "tint"} {
		if strings.Contains(htmlClass, marker) {
			count++
		}
	}

	return count >= 2
}
