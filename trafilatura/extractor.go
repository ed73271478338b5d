// Package trafilatura extracts main content from documentation pages using
// go-trafilatura. It is the crawler's primary extractor; pages it cannot
// handle fall through to the readability extractor.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/cdpdoc/cdpdoc"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements cdpdoc.Extractor at compile time.
var _ cdpdoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content with boilerplate
// (nav, footer, cookie banners) removed.
func (e *Extractor) Extract(rawHTML string) (*cdpdoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, cdpdoc.Errorf(cdpdoc.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &cdpdoc.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
