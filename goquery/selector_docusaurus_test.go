package goquery_test

import (
	"testing"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocusaurusSelector_Name(t *testing.T) {
	t.Parallel()

	s := goquery.NewDocusaurusSelector()
	assert.Equal(t, "docusaurus", s.Name())
}

func TestDocusaurusSelector_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts links from theme-doc-sidebar-container with navigation priority", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head><title>Lytics Documentation</title></head>
<body>
<div class="theme-doc-sidebar-container">
	<nav class="menu">
		<ul class="menu__list">
			<li class="menu__list-item"><a class="menu__link" href="/docs/intro">Introduction</a></li>
			<li class="menu__list-item"><a class="menu__link" href="/docs/audiences">Audiences</a></li>
		</ul>
	</nav>
</div>
</body>
</html>`

		s := goquery.NewDocusaurusSelector()
		links, err := s.ExtractLinks(html, "https://docs.lytics.com")

		require.NoError(t, err)
		require.Len(t, links, 2)

		assert.Equal(t, "https://docs.lytics.com/docs/intro", links[0].URL)
		assert.Equal(t, cdpdoc.PriorityNavigation, links[0].Priority)
		assert.Equal(t, "sidebar", links[0].Source)
		assert.Equal(t, "Introduction", links[0].Text)

		assert.Equal(t, "https://docs.lytics.com/docs/audiences", links[1].URL)
		assert.Equal(t, cdpdoc.PriorityNavigation, links[1].Priority)
	})

	t.Run("drops anchor-only table-of-contents entries", func(t *testing.T) {
		t.Parallel()

		// Docusaurus TOCs link to headings on the current page; those
		// resolve to the page itself and must not re-enter the frontier.
		html := `<!DOCTYPE html>
<html>
<head><title>Docs</title></head>
<body>
<div class="table-of-contents">
	<ul>
		<li><a href="#install">Install</a></li>
		<li><a href="/docs/segments#export">Exporting segments</a></li>
	</ul>
</div>
</body>
</html>`

		s := goquery.NewDocusaurusSelector()
		links, err := s.ExtractLinks(html, "https://docs.lytics.com/docs/getting-started")

		require.NoError(t, err)
		require.Len(t, links, 1)

		assert.Equal(t, "https://docs.lytics.com/docs/segments", links[0].URL)
		assert.Equal(t, cdpdoc.PriorityNavigation, links[0].Priority)
		assert.Equal(t, "toc", links[0].Source)
	})

	t.Run("extracts links from navbar with navigation priority", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Docs</title></head>
<body>
<nav class="navbar navbar--fixed-top">
	<div class="navbar__items">
		<a class="navbar__item navbar__link" href="/docs">Docs</a>
		<a class="navbar__item navbar__link" href="/docs/api">API</a>
	</div>
</nav>
</body>
</html>`

		s := goquery.NewDocusaurusSelector()
		links, err := s.ExtractLinks(html, "https://docs.lytics.com")

		require.NoError(t, err)
		require.Len(t, links, 2)

		assert.Equal(t, "https://docs.lytics.com/docs", links[0].URL)
		assert.Equal(t, cdpdoc.PriorityNavigation, links[0].Priority)
		assert.Equal(t, "navbar", links[0].Source)
	})

	t.Run("extracts article links with content priority", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Docs</title></head>
<body>
<article>
	<p>See the <a href="/docs/identity-resolution">identity resolution guide</a>.</p>
</article>
</body>
</html>`

		s := goquery.NewDocusaurusSelector()
		links, err := s.ExtractLinks(html, "https://docs.lytics.com")

		require.NoError(t, err)
		require.Len(t, links, 1)

		assert.Equal(t, "https://docs.lytics.com/docs/identity-resolution", links[0].URL)
		assert.Equal(t, cdpdoc.PriorityContent, links[0].Priority)
	})

	t.Run("sidebar priority wins over content for the same link", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Docs</title></head>
<body>
<div class="theme-doc-sidebar-container">
	<nav class="menu"><ul><li><a href="/docs/campaigns">Campaigns</a></li></ul></nav>
</div>
<article>
	<a href="/docs/campaigns">campaign docs</a>
</article>
</body>
</html>`

		s := goquery.NewDocusaurusSelector()
		links, err := s.ExtractLinks(html, "https://docs.lytics.com")

		require.NoError(t, err)
		require.Len(t, links, 1)

		assert.Equal(t, cdpdoc.PriorityNavigation, links[0].Priority)
		assert.Equal(t, "sidebar", links[0].Source)
	})

	t.Run("filters external links", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Docs</title></head>
<body>
<div class="theme-doc-sidebar-container">
	<nav class="menu">
		<ul>
			<li><a href="/docs/intro">Internal</a></li>
			<li><a href="https://github.com/lytics">GitHub</a></li>
		</ul>
	</nav>
</div>
</body>
</html>`

		s := goquery.NewDocusaurusSelector()
		links, err := s.ExtractLinks(html, "https://docs.lytics.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://docs.lytics.com/docs/intro", links[0].URL)
	})

	t.Run("returns error for invalid base URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><a href="/docs">Docs</a></article></body></html>`

		s := goquery.NewDocusaurusSelector()
		_, err := s.ExtractLinks(html, "://invalid-url")

		require.Error(t, err)
		assert.Equal(t, cdpdoc.EINVALID, cdpdoc.ErrorCode(err))
	})
}
