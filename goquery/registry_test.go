package goquery_test

import (
	"testing"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/goquery"
	"github.com/cdpdoc/cdpdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns registered selector for framework", func(t *testing.T) {
		t.Parallel()

		detector := &mock.FrameworkDetector{}
		fallback := &mock.LinkSelector{NameFn: func() string { return "fallback" }}
		docusaurus := &mock.LinkSelector{NameFn: func() string { return "docusaurus" }}

		registry := goquery.NewRegistry(detector, fallback)
		registry.Register(cdpdoc.FrameworkDocusaurus, docusaurus)

		got := registry.Get(cdpdoc.FrameworkDocusaurus)

		require.NotNil(t, got)
		assert.Equal(t, "docusaurus", got.Name())
	})

	t.Run("returns nil for unregistered framework", func(t *testing.T) {
		t.Parallel()

		detector := &mock.FrameworkDetector{}
		fallback := &mock.LinkSelector{NameFn: func() string { return "fallback" }}

		registry := goquery.NewRegistry(detector, fallback)

		got := registry.Get(cdpdoc.FrameworkDocusaurus)

		assert.Nil(t, got)
	})
}

func TestRegistry_GetForHTML(t *testing.T) {
	t.Parallel()

	t.Run("returns selector for detected framework", func(t *testing.T) {
		t.Parallel()

		detector := &mock.FrameworkDetector{
			DetectFn: func(html string) cdpdoc.Framework {
				return cdpdoc.FrameworkGitBook
			},
		}
		fallback := &mock.LinkSelector{NameFn: func() string { return "fallback" }}
		gitbook := &mock.LinkSelector{NameFn: func() string { return "gitbook" }}

		registry := goquery.NewRegistry(detector, fallback)
		registry.Register(cdpdoc.FrameworkGitBook, gitbook)

		got := registry.GetForHTML("<html>gitbook</html>")

		require.NotNil(t, got)
		assert.Equal(t, "gitbook", got.Name())
	})

	t.Run("returns fallback selector for unknown framework", func(t *testing.T) {
		t.Parallel()

		detector := &mock.FrameworkDetector{
			DetectFn: func(html string) cdpdoc.Framework {
				return cdpdoc.FrameworkUnknown
			},
		}
		fallback := &mock.LinkSelector{NameFn: func() string { return "generic" }}

		registry := goquery.NewRegistry(detector, fallback)

		got := registry.GetForHTML("<html>segment custom stack</html>")

		require.NotNil(t, got)
		assert.Equal(t, "generic", got.Name())
	})

	t.Run("returns fallback when framework detected but no selector registered", func(t *testing.T) {
		t.Parallel()

		detector := &mock.FrameworkDetector{
			DetectFn: func(html string) cdpdoc.Framework {
				return cdpdoc.FrameworkDocusaurus
			},
		}
		fallback := &mock.LinkSelector{NameFn: func() string { return "generic" }}

		registry := goquery.NewRegistry(detector, fallback)
		// Docusaurus detected but no selector registered for it

		got := registry.GetForHTML("<html>docusaurus</html>")

		require.NotNil(t, got)
		assert.Equal(t, "generic", got.Name())
	})
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("overwrites existing selector for framework", func(t *testing.T) {
		t.Parallel()

		detector := &mock.FrameworkDetector{}
		fallback := &mock.LinkSelector{NameFn: func() string { return "fallback" }}
		gitbookV1 := &mock.LinkSelector{NameFn: func() string { return "gitbook-v1" }}
		gitbookV2 := &mock.LinkSelector{NameFn: func() string { return "gitbook-v2" }}

		registry := goquery.NewRegistry(detector, fallback)
		registry.Register(cdpdoc.FrameworkGitBook, gitbookV1)
		registry.Register(cdpdoc.FrameworkGitBook, gitbookV2)

		got := registry.Get(cdpdoc.FrameworkGitBook)

		require.NotNil(t, got)
		assert.Equal(t, "gitbook-v2", got.Name())
	})
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	t.Run("returns empty slice when no selectors registered", func(t *testing.T) {
		t.Parallel()

		detector := &mock.FrameworkDetector{}
		fallback := &mock.LinkSelector{NameFn: func() string { return "fallback" }}

		registry := goquery.NewRegistry(detector, fallback)

		got := registry.List()

		assert.Empty(t, got)
	})

	t.Run("returns all registered frameworks", func(t *testing.T) {
		t.Parallel()

		detector := &mock.FrameworkDetector{}
		fallback := &mock.LinkSelector{NameFn: func() string { return "fallback" }}
		docusaurus := &mock.LinkSelector{NameFn: func() string { return "docusaurus" }}
		gitbook := &mock.LinkSelector{NameFn: func() string { return "gitbook" }}

		registry := goquery.NewRegistry(detector, fallback)
		registry.Register(cdpdoc.FrameworkDocusaurus, docusaurus)
		registry.Register(cdpdoc.FrameworkGitBook, gitbook)

		got := registry.List()

		assert.Len(t, got, 2)
		assert.Contains(t, got, cdpdoc.FrameworkDocusaurus)
		assert.Contains(t, got, cdpdoc.FrameworkGitBook)
	})
}
