package chunker_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/chunker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params(maxChars, minChars, overlap int) cdpdoc.Params {
	p := cdpdoc.DefaultParams()
	p.MaxChunkChars = maxChars
	p.MinChunkChars = minChars
	p.OverlapSentences = overlap
	return p
}

func doc(text string) *cdpdoc.Document {
	return &cdpdoc.Document{
		ID:    "doc-1",
		CDPID: "segment",
		URL:   "https://segment.com/docs/sources/",
		Title: "Add a Source",
		Text:  text,
	}
}

// prose builds n short sentences of predictable size.
func prose(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "Sentence number %02d explains segment sources in detail. ", i)
	}
	return b.String()
}

func TestChunker_Chunk(t *testing.T) {
	t.Parallel()

	t.Run("returns no passages for whitespace-only text", func(t *testing.T) {
		t.Parallel()

		c := chunker.New(params(200, 50, 2))

		assert.Empty(t, c.Chunk(doc(" \n\t ")))
	})

	t.Run("yields exactly one passage below the minimum size", func(t *testing.T) {
		t.Parallel()

		c := chunker.New(params(1000, 200, 2))

		got := c.Chunk(doc("Open Connections.\nClick Add Source."))

		require.Len(t, got, 1)
		assert.Equal(t, "Open Connections. Click Add Source.", got[0].Text)
		assert.Equal(t, 0, got[0].ChunkIndex)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		c := chunker.New(params(200, 50, 2))
		d := doc(prose(40))

		assert.Equal(t, c.Chunk(d), c.Chunk(d))
	})

	t.Run("bounds every passage by the window size", func(t *testing.T) {
		t.Parallel()

		c := chunker.New(params(200, 50, 1))

		got := c.Chunk(doc(prose(40)))

		require.Greater(t, len(got), 1)
		for _, p := range got {
			assert.LessOrEqual(t, len(p.Text), 200)
		}
		for _, p := range got[:len(got)-1] {
			assert.GreaterOrEqual(t, len(p.Text), 50)
		}
	})

	t.Run("repeats trailing sentences across window boundaries", func(t *testing.T) {
		t.Parallel()

		c := chunker.New(params(200, 50, 2))

		got := c.Chunk(doc(prose(40)))

		require.Greater(t, len(got), 1)
		for i := 1; i < len(got); i++ {
			prev := strings.Split(got[i-1].Text, ". ")
			// Last full sentence of the previous window reappears in the next.
			carried := prev[len(prev)-2]
			assert.Contains(t, got[i].Text, carried)
		}
	})

	t.Run("assigns sequential chunk indexes and stable ids", func(t *testing.T) {
		t.Parallel()

		c := chunker.New(params(200, 50, 2))

		got := c.Chunk(doc(prose(40)))

		for i, p := range got {
			assert.Equal(t, i, p.ChunkIndex)
			assert.Equal(t, cdpdoc.PassageID("doc-1", i), p.ID)
		}
	})

	t.Run("copies document fields onto every passage", func(t *testing.T) {
		t.Parallel()

		c := chunker.New(params(200, 50, 2))

		got := c.Chunk(doc(prose(40)))

		for _, p := range got {
			assert.Equal(t, "doc-1", p.DocumentID)
			assert.Equal(t, "segment", p.CDPID)
			assert.Equal(t, "https://segment.com/docs/sources/", p.URL)
			assert.Equal(t, "Add a Source", p.Title)
		}
	})

	t.Run("collapses interior whitespace", func(t *testing.T) {
		t.Parallel()

		c := chunker.New(params(1000, 10, 2))

		got := c.Chunk(doc("Open \t Connections.\n\nThen   click Add Source."))

		require.Len(t, got, 1)
		assert.Equal(t, "Open Connections. Then click Add Source.", got[0].Text)
	})

	t.Run("hard-splits a sentence longer than the window", func(t *testing.T) {
		t.Parallel()

		c := chunker.New(params(100, 10, 2))

		got := c.Chunk(doc(strings.Repeat("x", 250)))

		require.Len(t, got, 3)
		assert.Equal(t, 100, len(got[0].Text))
		assert.Equal(t, 100, len(got[1].Text))
		assert.Equal(t, 50, len(got[2].Text))
	})
}
