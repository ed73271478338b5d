package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteDocuments(t *testing.T) {
	t.Parallel()

	t.Run("round trips through the source", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writer := fs.NewWriter(dir)
		ctx := context.Background()

		fetchedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		original := []*cdpdoc.Document{
			{
				CDPID:     "segment",
				URL:       "https://segment.com/docs/connections/",
				Title:     "Connections",
				Text:      "Connections link sources to destinations.",
				FetchedAt: fetchedAt,
			},
			{
				CDPID: "segment",
				URL:   "https://segment.com/docs/sources/",
				Title: "Sources",
				Text:  "Sources send data into Segment.",
			},
		}

		require.NoError(t, writer.WriteDocuments(ctx, "segment", original))

		docs := collectDocuments(t, fs.NewSource(dir))
		require.Len(t, docs, 2)
		assert.Equal(t, original[0].URL, docs[0].URL)
		assert.Equal(t, original[0].Title, docs[0].Title)
		assert.Equal(t, original[0].Text, docs[0].Text)
		assert.Equal(t, "segment", docs[0].CDPID)
		assert.True(t, docs[0].FetchedAt.Equal(fetchedAt))
		assert.Equal(t, original[1].URL, docs[1].URL)
		assert.True(t, docs[1].FetchedAt.IsZero())
	})

	t.Run("creates the export directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "corpus")
		writer := fs.NewWriter(dir)

		err := writer.WriteDocuments(context.Background(), "lytics", []*cdpdoc.Document{
			{CDPID: "lytics", URL: "https://docs.lytics.com/x/", Text: "Xi."},
		})
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "lytics_docs.json"))
		assert.NoError(t, err)
	})

	t.Run("replaces a previous export and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writer := fs.NewWriter(dir)
		ctx := context.Background()

		require.NoError(t, writer.WriteDocuments(ctx, "segment", []*cdpdoc.Document{
			{CDPID: "segment", URL: "https://segment.com/docs/a/", Text: "Old."},
			{CDPID: "segment", URL: "https://segment.com/docs/b/", Text: "Old."},
		}))
		require.NoError(t, writer.WriteDocuments(ctx, "segment", []*cdpdoc.Document{
			{CDPID: "segment", URL: "https://segment.com/docs/a/", Text: "New."},
		}))

		docs := collectDocuments(t, fs.NewSource(dir))
		require.Len(t, docs, 1)
		assert.Equal(t, "New.", docs[0].Text)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "segment_docs.json", entries[0].Name())
	})

	t.Run("writes an empty array for a cdp with no documents", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writer := fs.NewWriter(dir)

		require.NoError(t, writer.WriteDocuments(context.Background(), "zeotap", nil))

		data, err := os.ReadFile(filepath.Join(dir, "zeotap_docs.json"))
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("returns EINVALID for empty cdp ID", func(t *testing.T) {
		t.Parallel()

		writer := fs.NewWriter(t.TempDir())

		err := writer.WriteDocuments(context.Background(), "", nil)
		require.Error(t, err)
		assert.Equal(t, cdpdoc.EINVALID, cdpdoc.ErrorCode(err))
	})
}
