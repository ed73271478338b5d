package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/mock"
	cdpslog "github.com/cdpdoc/cdpdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPageStore_Put(t *testing.T) {
	t.Parallel()

	t.Run("logs put with change flag and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageStore{
			PutFn: func(ctx context.Context, doc *cdpdoc.Document) (bool, error) {
				return true, nil
			},
		}

		store := cdpslog.NewLoggingPageStore(inner, logger)
		changed, err := store.Put(context.Background(), &cdpdoc.Document{
			CDPID: "segment",
			URL:   "https://segment.com/docs/connections/",
			Text:  "Connections overview",
		})

		require.NoError(t, err)
		assert.True(t, changed)
		output := buf.String()
		assert.Contains(t, output, "document put")
		assert.Contains(t, output, "cdp=segment")
		assert.Contains(t, output, "url=https://segment.com/docs/connections/")
		assert.Contains(t, output, "changed=true")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs empty document rejections at warn level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageStore{
			PutFn: func(ctx context.Context, doc *cdpdoc.Document) (bool, error) {
				return false, cdpdoc.Errorf(cdpdoc.EEMPTYDOC, "document %q has no extractable text", doc.URL)
			},
		}

		store := cdpslog.NewLoggingPageStore(inner, logger)
		_, err := store.Put(context.Background(), &cdpdoc.Document{
			CDPID: "zeotap",
			URL:   "https://docs.zeotap.com/home/en/shell",
		})

		require.Error(t, err)
		assert.Equal(t, cdpdoc.EEMPTYDOC, cdpdoc.ErrorCode(err))
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "empty document skipped")
		assert.Contains(t, output, "cdp=zeotap")
		assert.NotContains(t, output, "document put")
	})
}

func TestLoggingPageStore_delegation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	docs := []*cdpdoc.Document{{CDPID: "lytics", URL: "https://docs.lytics.com/docs/audiences"}}
	inner := &mock.PageStore{
		DocumentsFn: func(ctx context.Context, filter cdpdoc.DocumentFilter) ([]*cdpdoc.Document, error) {
			return docs, nil
		},
		CountDocumentsFn: func(ctx context.Context, cdpID string) (int, error) {
			return 42, nil
		},
	}

	store := cdpslog.NewLoggingPageStore(inner, logger)

	got, err := store.Documents(context.Background(), cdpdoc.DocumentFilter{})
	require.NoError(t, err)
	assert.Equal(t, docs, got)

	count, err := store.CountDocuments(context.Background(), "lytics")
	require.NoError(t, err)
	assert.Equal(t, 42, count)

	assert.Empty(t, buf.String(), "reads should not log")
}
