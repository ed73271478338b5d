package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkWALMode compares write performance between WAL and rollback
// journal modes under a crawl workload: one CDP, many page upserts.
func BenchmarkWALMode(b *testing.B) {
	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkPagePuts(b, false)
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkPagePuts(b, true)
	})
}

func benchmarkPagePuts(b *testing.B, useWAL bool) {
	b.Helper()

	tmpDir := b.TempDir()
	dbPath := filepath.Join(tmpDir, "bench.db")

	db := sqlite.NewDB(dbPath)
	require.NoError(b, db.Open())

	if useWAL {
		ctx := context.Background()
		_, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL")
		require.NoError(b, err)
	}

	defer func() {
		db.Close()
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}()

	ctx := context.Background()
	cdpSvc := sqlite.NewCDPService(db)
	cdp := &cdpdoc.CDP{
		ID:      "segment",
		Name:    "Segment",
		BaseURL: "https://segment.com/docs/",
	}
	require.NoError(b, cdpSvc.CreateCDP(ctx, cdp))

	store := sqlite.NewPageStore(db)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		doc := &cdpdoc.Document{
			CDPID: cdp.ID,
			URL:   fmt.Sprintf("https://segment.com/docs/page%d", i),
			Title: fmt.Sprintf("Page %d", i),
			Text:  fmt.Sprintf("Page %d explains how to configure the integration. Lorem ipsum dolor sit amet, consectetur adipiscing elit.", i),
		}
		if _, err := store.Put(ctx, doc); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRecrawl measures the upsert path: storing the same pages twice,
// as a scheduled re-crawl of an unchanged site does.
func BenchmarkRecrawl(b *testing.B) {
	const pagesPerCrawl = 100

	for i := 0; i < b.N; i++ {
		b.StopTimer()

		tmpDir := b.TempDir()
		dbPath := filepath.Join(tmpDir, fmt.Sprintf("bench%d.db", i))

		db := sqlite.NewDB(dbPath)
		require.NoError(b, db.Open())

		ctx := context.Background()
		cdpSvc := sqlite.NewCDPService(db)
		cdp := &cdpdoc.CDP{
			ID:      "segment",
			Name:    "Segment",
			BaseURL: "https://segment.com/docs/",
		}
		require.NoError(b, cdpSvc.CreateCDP(ctx, cdp))

		store := sqlite.NewPageStore(db)
		for j := 0; j < pagesPerCrawl; j++ {
			doc := &cdpdoc.Document{
				CDPID: cdp.ID,
				URL:   fmt.Sprintf("https://segment.com/docs/page%d", j),
				Title: fmt.Sprintf("Page %d", j),
				Text:  fmt.Sprintf("Content for page %d. Lorem ipsum dolor sit amet.", j),
			}
			if _, err := store.Put(ctx, doc); err != nil {
				b.Fatal(err)
			}
		}

		b.StartTimer()

		// Second pass over identical pages exercises the no-change branch.
		for j := 0; j < pagesPerCrawl; j++ {
			doc := &cdpdoc.Document{
				CDPID: cdp.ID,
				URL:   fmt.Sprintf("https://segment.com/docs/page%d", j),
				Title: fmt.Sprintf("Page %d", j),
				Text:  fmt.Sprintf("Content for page %d. Lorem ipsum dolor sit amet.", j),
			}
			if _, err := store.Put(ctx, doc); err != nil {
				b.Fatal(err)
			}
		}

		b.StopTimer()
		db.Close()
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}
}
