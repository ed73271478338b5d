package chat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/chat"
	"github.com/cdpdoc/cdpdoc/chunker"
	"github.com/cdpdoc/cdpdoc/index"
	"github.com/cdpdoc/cdpdoc/mock"
	"github.com/cdpdoc/cdpdoc/synth"
	"github.com/cdpdoc/cdpdoc/tfidf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scopedClassifier(cdpIDs ...string) *mock.Classifier {
	return &mock.Classifier{
		ClassifyFn: func(ctx context.Context, query string) (*cdpdoc.Classification, error) {
			return &cdpdoc.Classification{CDPIDs: cdpIDs, Confidence: 0.4}, nil
		},
	}
}

func fixedRetriever(passages ...cdpdoc.ScoredPassage) *mock.Retriever {
	return &mock.Retriever{
		RetrieveFn: func(ctx context.Context, query string, cdpIDs []string, k int) ([]cdpdoc.ScoredPassage, error) {
			return passages, nil
		},
	}
}

func segmentPassage() cdpdoc.ScoredPassage {
	return cdpdoc.ScoredPassage{
		Passage: &cdpdoc.Passage{
			ID:         "d1:0",
			DocumentID: "d1",
			CDPID:      "segment",
			URL:        "https://segment.com/docs/sources/",
			Title:      "Sources",
			Text:       "Click Add Source to connect a new source.",
		},
		Score: 0.8,
	}
}

func TestService_AnswerQuery(t *testing.T) {
	t.Parallel()

	t.Run("classifies, retrieves, and synthesizes in order", func(t *testing.T) {
		t.Parallel()

		var retrievedCDPs []string
		svc := &chat.Service{
			Classifier: scopedClassifier("segment"),
			Retriever: &mock.Retriever{
				RetrieveFn: func(ctx context.Context, query string, cdpIDs []string, k int) ([]cdpdoc.ScoredPassage, error) {
					retrievedCDPs = cdpIDs
					return []cdpdoc.ScoredPassage{segmentPassage()}, nil
				},
			},
			Synthesizer: synth.New(cdpdoc.DefaultParams()),
		}

		answer, err := svc.AnswerQuery(context.Background(), "How do I set up a new source in Segment?")
		require.NoError(t, err)

		assert.Equal(t, []string{"segment"}, retrievedCDPs, "retrieval targets the classified set")
		assert.Contains(t, answer.Text, "Click Add Source")
		assert.Equal(t, []string{"https://segment.com/docs/sources/"}, answer.Sources)
	})

	t.Run("skips retrieval for out-of-scope queries", func(t *testing.T) {
		t.Parallel()

		svc := &chat.Service{
			Classifier: &mock.Classifier{
				ClassifyFn: func(ctx context.Context, query string) (*cdpdoc.Classification, error) {
					return &cdpdoc.Classification{NoMatch: true, Confidence: 0.01}, nil
				},
			},
			Retriever: &mock.Retriever{
				RetrieveFn: func(ctx context.Context, query string, cdpIDs []string, k int) ([]cdpdoc.ScoredPassage, error) {
					t.Fatal("retrieval must not run for NoMatch")
					return nil, nil
				},
			},
			Synthesizer: synth.New(cdpdoc.DefaultParams()),
		}

		answer, err := svc.AnswerQuery(context.Background(), "Which movie is releasing this week?")
		require.NoError(t, err)

		assert.Equal(t, synth.OutOfScopeText, answer.Text)
		assert.Empty(t, answer.Sources)
	})

	t.Run("returns EINVALID for a blank query", func(t *testing.T) {
		t.Parallel()

		svc := &chat.Service{
			Classifier:  scopedClassifier("segment"),
			Retriever:   fixedRetriever(),
			Synthesizer: synth.New(cdpdoc.DefaultParams()),
		}

		_, err := svc.AnswerQuery(context.Background(), "   \n\t")
		require.Error(t, err)
		assert.Equal(t, cdpdoc.EINVALID, cdpdoc.ErrorCode(err))
	})

	t.Run("propagates classifier errors", func(t *testing.T) {
		t.Parallel()

		svc := &chat.Service{
			Classifier: &mock.Classifier{
				ClassifyFn: func(ctx context.Context, query string) (*cdpdoc.Classification, error) {
					return nil, cdpdoc.Errorf(cdpdoc.EUNAVAILABLE, "documentation index has not been built yet")
				},
			},
			Retriever:   fixedRetriever(),
			Synthesizer: synth.New(cdpdoc.DefaultParams()),
		}

		_, err := svc.AnswerQuery(context.Background(), "how do I add a source?")
		require.Error(t, err)
		assert.Equal(t, cdpdoc.EUNAVAILABLE, cdpdoc.ErrorCode(err))
	})

	t.Run("applies the rewriter to sourced answers", func(t *testing.T) {
		t.Parallel()

		svc := &chat.Service{
			Classifier:  scopedClassifier("segment"),
			Retriever:   fixedRetriever(segmentPassage()),
			Synthesizer: synth.New(cdpdoc.DefaultParams()),
			Rewriter: &mock.Rewriter{
				RewriteFn: func(ctx context.Context, query string, answer *cdpdoc.Answer, passages []cdpdoc.ScoredPassage) (string, error) {
					return "To add a source, click Add Source in your workspace.", nil
				},
			},
		}

		answer, err := svc.AnswerQuery(context.Background(), "how do I add a source?")
		require.NoError(t, err)

		assert.Equal(t, "To add a source, click Add Source in your workspace.", answer.Text)
		assert.Equal(t, []string{"https://segment.com/docs/sources/"}, answer.Sources,
			"rewriting never changes sources")
	})

	t.Run("keeps the extractive answer when rewriting fails", func(t *testing.T) {
		t.Parallel()

		svc := &chat.Service{
			Classifier:  scopedClassifier("segment"),
			Retriever:   fixedRetriever(segmentPassage()),
			Synthesizer: synth.New(cdpdoc.DefaultParams()),
			Rewriter: &mock.Rewriter{
				RewriteFn: func(ctx context.Context, query string, answer *cdpdoc.Answer, passages []cdpdoc.ScoredPassage) (string, error) {
					return "", errors.New("model unavailable")
				},
			},
		}

		answer, err := svc.AnswerQuery(context.Background(), "how do I add a source?")
		require.NoError(t, err, "rewrite failures are swallowed")

		assert.Contains(t, answer.Text, "Click Add Source")
	})

	t.Run("never rewrites the fixed not-found response", func(t *testing.T) {
		t.Parallel()

		svc := &chat.Service{
			Classifier:  scopedClassifier("segment"),
			Retriever:   fixedRetriever(),
			Synthesizer: synth.New(cdpdoc.DefaultParams()),
			Rewriter: &mock.Rewriter{
				RewriteFn: func(ctx context.Context, query string, answer *cdpdoc.Answer, passages []cdpdoc.ScoredPassage) (string, error) {
					t.Fatal("rewriter must not run without sources")
					return "", nil
				},
			},
		}

		answer, err := svc.AnswerQuery(context.Background(), "how do I frobnicate?")
		require.NoError(t, err)
		assert.Equal(t, synth.NotFoundText, answer.Text)
	})
}

// platformDocs returns a documentation corpus spanning all four CDPs. The
// non-Segment texts avoid the words "add", "new", "source" and "segment" so
// a source-setup query scores zero against them.
func platformDocs() []*cdpdoc.Document {
	return []*cdpdoc.Document{
		{
			ID:    "seg-add-source",
			CDPID: "segment",
			URL:   "https://segment.com/docs/connections/sources/add/",
			Title: "Add a Source",
			Text:  "Add a source in Segment. To add a new source, open your Segment workspace and go to Connections. Click Add Source, pick the catalog entry you want, and give the source a name. Segment creates a write key for the new source. Use the write key to configure the SDK so events flow from the source into your Segment workspace.",
		},
		{
			ID:    "seg-destinations",
			CDPID: "segment",
			URL:   "https://segment.com/docs/connections/destinations/",
			Title: "Destinations",
			Text:  "Destinations in Segment. A destination receives the events your Segment workspace collects. Enable a destination from the catalog, map event names, and confirm the connection with the event tester before turning it on for production traffic.",
		},
		{
			ID:    "mp-profiles",
			CDPID: "mparticle",
			URL:   "https://docs.mparticle.com/guides/profiles/",
			Title: "User Profiles",
			Text:  "User profiles in mParticle. mParticle builds a unified customer profile from every event you record. Define an audience with rule criteria, then forward the audience to downstream tools. The events API accepts batches, and data plans validate attributes before they reach the profile store.",
		},
		{
			ID:    "ly-scoring",
			CDPID: "lytics",
			URL:   "https://docs.lytics.com/product/scoring/",
			Title: "Behavioral Scoring",
			Text:  "Behavioral scoring in Lytics. Lytics assigns behavioral scores that rank visitors by engagement. Build an audience from score thresholds and activate campaigns when a visitor crosses a threshold. Scores decay over time, keeping campaign targeting fresh.",
		},
		{
			ID:    "zt-identity",
			CDPID: "zeotap",
			URL:   "https://docs.zeotap.com/articles/identity/",
			Title: "Identity Resolution",
			Text:  "Identity resolution in Zeotap. Zeotap links hashed emails and device identifiers into one identity graph. Consent signals travel with the identity, and activation honors the consent state recorded for each identifier.",
		},
	}
}

// TestService_AnswerSourcesResolveToStoredDocuments runs a turn through the
// real engine and synthesizer and checks that every cited source URL belongs
// to a document the index was built from.
func TestService_AnswerSourcesResolveToStoredDocuments(t *testing.T) {
	t.Parallel()

	docs := platformDocs()
	params := cdpdoc.DefaultParams()

	builder := &index.Builder{
		Pages: &mock.PageStore{
			DocumentsFn: func(ctx context.Context, filter cdpdoc.DocumentFilter) ([]*cdpdoc.Document, error) {
				return docs, nil
			},
		},
		Chunker: chunker.New(params),
		NewVectorizer: func() index.FitVectorizer {
			return tfidf.New(tfidf.WithMaxFeatures(params.MaxFeatures))
		},
	}
	snap, err := builder.Build(context.Background())
	require.NoError(t, err)

	engine := index.NewEngine(params)
	engine.Publish(snap)

	svc := &chat.Service{
		Classifier:  engine,
		Retriever:   engine,
		Synthesizer: synth.New(params),
	}

	answer, err := svc.AnswerQuery(context.Background(), "How do I add a new source in Segment?")
	require.NoError(t, err)
	require.NotEmpty(t, answer.Sources)
	assert.Contains(t, answer.Sources, "https://segment.com/docs/connections/sources/add/")

	stored := make(map[string]bool, len(docs))
	for _, doc := range docs {
		stored[doc.URL] = true
	}
	for _, src := range answer.Sources {
		assert.True(t, stored[src], "answer cites %s, which no stored document carries", src)
	}
}
