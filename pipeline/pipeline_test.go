package pipeline_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pagesift/pagesift"
	"github.com/pagesift/pagesift/mock"
	"github.com/pagesift/pagesift/pipeline"
	"github.com/pagesift/pagesift/xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "https://example.com/article"

func htmlResult(body string) *pagesift.FetchResult {
	h := http.Header{}
	h.Set("Content-Type", "text/html; charset=utf-8")
	return &pagesift.FetchResult{
		StatusCode: http.StatusOK,
		FinalURL:   testURL,
		Header:     h,
		Body:       []byte(body),
	}
}

func qualifyingExtraction() *pagesift.Extraction {
	return &pagesift.Extraction{
		Metadata: &pagesift.PageMetadata{
			Title:  "Test Article",
			Author: "Jane Reporter",
		},
		Candidate: &pagesift.ContentCandidate{
			Text:     strings.Repeat("All work and no play makes the reader a dull person. ", 5),
			HTML:     "<article><p>All work and no play.</p></article>",
			Score:    150,
			Strategy: "semantic",
			Element:  pagesift.ElementDescriptor{Tag: "article"},
			Stats:    pagesift.CandidateStats{WordCount: 55, ParagraphCount: 5},
		},
	}
}

func TestPipeline_ExtractArticle(t *testing.T) {
	t.Parallel()

	t.Run("invalid URL performs zero network calls", func(t *testing.T) {
		t.Parallel()

		fetchCalled := false
		p := pipeline.New(
			&mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*pagesift.FetchResult, error) {
				fetchCalled = true
				return nil, nil
			}},
			&mock.Extractor{},
			xxhash.NewCache(),
		)

		for _, url := range []string{"ftp://x", "javascript:alert(1)", "nonsense"} {
			result := p.ExtractArticle(context.Background(), url)
			assert.Contains(t, result, "invalid URL format", url)
		}
		assert.False(t, fetchCalled)
	})

	t.Run("formats a successful extraction", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New(
			&mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*pagesift.FetchResult, error) {
				return htmlResult("<html>irrelevant to the mock extractor</html>"), nil
			}},
			&mock.Extractor{ExtractFn: func(html string) (*pagesift.Extraction, error) {
				return qualifyingExtraction(), nil
			}},
			xxhash.NewCache(),
		)

		result := p.ExtractArticle(context.Background(), testURL)

		assert.Contains(t, result, "Test Article")
		assert.Contains(t, result, "Author: Jane Reporter")
		assert.Contains(t, result, "All work and no play")
		assert.Contains(t, result, "Extracted from article element")
		assert.Contains(t, result, "Content: 55 words, 5 paragraphs")
		assert.False(t, strings.HasPrefix(result, pagesift.CachedPrefix))
	})

	t.Run("maps HTTP failures to stable messages", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			code string
			want string
		}{
			{pagesift.ENOTFOUND, "not found"},
			{pagesift.EFORBIDDEN, "access denied"},
			{pagesift.ERATELIMITED, "rate limited"},
			{pagesift.ESERVER, "server error"},
			{pagesift.ETIMEOUT, "timed out"},
			{pagesift.ECONNECTION, "connection failed"},
			{pagesift.EUNSUPPORTED, "content type"},
		}

		for _, tt := range tests {
			t.Run(tt.code, func(t *testing.T) {
				t.Parallel()

				fetchErr := pagesift.Errorf(tt.code, "%s", messageFor(tt.code))
				p := pipeline.New(
					&mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*pagesift.FetchResult, error) {
						return nil, fetchErr
					}},
					&mock.Extractor{},
					xxhash.NewCache(),
				)

				result := p.ExtractArticle(context.Background(), testURL)
				assert.True(t, strings.HasPrefix(result, "Error: "), result)
				assert.Contains(t, strings.ToLower(result), tt.want)
			})
		}
	})

	t.Run("wraps unexpected failures", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New(
			&mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*pagesift.FetchResult, error) {
				return nil, errors.New("boom")
			}},
			&mock.Extractor{},
			xxhash.NewCache(),
		)

		result := p.ExtractArticle(context.Background(), testURL)
		assert.Contains(t, result, "unexpected error")
	})

	t.Run("insufficient content never becomes an empty success", func(t *testing.T) {
		t.Parallel()

		short := qualifyingExtraction()
		short.Candidate.Text = "definitely too short"

		p := pipeline.New(
			&mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*pagesift.FetchResult, error) {
				return htmlResult("<html></html>"), nil
			}},
			&mock.Extractor{ExtractFn: func(html string) (*pagesift.Extraction, error) {
				return short, nil
			}},
			xxhash.NewCache(),
		)

		result := p.ExtractArticle(context.Background(), testURL)
		assert.Contains(t, result, "could not extract significant content")
	})

	t.Run("extractor ENOCONTENT maps to the same message", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New(
			&mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*pagesift.FetchResult, error) {
				return htmlResult("<html></html>"), nil
			}},
			&mock.Extractor{ExtractFn: func(html string) (*pagesift.Extraction, error) {
				return nil, pagesift.Errorf(pagesift.ENOCONTENT, "no qualifying article content found")
			}},
			xxhash.NewCache(),
		)

		result := p.ExtractArticle(context.Background(), testURL)
		assert.Contains(t, result, "could not extract significant content")
	})

	t.Run("renders markdown body when a converter is set", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New(
			&mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*pagesift.FetchResult, error) {
				return htmlResult("<html></html>"), nil
			}},
			&mock.Extractor{ExtractFn: func(html string) (*pagesift.Extraction, error) {
				return qualifyingExtraction(), nil
			}},
			xxhash.NewCache(),
			pipeline.WithConverter(&mock.Converter{ConvertFn: func(html string) (string, error) {
				return "# Markdown Body\n\nConverted content.", nil
			}}),
		)

		result := p.ExtractArticle(context.Background(), testURL)
		assert.Contains(t, result, "# Markdown Body")
		assert.Contains(t, result, "Content: 55 words, 5 paragraphs")
	})

	t.Run("falls back to plain text when conversion fails", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New(
			&mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*pagesift.FetchResult, error) {
				return htmlResult("<html></html>"), nil
			}},
			&mock.Extractor{ExtractFn: func(html string) (*pagesift.Extraction, error) {
				return qualifyingExtraction(), nil
			}},
			xxhash.NewCache(),
			pipeline.WithConverter(&mock.Converter{ConvertFn: func(html string) (string, error) {
				return "", errors.New("conversion failed")
			}}),
		)

		result := p.ExtractArticle(context.Background(), testURL)
		assert.Contains(t, result, "All work and no play")
	})
}

func TestPipeline_Caching(t *testing.T) {
	t.Parallel()

	t.Run("repeat calls within the TTL are byte-identical and marked", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		clock := func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return now
		}
		advance := func(d time.Duration) {
			mu.Lock()
			defer mu.Unlock()
			now = now.Add(d)
		}

		fetches := 0
		p := pipeline.New(
			&mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*pagesift.FetchResult, error) {
				fetches++
				return htmlResult("<html></html>"), nil
			}},
			&mock.Extractor{ExtractFn: func(html string) (*pagesift.Extraction, error) {
				return qualifyingExtraction(), nil
			}},
			xxhash.NewCache(xxhash.WithClock(clock)),
		)

		first := p.ExtractArticle(context.Background(), testURL)
		second := p.ExtractArticle(context.Background(), testURL)

		assert.Equal(t, pagesift.CachedPrefix+first, second)
		assert.Equal(t, 1, fetches)

		// After TTL expiry the third call fetches again.
		advance(2 * time.Hour)
		third := p.ExtractArticle(context.Background(), testURL)
		assert.Equal(t, first, third)
		assert.Equal(t, 2, fetches)
	})

	t.Run("failures are not cached", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		p := pipeline.New(
			&mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*pagesift.FetchResult, error) {
				fetches++
				return nil, pagesift.Errorf(pagesift.ENOTFOUND, "page not found (HTTP 404)")
			}},
			&mock.Extractor{},
			xxhash.NewCache(),
		)

		p.ExtractArticle(context.Background(), testURL)
		p.ExtractArticle(context.Background(), testURL)
		assert.Equal(t, 2, fetches)
	})
}

func TestPipeline_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("returns the bare cleaned text", func(t *testing.T) {
		t.Parallel()

		extraction := qualifyingExtraction()
		p := pipeline.New(
			&mock.Fetcher{FetchFn: func(ctx context.Context, url string) (*pagesift.FetchResult, error) {
				return htmlResult("<html></html>"), nil
			}},
			&mock.Extractor{ExtractFn: func(html string) (*pagesift.Extraction, error) {
				return extraction, nil
			}},
			xxhash.NewCache(),
		)

		text, err := p.ExtractText(context.Background(), testURL)
		require.NoError(t, err)
		assert.Equal(t, extraction.Candidate.Text, text)
		assert.NotContains(t, text, "Extracted from")
	})

	t.Run("propagates errors to the caller", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New(&mock.Fetcher{}, &mock.Extractor{}, xxhash.NewCache())

		_, err := p.ExtractText(context.Background(), "ftp://x")
		require.Error(t, err)
		assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
	})
}

// messageFor fabricates fetcher-style error messages per code.
func messageFor(code string) string {
	switch code {
	case pagesift.ENOTFOUND:
		return "page not found (HTTP 404)"
	case pagesift.EFORBIDDEN:
		return "access denied (HTTP 403)"
	case pagesift.ERATELIMITED:
		return "rate limited (HTTP 429)"
	case pagesift.ESERVER:
		return "server error (HTTP 500)"
	case pagesift.ETIMEOUT:
		return "request timed out"
	case pagesift.ECONNECTION:
		return "connection failed"
	case pagesift.EUNSUPPORTED:
		return `unsupported content type "application/pdf"`
	default:
		return "error"
	}
}
