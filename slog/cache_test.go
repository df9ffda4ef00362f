package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pagesift/pagesift/mock"
	pslog "github.com/pagesift/pagesift/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCache(t *testing.T) {
	t.Parallel()

	newLogger := func(buf *bytes.Buffer) *slog.Logger {
		return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	t.Run("logs hits and misses", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Cache{
			GetFn: func(url string) (string, bool) {
				return "", false
			},
		}

		cache := pslog.NewLoggingCache(inner, newLogger(&buf))
		_, ok := cache.Get("https://example.com/article")

		require.False(t, ok)
		output := buf.String()
		assert.Contains(t, output, "cache lookup")
		assert.Contains(t, output, "hit=false")

		buf.Reset()
		inner.GetFn = func(url string) (string, bool) {
			return "stored result", true
		}
		result, ok := cache.Get("https://example.com/article")
		require.True(t, ok)
		assert.Equal(t, "stored result", result)
		assert.Contains(t, buf.String(), "hit=true")
	})

	t.Run("logs stores with the resulting size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		stored := map[string]string{}
		inner := &mock.Cache{
			PutFn: func(url, result string) {
				stored[url] = result
			},
			LenFn: func() int {
				return len(stored)
			},
		}

		cache := pslog.NewLoggingCache(inner, newLogger(&buf))
		cache.Put("https://example.com/article", "formatted result")

		assert.Equal(t, "formatted result", stored["https://example.com/article"])
		output := buf.String()
		assert.Contains(t, output, "cache store")
		assert.Contains(t, output, "size=1")
	})

	t.Run("delegates clear and len", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cleared := false
		inner := &mock.Cache{
			ClearFn: func() {
				cleared = true
			},
			LenFn: func() int {
				return 7
			},
		}

		cache := pslog.NewLoggingCache(inner, newLogger(&buf))
		cache.Clear()

		assert.True(t, cleared)
		assert.Equal(t, 7, cache.Len())
		assert.Contains(t, buf.String(), "cache cleared")
	})
}
