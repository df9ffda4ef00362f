package slog

import (
	"log/slog"

	"github.com/pagesift/pagesift"
)

// Ensure LoggingCache implements pagesift.Cache at compile time.
var _ pagesift.Cache = (*LoggingCache)(nil)

// LoggingCache wraps a Cache with hit and miss logging.
type LoggingCache struct {
	next   pagesift.Cache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next pagesift.Cache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache and logs the lookup outcome.
func (c *LoggingCache) Get(url string) (string, bool) {
	result, ok := c.next.Get(url)
	c.logger.Debug("cache lookup", "url", url, "hit", ok)
	return result, ok
}

// Put delegates to the wrapped cache.
func (c *LoggingCache) Put(url, result string) {
	c.next.Put(url, result)
	c.logger.Debug("cache store", "url", url, "size", c.next.Len())
}

// Clear delegates to the wrapped cache.
func (c *LoggingCache) Clear() {
	c.next.Clear()
	c.logger.Debug("cache cleared")
}

// Len delegates to the wrapped cache.
func (c *LoggingCache) Len() int {
	return c.next.Len()
}
