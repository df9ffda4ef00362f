package slog

import (
	"log/slog"
	"time"

	"github.com/pagesift/pagesift"
)

// Ensure LoggingExtractor implements pagesift.Extractor at compile time.
var _ pagesift.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of the winning
// strategy and its score.
type LoggingExtractor struct {
	next   pagesift.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagesift.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (extraction *pagesift.Extraction, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"duration", time.Since(begin),
			"err", err,
		}
		if extraction != nil && extraction.Candidate != nil {
			attrs = append(attrs,
				"strategy", extraction.Candidate.Strategy,
				"score", extraction.Candidate.Score,
				"chars", extraction.Candidate.Stats.CharCount,
			)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
