package pagesift

import (
	"fmt"
	"strings"
)

// CachedPrefix marks results served from the cache so the presentation
// layer can indicate staleness.
const CachedPrefix = "[Cached] "

// separatorWidth is the width of the rule between metadata and body.
const separatorWidth = 60

// FormatArticle assembles the user-facing result string: an optional
// metadata header (title, author, publish date, description), a
// separator rule, the article body, and an extraction-statistics
// trailer. The body is passed separately so callers can substitute a
// markdown rendering for the candidate's cleaned text.
func FormatArticle(meta *PageMetadata, cand *ContentCandidate, body string) string {
	var parts []string

	if meta != nil {
		if meta.Title != "" {
			parts = append(parts, meta.Title, "")
		}
		if meta.Author != "" {
			parts = append(parts, "Author: "+meta.Author)
		}
		if meta.PublishDate != "" {
			// Dates arrive as ISO 8601 timestamps; keep the date part.
			date := meta.PublishDate
			if len(date) > 10 {
				date = date[:10]
			}
			parts = append(parts, "Published: "+date)
		}
		if meta.Description != "" {
			parts = append(parts, "Description: "+meta.Description)
		}
	}

	if len(parts) > 0 {
		parts = append(parts, strings.Repeat("─", separatorWidth))
	}

	parts = append(parts, body)

	if cand != nil {
		parts = append(parts,
			"",
			fmt.Sprintf("Extracted from %s element", cand.Element.Tag),
			fmt.Sprintf("Content: %d words, %d paragraphs", cand.Stats.WordCount, cand.Stats.ParagraphCount),
		)
	}

	return strings.Join(parts, "\n")
}
