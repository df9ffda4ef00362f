package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// Ensure SemanticStrategy implements Strategy at compile time.
var _ Strategy = (*SemanticStrategy)(nil)

// semanticSelectors rank semantic HTML markers for article content.
// Each carries a base score; the element's quality score is added on
// top, so a well-filled generic <main> can beat an empty <article>.
var semanticSelectors = []struct {
	selector string
	base     float64
}{
	{"article", 100},
	{"main article", 95},
	{`[role="main"] article`, 90},
	{"div.article-content", 85},
	{"div.post-content", 85},
	{"div.entry-content", 80},
	{`[itemprop="articleBody"]`, 95},
	{"main", 70},
	{`[role="main"]`, 65},
}

// SemanticStrategy locates content through semantic HTML elements and
// conventional article class names.
type SemanticStrategy struct{}

func (SemanticStrategy) Name() string { return "semantic" }

func (s SemanticStrategy) Extract(doc *goquery.Document) *pagesift.ContentCandidate {
	var best *goquery.Selection
	var bestScore float64

	for _, sc := range semanticSelectors {
		doc.Find(sc.selector).Each(func(_ int, sel *goquery.Selection) {
			total := sc.base + qualityScore(sel)
			if total > bestScore {
				bestScore = total
				best = sel
			}
		})
	}

	if best == nil {
		return nil
	}
	return newCandidate(s.Name(), best, bestScore)
}
