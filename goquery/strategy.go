package goquery

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// headerSelector matches all heading levels.
const headerSelector = "h1, h2, h3, h4, h5, h6"

// Strategy is one independent heuristic for locating the main article
// content. Strategies are pure over the document: they may read any
// element but must not assume other strategies have or have not run.
// A nil result means the strategy found no candidate.
type Strategy interface {
	// Name identifies the strategy in candidates and logs.
	Name() string

	// Extract proposes the strategy's best content candidate.
	Extract(doc *goquery.Document) *pagesift.ContentCandidate
}

// Class and id keywords that raise or lower an element's quality score.
var (
	positiveIndicators = []string{"content", "article", "post", "story", "main", "body"}
	negativeIndicators = []string{"nav", "menu", "sidebar", "footer", "header", "ad", "comment"}
)

// qualityScore rates an element on content-quality indicators: text
// length tiers, paragraph and header counts, and class/id keywords.
// Floored at zero.
func qualityScore(sel *goquery.Selection) float64 {
	var score float64

	switch n := utf8.RuneCountInString(sel.Text()); {
	case n > 2000:
		score += 30
	case n > 1000:
		score += 20
	case n > 500:
		score += 10
	}

	score += math.Min(float64(sel.Find("p").Length())*2, 20)
	score += math.Min(float64(sel.Find(headerSelector).Length()), 10)

	attrs := strings.ToLower(sel.AttrOr("class", "") + " " + sel.AttrOr("id", ""))
	for _, keyword := range positiveIndicators {
		if strings.Contains(attrs, keyword) {
			score += 5
		}
	}
	for _, keyword := range negativeIndicators {
		if strings.Contains(attrs, keyword) {
			score -= 10
		}
	}

	return math.Max(score, 0)
}

// newCandidate builds a ContentCandidate for the element with cleaned
// text, the element's outer HTML, and content statistics.
func newCandidate(strategy string, sel *goquery.Selection, score float64) *pagesift.ContentCandidate {
	outer, err := goquery.OuterHtml(sel)
	if err != nil {
		outer = ""
	}

	return &pagesift.ContentCandidate{
		Text:     pagesift.CleanText(sel.Text()),
		HTML:     outer,
		Score:    score,
		Strategy: strategy,
		Element:  describeElement(sel),
		Stats:    elementStats(sel),
	}
}

func describeElement(sel *goquery.Selection) pagesift.ElementDescriptor {
	return pagesift.ElementDescriptor{
		Tag:     goquery.NodeName(sel),
		ID:      sel.AttrOr("id", ""),
		Classes: strings.Fields(sel.AttrOr("class", "")),
	}
}

func elementStats(sel *goquery.Selection) pagesift.CandidateStats {
	text := sel.Text()
	return pagesift.CandidateStats{
		CharCount:      utf8.RuneCountInString(text),
		WordCount:      len(strings.Fields(text)),
		ParagraphCount: sel.Find("p").Length(),
		HeaderCount:    sel.Find(headerSelector).Length(),
		LinkCount:      sel.Find("a").Length(),
	}
}
