package goquery

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// Ensure ReadabilityStrategy implements Strategy at compile time.
var _ Strategy = (*ReadabilityStrategy)(nil)

const (
	// minReadabilityTextLength is the shortest text considered.
	minReadabilityTextLength = 100

	// idealSentenceLength is the average words-per-sentence the score
	// decays away from.
	idealSentenceLength = 17.5
)

// ReadabilityStrategy scores elements by prose quality: how close the
// average sentence length is to the ideal, plus paragraph and header
// structure.
type ReadabilityStrategy struct{}

func (ReadabilityStrategy) Name() string { return "readability" }

func (s ReadabilityStrategy) Extract(doc *goquery.Document) *pagesift.ContentCandidate {
	var best *goquery.Selection
	var bestScore float64

	doc.Find("div, section, article, main").Each(func(_ int, sel *goquery.Selection) {
		text := sel.Text()
		if utf8.RuneCountInString(text) < minReadabilityTextLength {
			return
		}

		sentences := strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?")
		words := len(strings.Fields(text))
		if sentences == 0 || words == 0 {
			return
		}

		avgSentenceLength := float64(words) / float64(sentences)
		sentenceScore := math.Max(0, 20-math.Abs(avgSentenceLength-idealSentenceLength))
		paraScore := math.Min(float64(sel.Find("p").Length()), 20)
		headerScore := math.Min(float64(sel.Find(headerSelector).Length())*3, 15)

		total := sentenceScore + paraScore + headerScore
		if total > bestScore {
			bestScore = total
			best = sel
		}
	})

	if best == nil {
		return nil
	}
	return newCandidate(s.Name(), best, float64(int(bestScore)))
}
