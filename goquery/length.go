package goquery

import (
	"math"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// Ensure LengthStrategy implements Strategy at compile time.
var _ Strategy = (*LengthStrategy)(nil)

// LengthStrategy scores container elements by text volume: length and
// paragraph count raise the score, a high link-to-text ratio lowers it.
// Nested nav/aside/footer/header children are stripped from each
// candidate before measuring.
type LengthStrategy struct{}

func (LengthStrategy) Name() string { return "length" }

func (s LengthStrategy) Extract(doc *goquery.Document) *pagesift.ContentCandidate {
	var best *goquery.Selection
	var bestScore float64

	doc.Find("div, section, article, main").Each(func(_ int, sel *goquery.Selection) {
		sel.Find("nav, aside, footer, header").Remove()

		text := sel.Text()
		chars := float64(utf8.RuneCountInString(text))

		lengthScore := math.Min(chars/100, 50)
		paraScore := math.Min(float64(sel.Find("p").Length())*2, 30)

		linkRatio := 1.0
		if chars > 0 {
			var linkChars int
			sel.Find("a").Each(func(_ int, link *goquery.Selection) {
				linkChars += utf8.RuneCountInString(link.Text())
			})
			linkRatio = float64(linkChars) / chars
		}

		total := lengthScore + paraScore - linkRatio*20
		if total > bestScore {
			bestScore = total
			best = sel
		}
	})

	if best == nil {
		return nil
	}
	return newCandidate(s.Name(), best, bestScore)
}
