package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// Ensure DensityStrategy implements Strategy at compile time.
var _ Strategy = (*DensityStrategy)(nil)

// minDensityTextLength is the shortest text a density candidate may have.
const minDensityTextLength = 200

// densityClassTerms are class name fragments that suggest article content.
var densityClassTerms = []string{"content", "article", "post", "story"}

// DensityStrategy scores elements by the ratio of visible text to raw
// markup, with multiplicative bonuses for semantic tag names and
// content-indicating class names.
type DensityStrategy struct{}

func (DensityStrategy) Name() string { return "density" }

func (s DensityStrategy) Extract(doc *goquery.Document) *pagesift.ContentCandidate {
	var best *goquery.Selection
	var bestDensity float64

	doc.Find("div, section, article").Each(func(_ int, sel *goquery.Selection) {
		textLen := utf8.RuneCountInString(sel.Text())

		markup, err := goquery.OuterHtml(sel)
		if err != nil {
			return
		}
		markupLen := utf8.RuneCountInString(markup)
		if markupLen == 0 {
			return
		}

		density := float64(textLen) / float64(markupLen)

		if tag := goquery.NodeName(sel); tag == "article" || tag == "section" {
			density *= 1.2
		}

		classes := strings.ToLower(sel.AttrOr("class", ""))
		for _, term := range densityClassTerms {
			if strings.Contains(classes, term) {
				density *= 1.1
				break
			}
		}

		if density > bestDensity && textLen > minDensityTextLength {
			bestDensity = density
			best = sel
		}
	})

	if best == nil {
		return nil
	}
	return newCandidate(s.Name(), best, float64(int(bestDensity*100)))
}
