package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// MinContentLength is the cleaned-text length a candidate must exceed
// to qualify for selection.
const MinContentLength = 200

// Ensure Extractor implements pagesift.Extractor at compile time.
var _ pagesift.Extractor = (*Extractor)(nil)

// DefaultStrategies returns the content strategies in their canonical
// execution order. Order matters: ties across strategies resolve to
// the earlier strategy because selection uses a strictly-greater
// comparison.
func DefaultStrategies() []Strategy {
	return []Strategy{
		SemanticStrategy{},
		LengthStrategy{},
		DensityStrategy{},
		ReadabilityStrategy{},
	}
}

// Extractor extracts page metadata and the main article content from
// raw HTML by sanitizing the document and racing the content
// strategies against each other.
type Extractor struct {
	strategies []Strategy
}

// NewExtractor creates an Extractor with the default strategies.
func NewExtractor() *Extractor {
	return &Extractor{strategies: DefaultStrategies()}
}

// NewExtractorWithStrategies creates an Extractor with a custom
// strategy list, preserving the given execution order.
func NewExtractorWithStrategies(strategies ...Strategy) *Extractor {
	return &Extractor{strategies: strategies}
}

// Extract parses and sanitizes the HTML, extracts metadata, and
// returns the best qualifying content candidate across all strategies.
// One strategy finding nothing never affects the others. Returns
// ENOCONTENT when no candidate's cleaned text exceeds MinContentLength.
func (e *Extractor) Extract(rawHTML string) (*pagesift.Extraction, error) {
	if rawHTML == "" {
		return nil, pagesift.Errorf(pagesift.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "failed to parse HTML: %v", err)
	}

	Sanitize(doc)

	meta := Metadata(doc)

	var best *pagesift.ContentCandidate
	var bestScore float64
	for _, strategy := range e.strategies {
		cand := strategy.Extract(doc)
		if cand == nil {
			continue
		}
		if cand.Score > bestScore && utf8.RuneCountInString(cand.Text) > MinContentLength {
			bestScore = cand.Score
			best = cand
		}
	}

	if best == nil {
		return nil, pagesift.Errorf(pagesift.ENOCONTENT, "no qualifying article content found")
	}

	return &pagesift.Extraction{
		Metadata:  meta,
		Candidate: best,
	}, nil
}
