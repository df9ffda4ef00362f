package mock

import "github.com/pagesift/pagesift"

var _ pagesift.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagesift.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagesift.Extraction, error)
}

func (e *Extractor) Extract(html string) (*pagesift.Extraction, error) {
	return e.ExtractFn(html)
}
