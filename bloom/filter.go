// Package bloom provides URL deduplication for batch extraction input.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks URLs already accepted into a batch. It wraps a Bloom
// filter, so a vanishingly small fraction of fresh URLs can be
// misreported as seen; a URL reported fresh is always fresh.
// Not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Filter sized for n expected URLs with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen records the URL and reports whether it was already present.
func (f *Filter) Seen(url string) bool {
	return f.f.TestAndAddString(url)
}

// Count returns the approximate number of distinct URLs recorded.
func (f *Filter) Count() uint {
	return uint(f.f.ApproximatedSize())
}
