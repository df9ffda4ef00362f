package mock

import (
	"context"

	"github.com/pagesift/pagesift"
)

var _ pagesift.Prober = (*Prober)(nil)

// Prober is a mock implementation of pagesift.Prober.
type Prober struct {
	ProbeFn func(ctx context.Context, url string) (*pagesift.SiteInfo, error)
}

func (p *Prober) Probe(ctx context.Context, url string) (*pagesift.SiteInfo, error) {
	return p.ProbeFn(ctx, url)
}
