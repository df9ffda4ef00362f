package http

import (
	"context"
	"net/http"
	"time"

	"github.com/pagesift/pagesift"
)

// DefaultProbeTimeout is the timeout for HEAD probe requests.
const DefaultProbeTimeout = 10 * time.Second

// Ensure Prober implements pagesift.Prober at compile time.
var _ pagesift.Prober = (*Prober)(nil)

// Prober inspects sites with HEAD requests, following redirects.
type Prober struct {
	client *http.Client
}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{
		client: &http.Client{Timeout: DefaultProbeTimeout},
	}
}

// Probe issues a HEAD request for the URL and reports response headers
// of interest without downloading the body.
func (p *Prober) Probe(ctx context.Context, rawURL string) (*pagesift.SiteInfo, error) {
	if err := pagesift.ValidateURL(rawURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "invalid request for %q: %v", rawURL, err)
	}
	for k, vs := range randomHeader() {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	finalURL := resp.Request.URL.String()

	return &pagesift.SiteInfo{
		StatusCode:    resp.StatusCode,
		FinalURL:      finalURL,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.Header.Get("Content-Length"),
		Server:        resp.Header.Get("Server"),
		LastModified:  resp.Header.Get("Last-Modified"),
		CacheControl:  resp.Header.Get("Cache-Control"),
		Redirected:    finalURL != rawURL,
	}, nil
}
