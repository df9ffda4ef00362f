package pagesift

import (
	"context"
	"net/http"
)

// FetchResult holds one successfully received HTTP response.
// It is exclusively owned by the extraction call that requested it.
type FetchResult struct {
	// StatusCode is the final HTTP status code.
	StatusCode int

	// FinalURL is the URL after any redirects.
	FinalURL string

	// Header holds the response headers with case-insensitive keys.
	Header http.Header

	// Body is the response body, decoded to UTF-8.
	Body []byte
}

// Fetcher retrieves HTML documents over the network.
// Implementations validate URLs, randomize request fingerprints, and
// classify transport and HTTP failures as application errors.
type Fetcher interface {
	// Fetch issues a GET request for the URL and returns the response.
	// The context controls cancellation; each attempt carries its own
	// socket timeout. Returns EINVALID without any network call for
	// URLs that fail validation, EUNSUPPORTED for non-HTML responses,
	// and a status-specific error code for HTTP error statuses.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases any transport resources.
	Close() error
}

// SiteInfo describes a site probed with a HEAD request.
type SiteInfo struct {
	StatusCode    int
	FinalURL      string
	ContentType   string
	ContentLength string
	Server        string
	LastModified  string
	CacheControl  string
	Redirected    bool
}

// Prober inspects a URL without downloading its body.
type Prober interface {
	// Probe issues a HEAD request, following redirects, and reports
	// response headers of interest.
	Probe(ctx context.Context, url string) (*SiteInfo, error)
}
