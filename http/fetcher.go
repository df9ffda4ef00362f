// Package http provides the network-facing implementations of
// pagesift.Fetcher and pagesift.Prober. Requests carry randomized
// browser-like headers and a bounded random pre-request delay to avoid
// being fingerprinted as an automated client; transport failures are
// retried with exponential backoff and classified as application errors.
package http

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"mime"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/pagesift/pagesift"
)

// DefaultFetchTimeout is the per-attempt socket timeout for GET requests.
const DefaultFetchTimeout = 20 * time.Second

// Default bounds for the random delay inserted before each request.
const (
	DefaultDelayMin = 500 * time.Millisecond
	DefaultDelayMax = 2 * time.Second
)

// DefaultRetryDelays returns the backoff delays between fetch attempts:
// 1s, 2s (three attempts total). Only transport-level failures are
// retried; received HTTP error statuses are terminal.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// Ensure Fetcher implements pagesift.Fetcher at compile time.
var _ pagesift.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML documents using plain HTTP requests.
// It does not execute JavaScript.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	retryDelays []time.Duration
	delayMin    time.Duration
	delayMax    time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt socket timeout.
// Defaults to DefaultFetchTimeout (20s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRetryDelays sets the backoff delays between attempts. The number
// of attempts is len(delays)+1. Useful for testing without real waits.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// WithRequestDelay sets the bounds of the random pre-request delay.
// Pass (0, 0) to disable the delay entirely.
func WithRequestDelay(min, max time.Duration) Option {
	return func(f *Fetcher) {
		f.delayMin = min
		f.delayMax = max
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		retryDelays: DefaultRetryDelays(),
		delayMin:    DefaultDelayMin,
		delayMax:    DefaultDelayMax,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the document at the given URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*pagesift.FetchResult, error) {
	if err := pagesift.ValidateURL(rawURL); err != nil {
		return nil, err
	}

	header := randomHeader()

	if err := sleepCtx(ctx, randomDelay(f.delayMin, f.delayMax)); err != nil {
		return nil, err
	}

	maxAttempts := len(f.retryDelays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		res, err := f.attempt(ctx, rawURL, header)
		if err == nil {
			return res, nil
		}

		// Application errors (HTTP status, content type) are terminal.
		var appErr *pagesift.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}
		if err := sleepCtx(ctx, f.retryDelays[attempt]); err != nil {
			return nil, err
		}
	}

	return nil, classifyTransport(lastErr)
}

// attempt issues a single GET request and classifies any HTTP-level
// failure. Transport errors are returned unwrapped so the caller can
// retry them.
func (f *Fetcher) attempt(ctx context.Context, rawURL string, header http.Header) (*pagesift.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "invalid request for %q: %v", rawURL, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, classifyStatus(resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "text/html" {
		return nil, pagesift.Errorf(pagesift.EUNSUPPORTED, "unsupported content type %q", contentType)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &pagesift.FetchResult{
		StatusCode: resp.StatusCode,
		FinalURL:   resp.Request.URL.String(),
		Header:     resp.Header,
		Body:       []byte(DecodeBody(body, contentType)),
	}, nil
}

// Close releases idle transport connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// classifyStatus maps a received HTTP error status to an application
// error. These are never retried.
func classifyStatus(code int) error {
	switch {
	case code == http.StatusForbidden:
		return pagesift.Errorf(pagesift.EFORBIDDEN, "access denied (HTTP %d)", code)
	case code == http.StatusNotFound:
		return pagesift.Errorf(pagesift.ENOTFOUND, "page not found (HTTP %d)", code)
	case code == http.StatusTooManyRequests:
		return pagesift.Errorf(pagesift.ERATELIMITED, "rate limited (HTTP %d)", code)
	case code >= 500:
		return pagesift.Errorf(pagesift.ESERVER, "server error (HTTP %d)", code)
	default:
		return pagesift.Errorf(pagesift.EREMOTE, "HTTP error %d", code)
	}
}

// classifyTransport maps a transport-level failure, after retries are
// exhausted, to an application error.
func classifyTransport(err error) error {
	if err == nil {
		return pagesift.Errorf(pagesift.ECONNECTION, "connection failed")
	}

	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return pagesift.Errorf(pagesift.ETIMEOUT, "request timed out")
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return pagesift.Errorf(pagesift.ETIMEOUT, "request timed out")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return pagesift.Errorf(pagesift.ETIMEOUT, "request timed out")
	}

	return pagesift.Errorf(pagesift.ECONNECTION, "connection failed: %v", err)
}

// randomDelay picks a uniform random duration in [min, max).
// Returns zero when the bounds are disabled or inverted.
func randomDelay(min, max time.Duration) time.Duration {
	if max <= min {
		return 0
	}
	return min + time.Duration(rand.Int64N(int64(max-min)))
}

// sleepCtx sleeps for d unless the context is canceled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
