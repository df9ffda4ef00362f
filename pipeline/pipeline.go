// Package pipeline orchestrates one article extraction: cache lookup,
// fetch, content extraction, formatting, and cache write-back. Every
// failure mode terminates in a descriptive result string; nothing in
// this package panics or leaks raw errors to the presentation layer.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pagesift/pagesift"
)

// minFinalContentLength is the floor the winning candidate's cleaned
// text must reach for a result to count as a successful extraction.
const minFinalContentLength = 150

// Pipeline runs the article extraction flow for single URLs.
// Concurrent calls for different URLs are safe: the only shared state
// is the injected cache.
type Pipeline struct {
	fetcher   pagesift.Fetcher
	extractor pagesift.Extractor
	cache     pagesift.Cache
	converter pagesift.Converter
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithConverter renders the winning element's HTML as markdown for the
// result body instead of cleaned plain text.
func WithConverter(c pagesift.Converter) Option {
	return func(p *Pipeline) {
		p.converter = c
	}
}

// New creates a Pipeline. The cache is constructor-injected so tests
// and callers control its lifetime; there is no hidden global cache.
func New(fetcher pagesift.Fetcher, extractor pagesift.Extractor, cache pagesift.Cache, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:   fetcher,
		extractor: extractor,
		cache:     cache,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ExtractArticle fetches the URL and returns the formatted article
// result. It always returns a displayable string: failures become
// prefixed, human-readable messages, and cache hits are marked with
// pagesift.CachedPrefix. The pipeline imposes no overall deadline
// beyond the fetcher's per-attempt timeouts; callers wanting one
// should wrap ctx.
func (p *Pipeline) ExtractArticle(ctx context.Context, url string) string {
	if err := pagesift.ValidateURL(url); err != nil {
		return errorMessage(err)
	}

	if cached, ok := p.cache.Get(url); ok {
		return pagesift.CachedPrefix + cached
	}

	res, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return errorMessage(err)
	}

	extraction, err := p.extractor.Extract(string(res.Body))
	if err != nil {
		return errorMessage(err)
	}

	cand := extraction.Candidate
	if utf8.RuneCountInString(cand.Text) < minFinalContentLength {
		return msgNoContent
	}

	body := cand.Text
	if p.converter != nil && cand.HTML != "" {
		if md, err := p.converter.Convert(cand.HTML); err == nil && strings.TrimSpace(md) != "" {
			body = strings.TrimSpace(md)
		}
	}

	result := pagesift.FormatArticle(extraction.Metadata, cand, body)
	p.cache.Put(url, result)
	return result
}

// ExtractText returns the winning candidate's bare cleaned text, the
// input contract for downstream text classifiers. No formatting
// wrapper is applied and the result is not cached.
func (p *Pipeline) ExtractText(ctx context.Context, url string) (string, error) {
	if err := pagesift.ValidateURL(url); err != nil {
		return "", err
	}

	res, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	extraction, err := p.extractor.Extract(string(res.Body))
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(extraction.Candidate.Text) < minFinalContentLength {
		return "", pagesift.Errorf(pagesift.ENOCONTENT, "no qualifying article content found")
	}

	return extraction.Candidate.Text, nil
}

const msgNoContent = "Error: could not extract significant content. " +
	"The page may use dynamic loading, sit behind a paywall, or contain mostly multimedia content."

// errorMessage maps an application error to the user-facing result
// string. The presentation layer renders these directly, so each code
// keeps a stable, recognizable phrase.
func errorMessage(err error) string {
	switch pagesift.ErrorCode(err) {
	case pagesift.EINVALID:
		return "Error: invalid URL format. Enter a valid URL starting with http:// or https://."
	case pagesift.EUNSUPPORTED:
		return fmt.Sprintf("Error: %s. This does not appear to be a web page.", pagesift.ErrorMessage(err))
	case pagesift.ETIMEOUT:
		return "Error: request timed out. The website is taking too long to respond."
	case pagesift.ECONNECTION:
		return "Error: connection failed. Check your internet connection or try again later."
	case pagesift.EFORBIDDEN:
		return "Error: access denied. The website is blocking automated requests."
	case pagesift.ENOTFOUND:
		return "Error: page not found. Verify the URL is correct."
	case pagesift.ERATELIMITED:
		return "Error: rate limited. The website is temporarily blocking requests; try again later."
	case pagesift.ESERVER:
		return fmt.Sprintf("Error: %s. The website is experiencing technical difficulties.", pagesift.ErrorMessage(err))
	case pagesift.EREMOTE:
		return fmt.Sprintf("Error: %s. The website returned an error response.", pagesift.ErrorMessage(err))
	case pagesift.ENOCONTENT:
		return msgNoContent
	default:
		return fmt.Sprintf("Error: unexpected error: %v", err)
	}
}
