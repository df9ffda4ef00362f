package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pagesift/pagesift/bloom"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Run executes the extract command. URLs are processed concurrently
// under a shared rate limit, but results print in input order.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	urls, err := c.collectURLs()
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs to extract; pass them as arguments or with --file")
	}

	limiter := rate.NewLimiter(rate.Limit(c.Rate), 1)

	results := make([]string, len(urls))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, url := range urls {
		g.Go(func() error {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			results[i] = deps.Articles.ExtractArticle(ctx, url)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
			fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
			fmt.Fprintln(deps.Stdout)
		}
		if len(urls) > 1 {
			fmt.Fprintf(deps.Stdout, "URL: %s\n\n", urls[i])
		}
		fmt.Fprintln(deps.Stdout, result)
	}

	return nil
}

// collectURLs merges argument URLs with file URLs, preserving first
// occurrence order and dropping duplicates.
func (c *ExtractCmd) collectURLs() ([]string, error) {
	urls := make([]string, 0, len(c.URLs))
	seen := bloom.NewFilter(10000, 0.001)

	add := func(url string) {
		url = strings.TrimSpace(url)
		if url == "" || strings.HasPrefix(url, "#") {
			return
		}
		if seen.Seen(url) {
			return
		}
		urls = append(urls, url)
	}

	for _, url := range c.URLs {
		add(url)
	}

	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return nil, fmt.Errorf("failed to open URL file: %w", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			add(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read URL file: %w", err)
		}
	}

	return urls, nil
}
