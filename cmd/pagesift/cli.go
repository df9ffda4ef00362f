package main

import (
	"context"
	"io"

	"github.com/pagesift/pagesift"
)

// ArticleService is the slice of the extraction pipeline the commands use.
type ArticleService interface {
	ExtractArticle(ctx context.Context, url string) string
	ExtractText(ctx context.Context, url string) (string, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Articles ArticleService
	Prober   pagesift.Prober
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and extraction details to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract article content from one or more URLs"`
	Probe   ProbeCmd   `cmd:"" help:"Inspect a site's response headers without extracting"`
	Text    TextCmd    `cmd:"" help:"Print the bare article text for one URL"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string `arg:"" optional:"" help:"Article URLs"`
	File        string   `short:"f" help:"Read additional URLs from a file, one per line"`
	Markdown    bool     `short:"m" help:"Render the article body as Markdown"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent fetch limit"`
	Rate        float64  `short:"r" default:"1" help:"Requests per second across all workers"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	URL string `arg:"" help:"URL to probe"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	URL string `arg:"" help:"Article URL"`
}
