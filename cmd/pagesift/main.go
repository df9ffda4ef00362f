package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pagesift/pagesift/goquery"
	"github.com/pagesift/pagesift/htmltomarkdown"
	pshttp "github.com/pagesift/pagesift/http"
	"github.com/pagesift/pagesift/pipeline"
	pslog "github.com/pagesift/pagesift/slog"
	"github.com/pagesift/pagesift/xxhash"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesift"),
		kong.Description("Extract readable article content from web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesift --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire services. Decorators are only layered in when verbose
	// logging was requested; the quiet path pays nothing.
	fetcher := pshttp.NewFetcher()
	defer fetcher.Close()

	extractor := goquery.NewExtractor()
	cache := xxhash.NewCache()

	pipelineOpts := []pipeline.Option{}
	if cli.Extract.Markdown {
		pipelineOpts = append(pipelineOpts, pipeline.WithConverter(htmltomarkdown.NewConverter()))
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		deps.Articles = pipeline.New(
			pslog.NewLoggingFetcher(fetcher, logger),
			pslog.NewLoggingExtractor(extractor, logger),
			pslog.NewLoggingCache(cache, logger),
			pipelineOpts...,
		)
	} else {
		deps.Articles = pipeline.New(fetcher, extractor, cache, pipelineOpts...)
	}

	deps.Prober = pshttp.NewProber()

	return kongCtx.Run(deps)
}
