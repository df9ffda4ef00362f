package main

import (
	"fmt"

	"github.com/pagesift/pagesift"
)

// Run executes the probe command.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	info, err := deps.Prober.Probe(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "URL:            %s\n", info.FinalURL)
	fmt.Fprintf(deps.Stdout, "Status:         %d\n", info.StatusCode)
	if info.ContentType != "" {
		fmt.Fprintf(deps.Stdout, "Content-Type:   %s\n", info.ContentType)
	}
	if info.ContentLength != "" {
		fmt.Fprintf(deps.Stdout, "Content-Length: %s\n", info.ContentLength)
	}
	if info.Server != "" {
		fmt.Fprintf(deps.Stdout, "Server:         %s\n", info.Server)
	}
	if info.LastModified != "" {
		fmt.Fprintf(deps.Stdout, "Last-Modified:  %s\n", info.LastModified)
	}
	if info.CacheControl != "" {
		fmt.Fprintf(deps.Stdout, "Cache-Control:  %s\n", info.CacheControl)
	}
	if info.Redirected {
		fmt.Fprintln(deps.Stdout, "Redirected:     yes")
	}

	return nil
}
