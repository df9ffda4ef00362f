package main

import (
	"fmt"

	"github.com/pagesift/pagesift"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	text, err := deps.Articles.ExtractText(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
