package pagesift

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	multiSpaceRe   = regexp.MustCompile(` {2,}`)
	multiNewlineRe = regexp.MustCompile(`\n\s*\n\s*\n+`)
	newlinePadRe   = regexp.MustCompile(` *\n *`)
	bangRunRe      = regexp.MustCompile(`!{3,}`)
	questionRunRe  = regexp.MustCompile(`\?{3,}`)
	dotRunRe       = regexp.MustCompile(`\.{4,}`)
)

// minLineLength is the shortest non-empty line kept by CleanText.
// Shorter lines are almost always navigation or social buttons.
const minLineLength = 6

// CleanText normalizes extracted article text into presentable prose.
// It is pure, deterministic, and idempotent: whitespace is collapsed,
// punctuation runs are capped, and short boilerplate lines are dropped
// while intentional blank-line spacing is preserved.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	// Normalize whitespace while preserving structure.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")
	text = multiSpaceRe.ReplaceAllString(text, " ")

	// Clean up line breaks.
	text = multiNewlineRe.ReplaceAllString(text, "\n\n")
	text = newlinePadRe.ReplaceAllString(text, "\n")

	// Cap excessive punctuation.
	text = bangRunRe.ReplaceAllString(text, "!!!")
	text = questionRunRe.ReplaceAllString(text, "???")
	text = dotRunRe.ReplaceAllString(text, "...")

	// Drop short lines (likely navigation), keeping empty lines as
	// intentional spacing, then collapse runs of empty lines to one.
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	emptyRun := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			emptyRun++
			if emptyRun <= 1 {
				cleaned = append(cleaned, line)
			}
		case utf8.RuneCountInString(line) >= minLineLength:
			emptyRun = 0
			cleaned = append(cleaned, line)
		}
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
