package pagesift

// Converter converts HTML to Markdown.
// The pipeline can use a Converter to render the winning candidate's
// HTML as markdown instead of cleaned plain text.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
