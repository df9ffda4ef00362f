package pagesift

// PageMetadata holds page-level metadata extracted from a document.
// All fields are optional; absent fields are zero values.
type PageMetadata struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Keywords     string `json:"keywords,omitempty"`
	Author       string `json:"author,omitempty"`
	PublishDate  string `json:"publishDate,omitempty"`
	ModifiedDate string `json:"modifiedDate,omitempty"`

	// Language is the two-letter primary language subtag, "en" when
	// the page declares nothing.
	Language string `json:"language,omitempty"`

	// OpenGraph holds og:* properties keyed without the prefix.
	OpenGraph map[string]string `json:"openGraph,omitempty"`

	// Twitter holds twitter:* properties keyed without the prefix.
	Twitter map[string]string `json:"twitter,omitempty"`

	// StructuredData merges JSON-LD objects and Article microdata
	// into a flat mapping.
	StructuredData map[string]any `json:"structuredData,omitempty"`
}
