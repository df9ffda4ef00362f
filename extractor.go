package pagesift

// ElementDescriptor identifies the DOM element a candidate came from.
type ElementDescriptor struct {
	Tag     string
	ID      string
	Classes []string
}

// CandidateStats holds content statistics for a candidate element.
type CandidateStats struct {
	CharCount      int
	WordCount      int
	ParagraphCount int
	HeaderCount    int
	LinkCount      int
}

// ContentCandidate is one strategy's proposal for the page's main
// article content. Candidates are ephemeral and compared only within a
// single extraction call.
type ContentCandidate struct {
	// Text is the candidate's cleaned plain text.
	Text string

	// HTML is the candidate element's outer HTML, boilerplate removed.
	HTML string

	// Score is the strategy-assigned quality score.
	Score float64

	// Strategy names the strategy that produced the candidate.
	Strategy string

	// Element describes the source DOM element.
	Element ElementDescriptor

	// Stats holds content statistics for the source element.
	Stats CandidateStats
}

// Extraction is the combined output of one extraction call.
type Extraction struct {
	// Metadata holds page-level metadata. Always present; individual
	// fields are best-effort.
	Metadata *PageMetadata

	// Candidate is the winning content candidate.
	Candidate *ContentCandidate
}

// Extractor extracts the main article content and page metadata from
// raw HTML.
type Extractor interface {
	// Extract sanitizes the document, extracts metadata, and runs all
	// content strategies, returning the best qualifying candidate.
	// Returns ENOCONTENT when no strategy yields a candidate whose
	// cleaned text exceeds the minimum content length.
	Extract(html string) (*Extraction, error)
}
