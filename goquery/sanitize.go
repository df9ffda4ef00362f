// Package goquery provides the goquery-based implementation of
// pagesift.Extractor: document sanitization, page metadata extraction,
// and the multi-strategy article content scorer.
package goquery

import "github.com/PuerkitoBio/goquery"

// boilerplateSelectors match known non-content regions removed before
// extraction: chrome tags plus common advertisement, sidebar, comment,
// social-share, and related-article class names.
var boilerplateSelectors = []string{
	"script",
	"style",
	"nav",
	"header",
	"footer",
	"aside",
	".advertisement",
	".ad",
	".sidebar",
	".comments",
	".social-share",
	".related-articles",
	"#comments",
}

// Sanitize destructively removes non-content regions from the document.
// It always succeeds; a document with no matching elements is returned
// unchanged. The mutation is irreversible within the call's tree.
func Sanitize(doc *goquery.Document) {
	for _, selector := range boilerplateSelectors {
		doc.Find(selector).Remove()
	}
}
