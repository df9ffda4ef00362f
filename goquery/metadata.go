package goquery

import (
	"encoding/json"
	"maps"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// Metadata extracts page-level metadata from a (sanitized) document.
// Every field is best-effort: a missing or malformed source tag simply
// leaves the field empty. Never fails.
func Metadata(doc *goquery.Document) *pagesift.PageMetadata {
	meta := &pagesift.PageMetadata{
		Title:        strings.TrimSpace(doc.Find("title").First().Text()),
		Description:  metaContent(doc, `meta[name="description"]`),
		Keywords:     metaContent(doc, `meta[name="keywords"]`),
		Author:       metaContent(doc, `meta[name="author"]`),
		PublishDate:  metaContent(doc, `meta[property="article:published_time"]`),
		ModifiedDate: metaContent(doc, `meta[property="article:modified_time"]`),
		Language:     detectLanguage(doc),
	}

	meta.OpenGraph = prefixedProperties(doc, `meta[property^="og:"]`, "property", "og:")
	meta.Twitter = prefixedProperties(doc, `meta[name^="twitter:"]`, "name", "twitter:")
	meta.StructuredData = structuredData(doc)

	return meta
}

// metaContent returns the trimmed content attribute of the first
// element matching the selector.
func metaContent(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
}

// prefixedProperties collects all meta tags whose key attribute starts
// with the prefix, mapping the unprefixed key to the trimmed content.
func prefixedProperties(doc *goquery.Document, selector, keyAttr, prefix string) map[string]string {
	var props map[string]string
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		key := strings.TrimPrefix(sel.AttrOr(keyAttr, ""), prefix)
		content := strings.TrimSpace(sel.AttrOr("content", ""))
		if key == "" || content == "" {
			return
		}
		if props == nil {
			props = make(map[string]string)
		}
		props[key] = content
	})
	return props
}

// detectLanguage returns the primary language subtag declared by the
// page, in priority order: <html lang>, a content-language meta tag,
// then og:locale. Defaults to "en".
func detectLanguage(doc *goquery.Document) string {
	if lang := strings.TrimSpace(doc.Find("html").First().AttrOr("lang", "")); lang != "" {
		return primarySubtag(lang)
	}
	if lang := metaContent(doc, `meta[http-equiv="content-language"]`); lang != "" {
		return primarySubtag(lang)
	}
	if lang := metaContent(doc, `meta[property="og:locale"]`); lang != "" {
		return primarySubtag(lang)
	}
	return "en"
}

// primarySubtag keeps the first two characters of a language tag.
func primarySubtag(tag string) string {
	if len(tag) > 2 {
		return tag[:2]
	}
	return tag
}

// structuredData merges JSON-LD script bodies and Article microdata
// into a flat mapping. Script bodies that fail to parse are skipped
// silently; for JSON arrays only the first object is used.
func structuredData(doc *goquery.Document) map[string]any {
	data := make(map[string]any)

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var v any
		if err := json.Unmarshal([]byte(sel.Text()), &v); err != nil {
			return
		}
		switch vv := v.(type) {
		case map[string]any:
			maps.Copy(data, vv)
		case []any:
			if len(vv) > 0 {
				if m, ok := vv[0].(map[string]any); ok {
					maps.Copy(data, m)
				}
			}
		}
	})

	doc.Find("[itemtype]").Each(func(_ int, sel *goquery.Selection) {
		if !strings.Contains(sel.AttrOr("itemtype", ""), "Article") {
			return
		}
		sel.Find("[itemprop]").Each(func(_ int, prop *goquery.Selection) {
			name := prop.AttrOr("itemprop", "")
			value := strings.TrimSpace(prop.Text())
			if name != "" && value != "" {
				data[name] = value
			}
		})
	})

	if len(data) == 0 {
		return nil
	}
	return data
}
