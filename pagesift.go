// Package pagesift isolates the main article content of arbitrary web
// pages. It fetches a single URL with browser-like request randomization,
// strips boilerplate from the document, runs several independent scoring
// heuristics to locate the article body, attaches page metadata, and
// memoizes formatted results in a bounded in-memory cache.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, xxhash/).
package pagesift
