package http

import (
	"math/rand/v2"
	"net/http"
)

// headerTemplates are plausible browser header sets. One is chosen at
// random per fetch so repeated requests don't share a fingerprint.
// Accept-Encoding is deliberately left to the transport so Go keeps
// handling decompression transparently.
var headerTemplates = []map[string]string{
	{
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.5",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "none",
		"Cache-Control":             "max-age=0",
	},
	{
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language":           "en-GB,en;q=0.9,en-US;q=0.8",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
		"DNT":                       "1",
	},
}

// userAgents is a pool of current desktop browser User-Agent strings.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:127.0) Gecko/20100101 Firefox/127.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
}

// randomHeader builds a randomized browser-like header set.
func randomHeader() http.Header {
	tmpl := headerTemplates[rand.IntN(len(headerTemplates))]
	h := make(http.Header, len(tmpl)+1)
	for k, v := range tmpl {
		h.Set(k, v)
	}
	h.Set("User-Agent", userAgents[rand.IntN(len(userAgents))])
	return h
}
