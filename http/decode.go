package http

import (
	"bytes"
	"io"

	"golang.org/x/net/html/charset"
)

// DecodeBody converts a raw response body to UTF-8 using the charset
// declared in the Content-Type header, falling back to charset
// detection on the bytes themselves. Undecodable input is returned
// as-is; the HTML parser downstream is tolerant.
func DecodeBody(body []byte, contentType string) string {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return string(body)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return string(body)
	}
	return string(decoded)
}
