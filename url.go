package pagesift

import (
	"net/url"
	"strings"
)

// forbiddenSchemes are scheme markers rejected anywhere in the raw URL,
// not just as the parsed scheme, to catch values smuggled into other
// URL components.
var forbiddenSchemes = []string{"javascript:", "data:", "file:"}

// ValidateURL returns an EINVALID error unless raw is a plausible,
// safe article URL: http or https scheme, non-empty host, ASCII-only,
// and free of forbidden scheme markers.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return Errorf(EINVALID, "invalid URL %q: %v", raw, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return Errorf(EINVALID, "unsupported URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return Errorf(EINVALID, "URL %q has no host", raw)
	}

	for i := 0; i < len(raw); i++ {
		if raw[i] > 0x7f {
			return Errorf(EINVALID, "URL contains non-ASCII characters")
		}
	}

	lower := strings.ToLower(raw)
	for _, scheme := range forbiddenSchemes {
		if strings.Contains(lower, scheme) {
			return Errorf(EINVALID, "URL contains forbidden scheme %q", scheme)
		}
	}

	return nil
}
