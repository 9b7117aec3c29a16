// Package urlutil extracts the routing components of a URL string.
//
// All functions are total: malformed input yields empty values rather than
// an error or a panic.
package urlutil

import (
	"net/url"
	"strings"
)

// ExtractScheme returns the lower-cased scheme of rawURL, or "" when it has
// none or cannot be parsed.
func ExtractScheme(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Scheme)
}

// ExtractHostname returns the lower-cased authority host of rawURL. A port,
// if present, is kept. Returns "" when there is no authority.
func ExtractHostname(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

// ExtractPathSegments returns the non-empty "/"-separated segments of the
// URL path. Returns nil for malformed input.
func ExtractPathSegments(rawURL string) []string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil
	}
	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// IsWebScheme reports whether scheme is http or https.
func IsWebScheme(scheme string) bool {
	return scheme == "http" || scheme == "https"
}
