// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// Scheme returns the request scheme, preferring the first X-Forwarded-Proto
// value set by a fronting proxy.
func Scheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		first, _, _ := strings.Cut(proto, ",")
		return strings.ToLower(strings.TrimSpace(first))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// IsHTTPS reports whether a request should be treated as HTTPS.
func IsHTTPS(r *http.Request) bool {
	return r != nil && Scheme(r) == "https"
}

// SameOrigin reports whether rawURL (an Origin or Referer value) points at
// the host serving r. A scheme, when present, must match too.
func SameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, Scheme(r))
	}
	return true
}

// HasSameOriginProof reports whether Origin or Referer proves same-origin.
// Origin wins when both are present.
func HasSameOriginProof(r *http.Request) bool {
	if r == nil {
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		return SameOrigin(origin, r)
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		return SameOrigin(referer, r)
	}
	return false
}
