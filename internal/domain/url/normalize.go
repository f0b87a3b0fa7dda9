// Package url provides URL manipulation utilities for favicon resolution.
package url

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/bnema/favicache/internal/domain/entity"
)

const (
	defaultScheme = "https"

	// WellKnownIconPath is the conventional favicon location at the site root.
	WellKnownIconPath = "/favicon.ico"
)

var defaultPorts = map[string]string{"http": "80", "https": "443"}

// HasScheme reports whether input starts with "<scheme>://".
func HasScheme(input string) bool {
	idx := strings.Index(input, "://")
	if idx <= 0 {
		return false
	}
	for i, c := range input[:idx] {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// Normalize trims the input and adds https:// when no scheme is present.
// An existing scheme is kept as-is.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if HasScheme(input) {
		return input
	}
	return defaultScheme + "://" + input
}

// ParseOrigin normalizes and parses a raw site string.
// It fails with entity.ErrInvalidInput when the result has no host or is not http(s).
func ParseOrigin(raw string) (*url.URL, entity.Origin, error) {
	normalized := Normalize(raw)
	if normalized == "" {
		return nil, entity.Origin{}, fmt.Errorf("%w: empty input", entity.ErrInvalidInput)
	}

	parsed, err := url.Parse(normalized)
	if err != nil {
		return nil, entity.Origin{}, fmt.Errorf("%w: %q: %v", entity.ErrInvalidInput, raw, err)
	}

	if !isHTTPScheme(parsed.Scheme) {
		return nil, entity.Origin{}, fmt.Errorf("%w: %q: unsupported scheme %q", entity.ErrInvalidInput, raw, parsed.Scheme)
	}
	if parsed.Hostname() == "" {
		return nil, entity.Origin{}, fmt.Errorf("%w: %q: no host", entity.ErrInvalidInput, raw)
	}

	parsed.Host = canonicalHost(parsed)
	return parsed, entity.Origin{Scheme: parsed.Scheme, Host: parsed.Host}, nil
}

// canonicalHost lowercases the host and drops a port equal to the scheme default.
func canonicalHost(u *url.URL) string {
	host := strings.ToLower(u.Hostname())
	port := u.Port()
	if port == "" || port == defaultPorts[u.Scheme] {
		if strings.Contains(host, ":") {
			return "[" + host + "]"
		}
		return host
	}
	return net.JoinHostPort(host, port)
}

// WellKnownIconURL returns the /favicon.ico URL for an origin.
func WellKnownIconURL(origin entity.Origin) string {
	return origin.String() + WellKnownIconPath
}

// RootDocumentURL returns the URL of the origin's root document.
func RootDocumentURL(origin entity.Origin) string {
	return origin.String() + "/"
}

// ResolveReference resolves href against base and returns the absolute URL.
// Empty, unparsable and non-http(s) references are rejected.
func ResolveReference(base *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if base == nil || href == "" {
		return "", false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	abs := base.ResolveReference(ref)
	if !isHTTPScheme(abs.Scheme) || abs.Host == "" {
		return "", false
	}
	return abs.String(), true
}

func isHTTPScheme(scheme string) bool {
	switch strings.ToLower(scheme) {
	case "http", "https":
		return true
	}
	return false
}
