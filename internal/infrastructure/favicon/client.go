// Package favicon provides favicon fetching and caching infrastructure.
package favicon

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultUserAgent identifies the client on every request.
	DefaultUserAgent = "Mozilla/5.0 (compatible; favicache)"
	// DefaultTimeout bounds a whole request, body included.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxIconBytes caps a downloaded icon.
	DefaultMaxIconBytes int64 = 1 << 20
	// DefaultMaxDocumentBytes caps how much of a root document is parsed.
	DefaultMaxDocumentBytes int64 = 2 << 20
)

var (
	// ErrEmptyBody is returned when a candidate answered 2xx with no content.
	ErrEmptyBody = errors.New("empty response body")
	// ErrTooLarge is returned when an icon exceeds the configured size cap.
	ErrTooLarge = errors.New("response body exceeds size limit")
)

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Options tunes the HTTP adapters.
type Options struct {
	UserAgent        string
	MaxIconBytes     int64
	MaxDocumentBytes int64
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		UserAgent:        DefaultUserAgent,
		MaxIconBytes:     DefaultMaxIconBytes,
		MaxDocumentBytes: DefaultMaxDocumentBytes,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.UserAgent == "" {
		o.UserAgent = d.UserAgent
	}
	if o.MaxIconBytes <= 0 {
		o.MaxIconBytes = d.MaxIconBytes
	}
	if o.MaxDocumentBytes <= 0 {
		o.MaxDocumentBytes = d.MaxDocumentBytes
	}
	return o
}

// NewHTTPClient returns the client shared by the fetcher and the document scanner.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
	}
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// readCapped reads at most limit bytes from r and reports whether more remained.
func readCapped(r io.Reader, limit int64) ([]byte, bool, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, false, err
	}
	if int64(len(data)) > limit {
		return data[:limit], true, nil
	}
	return data, false, nil
}
