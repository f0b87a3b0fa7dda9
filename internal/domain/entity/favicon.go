package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var (
	// ErrInvalidInput is returned when a site string cannot be parsed as a URL,
	// even after a scheme has been added.
	ErrInvalidInput = errors.New("invalid site input")

	// ErrNotFound is returned when every candidate failed to produce an icon.
	ErrNotFound = errors.New("no favicon found")
)

// IconExtension is the file extension of every cached icon, whatever its real format.
const IconExtension = ".ico"

// Origin is the scheme+host part of a site URL. Host keeps an explicit port.
type Origin struct {
	Scheme string
	Host   string
}

// String returns scheme://host.
func (o Origin) String() string {
	if o.Scheme == "" || o.Host == "" {
		return ""
	}
	return o.Scheme + "://" + o.Host
}

// CandidateSource tells where a candidate URL came from.
type CandidateSource string

const (
	SourceWellKnown CandidateSource = "well-known"
	SourceHTMLLink  CandidateSource = "html-link"
)

// Candidate is one hypothesis for the location of a site's icon.
type Candidate struct {
	URL    string
	Source CandidateSource
}

// CacheKey is the hex SHA-256 digest of a candidate URL string.
type CacheKey string

// cacheKeyLen is the length of a hex-encoded SHA-256 digest.
const cacheKeyLen = sha256.Size * 2

// NewCacheKey derives the cache key for the exact bytes of candidateURL.
// No normalization happens here: two spellings of the same URL are two keys.
func NewCacheKey(candidateURL string) CacheKey {
	sum := sha256.Sum256([]byte(candidateURL))
	return CacheKey(hex.EncodeToString(sum[:]))
}

// Filename returns the name of the cache file for this key.
func (k CacheKey) Filename() string {
	return string(k) + IconExtension
}

// Valid reports whether k looks like a key produced by NewCacheKey.
func (k CacheKey) Valid() bool {
	if len(k) != cacheKeyLen {
		return false
	}
	for _, c := range k {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// CacheEntry is an icon file persisted under its cache key.
type CacheEntry struct {
	Key  CacheKey
	Path string
	Size int64
}

// AttemptResult records what happened when one candidate was tried.
type AttemptResult struct {
	Candidate Candidate
	Key       CacheKey
	Path      string
	CacheHit  bool
	Err       error
}

// OK reports whether the attempt produced a cached file.
func (a AttemptResult) OK() bool {
	return a.Err == nil && a.Path != ""
}

// Resolution is the outcome of resolving one site string.
// Attempts holds every candidate tried, in order, up to and including the first success.
type Resolution struct {
	Input      string
	Origin     Origin
	Candidates []Candidate
	Attempts   []AttemptResult
}

// FirstSuccess returns the first successful attempt, if any.
func (r *Resolution) FirstSuccess() (AttemptResult, bool) {
	if r == nil {
		return AttemptResult{}, false
	}
	for _, a := range r.Attempts {
		if a.OK() {
			return a, true
		}
	}
	return AttemptResult{}, false
}

// Succeeded reports whether any attempt produced a cached file.
func (r *Resolution) Succeeded() bool {
	_, ok := r.FirstSuccess()
	return ok
}

// Path returns the local path of the resolved icon, or "" when resolution failed.
func (r *Resolution) Path() string {
	a, _ := r.FirstSuccess()
	return a.Path
}
