package port

import (
	"context"
	"net/url"

	"github.com/bnema/favicache/internal/domain/entity"
)

// IconLinks is the result of scanning a site's root document for icon declarations.
type IconLinks struct {
	// DocumentURL is the URL the document was actually served from, after redirects.
	// Hrefs are resolved against it.
	DocumentURL *url.URL
	// Hrefs are the raw href attributes in document order.
	Hrefs []string
}

// IconLinkSource fetches a root document and extracts icon link hrefs from it.
type IconLinkSource interface {
	IconLinks(ctx context.Context, documentURL string) (IconLinks, error)
}

// IconDownloader fetches raw icon bytes.
// Any non-nil error means the candidate failed; no partial data is returned.
type IconDownloader interface {
	Download(ctx context.Context, iconURL string) ([]byte, error)
}

// IconStore persists icon bytes under their cache key.
type IconStore interface {
	// Path returns the file path for key, whether or not it exists.
	Path(key entity.CacheKey) string
	// Lookup returns the path of an existing entry.
	Lookup(ctx context.Context, key entity.CacheKey) (string, bool)
	// Write stores data under key and returns the file path.
	Write(ctx context.Context, key entity.CacheKey, data []byte) (string, error)
	// Entries lists every entry currently stored.
	Entries(ctx context.Context) ([]entity.CacheEntry, error)
}

// IconConverter converts a cached icon file into a square PNG.
type IconConverter interface {
	ConvertToPNG(ctx context.Context, srcPath, dstPath string, size int) error
}
