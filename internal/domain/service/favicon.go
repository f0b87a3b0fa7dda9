// Package service defines domain service interfaces.
package service

import "context"

// FaviconResolver turns a user-supplied site string into a locally cached icon file.
type FaviconResolver interface {
	// Resolve returns the path of the cached icon for site.
	// It fails with entity.ErrInvalidInput when site cannot be parsed as a URL,
	// and with entity.ErrNotFound when every candidate failed.
	Resolve(ctx context.Context, site string) (string, error)
}
