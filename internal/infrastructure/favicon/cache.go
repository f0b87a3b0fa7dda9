package favicon

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/logging"
)

const (
	// File permissions for favicon cache.
	diskCacheDirPerm  = 0750
	diskCacheFilePerm = 0600
)

// DiskStore keeps icons in a flat directory, one <key>.ico file per cache key.
// There is no index; a file's existence is the only record of a past fetch.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a store rooted at dir. The directory is created on first write.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

// Dir returns the cache directory.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Path returns the file path for key.
func (s *DiskStore) Path(key entity.CacheKey) string {
	return filepath.Join(s.dir, key.Filename())
}

// Lookup reports whether a regular file exists for key.
func (s *DiskStore) Lookup(ctx context.Context, key entity.CacheKey) (string, bool) {
	path := s.Path(key)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	logging.FromContext(ctx).Debug().Str("key", string(key)).Msg("favicon cache hit")
	return path, true
}

// Write atomically stores data under key, replacing any existing file.
func (s *DiskStore) Write(ctx context.Context, key entity.CacheKey, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, diskCacheDirPerm); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	finalPath := s.Path(key)
	tmp, err := os.CreateTemp(s.dir, key.Filename()+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tmp.Name()

	cleanup := func() { _ = os.Remove(tempPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("failed to write favicon: %w", err)
	}
	if err := tmp.Chmod(diskCacheFilePerm); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("failed to set favicon permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to close favicon: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tempPath, finalPath); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to move favicon into cache: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("key", string(key)).Int("bytes", len(data)).Msg("favicon cached")
	return finalPath, nil
}

// Entries lists every cached icon. A missing directory is an empty cache.
func (s *DiskStore) Entries(_ context.Context) ([]entity.CacheEntry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}

	entries := make([]entity.CacheEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		key := entity.CacheKey(strings.TrimSuffix(name, entity.IconExtension))
		if !strings.HasSuffix(name, entity.IconExtension) || !key.Valid() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, entity.CacheEntry{
			Key:  key,
			Path: filepath.Join(s.dir, name),
			Size: info.Size(),
		})
	}
	return entries, nil
}

var _ port.IconStore = (*DiskStore)(nil)
