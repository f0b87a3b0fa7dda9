package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/domain/entity"
)

// CacheStats summarizes the icon cache directory.
type CacheStats struct {
	Dir        string
	Entries    []entity.CacheEntry
	TotalBytes int64
}

// InspectCacheUseCase reports on the icon cache. It never modifies it.
type InspectCacheUseCase struct {
	store port.IconStore
	fs    port.FileSystem
	dir   string
}

// NewInspectCacheUseCase creates a new InspectCacheUseCase for the cache at dir.
func NewInspectCacheUseCase(store port.IconStore, fs port.FileSystem, dir string) *InspectCacheUseCase {
	return &InspectCacheUseCase{
		store: store,
		fs:    fs,
		dir:   dir,
	}
}

// Stats lists cached entries sorted by key together with the directory size.
func (uc *InspectCacheUseCase) Stats(ctx context.Context) (*CacheStats, error) {
	entries, err := uc.store.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache entries: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	total, err := uc.fs.GetSize(ctx, uc.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to size cache directory: %w", err)
	}

	return &CacheStats{
		Dir:        uc.dir,
		Entries:    entries,
		TotalBytes: total,
	}, nil
}

// Lookup returns the cache key and expected path for a candidate URL,
// and whether an entry already exists.
func (uc *InspectCacheUseCase) Lookup(ctx context.Context, candidateURL string) (entity.CacheEntry, bool) {
	key := entity.NewCacheKey(candidateURL)
	if path, ok := uc.store.Lookup(ctx, key); ok {
		return entity.CacheEntry{Key: key, Path: path}, true
	}
	return entity.CacheEntry{Key: key, Path: uc.store.Path(key)}, false
}
