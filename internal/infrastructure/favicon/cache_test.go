package favicon

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_WriteThenLookup(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "icons")
	store := NewDiskStore(dir)
	ctx := context.Background()

	key := entity.NewCacheKey("https://example.com/favicon.ico")

	_, ok := store.Lookup(ctx, key)
	assert.False(t, ok)

	path, err := store.Write(ctx, key, []byte("icon-bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, key.Filename()), path)
	assert.Equal(t, path, store.Path(key))

	got, ok := store.Lookup(ctx, key)
	require.True(t, ok)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("icon-bytes"), data)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(diskCacheFilePerm), info.Mode().Perm())
}

func TestDiskStore_WriteOverwrites(t *testing.T) {
	store := NewDiskStore(t.TempDir())
	ctx := context.Background()
	key := entity.NewCacheKey("https://example.com/a.png")

	_, err := store.Write(ctx, key, []byte("old"))
	require.NoError(t, err)
	path, err := store.Write(ctx, key, []byte("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

func TestDiskStore_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir)

	_, err := store.Write(context.Background(), entity.NewCacheKey("u"), []byte("x"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.NewCacheKey("u").Filename(), entries[0].Name())
}

func TestDiskStore_WriteFailsWhenDirIsAFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store := NewDiskStore(filepath.Join(blocker, "icons"))

	_, err := store.Write(context.Background(), entity.NewCacheKey("u"), []byte("x"))
	assert.Error(t, err)
}

func TestDiskStore_LookupIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir)
	key := entity.NewCacheKey("u")

	require.NoError(t, os.Mkdir(store.Path(key), 0o750))

	_, ok := store.Lookup(context.Background(), key)
	assert.False(t, ok)
}

func TestDiskStore_Entries(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir)
	ctx := context.Background()

	k1 := entity.NewCacheKey("https://example.com/favicon.ico")
	k2 := entity.NewCacheKey("https://example.com/a.png")
	_, err := store.Write(ctx, k1, []byte("12345"))
	require.NoError(t, err)
	_, err = store.Write(ctx, k2, []byte("12"))
	require.NoError(t, err)

	// Foreign files are not entries.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "short.ico"), []byte("x"), 0o600))

	entries, err := store.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	sizes := map[entity.CacheKey]int64{}
	for _, e := range entries {
		sizes[e.Key] = e.Size
	}
	assert.Equal(t, int64(5), sizes[k1])
	assert.Equal(t, int64(2), sizes[k2])
}

func TestDiskStore_EntriesMissingDir(t *testing.T) {
	store := NewDiskStore(filepath.Join(t.TempDir(), "absent"))

	entries, err := store.Entries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
