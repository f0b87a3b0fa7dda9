package port

import "context"

// FileSystem provides file system operations for the application layer.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	GetSize(ctx context.Context, path string) (int64, error)
}
