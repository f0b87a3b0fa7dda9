package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/logging"
)

const iconMimeType = "image/x-icon"

// EncodeFaviconUseCase turns a cached icon file into a base64 data URL
// so it can be handed to a caller that cannot read the filesystem.
type EncodeFaviconUseCase struct {
	fs port.FileSystem
}

// NewEncodeFaviconUseCase creates a new EncodeFaviconUseCase.
func NewEncodeFaviconUseCase(fs port.FileSystem) *EncodeFaviconUseCase {
	return &EncodeFaviconUseCase{fs: fs}
}

// Base64 returns the standard base64 encoding of the file at path.
func (uc *EncodeFaviconUseCase) Base64(ctx context.Context, path string) (string, error) {
	data, err := uc.read(ctx, path)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DataURL returns the file at path as a data: URL.
// The media type is sniffed from the content; cached icons always carry
// a .ico extension, so the extension is only a fallback.
func (uc *EncodeFaviconUseCase) DataURL(ctx context.Context, path string) (string, error) {
	data, err := uc.read(ctx, path)
	if err != nil {
		return "", err
	}

	mime := sniffIconMime(path, data)
	logging.FromContext(ctx).Debug().Str("path", path).Str("mime", mime).Int("bytes", len(data)).Msg("encoded favicon")
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}

func (uc *EncodeFaviconUseCase) read(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("empty favicon path")
	}
	data, err := uc.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read favicon: %w", err)
	}
	return data, nil
}

func sniffIconMime(path string, data []byte) string {
	// ICO header: reserved 0, type 1.
	if len(data) >= 4 && data[0] == 0 && data[1] == 0 && data[2] == 1 && data[3] == 0 {
		return iconMimeType
	}

	detected := http.DetectContentType(data)
	if strings.HasPrefix(detected, "image/") {
		return detected
	}
	// DetectContentType reports SVG as text/xml or text/plain.
	if strings.Contains(string(data[:min(len(data), 512)]), "<svg") {
		return "image/svg+xml"
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	}
	return iconMimeType
}
