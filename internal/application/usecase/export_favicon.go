package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/domain/service"
	"github.com/bnema/favicache/internal/logging"
)

const (
	minExportSize = 8
	maxExportSize = 512
)

// ExportFaviconUseCase resolves a site's icon and writes it as a square PNG,
// the format launchers such as rofi and fuzzel expect.
type ExportFaviconUseCase struct {
	resolver  service.FaviconResolver
	converter port.IconConverter
}

// NewExportFaviconUseCase creates a new ExportFaviconUseCase.
func NewExportFaviconUseCase(resolver service.FaviconResolver, converter port.IconConverter) *ExportFaviconUseCase {
	return &ExportFaviconUseCase{
		resolver:  resolver,
		converter: converter,
	}
}

// Export resolves site and writes a size x size PNG to dst.
// It returns the path of the cached source icon.
func (uc *ExportFaviconUseCase) Export(ctx context.Context, site string, size int, dst string) (string, error) {
	if size < minExportSize || size > maxExportSize {
		return "", fmt.Errorf("export size %d out of range [%d, %d]", size, minExportSize, maxExportSize)
	}
	if dst == "" {
		return "", fmt.Errorf("export destination is empty")
	}

	src, err := uc.resolver.Resolve(ctx, site)
	if err != nil {
		return "", err
	}

	if err := uc.converter.ConvertToPNG(ctx, src, dst, size); err != nil {
		return src, fmt.Errorf("convert %s: %w", src, err)
	}

	logging.FromContext(ctx).Info().Str("src", src).Str("dst", dst).Int("size", size).Msg("favicon exported")
	return src, nil
}
