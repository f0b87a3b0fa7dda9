package favicon

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"os"
	"path/filepath"

	"github.com/sergeymakinen/go-ico"
	"golang.org/x/image/draw"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/logging"
)

const (
	// NormalizedIconSize is the standard size for dmenu/fuzzel icons.
	NormalizedIconSize = 32
	// Exported PNGs are read by other programs such as launchers.
	exportFilePerm = 0644
)

// PNGExporter converts cached icons into square PNG files.
type PNGExporter struct{}

// NewPNGExporter creates a new PNGExporter.
func NewPNGExporter() *PNGExporter {
	return &PNGExporter{}
}

// ConvertToPNG decodes srcPath (ICO, PNG, JPEG or GIF), center-crops it to a
// square, scales it to size x size and writes the PNG to dstPath.
func (e *PNGExporter) ConvertToPNG(ctx context.Context, srcPath, dstPath string, size int) error {
	if size <= 0 {
		return fmt.Errorf("invalid icon size %d", size)
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}

	srcImg, format, err := decodeIcon(data)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Str("src", srcPath).Str("format", format).
		Int("width", srcImg.Bounds().Dx()).Int("height", srcImg.Bounds().Dy()).Msg("decoded favicon")

	return writePNG(dstPath, Resize(srcImg, size))
}

// decodeIcon picks the ICO decoder when the header says so, otherwise the
// registered image decoders.
func decodeIcon(data []byte) (image.Image, string, error) {
	if isICO(data) {
		img, err := ico.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("decode ico: %w", err)
		}
		return img, "ico", nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

func isICO(data []byte) bool {
	return len(data) >= 4 && data[0] == 0 && data[1] == 0 && data[2] == 1 && data[3] == 0
}

// Resize center-crops src to a square and scales it to size x size using
// CatmullRom interpolation.
func Resize(src image.Image, size int) *image.RGBA {
	srcBounds := src.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()

	var cropRect image.Rectangle
	switch {
	case srcW > srcH:
		// Wider than tall - crop sides
		offset := (srcW - srcH) / 2
		cropRect = image.Rect(srcBounds.Min.X+offset, srcBounds.Min.Y, srcBounds.Min.X+offset+srcH, srcBounds.Max.Y)
	case srcH > srcW:
		// Taller than wide - crop top/bottom
		offset := (srcH - srcW) / 2
		cropRect = image.Rect(srcBounds.Min.X, srcBounds.Min.Y+offset, srcBounds.Max.X, srcBounds.Min.Y+offset+srcW)
	default:
		cropRect = srcBounds
	}

	croppedImg := cropImage(src, cropRect)

	dstImg := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dstImg, dstImg.Bounds(), croppedImg, croppedImg.Bounds(), draw.Over, nil)
	return dstImg
}

// writePNG encodes img to a temp file next to dstPath and renames it into place.
func writePNG(dstPath string, img image.Image) error {
	dir := filepath.Dir(dstPath)
	tmp, err := os.CreateTemp(dir, filepath.Base(dstPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	tempPath := tmp.Name()

	if err := png.Encode(tmp, img); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("encode png: %w", err)
	}
	if err := tmp.Chmod(exportFilePerm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("chmod destination: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("close destination: %w", err)
	}
	if err := os.Rename(tempPath, dstPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("move destination: %w", err)
	}
	return nil
}

// cropImage returns a cropped portion of the source image.
func cropImage(src image.Image, rect image.Rectangle) image.Image {
	// If the source supports SubImage, use it for efficiency
	if subImager, ok := src.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		return subImager.SubImage(rect)
	}

	// Otherwise, copy pixels manually
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			dst.Set(x, y, src.At(rect.Min.X+x, rect.Min.Y+y))
		}
	}
	return dst
}

var _ port.IconConverter = (*PNGExporter)(nil)
