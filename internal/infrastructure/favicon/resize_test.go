package favicon

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func decodePNGFile(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestResize_CropsToSquare(t *testing.T) {
	src := solidImage(64, 32, color.RGBA{R: 255, A: 255})

	out := Resize(src, 16)
	assert.Equal(t, image.Rect(0, 0, 16, 16), out.Bounds())

	r, _, _, a := out.At(8, 8).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestPNGExporter_FromPNG(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.ico")

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solidImage(48, 48, color.RGBA{B: 255, A: 255})))
	require.NoError(t, os.WriteFile(src, buf.Bytes(), 0o600))

	dst := filepath.Join(dir, "out.png")
	require.NoError(t, NewPNGExporter().ConvertToPNG(context.Background(), src, dst, NormalizedIconSize))

	img := decodePNGFile(t, dst)
	assert.Equal(t, NormalizedIconSize, img.Bounds().Dx())
	assert.Equal(t, NormalizedIconSize, img.Bounds().Dy())
}

func TestPNGExporter_FromICO(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.ico")

	var buf bytes.Buffer
	require.NoError(t, ico.Encode(&buf, solidImage(16, 16, color.RGBA{G: 255, A: 255})))
	require.True(t, isICO(buf.Bytes()))
	require.NoError(t, os.WriteFile(src, buf.Bytes(), 0o600))

	dst := filepath.Join(dir, "out.png")
	require.NoError(t, NewPNGExporter().ConvertToPNG(context.Background(), src, dst, 64))

	img := decodePNGFile(t, dst)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestPNGExporter_Errors(t *testing.T) {
	dir := t.TempDir()
	exporter := NewPNGExporter()
	ctx := context.Background()

	err := exporter.ConvertToPNG(ctx, filepath.Join(dir, "missing.ico"), filepath.Join(dir, "out.png"), 32)
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.ico")
	require.NoError(t, os.WriteFile(garbage, []byte("<html>not an image</html>"), 0o600))
	err = exporter.ConvertToPNG(ctx, garbage, filepath.Join(dir, "out.png"), 32)
	assert.Error(t, err)

	err = exporter.ConvertToPNG(ctx, garbage, filepath.Join(dir, "out.png"), 0)
	assert.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "out.png"))
	assert.True(t, os.IsNotExist(statErr))
}
