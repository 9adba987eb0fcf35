package preview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	return img
}

func TestScalePreservesAspect(t *testing.T) {
	dst := scale(testImage(400, 200), 100)
	require.Equal(t, 100, dst.Bounds().Dx())
	require.Equal(t, 50, dst.Bounds().Dy())
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page_001.png")
	require.NoError(t, writePNG(path, testImage(300, 150), 100))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 100, decoded.Bounds().Dx())
	require.Equal(t, 50, decoded.Bounds().Dy())
}

func TestImagePoolSizing(t *testing.T) {
	a := rgbaPool.get(image.Rect(0, 0, 10, 20))
	require.Equal(t, 10, a.Rect.Dx())
	require.Equal(t, 20, a.Rect.Dy())
	rgbaPool.put(a)

	b := rgbaPool.get(image.Rect(0, 0, 10, 20))
	require.Equal(t, 10, b.Rect.Dx())
	require.Equal(t, 20, b.Rect.Dy())
}

func TestWritePNGNoScaling(t *testing.T) {
	path := filepath.Join(t.TempDir(), "native.png")
	require.NoError(t, writePNG(path, testImage(80, 40), 100))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 80, decoded.Bounds().Dx())
}
