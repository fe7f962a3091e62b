package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"shape-detector/internal/domain/port"
)

func encodeJPEG(t *testing.T, width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func decodePNG(t *testing.T, data []byte) image.Image {
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestNormalizer_DownscalesLargeImage(t *testing.T) {
	out, err := NewNormalizer(100).Normalize(encodeJPEG(t, 400, 200))
	require.NoError(t, err)

	b := decodePNG(t, out).Bounds()
	require.Equal(t, 100, b.Dx())
	require.Equal(t, 50, b.Dy())
}

func TestNormalizer_KeepsSmallImage(t *testing.T) {
	out, err := NewNormalizer(1024).Normalize(encodeJPEG(t, 64, 48))
	require.NoError(t, err)

	b := decodePNG(t, out).Bounds()
	require.Equal(t, 64, b.Dx())
	require.Equal(t, 48, b.Dy())
}

func TestNormalizer_ZeroMaxSideDisablesResize(t *testing.T) {
	out, err := NewNormalizer(0).Normalize(encodeJPEG(t, 300, 20))
	require.NoError(t, err)
	require.Equal(t, 300, decodePNG(t, out).Bounds().Dx())
}

func TestNormalizer_RejectsGarbage(t *testing.T) {
	_, err := NewNormalizer(100).Normalize([]byte("definitely not an image"))
	require.ErrorIs(t, err, port.ErrInvalidImage)
}
