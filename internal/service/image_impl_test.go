package service

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rweekly/imagepub/internal/domain"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestImageService_ResizeToWidth(t *testing.T) {
	svc := NewImageService()
	t.Run("Should scale down with proportional height", func(t *testing.T) {
		src := encodePNG(t, 100, 50)
		out, err := svc.ResizeToWidth(src, ".png", 60)
		require.NoError(t, err)
		w, h := decodeSize(t, out)
		assert.Equal(t, 60, w)
		assert.Equal(t, 30, h)
	})
	t.Run("Should scale up when source is narrower", func(t *testing.T) {
		src := encodePNG(t, 40, 20)
		out, err := svc.ResizeToWidth(src, ".png", 80)
		require.NoError(t, err)
		w, h := decodeSize(t, out)
		assert.Equal(t, 80, w)
		assert.Equal(t, 40, h)
	})
	t.Run("Should keep dimensions when width already matches", func(t *testing.T) {
		src := encodePNG(t, 60, 45)
		out, err := svc.ResizeToWidth(src, ".png", 60)
		require.NoError(t, err)
		w, h := decodeSize(t, out)
		assert.Equal(t, 60, w)
		assert.Equal(t, 45, h)
	})
	t.Run("Should encode jpeg output for jpg extension", func(t *testing.T) {
		src := encodePNG(t, 100, 100)
		out, err := svc.ResizeToWidth(src, ".jpg", 50)
		require.NoError(t, err)
		img, err := jpeg.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 50, img.Bounds().Dx())
	})
	t.Run("Should reject an unsupported extension", func(t *testing.T) {
		src := encodePNG(t, 10, 10)
		_, err := svc.ResizeToWidth(src, ".tiff", 5)
		var argErr *domain.InvalidArgumentError
		require.ErrorAs(t, err, &argErr)
	})
	t.Run("Should reject undecodable input", func(t *testing.T) {
		_, err := svc.ResizeToWidth([]byte("not an image"), ".png", 50)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode image")
	})
}
