package service

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"

	"golang.org/x/image/draw"

	"github.com/rweekly/imagepub/internal/domain"
)

const jpegQuality = 90

// imageService is the implementation of the ImageService interface.

type imageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() ImageService {
	return &imageService{}
}

// ResizeToWidth scales the decoded image to the target width. Height is
// derived from the source aspect ratio.
func (s *imageService) ResizeToWidth(src []byte, ext string, width int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w != width {
		newH := h * width / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, width, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}
	var buf bytes.Buffer
	switch strings.ToLower(ext) {
	case ".png":
		err = png.Encode(&buf, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	case ".gif":
		err = gif.Encode(&buf, img, nil)
	default:
		return nil, &domain.InvalidArgumentError{Field: "file", Reason: fmt.Sprintf("unsupported image format %q", ext)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
