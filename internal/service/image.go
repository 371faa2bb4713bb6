package service

// ImageService defines the interface for image decode/resize/encode.

type ImageService interface {
	// ResizeToWidth decodes src, scales it so its width equals width with
	// the height kept proportional, and re-encodes it in the format
	// matching the file extension ext.
	ResizeToWidth(src []byte, ext string, width int) ([]byte, error)
}
