package domain

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// PublishRequest carries the inputs for a single publish invocation.
type PublishRequest struct {
	SourceFile string
	Caption    string
	MaxWidth   string
	IssueID    string
	ImageRepo  string
	Push       bool
}

// supportedExtensions maps lowercase image file extensions the workflow can
// re-encode after resizing.
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Validate checks the required inputs. It does not touch the filesystem.
func (r *PublishRequest) Validate() error {
	if r.SourceFile == "" {
		return &InvalidArgumentError{Field: "file", Reason: "source image path is required"}
	}
	if r.ImageRepo == "" {
		return &InvalidArgumentError{Field: "image_repo", Reason: "image repository path is required"}
	}
	if r.MaxWidth == "" {
		return &InvalidArgumentError{Field: "width", Reason: "maximum width is required"}
	}
	ext := strings.ToLower(filepath.Ext(r.SourceFile))
	if !supportedExtensions[ext] {
		return &InvalidArgumentError{Field: "file", Reason: fmt.Sprintf("unsupported image format %q", ext)}
	}
	return nil
}

// NormalizeWidth strips an optional trailing "px" unit from raw and parses
// the bare pixel width. "600" and "600px" normalize identically.
func NormalizeWidth(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if strings.HasSuffix(strings.ToLower(s), "px") {
		s = strings.TrimSpace(s[:len(s)-2])
	}
	width, err := strconv.Atoi(s)
	if err != nil || width <= 0 {
		return 0, &InvalidArgumentError{Field: "width", Reason: fmt.Sprintf("not a positive pixel width: %q", raw)}
	}
	return width, nil
}

// ResizedName derives the filename for the width-constrained copy of source,
// e.g. "chart.png" at width 600 becomes "chart_600.png".
func ResizedName(source string, width int) string {
	base := filepath.Base(source)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_%d%s", stem, width, ext)
}
