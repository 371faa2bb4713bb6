package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/rweekly/imagepub/internal/domain"
	"github.com/rweekly/imagepub/internal/repository"
	"github.com/rweekly/imagepub/internal/service"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// StagedFiles is the pair of paths written by a successful staging.
type StagedFiles struct {
	Original string
	Resized  string
}

// StageImagesUseCase copies the original into the issue directory and writes
// the width-constrained copy alongside it. Existing destinations are a fatal
// precondition failure; nothing is ever overwritten.

type StageImagesUseCase struct {
	Fs       repository.FileSystemRepository
	ImageSvc service.ImageService
}

// Execute stages both copies under issueDir and returns their paths.
func (uc *StageImagesUseCase) Execute(_ context.Context, sourceFile, issueDir string, width int) (*StagedFiles, error) {
	dirExists, err := afero.DirExists(uc.Fs, issueDir)
	if err != nil {
		return nil, fmt.Errorf("failed to check issue directory: %w", err)
	}
	if !dirExists {
		if err := uc.Fs.MkdirAll(issueDir, dirPermissions); err != nil {
			return nil, fmt.Errorf("failed to create issue directory: %w", err)
		}
	}

	base := filepath.Base(sourceFile)
	original := filepath.Join(issueDir, base)
	exists, err := afero.Exists(uc.Fs, original)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", original, err)
	}
	if exists {
		return nil, &domain.AlreadyExistsError{Path: original}
	}
	data, err := afero.ReadFile(uc.Fs, sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read source image: %w", err)
	}
	if err := afero.WriteFile(uc.Fs, original, data, filePermissions); err != nil {
		return nil, fmt.Errorf("failed to copy original to %s: %w", original, err)
	}

	resized := filepath.Join(issueDir, domain.ResizedName(sourceFile, width))
	exists, err = afero.Exists(uc.Fs, resized)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", resized, err)
	}
	if exists {
		return nil, &domain.AlreadyExistsError{Path: resized}
	}
	resizedData, err := uc.ImageSvc.ResizeToWidth(data, filepath.Ext(base), width)
	if err != nil {
		return nil, fmt.Errorf("failed to resize image: %w", err)
	}
	if err := afero.WriteFile(uc.Fs, resized, resizedData, filePermissions); err != nil {
		return nil, fmt.Errorf("failed to write resized copy to %s: %w", resized, err)
	}

	return &StagedFiles{Original: original, Resized: resized}, nil
}
