package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rweekly/imagepub/internal/domain"
)

// Mock for ImageService
type mockImageService struct {
	mock.Mock
}

func (m *mockImageService) ResizeToWidth(src []byte, ext string, width int) ([]byte, error) {
	args := m.Called(src, ext, width)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func TestStageImagesUseCase_Execute(t *testing.T) {
	source := []byte("source image bytes")
	resized := []byte("resized image bytes")

	newFs := func(t *testing.T) afero.Fs {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/tmp/chart.png", source, 0o644))
		return fs
	}

	t.Run("Should create exactly the original and resized copies", func(t *testing.T) {
		fs := newFs(t)
		imageSvc := new(mockImageService)
		imageSvc.On("ResizeToWidth", source, ".png", 600).Return(resized, nil)
		uc := &StageImagesUseCase{Fs: fs, ImageSvc: imageSvc}
		staged, err := uc.Execute(context.Background(), "/tmp/chart.png", "/repo/2023-W40", 600)
		require.NoError(t, err)
		assert.Equal(t, "/repo/2023-W40/chart.png", staged.Original)
		assert.Equal(t, "/repo/2023-W40/chart_600.png", staged.Resized)
		got, err := afero.ReadFile(fs, staged.Original)
		require.NoError(t, err)
		assert.Equal(t, source, got)
		got, err = afero.ReadFile(fs, staged.Resized)
		require.NoError(t, err)
		assert.Equal(t, resized, got)
		entries, err := afero.ReadDir(fs, "/repo/2023-W40")
		require.NoError(t, err)
		assert.Len(t, entries, 2)
		imageSvc.AssertExpectations(t)
	})
	t.Run("Should reuse an existing issue directory", func(t *testing.T) {
		fs := newFs(t)
		require.NoError(t, fs.MkdirAll("/repo/2023-W40", 0o755))
		imageSvc := new(mockImageService)
		imageSvc.On("ResizeToWidth", source, ".png", 600).Return(resized, nil)
		uc := &StageImagesUseCase{Fs: fs, ImageSvc: imageSvc}
		_, err := uc.Execute(context.Background(), "/tmp/chart.png", "/repo/2023-W40", 600)
		require.NoError(t, err)
	})
	t.Run("Should fail without resizing when the original copy exists", func(t *testing.T) {
		fs := newFs(t)
		require.NoError(t, afero.WriteFile(fs, "/repo/2023-W40/chart.png", []byte("previous upload"), 0o644))
		imageSvc := new(mockImageService)
		uc := &StageImagesUseCase{Fs: fs, ImageSvc: imageSvc}
		_, err := uc.Execute(context.Background(), "/tmp/chart.png", "/repo/2023-W40", 600)
		var existsErr *domain.AlreadyExistsError
		require.ErrorAs(t, err, &existsErr)
		assert.Equal(t, "/repo/2023-W40/chart.png", existsErr.Path)
		// The prior upload is untouched
		got, err := afero.ReadFile(fs, "/repo/2023-W40/chart.png")
		require.NoError(t, err)
		assert.Equal(t, []byte("previous upload"), got)
		imageSvc.AssertNotCalled(t, "ResizeToWidth")
	})
	t.Run("Should fail after the original copy when the resized copy exists", func(t *testing.T) {
		fs := newFs(t)
		require.NoError(t, afero.WriteFile(fs, "/repo/2023-W40/chart_600.png", []byte("previous resize"), 0o644))
		imageSvc := new(mockImageService)
		uc := &StageImagesUseCase{Fs: fs, ImageSvc: imageSvc}
		_, err := uc.Execute(context.Background(), "/tmp/chart.png", "/repo/2023-W40", 600)
		var existsErr *domain.AlreadyExistsError
		require.ErrorAs(t, err, &existsErr)
		assert.Equal(t, "/repo/2023-W40/chart_600.png", existsErr.Path)
		// The original was copied before the gate; it is not rolled back
		exists, err := afero.Exists(fs, "/repo/2023-W40/chart.png")
		require.NoError(t, err)
		assert.True(t, exists)
		imageSvc.AssertNotCalled(t, "ResizeToWidth")
	})
	t.Run("Should surface a resize failure without writing the resized copy", func(t *testing.T) {
		fs := newFs(t)
		imageSvc := new(mockImageService)
		imageSvc.On("ResizeToWidth", source, ".png", 600).Return(nil, errors.New("bad image"))
		uc := &StageImagesUseCase{Fs: fs, ImageSvc: imageSvc}
		_, err := uc.Execute(context.Background(), "/tmp/chart.png", "/repo/2023-W40", 600)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to resize image")
		exists, err := afero.Exists(fs, "/repo/2023-W40/chart_600.png")
		require.NoError(t, err)
		assert.False(t, exists)
	})
	t.Run("Should fail when the source file is unreadable", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		imageSvc := new(mockImageService)
		uc := &StageImagesUseCase{Fs: fs, ImageSvc: imageSvc}
		_, err := uc.Execute(context.Background(), "/tmp/missing.png", "/repo/2023-W40", 600)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read source image")
	})
}
