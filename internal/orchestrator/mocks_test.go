package orchestrator

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mock for GitRepository
type mockGitRepository struct {
	mock.Mock
}

func (m *mockGitRepository) Root() string {
	args := m.Called()
	return args.String(0)
}

func (m *mockGitRepository) AddPath(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *mockGitRepository) Commit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockGitRepository) Push(ctx context.Context, remote string) error {
	args := m.Called(ctx, remote)
	return args.Error(0)
}

// Mock for DraftRepository
type mockDraftRepository struct {
	mock.Mock
}

func (m *mockDraftRepository) Fetch(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

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
