package repository

import "context"

// GitRepository defines the interface for Git operations on the image
// repository.

type GitRepository interface {
	// Root returns the absolute path of the worktree root.
	Root() string
	AddPath(ctx context.Context, path string) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context, remote string) error
}

// GitOpener opens the git repository containing the given path, searching
// upward for the .git directory.
type GitOpener func(path string) (GitRepository, error)
