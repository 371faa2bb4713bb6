package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
)

// gitRepository is the implementation of the GitRepository interface.

type gitRepository struct {
	repo        *git.Repository
	root        string
	authorName  string
	authorEmail string
}

// NewGitRepository opens the repository containing path. The path may be the
// repository root or any directory inside the working tree.
func NewGitRepository(path, authorName, authorEmail string) (GitRepository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", path, err)
	}
	w, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	// The root must be absolute so that staging paths resolve the same way
	// regardless of how the repository path was spelled.
	root, err := filepath.Abs(w.Filesystem.Root())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve worktree root: %w", err)
	}
	return &gitRepository{
		repo:        repo,
		root:        root,
		authorName:  authorName,
		authorEmail: authorEmail,
	}, nil
}

// Root returns the absolute path of the worktree root.
func (r *gitRepository) Root() string {
	return r.root
}

// AddPath stages a file or directory. Relative paths are resolved against
// the current directory, then rebased onto the worktree root, so callers may
// pass paths exactly as the user spelled them.
func (r *gitRepository) AddPath(_ context.Context, path string) error {
	w, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return fmt.Errorf("failed to resolve %s against worktree root: %w", path, err)
	}
	if _, err := w.Add(filepath.ToSlash(rel)); err != nil {
		return fmt.Errorf("failed to stage %s: %w", rel, err)
	}
	return nil
}

// Commit creates a commit of the staged files with the given message.
func (r *gitRepository) Commit(_ context.Context, message string) error {
	w, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	_, err = w.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  r.authorName,
			Email: r.authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create commit: %w", err)
	}
	return nil
}

// Push pushes the current branch to the named remote.
func (r *gitRepository) Push(ctx context.Context, remote string) error {
	err := r.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remote,
		Auth:       r.getAuth(),
	})
	if err != nil && err != git.NoErrAlreadyUpToDate {
		return fmt.Errorf("failed to push to %s: %w", remote, err)
	}
	return nil
}

// getAuth returns token authentication when a GitHub token is present in the
// environment. Without a token the transport's own credentials apply.
func (r *gitRepository) getAuth() *http.BasicAuth {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("IMAGEPUB_GITHUB_TOKEN")
	}
	if token == "" {
		return nil
	}
	return &http.BasicAuth{
		Username: "x-access-token",
		Password: token,
	}
}
