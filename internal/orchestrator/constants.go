package orchestrator

import "time"

const (
	// DefaultWorkflowTimeout bounds one publish invocation end to end.
	DefaultWorkflowTimeout = 10 * time.Minute
	// LockFileName is the advisory lock file kept at the worktree root of
	// the image repository while a publish runs. It is never staged or
	// committed.
	LockFileName = ".imagepub.lock"
)
