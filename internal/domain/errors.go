package domain

import "fmt"

// InvalidArgumentError reports a missing or malformed input, raised before
// any side effect occurs.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// IssueResolutionError reports that no issue id was supplied and none could
// be extracted from the remote draft document.
type IssueResolutionError struct {
	Reason string
}

func (e *IssueResolutionError) Error() string {
	return "could not resolve issue id: " + e.Reason
}

// AlreadyExistsError reports that a destination path already exists.
// Published images are never overwritten.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("destination already exists: %s", e.Path)
}

// RepositoryError wraps a failed git operation.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("git %s failed: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}
