package repository

import "context"

// DraftRepository defines the interface for reading the remote draft
// document that carries the upcoming issue's metadata.

type DraftRepository interface {
	Fetch(ctx context.Context) (string, error)
}
