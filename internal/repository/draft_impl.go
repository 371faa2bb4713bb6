package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const draftFetchTimeout = 30 * time.Second

// draftRepository reads the draft document over plain HTTP.

type draftRepository struct {
	url    string
	client *http.Client
}

// NewDraftRepository creates a DraftRepository reading from url.
func NewDraftRepository(url string) DraftRepository {
	return &draftRepository{
		url:    url,
		client: &http.Client{Timeout: draftFetchTimeout},
	}
}

// Fetch returns the draft document body as UTF-8 text.
func (r *draftRepository) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build draft request: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch draft document: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("draft document fetch returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read draft document: %w", err)
	}
	return string(body), nil
}
