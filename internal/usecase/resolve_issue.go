package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rweekly/imagepub/internal/domain"
	"github.com/rweekly/imagepub/internal/repository"
)

// releaseDatePattern matches the draft document line carrying the issue id.
// The first match wins when the document contains more than one.
var releaseDatePattern = regexp.MustCompile(`Release Date: (.+)`)

// ResolveIssueUseCase determines the issue id for a publish invocation.

type ResolveIssueUseCase struct {
	DraftRepo repository.DraftRepository
}

// Execute returns the explicit issue id when given, otherwise extracts it
// from the remote draft document.
func (uc *ResolveIssueUseCase) Execute(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	body, err := uc.DraftRepo.Fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch draft document: %w", err)
	}
	m := releaseDatePattern.FindStringSubmatch(body)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return "", &domain.IssueResolutionError{Reason: "no Release Date line in draft document"}
	}
	return strings.TrimSpace(m[1]), nil
}
