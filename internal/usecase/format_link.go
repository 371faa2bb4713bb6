package usecase

import (
	"context"

	"github.com/rweekly/imagepub/internal/domain"
)

// FormatLinkUseCase builds the markdown link referencing the resized copy's
// published URL.

type FormatLinkUseCase struct{}

// Execute runs the use case.
func (uc *FormatLinkUseCase) Execute(_ context.Context, caption, baseURL, issueID, resizedName string) domain.MarkdownLink {
	return domain.NewMarkdownLink(caption, baseURL, issueID, resizedName)
}
