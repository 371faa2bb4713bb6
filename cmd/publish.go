package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rweekly/imagepub/internal/config"
	"github.com/rweekly/imagepub/internal/orchestrator"
)

// NewPublishCmd creates the publish command
func NewPublishCmd(orch *orchestrator.PublishOrchestrator, cfg *config.Config) *cobra.Command {
	var (
		publishFile           string
		publishCaption        string
		publishWidth          string
		publishIssue          string
		publishRepo           string
		publishPush           bool
		publishNonInteractive bool
	)
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish an image to the current newsletter issue",
		Long: `Publish an image to the current newsletter issue.

This command orchestrates the entire publish workflow:
- Resolves the issue id, from --issue or the remote draft document
- Copies the source image into the issue directory
- Writes a resized copy constrained to the maximum width
- Commits both files and pushes them to the remote
- Prints the markdown link for the resized file's published URL

Existing files are never overwritten; publishing the same image twice
into one issue fails.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pcfg := orchestrator.PublishConfig{
				SourceFile:     publishFile,
				Caption:        publishCaption,
				MaxWidth:       publishWidth,
				IssueID:        publishIssue,
				ImageRepo:      publishRepo,
				Push:           publishPush,
				NonInteractive: publishNonInteractive,
				Remote:         cfg.Remote,
				BaseURL:        cfg.BaseURL,
			}
			_, err := orch.Execute(cmd.Context(), pcfg)
			return err
		},
	}

	cmd.Flags().StringVarP(&publishFile, "file", "f", "", "Path to the source image (required)")
	cmd.Flags().StringVarP(&publishCaption, "caption", "c", "", "Caption for the markdown link")
	cmd.Flags().StringVarP(&publishWidth, "width", "w", cfg.DefaultWidth, "Maximum width in pixels, optional px suffix")
	cmd.Flags().StringVarP(&publishIssue, "issue", "i", "", "Issue id (resolved from the draft document if empty)")
	cmd.Flags().StringVarP(&publishRepo, "image-repo", "r", cfg.ImageRepo, "Path to the git-tracked image repository")
	cmd.Flags().BoolVar(&publishPush, "push", cfg.Push, "Push the commit to the remote")
	cmd.Flags().BoolVar(&publishNonInteractive, "non-interactive", cfg.NonInteractive, "Never prompt; missing caption stays empty")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
