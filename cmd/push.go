package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rweekly/imagepub/internal/config"
	"github.com/rweekly/imagepub/internal/repository"
)

// NewPushCmd creates the push command, a direct pass-through to the git
// push capability of the image repository. It carries no workflow logic.
func NewPushCmd(openGit repository.GitOpener, cfg *config.Config) *cobra.Command {
	var pushRepo string
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push the image repository to its remote",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gitRepo, err := openGit(pushRepo)
			if err != nil {
				return err
			}
			return gitRepo.Push(cmd.Context(), cfg.Remote)
		},
	}
	cmd.Flags().StringVarP(&pushRepo, "image-repo", "r", cfg.ImageRepo, "Path to the git-tracked image repository")
	return cmd
}
