package cmd

import (
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/rweekly/imagepub/internal/config"
	"github.com/rweekly/imagepub/internal/orchestrator"
	"github.com/rweekly/imagepub/internal/repository"
	"github.com/rweekly/imagepub/internal/service"
)

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config

	fsRepo    repository.FileSystemRepository
	draftRepo repository.DraftRepository
	imageSvc  service.ImageService
	openGit   repository.GitOpener
	logger    *zap.Logger
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	fsRepo := repository.FileSystemRepository(afero.NewOsFs())
	draftRepo := repository.NewDraftRepository(cfg.DraftURL)
	imageSvc := service.NewImageService()
	openGit := func(path string) (repository.GitRepository, error) {
		return repository.NewGitRepository(path, cfg.AuthorName, cfg.AuthorEmail)
	}

	return &container{
		cfg:       cfg,
		fsRepo:    fsRepo,
		draftRepo: draftRepo,
		imageSvc:  imageSvc,
		openGit:   openGit,
		logger:    logger,
	}, nil
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}

	publishOrch := orchestrator.NewPublishOrchestrator(
		c.fsRepo,
		c.draftRepo,
		c.imageSvc,
		c.openGit,
		c.logger,
		os.Stdin,
		os.Stdout,
	)
	rootCmd.AddCommand(NewPublishCmd(publishOrch, c.cfg))
	rootCmd.AddCommand(NewPushCmd(c.openGit, c.cfg))
	rootCmd.AddCommand(newVersionCmd())

	return nil
}
