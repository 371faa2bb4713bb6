package orchestrator

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/rweekly/imagepub/internal/domain"
	"github.com/rweekly/imagepub/internal/repository"
	"github.com/rweekly/imagepub/internal/service"
	"github.com/rweekly/imagepub/internal/usecase"
)

// PublishConfig contains configuration for the publish workflow.
type PublishConfig struct {
	SourceFile     string
	Caption        string
	MaxWidth       string
	IssueID        string
	ImageRepo      string
	Push           bool
	NonInteractive bool // never prompt; empty caption stays empty
	Remote         string
	BaseURL        string
}

// PublishOrchestrator orchestrates the entire image publish workflow.
type PublishOrchestrator struct {
	fsRepo    repository.FileSystemRepository
	draftRepo repository.DraftRepository
	imageSvc  service.ImageService
	openGit   repository.GitOpener
	logger    *zap.Logger
	in        io.Reader
	out       io.Writer
}

// NewPublishOrchestrator creates a new publish orchestrator.
func NewPublishOrchestrator(
	fsRepo repository.FileSystemRepository,
	draftRepo repository.DraftRepository,
	imageSvc service.ImageService,
	openGit repository.GitOpener,
	logger *zap.Logger,
	in io.Reader,
	out io.Writer,
) *PublishOrchestrator {
	return &PublishOrchestrator{
		fsRepo:    fsRepo,
		draftRepo: draftRepo,
		imageSvc:  imageSvc,
		openGit:   openGit,
		logger:    logger,
		in:        in,
		out:       out,
	}
}

// Execute runs the complete publish workflow and returns the markdown link
// for the resized copy. Every step is a fail-fast gate: the first error
// aborts the remainder and completed side effects are not rolled back.
func (o *PublishOrchestrator) Execute(ctx context.Context, cfg PublishConfig) (domain.MarkdownLink, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultWorkflowTimeout)
	defer cancel()

	log := o.logger.With(zap.String("run_id", uuid.New().String()))

	// Step 1: validate inputs before any side effect
	gitRepo, err := o.validate(cfg)
	if err != nil {
		return "", err
	}
	width, err := domain.NormalizeWidth(cfg.MaxWidth)
	if err != nil {
		return "", err
	}

	// Step 2: resolve the target issue
	issueID, err := o.resolveIssue(ctx, cfg.IssueID)
	if err != nil {
		return "", err
	}
	log = log.With(zap.String("issue", issueID))

	// Step 3: exclusive access to the image repository for the rest of
	// the workflow. The lock lives at the worktree root so that publishes
	// into different subdirectories still exclude each other.
	lock := flock.New(filepath.Join(gitRepo.Root(), LockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return "", fmt.Errorf("failed to lock image repository: %w", err)
	}
	if !locked {
		return "", fmt.Errorf("image repository is locked by another publish")
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Warn("failed to release repository lock", zap.Error(err))
		}
	}()

	// Steps 4-6: issue directory, original copy, resized copy
	issueDir := filepath.Join(cfg.ImageRepo, issueID)
	stageUC := &usecase.StageImagesUseCase{Fs: o.fsRepo, ImageSvc: o.imageSvc}
	staged, err := stageUC.Execute(ctx, cfg.SourceFile, issueDir, width)
	if err != nil {
		return "", err
	}
	log.Info("staged image copies",
		zap.String("original", staged.Original),
		zap.String("resized", staged.Resized),
		zap.Int("width", width))

	// Step 7: stage, commit, optionally push
	if err := o.commitAndPush(ctx, gitRepo, issueDir, issueID, cfg, log); err != nil {
		return "", err
	}

	// Step 8: derive and print the link. The caption is consumed only
	// here, so an interactive prompt happens after all the gates that
	// could still abort the publish.
	caption := o.resolveCaption(cfg)
	linkUC := &usecase.FormatLinkUseCase{}
	link := linkUC.Execute(ctx, caption, cfg.BaseURL, issueID, filepath.Base(staged.Resized))
	fmt.Fprintln(o.out, link)
	return link, nil
}

// validate checks the required inputs and verifies that the image repo path
// is under git version control and the source file exists.
func (o *PublishOrchestrator) validate(cfg PublishConfig) (repository.GitRepository, error) {
	req := &domain.PublishRequest{
		SourceFile: cfg.SourceFile,
		Caption:    cfg.Caption,
		MaxWidth:   cfg.MaxWidth,
		IssueID:    cfg.IssueID,
		ImageRepo:  cfg.ImageRepo,
		Push:       cfg.Push,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	exists, err := afero.Exists(o.fsRepo, cfg.SourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to check source image: %w", err)
	}
	if !exists {
		return nil, &domain.InvalidArgumentError{Field: "file", Reason: fmt.Sprintf("source image %s does not exist", cfg.SourceFile)}
	}
	gitRepo, err := o.openGit(cfg.ImageRepo)
	if err != nil {
		return nil, &domain.InvalidArgumentError{
			Field:  "image_repo",
			Reason: fmt.Sprintf("not a git working directory: %v", err),
		}
	}
	return gitRepo, nil
}

func (o *PublishOrchestrator) resolveIssue(ctx context.Context, explicit string) (string, error) {
	uc := &usecase.ResolveIssueUseCase{DraftRepo: o.draftRepo}
	return uc.Execute(ctx, explicit)
}

// resolveCaption prompts for a caption on the command's stdin when running
// interactively; in non-interactive mode an absent caption stays empty.
func (o *PublishOrchestrator) resolveCaption(cfg PublishConfig) string {
	if cfg.Caption != "" || cfg.NonInteractive {
		return cfg.Caption
	}
	fmt.Fprint(o.out, "Caption: ")
	scanner := bufio.NewScanner(o.in)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}

func (o *PublishOrchestrator) commitAndPush(
	ctx context.Context,
	gitRepo repository.GitRepository,
	issueDir, issueID string,
	cfg PublishConfig,
	log *zap.Logger,
) error {
	if err := gitRepo.AddPath(ctx, issueDir); err != nil {
		return &domain.RepositoryError{Op: "add", Err: err}
	}
	message := fmt.Sprintf("[auto] images for %s", issueID)
	if err := gitRepo.Commit(ctx, message); err != nil {
		return &domain.RepositoryError{Op: "commit", Err: err}
	}
	log.Info("committed images", zap.String("message", message))
	if !cfg.Push {
		return nil
	}
	if err := gitRepo.Push(ctx, cfg.Remote); err != nil {
		return &domain.RepositoryError{Op: "push", Err: err}
	}
	log.Info("pushed to remote", zap.String("remote", cfg.Remote))
	return nil
}
