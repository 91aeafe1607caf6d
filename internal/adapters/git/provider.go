package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
)

// CLIProvider implements ports.RepositoryProvider using local git commands
type CLIProvider struct{}

// Verify interface compliance at compile time
var _ ports.RepositoryProvider = (*CLIProvider)(nil)

// NewCLIProvider creates a new CLIProvider
func NewCLIProvider() *CLIProvider {
	return &CLIProvider{}
}

// Available checks that a working git binary is on PATH
func (p *CLIProvider) Available(ctx context.Context) error {
	path, err := exec.LookPath("git")
	if err != nil {
		return fmt.Errorf("%w: git executable not found: %v", domain.ErrProviderUnavailable, err)
	}

	version, err := runGit(ctx, "", "--version")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	logging.Logger.Debug("Git provider available", "path", path, "version", strings.TrimSpace(version))
	return nil
}

// OpenRepository reports the change counts of the repository containing root.
// Returns nil, nil when root does not exist or is not inside a repository.
func (p *CLIProvider) OpenRepository(ctx context.Context, root string) (*domain.RepositoryState, error) {
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		logging.Logger.Debug("Workspace root is not a directory", "root", root)
		return nil, nil
	}

	toplevel, err := runGit(ctx, root, "rev-parse", "--show-toplevel")
	if err != nil {
		var gerr *commandError
		if errors.As(err, &gerr) && isNotRepository(gerr.stderr) {
			return nil, nil
		}
		return nil, err
	}

	state := &domain.RepositoryState{
		RootID: filepath.Clean(filepath.FromSlash(strings.TrimSpace(toplevel))),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out, err := runGit(gctx, state.RootID, "status", "--porcelain=v1", "-z", "--untracked-files=all")
		if err != nil {
			return err
		}
		state.IndexChangeCount, state.WorkingTreeChangeCount = parsePorcelain(out)
		return nil
	})

	g.Go(func() error {
		ahead, err := aheadOfUpstream(gctx, state.RootID)
		if err != nil {
			return err
		}
		state.AheadCount = ahead
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to read repository %s: %w", state.RootID, err)
	}

	logging.Logger.Debug("Repository state read",
		"root", state.RootID,
		"index", state.IndexChangeCount,
		"working_tree", state.WorkingTreeChangeCount,
		"ahead", state.AheadCount)

	return state, nil
}
