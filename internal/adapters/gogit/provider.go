package gogit

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
)

// Provider implements ports.RepositoryProvider with go-git, no git binary needed
type Provider struct{}

// Verify interface compliance at compile time
var _ ports.RepositoryProvider = (*Provider)(nil)

// NewProvider creates a new go-git Provider
func NewProvider() *Provider {
	return &Provider{}
}

// Available always succeeds: go-git is linked into the binary
func (p *Provider) Available(ctx context.Context) error {
	return nil
}

// OpenRepository reports the change counts of the repository containing root.
// Returns nil, nil when root is not inside a repository.
func (p *Provider) OpenRepository(ctx context.Context, root string) (*domain.RepositoryState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			logging.Logger.Debug("Not a git repository", "root", root)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open repository %s: %w", root, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open worktree %s: %w", root, err)
	}

	state := &domain.RepositoryState{
		RootID: filepath.Clean(wt.Filesystem.Root()),
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read status of %s: %w", state.RootID, err)
	}
	state.IndexChangeCount, state.WorkingTreeChangeCount = countStatus(status)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	state.AheadCount, err = aheadOfUpstream(repo)
	if err != nil {
		return nil, fmt.Errorf("failed to count unpushed commits of %s: %w", state.RootID, err)
	}

	logging.Logger.Debug("Repository state read",
		"root", state.RootID,
		"index", state.IndexChangeCount,
		"working_tree", state.WorkingTreeChangeCount,
		"ahead", state.AheadCount)

	return state, nil
}

// countStatus splits a go-git status into index and working tree counts
func countStatus(status git.Status) (index, workingTree int) {
	for _, fs := range status {
		if fs.Staging == git.Untracked && fs.Worktree == git.Untracked {
			workingTree++
			continue
		}
		if fs.Staging != git.Unmodified {
			index++
		}
		if fs.Worktree != git.Unmodified {
			workingTree++
		}
	}
	return index, workingTree
}

// aheadOfUpstream counts commits on HEAD that its upstream lacks.
// Returns nil for detached or unborn HEAD and for branches without upstream.
func aheadOfUpstream(repo *git.Repository) (*int, error) {
	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !head.Name().IsBranch() {
		return nil, nil
	}

	branch, err := repo.Branch(head.Name().Short())
	if err != nil {
		if errors.Is(err, git.ErrBranchNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if branch.Remote == "" || branch.Merge == "" {
		return nil, nil
	}

	upstreamName := branch.Merge
	if branch.Remote != "." {
		upstreamName = plumbing.NewRemoteReferenceName(branch.Remote, branch.Merge.Short())
	}
	upstream, err := repo.Reference(upstreamName, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			// Upstream configured but never fetched or deleted on the remote
			return nil, nil
		}
		return nil, err
	}

	headCommit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, err
	}
	upstreamCommit, err := repo.CommitObject(upstream.Hash())
	if err != nil {
		return nil, err
	}

	bases, err := headCommit.MergeBase(upstreamCommit)
	if err != nil {
		return nil, err
	}
	seen := make(map[plumbing.Hash]bool, len(bases))
	for _, base := range bases {
		seen[base.Hash] = true
	}

	ahead := 0
	iter := object.NewCommitPreorderIter(headCommit, seen, nil)
	defer iter.Close()
	err = iter.ForEach(func(*object.Commit) error {
		ahead++
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ahead, nil
}
