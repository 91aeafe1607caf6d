package domain

import "time"

// RepositoryState is the raw state reported by a source-control provider
// for one repository
type RepositoryState struct {
	AheadCount             *int   // Commits ahead of upstream (nil when there is no upstream)
	IndexChangeCount       int    // Staged changes
	RootID                 string // Canonical repository toplevel path
	WorkingTreeChangeCount int    // Unstaged and untracked changes
}

// UncommittedCount returns the number of changes not yet committed
func (s RepositoryState) UncommittedCount() int {
	return s.WorkingTreeChangeCount + s.IndexChangeCount
}

// RepositoryStatus is the tracked dirty state of a repository
type RepositoryStatus struct {
	LastUpdatedAt           time.Time
	RootID                  string
	UncommittedChangesCount int
	UncommittedChangesSince *time.Time
	UnpushedCommitsCount    *int
	UnpushedCommitsSince    *time.Time
}

// IsDirty reports whether the repository has uncommitted changes or unpushed commits
func (s RepositoryStatus) IsDirty() bool {
	return s.UncommittedChangesCount > 0 || s.HasUnpushedCommits()
}

// HasUnpushedCommits reports whether the upstream is known and behind HEAD
func (s RepositoryStatus) HasUnpushedCommits() bool {
	return s.UnpushedCommitsCount != nil && *s.UnpushedCommitsCount > 0
}

// NextStatus applies the since-transition rule to a freshly observed state.
// previous is the status stored on the last tick (nil for a new repository).
// A since-timestamp is kept from previous while its count stays above zero,
// set to now when the count becomes positive and cleared when it drops to zero.
func NextStatus(previous *RepositoryStatus, state RepositoryState, now time.Time) RepositoryStatus {
	next := RepositoryStatus{
		LastUpdatedAt:           now,
		RootID:                  state.RootID,
		UncommittedChangesCount: state.UncommittedCount(),
	}

	if state.AheadCount != nil {
		ahead := *state.AheadCount
		next.UnpushedCommitsCount = &ahead
	}

	if next.UncommittedChangesCount > 0 {
		next.UncommittedChangesSince = carrySince(previous, func(s *RepositoryStatus) *time.Time {
			return s.UncommittedChangesSince
		}, now)
	}

	if next.HasUnpushedCommits() {
		next.UnpushedCommitsSince = carrySince(previous, func(s *RepositoryStatus) *time.Time {
			return s.UnpushedCommitsSince
		}, now)
	}

	return next
}

func carrySince(previous *RepositoryStatus, since func(*RepositoryStatus) *time.Time, now time.Time) *time.Time {
	if previous != nil {
		if t := since(previous); t != nil {
			kept := *t
			return &kept
		}
	}
	started := now
	return &started
}
