package services

import (
	"fmt"
	"strings"
	"time"

	"gitnag/internal/domain"
)

// Evaluate reduces a snapshot to the two overdue conditions.
// A condition is overdue when its since-timestamp is strictly older than the threshold.
func Evaluate(statuses []domain.RepositoryStatus, now time.Time, thresholds domain.Thresholds) domain.OverdueSummary {
	var summary domain.OverdueSummary

	for _, s := range statuses {
		uncommitted := s.UncommittedChangesCount > 0 && overdue(s.UncommittedChangesSince, now, thresholds.Uncommitted)
		unpushed := s.HasUnpushedCommits() && overdue(s.UnpushedCommitsSince, now, thresholds.Unpushed)

		summary.Uncommitted = summary.Uncommitted || uncommitted
		summary.Unpushed = summary.Unpushed || unpushed
		if uncommitted || unpushed {
			summary.OverdueRoots = append(summary.OverdueRoots, s.RootID)
		}
	}

	return summary
}

// Repository states as shown to the user
const (
	StateClean   = "clean"
	StateDirty   = "dirty"
	StateOverdue = "overdue"
)

// StateOf classifies one repository
func StateOf(s domain.RepositoryStatus, now time.Time, thresholds domain.Thresholds) string {
	switch {
	case Evaluate([]domain.RepositoryStatus{s}, now, thresholds).Any():
		return StateOverdue
	case s.IsDirty():
		return StateDirty
	default:
		return StateClean
	}
}

func overdue(since *time.Time, now time.Time, threshold time.Duration) bool {
	if since == nil {
		return false
	}
	return elapsed(*since, now) > threshold
}

// elapsed is the absolute distance so a skewed clock still ages changes
func elapsed(since, now time.Time) time.Duration {
	d := now.Sub(since)
	if d < 0 {
		return -d
	}
	return d
}

// SelectMessage picks the reminder text for a summary.
// Returns false when nothing is overdue.
func SelectMessage(summary domain.OverdueSummary) (string, bool) {
	switch {
	case summary.Uncommitted && summary.Unpushed:
		return domain.MessageCombined, true
	case summary.Uncommitted:
		return domain.MessageUncommitted, true
	case summary.Unpushed:
		return domain.MessageUnpushed, true
	default:
		return "", false
	}
}

// SoundEvent names the sound played for a summary
func SoundEvent(summary domain.OverdueSummary) string {
	switch {
	case summary.Uncommitted && summary.Unpushed:
		return domain.SoundEventCombined
	case summary.Uncommitted:
		return domain.SoundEventUncommitted
	case summary.Unpushed:
		return domain.SoundEventUnpushed
	default:
		return ""
	}
}

// BuildDetail renders one line per dirty repository
func BuildDetail(statuses []domain.RepositoryStatus, now time.Time) string {
	var lines []string
	for _, s := range statuses {
		var parts []string
		if s.UncommittedChangesCount > 0 && s.UncommittedChangesSince != nil {
			parts = append(parts, fmt.Sprintf("%d uncommitted for %s",
				s.UncommittedChangesCount, FormatAge(elapsed(*s.UncommittedChangesSince, now))))
		}
		if s.HasUnpushedCommits() && s.UnpushedCommitsSince != nil {
			parts = append(parts, fmt.Sprintf("%d unpushed for %s",
				*s.UnpushedCommitsCount, FormatAge(elapsed(*s.UnpushedCommitsSince, now))))
		}
		if len(parts) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", s.RootID, strings.Join(parts, ", ")))
	}
	return strings.Join(lines, "\n")
}

// FormatAge renders a duration the way the status views show it (45s, 12m, 3h05m)
func FormatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	}
}
