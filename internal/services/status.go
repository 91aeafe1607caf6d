package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
	"gitnag/internal/watcher"
)

// StatusReport is an evaluated snapshot
type StatusReport struct {
	CheckedAt time.Time
	Message   string // Reminder text, empty when nothing is overdue
	Statuses  []domain.RepositoryStatus
	Summary   domain.OverdueSummary
}

// StatusService answers one-shot questions about the tracked repositories
type StatusService struct {
	history   ports.ReminderHistory
	now       func() time.Time
	provider  ports.RepositoryProvider
	settings  ports.SettingsReader
	snapshots ports.SnapshotStore
}

// NewStatusService creates a new StatusService
func NewStatusService(
	settings ports.SettingsReader,
	provider ports.RepositoryProvider,
	snapshots ports.SnapshotStore,
	history ports.ReminderHistory,
) *StatusService {
	return &StatusService{
		history:   history,
		now:       time.Now,
		provider:  provider,
		settings:  settings,
		snapshots: snapshots,
	}
}

// Check runs one reconciliation seeded with the stored snapshot, stores the
// result and evaluates it
func (s *StatusService) Check(ctx context.Context) (*StatusReport, error) {
	if err := s.provider.Available(ctx); err != nil {
		if !errors.Is(err, domain.ErrProviderUnavailable) {
			err = fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
		}
		return nil, err
	}

	settings, err := s.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	seed, err := s.snapshots.ListSnapshot(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to read stored snapshot, starting fresh", "error", err)
		seed = nil
	}

	w := watcher.New(s.provider,
		watcher.WithClock(s.now),
		watcher.WithRoots(settings.Workspaces...),
		watcher.WithSeed(seed...))
	if !w.Reconcile(ctx) {
		// The seed must not be reported or stored as a fresh result
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCheckInterrupted, err)
		}
		return nil, domain.ErrCheckInterrupted
	}
	statuses := w.Repositories()

	if err := s.snapshots.ReplaceSnapshot(ctx, statuses); err != nil {
		logging.Logger.Warn("Failed to persist snapshot", "error", err)
	}

	return s.evaluate(statuses, settings.Thresholds), nil
}

// Snapshot evaluates the stored snapshot without querying the provider
func (s *StatusService) Snapshot(ctx context.Context) (*StatusReport, error) {
	settings, err := s.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	statuses, err := s.snapshots.ListSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	return s.evaluate(statuses, settings.Thresholds), nil
}

// History returns the most recent reminders, newest first
func (s *StatusService) History(ctx context.Context, limit int) ([]domain.Reminder, error) {
	reminders, err := s.history.ListReminders(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

func (s *StatusService) evaluate(statuses []domain.RepositoryStatus, thresholds domain.Thresholds) *StatusReport {
	now := s.now()
	summary := Evaluate(statuses, now, thresholds)
	message, _ := SelectMessage(summary)
	return &StatusReport{
		CheckedAt: now,
		Message:   message,
		Statuses:  statuses,
		Summary:   summary,
	}
}
