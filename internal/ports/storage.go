package ports

import (
	"context"

	"gitnag/internal/domain"
)

// SnapshotWriter persists the latest watcher snapshot
type SnapshotWriter interface {
	ReplaceSnapshot(ctx context.Context, statuses []domain.RepositoryStatus) error
}

// SnapshotReader reads the latest persisted snapshot
type SnapshotReader interface {
	ListSnapshot(ctx context.Context) ([]domain.RepositoryStatus, error)
}

// ReminderRecorder appends fired reminders to the history
type ReminderRecorder interface {
	RecordReminder(ctx context.Context, reminder domain.Reminder) error
}

// ReminderHistory lists fired reminders, most recent first
type ReminderHistory interface {
	ListReminders(ctx context.Context, limit int) ([]domain.Reminder, error)
}

// SnapshotStore reads and replaces the persisted snapshot
type SnapshotStore interface {
	SnapshotReader
	SnapshotWriter
}

// StateRepository is the composite storage interface
type StateRepository interface {
	ReminderHistory
	ReminderRecorder
	SnapshotReader
	SnapshotWriter
	Close() error
}
