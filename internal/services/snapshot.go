package services

import (
	"context"
	"time"

	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
)

const snapshotWriteTimeout = 5 * time.Second

// SnapshotRecorder persists every watcher snapshot so other commands can read it
type SnapshotRecorder struct {
	writer ports.SnapshotWriter
}

// NewSnapshotRecorder creates a new SnapshotRecorder
func NewSnapshotRecorder(writer ports.SnapshotWriter) *SnapshotRecorder {
	return &SnapshotRecorder{writer: writer}
}

// OnSnapshot replaces the stored snapshot. Failures are logged only.
func (r *SnapshotRecorder) OnSnapshot(statuses []domain.RepositoryStatus) {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotWriteTimeout)
	defer cancel()

	if err := r.writer.ReplaceSnapshot(ctx, statuses); err != nil {
		logging.Logger.Warn("Failed to persist snapshot", "error", err, "repositories", len(statuses))
		return
	}
	logging.Logger.Debug("Snapshot persisted", "repositories", len(statuses))
}
