package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"gitnag/internal/domain"
	"gitnag/internal/ports"
	"gitnag/internal/watcher"
)

// Run starts w and shows its snapshots until the user quits or ctx ends
func Run(ctx context.Context, w *watcher.Watcher, opts watcher.Options, dispatcher ports.CommandDispatcher, thresholds domain.Thresholds) error {
	m := NewModel(ctx, w, dispatcher, thresholds)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := w.Subscribe(func(statuses []domain.RepositoryStatus) {
		p.Send(SnapshotMsg{Statuses: statuses})
	})
	defer unsubscribe()

	if err := w.Start(ctx, opts); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Stop()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("watch view failed: %w", err)
	}
	return nil
}
