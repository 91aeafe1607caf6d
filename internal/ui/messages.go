package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitnag/internal/domain"
)

// SnapshotMsg carries a watcher snapshot into the program
type SnapshotMsg struct {
	Statuses []domain.RepositoryStatus
}

// dispatchedMsg reports the outcome of opening the git view
type dispatchedMsg struct {
	err  error
	root string
}

// reconciledMsg reports whether a forced refresh produced a snapshot
type reconciledMsg struct {
	emitted bool
}

// tickMsg re-renders elapsed times
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
