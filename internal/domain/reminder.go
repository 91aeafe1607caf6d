package domain

import "time"

// ReminderState is the lifecycle state of the reminder controller
type ReminderState string

const (
	ReminderDisabled  ReminderState = "disabled"
	ReminderNotifying ReminderState = "notifying"
	ReminderRunning   ReminderState = "running"
	ReminderStopped   ReminderState = "stopped"
)

// Thresholds are the dirty durations after which a repository is overdue
type Thresholds struct {
	Uncommitted time.Duration
	Unpushed    time.Duration
}

// OverdueSummary reduces a snapshot to the two reminder conditions
type OverdueSummary struct {
	OverdueRoots []string // Roots with at least one overdue condition, in snapshot order
	Uncommitted  bool
	Unpushed     bool
}

// Any reports whether at least one condition is overdue
func (s OverdueSummary) Any() bool {
	return s.Uncommitted || s.Unpushed
}

// Reminder is a fired reminder as kept in the history
type Reminder struct {
	Action       NotificationAction
	FiredAt      time.Time
	ID           string
	Message      string
	OverdueRoots []string
	Style        NotificationStyle
	Uncommitted  bool
	Unpushed     bool
}
