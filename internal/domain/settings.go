package domain

import "time"

// Default reminder settings
const (
	DefaultCheckIntervalSeconds = 120
	DefaultNotificationType     = StyleNotification
	DefaultProvider             = "git"
	DefaultSecondsUncommitted   = 1800
	DefaultSecondsUnpushed      = 1800
)

// ReminderSettings is the resolved configuration the reminder runs with
type ReminderSettings struct {
	CheckInterval    time.Duration
	Editor           string
	Enabled          bool
	GitViewCommand   string
	NotificationType NotificationStyle
	Provider         string
	Sound            bool
	Thresholds       Thresholds
	Workspaces       []string
}

// DefaultReminderSettings returns the settings used when nothing is configured
func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{
		CheckInterval:    DefaultCheckIntervalSeconds * time.Second,
		Enabled:          true,
		NotificationType: DefaultNotificationType,
		Provider:         DefaultProvider,
		Sound:            true,
		Thresholds: Thresholds{
			Uncommitted: DefaultSecondsUncommitted * time.Second,
			Unpushed:    DefaultSecondsUnpushed * time.Second,
		},
	}
}
