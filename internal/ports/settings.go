package ports

import (
	"context"

	"gitnag/internal/domain"
)

// SettingsReader loads the resolved reminder settings
type SettingsReader interface {
	Load() (domain.ReminderSettings, error)
}

// SettingsWatcher emits an event whenever the settings namespace changes
type SettingsWatcher interface {
	// Watch calls onChange after every change until ctx is done.
	// It returns once the watch has been set up.
	Watch(ctx context.Context, onChange func()) error
}

// SettingsStore is the composite settings interface
type SettingsStore interface {
	SettingsReader
	SettingsWatcher
}
