package ports

import (
	"context"

	"gitnag/internal/domain"
)

// NotificationPresenter shows reminders to the user
type NotificationPresenter interface {
	// Show blocks until the user picks an action or dismisses the notification.
	// A dismissal returns domain.ActionNone.
	Show(ctx context.Context, n domain.Notification) (domain.NotificationAction, error)
}
