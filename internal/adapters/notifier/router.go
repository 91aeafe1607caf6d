package notifier

import (
	"context"
	"errors"

	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
)

// Router plays the reminder sound, then sends modal reminders to the
// terminal prompt when one is attached and everything else to the desktop
type Router struct {
	desktop ports.NotificationPresenter
	prompt  ports.NotificationPresenter
	sound   ports.SoundPlayer
}

// Verify interface compliance at compile time
var _ ports.NotificationPresenter = (*Router)(nil)

// NewRouter creates a presenter router. prompt and sound may be nil.
func NewRouter(desktop, prompt ports.NotificationPresenter, sound ports.SoundPlayer) *Router {
	return &Router{
		desktop: desktop,
		prompt:  prompt,
		sound:   sound,
	}
}

// Show routes the notification by style
func (r *Router) Show(ctx context.Context, n domain.Notification) (domain.NotificationAction, error) {
	if n.Sound != "" && r.sound != nil {
		if err := r.sound.PlaySoundForEvent(n.Sound); err != nil {
			logging.Logger.Warn("Failed to play sound", "error", err, "event", n.Sound)
		}
	}

	if n.Style == domain.StyleModal && r.prompt != nil {
		action, err := r.prompt.Show(ctx, n)
		if !errors.Is(err, domain.ErrNoTerminal) {
			return action, err
		}
		logging.Logger.Debug("No terminal for modal prompt, using desktop notification")
	}
	return r.desktop.Show(ctx, n)
}
