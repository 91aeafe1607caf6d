package notifier

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"gitnag/internal/domain"
	"gitnag/internal/ports"
)

// Prompt presents modal reminders as an interactive terminal select
type Prompt struct {
	isTerminal func() bool
	run        func(ctx context.Context, form *huh.Form) error
}

// Verify interface compliance at compile time
var _ ports.NotificationPresenter = (*Prompt)(nil)

// NewPrompt creates a terminal prompt bound to stdin
func NewPrompt() *Prompt {
	return &Prompt{
		isTerminal: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		run: func(ctx context.Context, form *huh.Form) error {
			return form.RunWithContext(ctx)
		},
	}
}

// Show asks the user to pick one of the notification's actions.
// Returns domain.ErrNoTerminal when stdin is not interactive.
func (p *Prompt) Show(ctx context.Context, n domain.Notification) (domain.NotificationAction, error) {
	if !p.isTerminal() {
		return domain.ActionNone, domain.ErrNoTerminal
	}

	var choice string
	form := newPromptForm(n, &choice)

	if err := p.run(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.ActionNone, nil
		}
		if ctx.Err() != nil {
			return domain.ActionNone, ctx.Err()
		}
		return domain.ActionNone, fmt.Errorf("prompt failed: %w", err)
	}

	return domain.ParseNotificationAction(choice), nil
}

func newPromptForm(n domain.Notification, choice *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(n.Actions)+1)
	for _, a := range n.Actions {
		options = append(options, huh.NewOption(string(a), string(a)))
	}
	options = append(options, huh.NewOption("Dismiss", ""))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(n.Title+": "+n.Message).
				Description(n.Detail).
				Options(options...).
				Value(choice),
		),
	)
}
