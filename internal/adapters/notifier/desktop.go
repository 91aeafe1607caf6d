package notifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
)

// runFunc runs a command and returns its trimmed stdout
type runFunc func(ctx context.Context, name string, args ...string) (string, error)

func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Desktop presents reminders as OS notifications.
// Linux uses notify-send, macOS uses osascript and everything else
// falls back to a line on stderr with a terminal bell.
type Desktop struct {
	goos   string
	run    runFunc
	stderr io.Writer
}

// Verify interface compliance at compile time
var _ ports.NotificationPresenter = (*Desktop)(nil)

// DesktopOption configures a Desktop presenter
type DesktopOption func(*Desktop)

// WithGOOS overrides the detected platform
func WithGOOS(goos string) DesktopOption {
	return func(d *Desktop) { d.goos = goos }
}

// WithRunner replaces the command runner
func WithRunner(run runFunc) DesktopOption {
	return func(d *Desktop) { d.run = run }
}

// WithStderr replaces the fallback output
func WithStderr(w io.Writer) DesktopOption {
	return func(d *Desktop) { d.stderr = w }
}

// NewDesktop creates a desktop presenter
func NewDesktop(opts ...DesktopOption) *Desktop {
	d := &Desktop{
		goos:   runtime.GOOS,
		run:    runCommand,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Show displays the notification and waits for an action when the platform supports one
func (d *Desktop) Show(ctx context.Context, n domain.Notification) (domain.NotificationAction, error) {
	switch d.goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return d.showNotifySend(ctx, n)
	case "darwin":
		return d.showOsascript(ctx, n)
	default:
		return d.showFallback(n)
	}
}

func (d *Desktop) showNotifySend(ctx context.Context, n domain.Notification) (domain.NotificationAction, error) {
	urgency := "normal"
	if n.Style == domain.StyleModal {
		urgency = "critical"
	}

	base := []string{"--app-name=gitnag", "--urgency=" + urgency}
	var actions []string
	for _, a := range n.Actions {
		actions = append(actions, "--action="+actionKey(a)+"="+string(a))
	}
	body := notificationBody(n)

	args := append(append(append([]string{}, base...), actions...), "--wait", n.Title, body)
	out, err := d.run(ctx, "notify-send", args...)
	if err == nil {
		action := domain.ParseNotificationAction(out)
		logging.Logger.Debug("Notification closed", "action", action)
		return action, nil
	}
	if ctx.Err() != nil {
		return domain.ActionNone, ctx.Err()
	}

	// Older notify-send builds reject --action and --wait
	logging.Logger.Debug("notify-send with actions failed, retrying plain", "error", err)
	args = append(append([]string{}, base...), n.Title, body)
	if _, err := d.run(ctx, "notify-send", args...); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return d.showFallback(n)
		}
		return domain.ActionNone, fmt.Errorf("failed to show notification: %w", err)
	}
	return domain.ActionNone, nil
}

func (d *Desktop) showOsascript(ctx context.Context, n domain.Notification) (domain.NotificationAction, error) {
	if n.Style != domain.StyleModal {
		script := fmt.Sprintf("display notification %s with title %s subtitle %s",
			appleScriptString(n.Detail), appleScriptString(n.Title), appleScriptString(n.Message))
		if _, err := d.run(ctx, "osascript", "-e", script); err != nil {
			return domain.ActionNone, fmt.Errorf("failed to show notification: %w", err)
		}
		return domain.ActionNone, nil
	}

	buttons := make([]string, 0, len(n.Actions))
	for i := len(n.Actions) - 1; i >= 0; i-- {
		buttons = append(buttons, appleScriptString(string(n.Actions[i])))
	}
	script := fmt.Sprintf("display dialog %s with title %s buttons {%s}",
		appleScriptString(notificationBody(n)), appleScriptString(n.Title), strings.Join(buttons, ", "))
	if len(n.Actions) > 0 {
		script += " default button " + appleScriptString(string(n.Actions[0]))
	}

	out, err := d.run(ctx, "osascript", "-e", script)
	if err != nil {
		if ctx.Err() != nil {
			return domain.ActionNone, ctx.Err()
		}
		// -128 is "User canceled"
		if strings.Contains(err.Error(), "-128") {
			return domain.ActionNone, nil
		}
		return domain.ActionNone, fmt.Errorf("failed to show dialog: %w", err)
	}
	return domain.ParseNotificationAction(strings.TrimPrefix(out, "button returned:")), nil
}

func (d *Desktop) showFallback(n domain.Notification) (domain.NotificationAction, error) {
	_, err := fmt.Fprintf(d.stderr, "\a%s: %s\n", n.Title, notificationBody(n))
	return domain.ActionNone, err
}

func notificationBody(n domain.Notification) string {
	if n.Detail == "" {
		return n.Message
	}
	return n.Message + "\n" + n.Detail
}

func actionKey(a domain.NotificationAction) string {
	switch a {
	case domain.ActionOpenGitView:
		return "open"
	case domain.ActionSnooze:
		return "snooze"
	default:
		return strings.ToLower(strings.ReplaceAll(string(a), " ", "-"))
	}
}

func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
