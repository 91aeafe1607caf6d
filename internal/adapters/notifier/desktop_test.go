package notifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitnag/internal/domain"
)

type call struct {
	args []string
	name string
}

type fakeRunner struct {
	calls   []call
	outputs []string
	errs    []error
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) (string, error) {
	i := len(f.calls)
	f.calls = append(f.calls, call{args: args, name: name})
	var out string
	var err error
	if i < len(f.outputs) {
		out = f.outputs[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return out, err
}

func reminder(style domain.NotificationStyle) domain.Notification {
	return domain.Notification{
		Actions: domain.NotificationActions,
		Detail:  "/repo: 2 uncommitted for 45m",
		Message: domain.MessageUncommitted,
		Style:   style,
		Title:   "gitnag",
	}
}

func TestDesktop_NotifySendReturnsChosenAction(t *testing.T) {
	runner := &fakeRunner{outputs: []string{"open"}}
	d := NewDesktop(WithGOOS("linux"), WithRunner(runner.run))

	action, err := d.Show(context.Background(), reminder(domain.StyleNotification))

	require.NoError(t, err)
	assert.Equal(t, domain.ActionOpenGitView, action)
	require.Len(t, runner.calls, 1)
	args := runner.calls[0].args
	assert.Equal(t, "notify-send", runner.calls[0].name)
	assert.Contains(t, args, "--urgency=normal")
	assert.Contains(t, args, "--action=open=Open Git View")
	assert.Contains(t, args, "--action=snooze=Snooze")
	assert.Contains(t, args, "--wait")
	assert.Equal(t, domain.MessageUncommitted+"\n/repo: 2 uncommitted for 45m", args[len(args)-1])
}

func TestDesktop_NotifySendModalIsCritical(t *testing.T) {
	runner := &fakeRunner{outputs: []string{""}}
	d := NewDesktop(WithGOOS("linux"), WithRunner(runner.run))

	action, err := d.Show(context.Background(), reminder(domain.StyleModal))

	require.NoError(t, err)
	assert.Equal(t, domain.ActionNone, action, "closing the notification is a dismissal")
	assert.Contains(t, runner.calls[0].args, "--urgency=critical")
}

func TestDesktop_NotifySendFallsBackWithoutActions(t *testing.T) {
	runner := &fakeRunner{errs: []error{errors.New("Unknown option --action")}}
	d := NewDesktop(WithGOOS("linux"), WithRunner(runner.run))

	action, err := d.Show(context.Background(), reminder(domain.StyleNotification))

	require.NoError(t, err)
	assert.Equal(t, domain.ActionNone, action)
	require.Len(t, runner.calls, 2)
	assert.NotContains(t, runner.calls[1].args, "--wait")
}

func TestDesktop_NotifySendMissingUsesStderr(t *testing.T) {
	notFound := fmt.Errorf("notify-send: %w", exec.ErrNotFound)
	runner := &fakeRunner{errs: []error{notFound, notFound}}
	var stderr bytes.Buffer
	d := NewDesktop(WithGOOS("linux"), WithRunner(runner.run), WithStderr(&stderr))

	action, err := d.Show(context.Background(), reminder(domain.StyleNotification))

	require.NoError(t, err)
	assert.Equal(t, domain.ActionNone, action)
	assert.True(t, strings.HasPrefix(stderr.String(), "\agitnag: "))
}

func TestDesktop_OsascriptDialogParsesButton(t *testing.T) {
	runner := &fakeRunner{outputs: []string{"button returned:Snooze"}}
	d := NewDesktop(WithGOOS("darwin"), WithRunner(runner.run))

	action, err := d.Show(context.Background(), reminder(domain.StyleModal))

	require.NoError(t, err)
	assert.Equal(t, domain.ActionSnooze, action)
	script := runner.calls[0].args[1]
	assert.Contains(t, script, "display dialog")
	assert.Contains(t, script, `buttons {"Snooze", "Open Git View"}`)
	assert.Contains(t, script, `default button "Open Git View"`)
}

func TestDesktop_OsascriptDialogCancelled(t *testing.T) {
	runner := &fakeRunner{errs: []error{errors.New("execution error: User canceled. (-128)")}}
	d := NewDesktop(WithGOOS("darwin"), WithRunner(runner.run))

	action, err := d.Show(context.Background(), reminder(domain.StyleModal))

	require.NoError(t, err)
	assert.Equal(t, domain.ActionNone, action)
}

func TestDesktop_OsascriptPassiveNotification(t *testing.T) {
	runner := &fakeRunner{}
	d := NewDesktop(WithGOOS("darwin"), WithRunner(runner.run))

	action, err := d.Show(context.Background(), reminder(domain.StyleNotification))

	require.NoError(t, err)
	assert.Equal(t, domain.ActionNone, action)
	assert.Contains(t, runner.calls[0].args[1], "display notification")
}

func TestDesktop_OtherPlatformsUseStderr(t *testing.T) {
	runner := &fakeRunner{}
	var stderr bytes.Buffer
	d := NewDesktop(WithGOOS("plan9"), WithRunner(runner.run), WithStderr(&stderr))

	_, err := d.Show(context.Background(), reminder(domain.StyleNotification))

	require.NoError(t, err)
	assert.Empty(t, runner.calls)
	assert.Contains(t, stderr.String(), domain.MessageUncommitted)
}

func TestAppleScriptString_Escapes(t *testing.T) {
	assert.Equal(t, `"say \"hi\" \\ bye"`, appleScriptString(`say "hi" \ bye`))
}
