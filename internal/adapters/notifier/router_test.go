package notifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gitnag/internal/domain"
	"gitnag/internal/ports/mocks"
)

func TestRouter_ModalUsesPrompt(t *testing.T) {
	desktop := mocks.NewMockNotificationPresenter(t)
	prompt := mocks.NewMockNotificationPresenter(t)
	prompt.EXPECT().Show(mock.Anything, mock.Anything).Return(domain.ActionSnooze, nil).Once()

	action, err := NewRouter(desktop, prompt, nil).Show(context.Background(), reminder(domain.StyleModal))

	require.NoError(t, err)
	assert.Equal(t, domain.ActionSnooze, action)
}

func TestRouter_ModalWithoutTerminalUsesDesktop(t *testing.T) {
	desktop := mocks.NewMockNotificationPresenter(t)
	prompt := mocks.NewMockNotificationPresenter(t)
	prompt.EXPECT().Show(mock.Anything, mock.Anything).Return(domain.ActionNone, domain.ErrNoTerminal).Once()
	desktop.EXPECT().Show(mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Style == domain.StyleModal
	})).Return(domain.ActionOpenGitView, nil).Once()

	action, err := NewRouter(desktop, prompt, nil).Show(context.Background(), reminder(domain.StyleModal))

	require.NoError(t, err)
	assert.Equal(t, domain.ActionOpenGitView, action)
}

func TestRouter_NotificationSkipsPrompt(t *testing.T) {
	desktop := mocks.NewMockNotificationPresenter(t)
	prompt := mocks.NewMockNotificationPresenter(t)
	desktop.EXPECT().Show(mock.Anything, mock.Anything).Return(domain.ActionNone, nil).Once()

	_, err := NewRouter(desktop, prompt, nil).Show(context.Background(), reminder(domain.StyleNotification))

	require.NoError(t, err)
}

func TestRouter_PlaysSound(t *testing.T) {
	desktop := mocks.NewMockNotificationPresenter(t)
	sound := mocks.NewMockSoundPlayer(t)
	desktop.EXPECT().Show(mock.Anything, mock.Anything).Return(domain.ActionNone, nil).Once()
	sound.EXPECT().PlaySoundForEvent(domain.SoundEventUnpushed).Return(nil).Once()

	n := reminder(domain.StyleNotification)
	n.Sound = domain.SoundEventUnpushed
	_, err := NewRouter(desktop, nil, sound).Show(context.Background(), n)

	require.NoError(t, err)
}
