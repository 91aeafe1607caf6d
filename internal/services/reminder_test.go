package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gitnag/internal/domain"
	portsmocks "gitnag/internal/ports/mocks"
)

// steppingClock returns base on the first call and base+step afterwards,
// so the first tick's changes are already old when evaluated
type steppingClock struct {
	base  time.Time
	calls int
	mu    sync.Mutex
	step  time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.calls == 1 {
		return c.base
	}
	return c.base.Add(c.step)
}

func newSteppingClock() *steppingClock {
	return &steppingClock{
		base: time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC),
		step: time.Hour,
	}
}

func testSettings() domain.ReminderSettings {
	settings := domain.DefaultReminderSettings()
	settings.CheckInterval = time.Hour
	settings.Sound = false
	settings.Workspaces = []string{"/repo"}
	return settings
}

func dirtyRepo() *domain.RepositoryState {
	return &domain.RepositoryState{
		AheadCount:             intPtr(2),
		RootID:                 "/repo",
		WorkingTreeChangeCount: 3,
	}
}

func activeWatcherRunning(c *ReminderController) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == domain.ReminderRunning && c.watcher != nil && c.watcher.IsRunning()
}

func TestReminder_OpenGitViewDispatchesOnceAndResumes(t *testing.T) {
	settings := portsmocks.NewMockSettingsStore(t)
	provider := portsmocks.NewMockRepositoryProvider(t)
	presenter := portsmocks.NewMockNotificationPresenter(t)
	dispatcher := portsmocks.NewMockCommandDispatcher(t)
	recorder := portsmocks.NewMockReminderRecorder(t)

	cfg := testSettings()
	cfg.NotificationType = domain.StyleModal
	settings.EXPECT().Load().Return(cfg, nil)
	provider.EXPECT().OpenRepository(mock.Anything, "/repo").Return(dirtyRepo(), nil)

	presenter.EXPECT().Show(mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Message == domain.MessageCombined &&
			n.Style == domain.StyleModal &&
			assert.ObjectsAreEqual(domain.NotificationActions, n.Actions)
	})).Return(domain.ActionOpenGitView, nil).Once()

	dispatched := make(chan struct{})
	dispatcher.EXPECT().Dispatch(mock.Anything, domain.CommandOpenGitView, "/repo").
		Run(func(ctx context.Context, commandID string, args ...string) { close(dispatched) }).
		Return(nil).Once()

	recorder.EXPECT().RecordReminder(mock.Anything, mock.MatchedBy(func(r domain.Reminder) bool {
		return r.Action == domain.ActionOpenGitView && r.Uncommitted && r.Unpushed && r.ID != ""
	})).Return(nil).Once()

	c := NewReminderController(settings, provider, presenter, dispatcher,
		WithReminderClock(newSteppingClock().Now),
		WithReminderRecorder(recorder))

	require.NoError(t, c.Start(context.Background()))
	defer c.Stop()

	select {
	case <-dispatched:
	case <-time.After(2 * time.Second):
		t.Fatal("open git view was not dispatched")
	}

	assert.Eventually(t, func() bool { return activeWatcherRunning(c) }, 2*time.Second, 5*time.Millisecond)
}

func TestReminder_NothingOverdueKeepsRunning(t *testing.T) {
	settings := portsmocks.NewMockSettingsStore(t)
	provider := portsmocks.NewMockRepositoryProvider(t)
	presenter := portsmocks.NewMockNotificationPresenter(t)
	dispatcher := portsmocks.NewMockCommandDispatcher(t)

	settings.EXPECT().Load().Return(testSettings(), nil)

	ticked := make(chan struct{}, 1)
	provider.EXPECT().OpenRepository(mock.Anything, "/repo").
		Run(func(ctx context.Context, root string) {
			select {
			case ticked <- struct{}{}:
			default:
			}
		}).
		Return(dirtyRepo(), nil)

	// Fixed clock: the changes are never older than the threshold
	fixed := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	c := NewReminderController(settings, provider, presenter, dispatcher,
		WithReminderClock(func() time.Time { return fixed }))

	require.NoError(t, c.Start(context.Background()))
	defer c.Stop()

	<-ticked
	assert.Equal(t, domain.ReminderRunning, c.State())
}

func TestReminder_PresenterErrorStillResumes(t *testing.T) {
	settings := portsmocks.NewMockSettingsStore(t)
	provider := portsmocks.NewMockRepositoryProvider(t)
	presenter := portsmocks.NewMockNotificationPresenter(t)
	dispatcher := portsmocks.NewMockCommandDispatcher(t)

	settings.EXPECT().Load().Return(testSettings(), nil)
	provider.EXPECT().OpenRepository(mock.Anything, "/repo").Return(dirtyRepo(), nil)

	shown := make(chan struct{})
	presenter.EXPECT().Show(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, n domain.Notification) { close(shown) }).
		Return(domain.ActionNone, errors.New("notify-send: not found")).Once()

	c := NewReminderController(settings, provider, presenter, dispatcher,
		WithReminderClock(newSteppingClock().Now))

	require.NoError(t, c.Start(context.Background()))
	defer c.Stop()

	<-shown
	assert.Eventually(t, func() bool { return activeWatcherRunning(c) }, 2*time.Second, 5*time.Millisecond)
}

func TestReminder_DisableViaSettingsStopsTicks(t *testing.T) {
	settings := portsmocks.NewMockSettingsStore(t)
	provider := portsmocks.NewMockRepositoryProvider(t)
	presenter := portsmocks.NewMockNotificationPresenter(t)
	dispatcher := portsmocks.NewMockCommandDispatcher(t)

	enabled := testSettings()
	enabled.CheckInterval = 5 * time.Millisecond
	disabled := enabled
	disabled.Enabled = false
	settings.EXPECT().Load().Return(enabled, nil).Once()
	settings.EXPECT().Load().Return(disabled, nil).Once()

	var calls atomic.Int32
	provider.EXPECT().OpenRepository(mock.Anything, "/repo").
		RunAndReturn(func(ctx context.Context, root string) (*domain.RepositoryState, error) {
			calls.Add(1)
			return &domain.RepositoryState{RootID: root}, nil
		})

	c := NewReminderController(settings, provider, presenter, dispatcher)
	require.NoError(t, c.Start(context.Background()))
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, time.Millisecond)

	require.NoError(t, c.Restart(context.Background()))
	assert.Equal(t, domain.ReminderDisabled, c.State())

	// Let a tick that was already in flight drain
	time.Sleep(20 * time.Millisecond)
	before := calls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, before, calls.Load())
}

func TestReminder_StartDisabledNeverPolls(t *testing.T) {
	settings := portsmocks.NewMockSettingsStore(t)
	provider := portsmocks.NewMockRepositoryProvider(t)
	presenter := portsmocks.NewMockNotificationPresenter(t)
	dispatcher := portsmocks.NewMockCommandDispatcher(t)

	cfg := testSettings()
	cfg.Enabled = false
	settings.EXPECT().Load().Return(cfg, nil)

	c := NewReminderController(settings, provider, presenter, dispatcher)
	require.NoError(t, c.Start(context.Background()))

	assert.Equal(t, domain.ReminderDisabled, c.State())
	assert.Nil(t, c.watcher)
}

func TestReminder_RestartWhileNotifyingDoesNotStartSecondWatcher(t *testing.T) {
	settings := portsmocks.NewMockSettingsStore(t)
	provider := portsmocks.NewMockRepositoryProvider(t)
	presenter := portsmocks.NewMockNotificationPresenter(t)
	dispatcher := portsmocks.NewMockCommandDispatcher(t)

	settings.EXPECT().Load().Return(testSettings(), nil)
	provider.EXPECT().OpenRepository(mock.Anything, "/repo").Return(dirtyRepo(), nil)

	shown := make(chan struct{})
	release := make(chan struct{})
	presenter.EXPECT().Show(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, n domain.Notification) (domain.NotificationAction, error) {
			close(shown)
			<-release
			return domain.ActionSnooze, nil
		}).Once()

	c := NewReminderController(settings, provider, presenter, dispatcher,
		WithReminderClock(newSteppingClock().Now))

	require.NoError(t, c.Start(context.Background()))
	defer c.Stop()

	<-shown
	assert.Equal(t, domain.ReminderNotifying, c.State())

	require.NoError(t, c.Restart(context.Background()))
	require.True(t, activeWatcherRunning(c))

	c.mu.Lock()
	restarted := c.watcher
	gen := c.generation
	c.mu.Unlock()

	close(release)

	// The pending reminder must leave the restarted watcher alone
	time.Sleep(30 * time.Millisecond)
	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Same(t, restarted, c.watcher)
	assert.Equal(t, gen, c.generation)
	assert.Equal(t, domain.ReminderRunning, c.state)
}

func TestReminder_StopWhileNotifyingDoesNotResume(t *testing.T) {
	settings := portsmocks.NewMockSettingsStore(t)
	provider := portsmocks.NewMockRepositoryProvider(t)
	presenter := portsmocks.NewMockNotificationPresenter(t)
	dispatcher := portsmocks.NewMockCommandDispatcher(t)

	settings.EXPECT().Load().Return(testSettings(), nil)
	provider.EXPECT().OpenRepository(mock.Anything, "/repo").Return(dirtyRepo(), nil)

	shown := make(chan struct{})
	done := make(chan struct{})
	release := make(chan struct{})
	presenter.EXPECT().Show(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, n domain.Notification) (domain.NotificationAction, error) {
			close(shown)
			<-release
			defer close(done)
			return domain.ActionNone, nil
		}).Once()

	c := NewReminderController(settings, provider, presenter, dispatcher,
		WithReminderClock(newSteppingClock().Now))
	require.NoError(t, c.Start(context.Background()))

	<-shown
	c.Stop()
	close(release)
	<-done

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, domain.ReminderStopped, c.State())
	assert.Nil(t, c.watcher)
}

func TestReminder_StaleSnapshotIgnored(t *testing.T) {
	settings := portsmocks.NewMockSettingsStore(t)
	provider := portsmocks.NewMockRepositoryProvider(t)
	presenter := portsmocks.NewMockNotificationPresenter(t)
	dispatcher := portsmocks.NewMockCommandDispatcher(t)

	c := NewReminderController(settings, provider, presenter, dispatcher)
	c.state = domain.ReminderRunning
	c.generation = 7

	old := time.Now().Add(-24 * time.Hour)
	c.handleSnapshot(context.Background(), 6, testSettings(), []domain.RepositoryStatus{{
		RootID:                  "/repo",
		UncommittedChangesCount: 1,
		UncommittedChangesSince: &old,
	}})

	assert.Equal(t, domain.ReminderRunning, c.State())
}

func TestReminder_SnapshotListenerReceivesSnapshots(t *testing.T) {
	settings := portsmocks.NewMockSettingsStore(t)
	provider := portsmocks.NewMockRepositoryProvider(t)
	presenter := portsmocks.NewMockNotificationPresenter(t)
	dispatcher := portsmocks.NewMockCommandDispatcher(t)

	settings.EXPECT().Load().Return(testSettings(), nil)
	provider.EXPECT().OpenRepository(mock.Anything, "/repo").
		Return(&domain.RepositoryState{RootID: "/repo"}, nil)

	got := make(chan []domain.RepositoryStatus, 1)
	c := NewReminderController(settings, provider, presenter, dispatcher,
		WithSnapshotListener(func(s []domain.RepositoryStatus) {
			select {
			case got <- s:
			default:
			}
		}))
	require.NoError(t, c.Start(context.Background()))
	defer c.Stop()

	select {
	case s := <-got:
		require.Len(t, s, 1)
		assert.Equal(t, "/repo", s[0].RootID)
	case <-time.After(2 * time.Second):
		t.Fatal("listener not called")
	}
}

func TestReminder_RunRequiresProvider(t *testing.T) {
	settings := portsmocks.NewMockSettingsStore(t)
	provider := portsmocks.NewMockRepositoryProvider(t)
	presenter := portsmocks.NewMockNotificationPresenter(t)
	dispatcher := portsmocks.NewMockCommandDispatcher(t)

	provider.EXPECT().Available(mock.Anything).Return(errors.New("git: executable file not found in $PATH"))

	c := NewReminderController(settings, provider, presenter, dispatcher)
	err := c.Run(context.Background())

	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	assert.Equal(t, domain.ReminderStopped, c.State())
}

func TestReminder_RunRestartsOnSettingsChange(t *testing.T) {
	settings := portsmocks.NewMockSettingsStore(t)
	provider := portsmocks.NewMockRepositoryProvider(t)
	presenter := portsmocks.NewMockNotificationPresenter(t)
	dispatcher := portsmocks.NewMockCommandDispatcher(t)

	disabled := testSettings()
	disabled.Enabled = false

	provider.EXPECT().Available(mock.Anything).Return(nil)
	provider.EXPECT().OpenRepository(mock.Anything, "/repo").
		Return(&domain.RepositoryState{RootID: "/repo"}, nil).Maybe()
	settings.EXPECT().Load().Return(disabled, nil).Once()
	settings.EXPECT().Load().Return(testSettings(), nil).Once()

	changed := make(chan func(), 1)
	settings.EXPECT().Watch(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, onChange func()) { changed <- onChange }).
		Return(nil)

	c := NewReminderController(settings, provider, presenter, dispatcher)
	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() { runErr <- c.Run(ctx) }()

	onChange := <-changed
	require.Eventually(t, func() bool { return c.State() == domain.ReminderDisabled }, 2*time.Second, time.Millisecond)

	onChange()
	assert.Equal(t, domain.ReminderRunning, c.State())

	cancel()
	require.NoError(t, <-runErr)
	assert.Equal(t, domain.ReminderStopped, c.State())
}
