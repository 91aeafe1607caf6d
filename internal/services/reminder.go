package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
	"gitnag/internal/watcher"
)

// NotificationTitle is shown as the heading of every reminder
const NotificationTitle = "gitnag"

// ReminderOption customizes a ReminderController
type ReminderOption func(*ReminderController)

// WithReminderClock overrides the time source used for evaluation
func WithReminderClock(now func() time.Time) ReminderOption {
	return func(c *ReminderController) {
		c.now = now
	}
}

// WithReminderRecorder appends every fired reminder to a history
func WithReminderRecorder(recorder ports.ReminderRecorder) ReminderOption {
	return func(c *ReminderController) {
		c.recorder = recorder
	}
}

// WithSnapshotListener subscribes fn to every watcher the controller creates.
// Listeners run before the controller evaluates the snapshot.
func WithSnapshotListener(fn func([]domain.RepositoryStatus)) ReminderOption {
	return func(c *ReminderController) {
		c.listeners = append(c.listeners, fn)
	}
}

// ReminderController turns watcher snapshots into reminders and owns the
// watcher lifecycle: pause while a reminder is shown, restart on config change
type ReminderController struct {
	dispatcher  ports.CommandDispatcher
	generation  uint64 // Bumped whenever the active watcher changes
	listeners   []func([]domain.RepositoryStatus)
	mu          sync.Mutex
	now         func() time.Time
	presenter   ports.NotificationPresenter
	provider    ports.RepositoryProvider
	recorder    ports.ReminderRecorder
	settings    ports.SettingsStore
	state       domain.ReminderState
	unsubscribe []func()
	watcher     *watcher.Watcher
}

// NewReminderController creates a stopped controller
func NewReminderController(
	settings ports.SettingsStore,
	provider ports.RepositoryProvider,
	presenter ports.NotificationPresenter,
	dispatcher ports.CommandDispatcher,
	opts ...ReminderOption,
) *ReminderController {
	c := &ReminderController{
		dispatcher: dispatcher,
		now:        time.Now,
		presenter:  presenter,
		provider:   provider,
		settings:   settings,
		state:      domain.ReminderStopped,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run checks the provider, starts the reminder, restarts it on every
// settings change and blocks until ctx is done
func (c *ReminderController) Run(ctx context.Context) error {
	if err := c.provider.Available(ctx); err != nil {
		if !errors.Is(err, domain.ErrProviderUnavailable) {
			err = fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
		}
		logging.Logger.Error("Source control provider not available, reminder not started", "error", err)
		return err
	}

	onChange := func() {
		logging.Logger.Info("Settings changed, restarting reminder")
		if err := c.Restart(ctx); err != nil {
			logging.Logger.Error("Failed to restart reminder", "error", err)
		}
	}
	if err := c.settings.Watch(ctx, onChange); err != nil {
		return fmt.Errorf("failed to watch settings: %w", err)
	}

	if err := c.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	c.Stop()
	return nil
}

// Start loads settings and, when enabled, starts a fresh watcher
func (c *ReminderController) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startLocked(ctx)
}

// Stop stops the active watcher
func (c *ReminderController) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.state = domain.ReminderStopped
}

// Restart stops the active watcher and starts again with freshly loaded settings
func (c *ReminderController) Restart(ctx context.Context) error {
	return c.Start(ctx)
}

// State returns the current lifecycle state
func (c *ReminderController) State() domain.ReminderState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *ReminderController) startLocked(ctx context.Context) error {
	c.stopLocked()

	settings, err := c.settings.Load()
	if err != nil {
		c.state = domain.ReminderStopped
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if !settings.Enabled {
		c.state = domain.ReminderDisabled
		logging.Logger.Info("Reminder disabled in settings")
		return nil
	}

	c.generation++
	gen := c.generation
	w := watcher.New(c.provider, watcher.WithClock(c.now))

	for _, l := range c.listeners {
		c.unsubscribe = append(c.unsubscribe, w.Subscribe(l))
	}
	c.unsubscribe = append(c.unsubscribe, w.Subscribe(func(statuses []domain.RepositoryStatus) {
		c.handleSnapshot(ctx, gen, settings, statuses)
	}))

	opts := watcher.Options{Interval: settings.CheckInterval, Roots: settings.Workspaces}
	if err := w.Start(ctx, opts); err != nil {
		c.detachLocked()
		c.state = domain.ReminderStopped
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	c.watcher = w
	c.state = domain.ReminderRunning
	logging.Logger.Info("Reminder running",
		"interval", settings.CheckInterval.String(),
		"workspaces", len(settings.Workspaces),
		"notification_type", settings.NotificationType)

	return nil
}

// stopLocked detaches and stops the active watcher, if any
func (c *ReminderController) stopLocked() {
	c.generation++
	c.detachLocked()
	if c.watcher != nil {
		c.watcher.Stop()
		c.watcher = nil
	}
}

func (c *ReminderController) detachLocked() {
	for _, unsub := range c.unsubscribe {
		unsub()
	}
	c.unsubscribe = nil
}

// handleSnapshot runs on the watcher goroutine
func (c *ReminderController) handleSnapshot(
	ctx context.Context,
	gen uint64,
	settings domain.ReminderSettings,
	statuses []domain.RepositoryStatus,
) {
	c.mu.Lock()
	if gen != c.generation || c.state != domain.ReminderRunning {
		c.mu.Unlock()
		logging.Logger.Debug("Ignoring snapshot from inactive watcher", "generation", gen)
		return
	}

	now := c.now()
	summary := Evaluate(statuses, now, settings.Thresholds)
	logging.Logger.Debug("Evaluated snapshot",
		"repositories", len(statuses),
		"uncommitted", summary.Uncommitted,
		"unpushed", summary.Unpushed)

	message, ok := SelectMessage(summary)
	if !ok {
		c.mu.Unlock()
		return
	}

	// Pause polling while the reminder is on screen
	c.stopLocked()
	c.state = domain.ReminderNotifying
	notifyGen := c.generation
	c.mu.Unlock()

	notification := domain.Notification{
		Actions: domain.NotificationActions,
		Detail:  BuildDetail(statuses, now),
		Message: message,
		Style:   settings.NotificationType,
		Title:   NotificationTitle,
	}
	if settings.Sound {
		notification.Sound = SoundEvent(summary)
	}

	logging.Logger.Info("Reminder fired",
		"uncommitted", summary.Uncommitted,
		"unpushed", summary.Unpushed,
		"style", notification.Style)

	action, err := c.presenter.Show(ctx, notification)
	if err != nil {
		logging.Logger.Warn("Failed to present reminder", "error", err)
		action = domain.ActionNone
	}
	logging.Logger.Info("Reminder answered", "action", string(action))

	if action == domain.ActionOpenGitView {
		var args []string
		if len(summary.OverdueRoots) > 0 {
			args = append(args, summary.OverdueRoots[0])
		}
		if err := c.dispatcher.Dispatch(ctx, domain.CommandOpenGitView, args...); err != nil {
			logging.Logger.Error("Failed to open git view", "error", err)
		}
	}

	c.record(ctx, domain.Reminder{
		Action:       action,
		FiredAt:      now,
		ID:           uuid.New().String(),
		Message:      message,
		OverdueRoots: summary.OverdueRoots,
		Style:        notification.Style,
		Uncommitted:  summary.Uncommitted,
		Unpushed:     summary.Unpushed,
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	// A restart or stop while the reminder was up already decided what runs next
	if c.generation != notifyGen || c.state != domain.ReminderNotifying {
		logging.Logger.Debug("Reminder lifecycle changed while notifying, not resuming")
		return
	}
	if ctx.Err() != nil {
		c.state = domain.ReminderStopped
		return
	}
	if err := c.startLocked(ctx); err != nil {
		logging.Logger.Error("Failed to resume reminder", "error", err)
	}
}

func (c *ReminderController) record(ctx context.Context, reminder domain.Reminder) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.RecordReminder(ctx, reminder); err != nil {
		logging.Logger.Warn("Failed to record reminder", "error", err)
	}
}
