package watcher

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
)

// Options configures one run of the polling loop
type Options struct {
	Interval time.Duration
	Roots    []string // Workspace roots, each resolved to at most one repository
}

// Option customizes a Watcher
type Option func(*Watcher)

// WithClock overrides the time source used for since-timestamps
func WithClock(now func() time.Time) Option {
	return func(w *Watcher) {
		w.now = now
	}
}

// WithRoots sets the roots used by Reconcile before Start is called
func WithRoots(roots ...string) Option {
	return func(w *Watcher) {
		w.roots = append([]string(nil), roots...)
	}
}

// WithSeed preloads statuses from a previous run so since-timestamps carry over
func WithSeed(statuses ...domain.RepositoryStatus) Option {
	return func(w *Watcher) {
		for _, s := range cloneStatuses(statuses) {
			w.statuses[s.RootID] = s
			w.rootIndex[s.RootID] = s.RootID
		}
	}
}

type subscriber struct {
	fn func([]domain.RepositoryStatus)
	id int
}

// Watcher polls the repository provider and tracks how long each
// repository has been dirty
type Watcher struct {
	activeLoops atomic.Int32
	cancel      context.CancelFunc // Non-nil only while a loop is running
	generation  uint64
	inFlight    map[uint64]bool // Generations with a tick running
	mu          sync.Mutex
	nextSubID   int
	now         func() time.Time
	provider    ports.RepositoryProvider
	rootIndex   map[string]string // Configured root -> RootID from its last successful query
	roots       []string
	statuses    map[string]domain.RepositoryStatus
	subscribers []subscriber
}

// New creates a stopped watcher
func New(provider ports.RepositoryProvider, opts ...Option) *Watcher {
	w := &Watcher{
		inFlight:  make(map[uint64]bool),
		now:       time.Now,
		provider:  provider,
		rootIndex: make(map[string]string),
		statuses:  make(map[string]domain.RepositoryStatus),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start launches the polling loop. It reconciles once immediately and then
// once per interval. Starting a running watcher replaces its loop.
func (w *Watcher) Start(ctx context.Context, opts Options) error {
	if opts.Interval <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInterval, opts.Interval)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopLocked()

	w.generation++
	w.roots = append([]string(nil), opts.Roots...)
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	logging.Logger.Info("Watcher started",
		"interval", opts.Interval.String(),
		"roots", len(w.roots),
		"generation", w.generation)

	w.activeLoops.Add(1)
	go w.loop(loopCtx, w.generation, opts.Interval, w.roots)

	return nil
}

// Stop halts the polling loop. Ticks already in flight are discarded.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
}

func (w *Watcher) stopLocked() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	w.cancel = nil
	w.generation++
	logging.Logger.Info("Watcher stopped", "generation", w.generation)
}

// Restart stops the loop and starts a new one with opts
func (w *Watcher) Restart(ctx context.Context, opts Options) error {
	w.Stop()
	return w.Start(ctx, opts)
}

// IsRunning reports whether a polling loop is active
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cancel != nil
}

// Repositories returns a copy of the tracked statuses, sorted by root
func (w *Watcher) Repositories() []domain.RepositoryStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// Subscribe registers fn to receive every snapshot. Subscribers are called
// in registration order on the polling goroutine.
func (w *Watcher) Subscribe(fn func([]domain.RepositoryStatus)) (unsubscribe func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextSubID++
	id := w.nextSubID
	w.subscribers = append(w.subscribers, subscriber{fn: fn, id: id})

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		for i, s := range w.subscribers {
			if s.id == id {
				w.subscribers = append(w.subscribers[:i:i], w.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Reconcile runs one tick synchronously. It returns false when the tick was
// skipped because another one of the same generation is in flight, or when
// its result was discarded.
func (w *Watcher) Reconcile(ctx context.Context) bool {
	w.mu.Lock()
	gen := w.generation
	roots := w.roots
	w.mu.Unlock()

	return w.tick(ctx, gen, roots)
}

func (w *Watcher) loop(ctx context.Context, gen uint64, interval time.Duration, roots []string) {
	defer w.activeLoops.Add(-1)
	defer func() {
		// Parent context cancelled: the loop is gone, so is "running"
		w.mu.Lock()
		if w.generation == gen && w.cancel != nil {
			w.cancel()
			w.cancel = nil
		}
		w.mu.Unlock()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.tick(ctx, gen, roots)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(ctx, gen, roots)
		}
	}
}

// beginTick marks gen as busy. A stale generation still finishing its
// query never blocks the loop that replaced it.
func (w *Watcher) beginTick(gen uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inFlight[gen] {
		return false
	}
	w.inFlight[gen] = true
	return true
}

func (w *Watcher) endTick(gen uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.inFlight, gen)
}

// tick reconciles all roots and emits the snapshot to subscribers
func (w *Watcher) tick(ctx context.Context, gen uint64, roots []string) (emitted bool) {
	if !w.beginTick(gen) {
		logging.Logger.Debug("Watcher tick skipped, previous tick still running", "generation", gen)
		return false
	}
	defer w.endTick(gen)

	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("Watcher tick panicked", "panic", fmt.Sprint(r), "generation", gen)
			emitted = false
		}
	}()

	found := make(map[string]domain.RepositoryState)
	resolved := make(map[string]string)
	var failed []string

	for _, root := range roots {
		if ctx.Err() != nil {
			return false
		}

		state, err := w.provider.OpenRepository(ctx, root)
		if err != nil {
			logging.Logger.Warn("Failed to query repository", "root", root, "error", err)
			failed = append(failed, root)
			continue
		}
		if state == nil {
			logging.Logger.Debug("Root is not a repository", "root", root)
			continue
		}

		found[state.RootID] = *state
		resolved[root] = state.RootID
	}

	if ctx.Err() != nil {
		return false
	}

	now := w.now()

	w.mu.Lock()
	if gen != w.generation {
		w.mu.Unlock()
		logging.Logger.Debug("Discarding stale tick", "generation", gen)
		return false
	}

	next := make(map[string]domain.RepositoryStatus, len(found))
	for rootID, state := range found {
		var previous *domain.RepositoryStatus
		if prev, ok := w.statuses[rootID]; ok {
			previous = &prev
		}
		next[rootID] = domain.NextStatus(previous, state, now)
	}

	// A failed query keeps the last known status for that root
	for _, root := range failed {
		rootID, known := w.rootIndex[root]
		if !known {
			continue
		}
		if _, refreshed := next[rootID]; refreshed {
			continue
		}
		if prev, ok := w.statuses[rootID]; ok {
			next[rootID] = prev
			resolved[root] = rootID
		}
	}

	w.statuses = next
	w.rootIndex = resolved
	snapshot := w.snapshotLocked()
	subs := append([]subscriber(nil), w.subscribers...)
	w.mu.Unlock()

	logging.Logger.Debug("Watcher tick complete",
		"generation", gen,
		"repositories", len(snapshot),
		"failed", len(failed))

	for _, s := range subs {
		w.notify(s, cloneStatuses(snapshot), gen)
	}

	return true
}

// notify delivers one snapshot. A panicking subscriber does not keep the
// ones after it from receiving the snapshot.
func (w *Watcher) notify(s subscriber, snapshot []domain.RepositoryStatus, gen uint64) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("Watcher subscriber panicked",
				"panic", fmt.Sprint(r),
				"subscriber", s.id,
				"generation", gen)
		}
	}()
	s.fn(snapshot)
}

func (w *Watcher) snapshotLocked() []domain.RepositoryStatus {
	out := make([]domain.RepositoryStatus, 0, len(w.statuses))
	for _, s := range w.statuses {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RootID < out[j].RootID
	})
	return cloneStatuses(out)
}

func cloneStatuses(in []domain.RepositoryStatus) []domain.RepositoryStatus {
	out := make([]domain.RepositoryStatus, len(in))
	for i, s := range in {
		out[i] = s
		out[i].UncommittedChangesSince = cloneTime(s.UncommittedChangesSince)
		out[i].UnpushedCommitsSince = cloneTime(s.UnpushedCommitsSince)
		if s.UnpushedCommitsCount != nil {
			n := *s.UnpushedCommitsCount
			out[i].UnpushedCommitsCount = &n
		}
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
