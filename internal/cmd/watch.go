package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitnag/internal/logging"
	"gitnag/internal/ui"
	"gitnag/internal/watcher"
)

// WatchCmd shows a live view of the workspaces
type WatchCmd struct {
	Interval int `help:"Seconds between checks (defaults to check_interval)"`
}

// Run executes the watch command
func (wc *WatchCmd) Run(cli *CLI) error {
	settings, err := cli.Container.SettingsStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Container.Provider.Available(ctx); err != nil {
		return err
	}

	opts := watcher.Options{Interval: settings.CheckInterval, Roots: settings.Workspaces}
	if wc.Interval > 0 {
		opts.Interval = time.Duration(wc.Interval) * time.Second
	}

	logging.Logger.Info("Starting watch view", "interval", opts.Interval.String(), "workspaces", len(opts.Roots))
	w := watcher.New(cli.Container.Provider)
	return ui.Run(ctx, w, opts, cli.Container.Dispatcher, settings.Thresholds)
}
