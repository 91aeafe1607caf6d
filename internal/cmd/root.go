package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"gitnag/internal/adapters/lock"
	"gitnag/internal/config"
	"gitnag/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	Editor      string           `help:"Editor to open repositories in when git_view_command is unset (overrides settings, $GITNAG_EDITOR, $VISUAL, $EDITOR)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Verbose     bool             `help:"Log lifecycle events to stderr" short:"v"`
	Workspace   []string         `help:"Workspace folder to watch (repeatable, overrides settings.json)" short:"w" type:"path"`

	Run       RunCmd       `cmd:"" help:"Run the reminder daemon (default)" default:"1"`
	Check     CheckCmd     `cmd:"check" help:"Check every workspace once and report overdue repositories"`
	Status    StatusCmd    `cmd:"status" help:"Show the last snapshot recorded by the daemon"`
	History   HistoryCmd   `cmd:"history" help:"Show recently fired reminders"`
	Watch     WatchCmd     `cmd:"watch" help:"Watch workspaces in a live terminal view"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play a reminder sound (cross-platform)" hidden:""`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("GITNAG_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("GITNAG_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
		Verbose:     c.Verbose,
	})
	if err != nil {
		return err
	}

	// Create container AFTER logging is initialized so GORM logs through it
	container, err := NewContainer(ContainerOptions{
		Editor:     c.Editor,
		Workspaces: c.Workspace,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd runs the reminder daemon until interrupted
type RunCmd struct{}

// Run executes the daemon
func (r *RunCmd) Run(cli *CLI) error {
	l, err := lock.Acquire(config.GetLockPath())
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Release(); err != nil {
			logging.Logger.Warn("Failed to release daemon lock", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// SIGHUP reloads settings like a settings.json change
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	controller := cli.Container.ReminderController
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				logging.Logger.Info("SIGHUP received, restarting reminder")
				if err := controller.Restart(ctx); err != nil {
					logging.Logger.Error("Failed to restart reminder", "error", err)
				}
			}
		}
	}()

	logging.Logger.Info("Starting gitnag daemon",
		"pid", os.Getpid(),
		"settings", cli.Container.SettingsStore.Path())

	if err := controller.Run(ctx); err != nil {
		return err
	}

	logging.Logger.Info("gitnag daemon stopped")
	return nil
}
