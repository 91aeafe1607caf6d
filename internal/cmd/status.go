package cmd

import (
	"context"
	"fmt"
	"os"

	"gitnag/internal/logging"
)

// StatusCmd prints the last snapshot recorded by the daemon
type StatusCmd struct {
	JSON  bool `help:"Print the report as JSON"`
	Short bool `help:"Print a one-line summary for status bars"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	report, err := cli.Container.StatusService.Snapshot(context.Background())
	if err != nil {
		if s.Short {
			// Status bars want something to show, not an error
			logging.Logger.Warn("Failed to read snapshot", "error", err)
			fmt.Print("±? ↑?")
			return nil
		}
		return err
	}

	if s.Short {
		fmt.Print(shortStatus(report))
		return nil
	}

	settings, err := cli.Container.SettingsStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if s.JSON {
		return writeReportJSON(os.Stdout, report, settings.Thresholds)
	}
	return writeReportTable(os.Stdout, report, settings.Thresholds)
}
