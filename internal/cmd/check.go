package cmd

import (
	"context"
	"fmt"
	"os"
)

// CheckCmd runs one reconciliation and prints the result
type CheckCmd struct {
	JSON bool `help:"Print the report as JSON"`
}

// Run executes the check command
func (c *CheckCmd) Run(cli *CLI) error {
	ctx := context.Background()

	report, err := cli.Container.StatusService.Check(ctx)
	if err != nil {
		return err
	}

	settings, err := cli.Container.SettingsStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if c.JSON {
		return writeReportJSON(os.Stdout, report, settings.Thresholds)
	}
	return writeReportTable(os.Stdout, report, settings.Thresholds)
}
