package cmd

import (
	"context"
	"os"
)

// HistoryCmd lists recently fired reminders
type HistoryCmd struct {
	Limit int `help:"Maximum number of reminders to show" short:"n" default:"20"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	reminders, err := cli.Container.StatusService.History(context.Background(), h.Limit)
	if err != nil {
		return err
	}
	return writeHistory(os.Stdout, reminders)
}
