package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"gitnag/internal/domain"
	"gitnag/internal/services"
)

// reportJSON is the --json form of a status report
type reportJSON struct {
	CheckedAt          time.Time        `json:"checked_at"`
	Message            string           `json:"message,omitempty"`
	Repositories       []repositoryJSON `json:"repositories"`
	UncommittedOverdue bool             `json:"uncommitted_overdue"`
	UnpushedOverdue    bool             `json:"unpushed_overdue"`
}

type repositoryJSON struct {
	LastUpdatedAt           time.Time  `json:"last_updated_at"`
	Root                    string     `json:"root"`
	State                   string     `json:"state"`
	UncommittedChangesCount int        `json:"uncommitted_changes_count"`
	UncommittedChangesSince *time.Time `json:"uncommitted_changes_since,omitempty"`
	UnpushedCommitsCount    *int       `json:"unpushed_commits_count"`
	UnpushedCommitsSince    *time.Time `json:"unpushed_commits_since,omitempty"`
}

func writeReportJSON(w io.Writer, report *services.StatusReport, thresholds domain.Thresholds) error {
	out := reportJSON{
		CheckedAt:          report.CheckedAt,
		Message:            report.Message,
		Repositories:       make([]repositoryJSON, 0, len(report.Statuses)),
		UncommittedOverdue: report.Summary.Uncommitted,
		UnpushedOverdue:    report.Summary.Unpushed,
	}
	for _, s := range report.Statuses {
		out.Repositories = append(out.Repositories, repositoryJSON{
			LastUpdatedAt:           s.LastUpdatedAt,
			Root:                    s.RootID,
			State:                   services.StateOf(s, report.CheckedAt, thresholds),
			UncommittedChangesCount: s.UncommittedChangesCount,
			UncommittedChangesSince: s.UncommittedChangesSince,
			UnpushedCommitsCount:    s.UnpushedCommitsCount,
			UnpushedCommitsSince:    s.UnpushedCommitsSince,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeReportTable(w io.Writer, report *services.StatusReport, thresholds domain.Thresholds) error {
	if len(report.Statuses) == 0 {
		_, err := fmt.Fprintln(w, "No repositories found in the configured workspaces.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "REPOSITORY\tUNCOMMITTED\tFOR\tUNPUSHED\tFOR\tSTATE")
	for _, s := range report.Statuses {
		unpushed := "-"
		if s.UnpushedCommitsCount != nil {
			unpushed = strconv.Itoa(*s.UnpushedCommitsCount)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			s.RootID,
			s.UncommittedChangesCount,
			sinceAge(s.UncommittedChangesSince, report.CheckedAt),
			unpushed,
			sinceAge(s.UnpushedCommitsSince, report.CheckedAt),
			services.StateOf(s, report.CheckedAt, thresholds))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if report.Message != "" {
		_, err := fmt.Fprintf(w, "\n%s\n", report.Message)
		return err
	}
	return nil
}

// shortStatus renders a one-line summary for status bars: ±dirty ↑ahead and ! when overdue
func shortStatus(report *services.StatusReport) string {
	uncommitted, unpushed := 0, 0
	for _, s := range report.Statuses {
		if s.UncommittedChangesCount > 0 {
			uncommitted++
		}
		if s.HasUnpushedCommits() {
			unpushed++
		}
	}

	out := fmt.Sprintf("±%d ↑%d", uncommitted, unpushed)
	if report.Summary.Any() {
		out += " !"
	}
	return out
}

func writeHistory(w io.Writer, reminders []domain.Reminder) error {
	if len(reminders) == 0 {
		_, err := fmt.Fprintln(w, "No reminders fired yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIRED\tSTYLE\tACTION\tMESSAGE\tREPOSITORIES")
	for _, r := range reminders {
		action := string(r.Action)
		if action == "" {
			action = "dismissed"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.FiredAt.Local().Format("2006-01-02 15:04"),
			r.Style,
			action,
			r.Message,
			strings.Join(r.OverdueRoots, ", "))
	}
	return tw.Flush()
}

func sinceAge(since *time.Time, now time.Time) string {
	if since == nil {
		return "-"
	}
	d := now.Sub(*since)
	if d < 0 {
		d = -d
	}
	return services.FormatAge(d)
}
