package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"gitnag/internal/config"
	"gitnag/internal/domain"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"show" help:"Show the resolved settings" default:"1"`
	Path SettingsPathCmd `cmd:"path" help:"Print the settings file location"`
	Init SettingsInitCmd `cmd:"init" help:"Write a settings file with the default values"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show available options with example values"`
}

// SettingsShowCmd displays the effective settings
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settings, err := cli.Container.SettingsStore.Load()
	if err != nil {
		return err
	}
	return writeSettings(os.Stdout, s.Format, cli.Container.SettingsStore.Path(), settings)
}

func writeSettings(w io.Writer, format, path string, s domain.ReminderSettings) error {
	values := map[string]any{
		"check_interval":      int(s.CheckInterval.Seconds()),
		"editor":              s.Editor,
		"enabled":             s.Enabled,
		"git_view_command":    s.GitViewCommand,
		"notification_type":   string(s.NotificationType),
		"provider":            s.Provider,
		"seconds_uncommitted": int(s.Thresholds.Uncommitted.Seconds()),
		"seconds_unpushed":    int(s.Thresholds.Unpushed.Seconds()),
		"sound":               s.Sound,
		"workspaces":          s.Workspaces,
	}

	if format == "json" {
		data, err := json.MarshalIndent(map[string]any{
			"settings":      values,
			"settings_file": path,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintf(w, "Settings file: %s\n\n", path)
	return writeKeyValues(w, values)
}

// SettingsPathCmd prints the settings file path
type SettingsPathCmd struct{}

// Run executes the path command
func (s *SettingsPathCmd) Run(cli *CLI) error {
	fmt.Println(cli.Container.SettingsStore.Path())
	return nil
}

// SettingsInitCmd writes the default settings file
type SettingsInitCmd struct {
	Force bool `help:"Overwrite an existing settings file" short:"f"`
}

// Run executes the init command
func (s *SettingsInitCmd) Run(cli *CLI) error {
	path := cli.Container.SettingsStore.Path()
	if err := initSettings(path, s.Force); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func initSettings(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return config.SaveSettings(path, config.DefaultSettings())
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := cli.Container.SettingsStore.Path()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()
	if err := writeKeyValues(os.Stdout, example); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Create or edit this file to configure gitnag; the daemon restarts on save.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}

func writeKeyValues(w io.Writer, values map[string]any) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := values[key].(type) {
		case []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		case string:
			valueStr = v
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(tw, "%s\t%s\n", key, valueStr)
	}
	return tw.Flush()
}
