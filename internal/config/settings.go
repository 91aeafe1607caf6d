package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gitnag/internal/domain"
)

// Provider names accepted in settings.json
const (
	ProviderGit   = "git"
	ProviderGoGit = "go-git"
)

// Settings represents the structure of ~/.gitnag/settings.json.
// Nil pointers and empty strings mean "not set".
type Settings struct {
	CheckInterval      *int        `json:"check_interval,omitempty"`
	Debug              *bool       `json:"debug,omitempty"`
	Editor             string      `json:"editor,omitempty"`
	Enabled            *bool       `json:"enabled,omitempty"`
	GitViewCommand     string      `json:"git_view_command,omitempty"`
	MaxLogFiles        *int        `json:"max_log_files,omitempty"`
	NotificationType   string      `json:"notification_type,omitempty"`
	Provider           string      `json:"provider,omitempty"`
	SecondsUncommitted *int        `json:"seconds_uncommitted,omitempty"`
	SecondsUnpushed    *int        `json:"seconds_unpushed,omitempty"`
	Sound              *bool       `json:"sound,omitempty"`
	Workspaces         StringArray `json:"workspaces,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from path.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if len(strings.TrimSpace(string(data))) == 0 {
		return &settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.Editor != "" {
		settings.Editor = ExpandPath(settings.Editor)
	}

	return &settings, nil
}

// SaveSettings writes settings to path, creating the directory if needed
func SaveSettings(path string, settings *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// DefaultSettings returns a Settings with every reminder key set to its default
func DefaultSettings() *Settings {
	defaults := domain.DefaultReminderSettings()
	interval := domain.DefaultCheckIntervalSeconds
	uncommitted := domain.DefaultSecondsUncommitted
	unpushed := domain.DefaultSecondsUnpushed
	return &Settings{
		CheckInterval:      &interval,
		Enabled:            &defaults.Enabled,
		NotificationType:   string(defaults.NotificationType),
		Provider:           defaults.Provider,
		SecondsUncommitted: &uncommitted,
		SecondsUnpushed:    &unpushed,
		Sound:              &defaults.Sound,
	}
}

// Resolve applies defaults to unset or invalid keys.
// The returned warnings describe every key that was ignored.
func Resolve(s *Settings) (domain.ReminderSettings, []string) {
	resolved := domain.DefaultReminderSettings()
	var warnings []string

	if s == nil {
		return resolved, nil
	}

	if s.Enabled != nil {
		resolved.Enabled = *s.Enabled
	}
	if s.Sound != nil {
		resolved.Sound = *s.Sound
	}

	positiveSeconds := func(key string, value *int, target *time.Duration) {
		if value == nil {
			return
		}
		if *value <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s must be positive, got %d, using %d", key, *value, int(target.Seconds())))
			return
		}
		*target = time.Duration(*value) * time.Second
	}
	positiveSeconds("check_interval", s.CheckInterval, &resolved.CheckInterval)
	positiveSeconds("seconds_uncommitted", s.SecondsUncommitted, &resolved.Thresholds.Uncommitted)
	positiveSeconds("seconds_unpushed", s.SecondsUnpushed, &resolved.Thresholds.Unpushed)

	switch style := domain.NotificationStyle(strings.ToLower(strings.TrimSpace(s.NotificationType))); style {
	case "":
	case domain.StyleModal, domain.StyleNotification:
		resolved.NotificationType = style
	default:
		warnings = append(warnings, fmt.Sprintf("unknown notification_type %q, using %q", s.NotificationType, resolved.NotificationType))
	}

	if provider := strings.ToLower(strings.TrimSpace(s.Provider)); provider != "" {
		resolved.Provider = provider
	}

	resolved.Editor = s.Editor
	resolved.GitViewCommand = strings.TrimSpace(s.GitViewCommand)
	resolved.Workspaces = NormalizeRoots(s.Workspaces)

	return resolved, warnings
}

// NormalizeRoots expands ~, makes roots absolute and drops duplicates
func NormalizeRoots(roots []string) []string {
	seen := make(map[string]bool, len(roots))
	var out []string
	for _, root := range roots {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		root = ExpandPath(root)
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
		if seen[root] {
			continue
		}
		seen[root] = true
		out = append(out, root)
	}
	return out
}
