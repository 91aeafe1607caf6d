package integration_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitnag/test/integration/harness"
)

func TestSettingsPath(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "path")

	harness.AssertSuccess(t, result)
	assert.Equal(t, env.SettingsPath(), strings.TrimSpace(result.Stdout))
}

func TestSettingsInit(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "init")
	harness.AssertSuccess(t, result)

	again := harness.RunCommand(t, env, "settings", "init")
	harness.AssertFailure(t, again)
	harness.AssertStderrContains(t, again, "already exists")

	forced := harness.RunCommand(t, env, "settings", "init", "--force")
	harness.AssertSuccess(t, forced)
}

func TestSettingsShow(t *testing.T) {
	tests := []struct {
		name     string
		settings string
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "defaults",
			args: []string{"settings", "show"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file:")
				harness.AssertStdoutContains(t, result, "seconds_uncommitted  1800")
			},
		},
		{
			name:     "file values",
			settings: `{"seconds_unpushed": 60, "notification_type": "modal"}`,
			args:     []string{"settings", "show", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var out struct {
					Settings map[string]any `json:"settings"`
				}
				harness.AssertValidJSON(t, result, &out)
				assert.Equal(t, float64(60), out.Settings["seconds_unpushed"])
				assert.Equal(t, "modal", out.Settings["notification_type"])
			},
		},
		{
			name:     "invalid values fall back to defaults",
			settings: `{"check_interval": -5, "notification_type": "popup"}`,
			args:     []string{"settings", "show", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var out struct {
					Settings map[string]any `json:"settings"`
				}
				harness.AssertValidJSON(t, result, &out)
				assert.Equal(t, float64(120), out.Settings["check_interval"])
				assert.Equal(t, "notification", out.Settings["notification_type"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.settings != "" {
				env.WriteSettings(tt.settings)
			}

			result := harness.RunCommand(t, env, tt.args...)
			harness.AssertSuccess(t, result)

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestSettingsMeta(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "meta", "--format", "json")

	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "settings_file", env.SettingsPath())
}

func TestInvalidSettingsFileFails(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{not json`)

	result := harness.RunCommand(t, env, "settings", "show")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "invalid settings.json")
}
