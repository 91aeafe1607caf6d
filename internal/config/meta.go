package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// This automatically stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName != "debug"
		case reflect.Int:
			switch fieldName {
			case "check_interval":
				return 120
			case "max_log_files":
				return 1000
			default:
				return 1800
			}
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "editor":
			return "code"
		case "git_view_command":
			return "lazygit"
		case "notification_type":
			return "notification"
		case "provider":
			return ProviderGit
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			if fieldName == "workspaces" {
				return []string{"~/src/project-a", "~/src/project-b"}
			}
			return []string{"example1", "example2"}
		}
	}

	return nil
}
