package config

import (
	"os"
	"path/filepath"
)

// GetGitnagHome returns GITNAG_HOME or ~/.gitnag default
func GetGitnagHome() string {
	home := os.Getenv("GITNAG_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".gitnag"
		}
		return filepath.Join(homeDir, ".gitnag")
	}
	return ExpandPath(home)
}

// GetDBPath returns $GITNAG_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetGitnagHome(), "state.db")
}

// GetSettingsPath returns $GITNAG_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetGitnagHome(), "settings.json")
}

// GetLockPath returns $GITNAG_HOME/daemon.lock
func GetLockPath() string {
	return filepath.Join(GetGitnagHome(), "daemon.lock")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
