// Package app provides the application initialization and wiring.
package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultStateDir returns the directory used for log files.
// Uses $XDG_STATE_HOME/habitat, ~/.local/state/habitat, or the temp dir as fallback.
func DefaultStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "habitat")
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state", "habitat")
	}
	return filepath.Join(os.TempDir(), "habitat")
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: habitat.toml
// Search paths (in order): /etc/habitat, ~/.config/habitat, current directory
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("habitat")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/habitat")
		v.AddConfigPath("$HOME/.config/habitat")
		v.AddConfigPath(".")
	}
}
