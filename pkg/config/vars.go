package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "udb"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/udb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// ConfigFilePath returns the full path to the config.json file.
// Returns ~/.config/udb/config.json by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.json")
}
