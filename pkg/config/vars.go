package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "osimport"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/osimport by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/osimport/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// FlowsFilePath returns the full path to the flows.yaml file.
// Returns ~/.config/osimport/flows.yaml by default.
func FlowsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "flows.yaml")
}
