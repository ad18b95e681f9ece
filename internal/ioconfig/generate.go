package ioconfig

import (
	"fmt"
	"os"

	"github.com/onestep/osimport/pkg/config"
	"gopkg.in/yaml.v3"
)

// configHeader documents the generated config file for users who edit
// it by hand.
const configHeader = `# osimport configuration.
#
# Precedence (highest to lowest):
#   CLI flags > OSIMPORT_* environment variables > this file > defaults
#
# Example environment overrides:
#   OSIMPORT_DATABASE_HOST=db.example.org
#   OSIMPORT_DATABASE_PASSWORD=secret
#   OSIMPORT_IMPORT_ENCODING=latin-1
`

// GenerateDefaultConfig creates a documented default config file at the
// default location. Does NOT overwrite an existing file.
// Returns the path where the file was created.
func GenerateDefaultConfig() (string, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists: %s", configPath)
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config.New())
	if err != nil {
		return "", fmt.Errorf("failed to marshal default config: %w", err)
	}

	content := append([]byte(configHeader), data...)
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
