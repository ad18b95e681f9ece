// Package ioconfig provides I/O operations for loading configuration
// from files, environment variables and flags. This is an impure
// package that handles file system and flag operations.
package ioconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/onestep/osimport/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LoadResult contains the loaded configuration and metadata about the
// source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // Path to config file used, or empty if using defaults
	Source     string // "file", "defaults", or "defaults+env"
}

// GetConfigDir returns the configuration directory for osimport.
// Uses ~/.config/osimport/ on all platforms; the OSIMPORT_CONFIG_DIR
// environment variable overrides it (used by tests).
func GetConfigDir() (string, error) {
	if dir := os.Getenv("OSIMPORT_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return config.ConfigDir(homeDir), nil
}

// GetDefaultConfigPath returns the full path to the default config file.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// GetDefaultFlowsPath returns the full path to the default flows file.
func GetDefaultFlowsPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "flows.yaml"), nil
}

// ConfigFileExists reports whether a config file exists at the default
// location.
func ConfigFileExists() (bool, error) {
	path, err := GetDefaultConfigPath()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Load reads configuration from a YAML file and returns a validated
// Config with source info. If configPath is empty, it searches the
// default location (~/.config/osimport/config.yaml).
//
// Precedence: flags > env vars > config file > defaults.
// Returns error if the file is malformed or an explicit path is absent.
func Load(configPath string) (*LoadResult, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Enable environment variable overrides.
	v.SetEnvPrefix("OSIMPORT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults BEFORE reading config - this allows env vars to work
	// with AutomaticEnv() even when no config file exists.
	defaults := config.New()
	v.SetDefault("database.host", defaults.Database.Host)
	v.SetDefault("database.port", defaults.Database.Port)
	v.SetDefault("database.user", defaults.Database.User)
	v.SetDefault("database.password", defaults.Database.Password)
	v.SetDefault("database.database", defaults.Database.Database)
	v.SetDefault("database.ssl_mode", defaults.Database.SSLMode)
	v.SetDefault("import.encoding", defaults.Import.Encoding)
	v.SetDefault("import.delimiter", defaults.Import.Delimiter)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.destination", defaults.Log.Destination)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		defaultPath, err := GetDefaultConfigPath()
		if err == nil {
			if _, statErr := os.Stat(defaultPath); statErr == nil {
				v.SetConfigFile(defaultPath)
			}
		}
	}

	configFileRead := false
	usedConfigPath := ""

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		switch {
		case notFound && configPath != "", os.IsNotExist(err) && configPath != "":
			return nil, fmt.Errorf("config file not found: %s", configPath)
		case notFound, os.IsNotExist(err):
			// No config file in the default location; defaults + env.
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileRead = true
		usedConfigPath = v.ConfigFileUsed()
	}

	// Unmarshal the merged settings, then re-apply through Options so
	// invalid values are rejected the same way flags are.
	var fileCfg config.Config
	if err := v.Unmarshal(&fileCfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg := config.New()
	cfg.Update(fileCfg.ToOptions())

	source := "defaults"
	if configFileRead {
		source = "file"
	} else if hasEnvVars() {
		source = "defaults+env"
	}

	return &LoadResult{
		Config:     cfg,
		SourcePath: usedConfigPath,
		Source:     source,
	}, nil
}

// hasEnvVars checks if any OSIMPORT_* environment variables are set.
func hasEnvVars() bool {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "OSIMPORT_") {
			return true
		}
	}
	return false
}

// BindFlags applies cobra command flags to the config.
// CLI flags take precedence over config file and env values.
func BindFlags(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	v := viper.New()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	var opts []config.Option
	if v.IsSet("host") {
		opts = append(opts, config.OptDatabaseHost(v.GetString("host")))
	}
	if v.IsSet("port") {
		opts = append(opts, config.OptDatabasePort(v.GetInt("port")))
	}
	if v.IsSet("user") {
		opts = append(opts, config.OptDatabaseUser(v.GetString("user")))
	}
	if v.IsSet("password") {
		opts = append(opts, config.OptDatabasePassword(v.GetString("password")))
	}
	if v.IsSet("database") {
		opts = append(opts, config.OptDatabaseDatabase(v.GetString("database")))
	}
	if v.IsSet("encoding") {
		opts = append(opts, config.OptImportEncoding(v.GetString("encoding")))
	}
	if v.IsSet("delimiter") {
		opts = append(opts, config.OptImportDelimiter(v.GetString("delimiter")))
	}
	if v.IsSet("dry-run") {
		opts = append(opts, config.OptImportDryRun(v.GetBool("dry-run")))
	}
	if v.IsSet("log-level") {
		opts = append(opts, config.OptLogLevel(v.GetString("log-level")))
	}
	cfg.Update(opts)

	return cfg, nil
}
