// Package config provides configuration management for osimport.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode
//   - Import: encoding, delimiter
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Import.Flow, Import.DryRun (per-command)
//
// # Environment Variables
//
// Use OSIMPORT_ prefix with underscores for nesting:
//
//	OSIMPORT_DATABASE_HOST=localhost
//	OSIMPORT_DATABASE_PORT=5432
//	OSIMPORT_IMPORT_ENCODING=latin-1
//	OSIMPORT_LOG_LEVEL=info
package config

// Config represents the complete osimport configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Import contains settings specific to the import command.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// ImportConfig contains settings specific to the import command.
type ImportConfig struct {
	// Encoding is the declared character encoding of input files.
	// Valid values: "utf-8", "latin-1", "windows-1252".
	// Institutional exports from legacy systems are often latin-1.
	Encoding string `mapstructure:"encoding" yaml:"encoding"`

	// Delimiter is the field separator of input files.
	// Valid values: "," and ";" (spreadsheet exports in pt-BR locales
	// use the semicolon).
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`

	// Flow is the name of the import flow to run (e.g. "research_groups").
	// Runtime-only, set by the CLI per command invocation.
	Flow string `mapstructure:"-" yaml:"-"`

	// DryRun makes the import parse, validate and resolve every row but
	// roll back every row transaction. Runtime-only.
	DryRun bool `mapstructure:"-" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format" yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level" yaml:"level"`
	// Destination can be STDERR or STDOUT.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "onestep",
			SSLMode:  "disable",
		},
		Import: ImportConfig{
			Encoding:  "utf-8",
			Delimiter: ",",
		},
		Log: LogConfig{
			Format:      "text",
			Level:       "info",
			Destination: "stderr",
		},
	}

	return res
}
