package config_test

import (
	"testing"

	"github.com/onestep/osimport/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "onestep", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "utf-8", cfg.Import.Encoding)
	assert.Equal(t, ",", cfg.Import.Delimiter)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Import.Flow)
	assert.False(t, cfg.Import.DryRun)
}

func TestUpdate(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost("db.example.org"),
		config.OptDatabasePort(5433),
		config.OptImportEncoding("latin-1"),
		config.OptImportDelimiter(";"),
		config.OptImportFlow("research_groups"),
		config.OptImportDryRun(true),
	})

	assert.Equal(t, "db.example.org", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "latin-1", cfg.Import.Encoding)
	assert.Equal(t, ";", cfg.Import.Delimiter)
	assert.Equal(t, "research_groups", cfg.Import.Flow)
	assert.True(t, cfg.Import.DryRun)
}

func TestUpdateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		opt  config.Option
	}{
		{"empty host", config.OptDatabaseHost("  ")},
		{"negative port", config.OptDatabasePort(-1)},
		{"bad ssl mode", config.OptDatabaseSSLMode("maybe")},
		{"bad encoding", config.OptImportEncoding("ebcdic")},
		{"bad delimiter", config.OptImportDelimiter("|")},
		{"bad log level", config.OptLogLevel("loud")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			want := *cfg
			cfg.Update([]config.Option{tt.opt})
			assert.Equal(t, want, *cfg, "invalid option must not change config")
		})
	}
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseUser("records"),
		config.OptImportEncoding("windows-1252"),
		config.OptLogFormat("json"),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Equal(t, cfg.Database, clone.Database)
	assert.Equal(t, cfg.Import.Encoding, clone.Import.Encoding)
	assert.Equal(t, cfg.Import.Delimiter, clone.Import.Delimiter)
	assert.Equal(t, cfg.Log, clone.Log)
}
