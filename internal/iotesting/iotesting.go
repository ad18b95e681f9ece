// Package iotesting provides database helpers shared by tests.
package iotesting

import (
	"path/filepath"
	"testing"

	"github.com/onestep/osimport/pkg/schema"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenTestDB opens a file-backed SQLite database in a temp dir with the
// full schema migrated. TranslateError is on so unique violations
// surface as gorm.ErrDuplicatedKey, same as the PostgreSQL driver.
//
// SQLite's LOWER() folds ASCII only, unlike PostgreSQL. Tests that
// exercise case-insensitive lookups must keep accented characters
// lowercase in the first-seen value, or the lookup will miss here
// while matching on PostgreSQL.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "osimport.sqlite")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = schema.Migrate(db)
	require.NoError(t, err)

	return db
}
