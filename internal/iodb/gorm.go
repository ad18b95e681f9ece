package iodb

import (
	"github.com/onestep/osimport/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenGorm opens a GORM session over PostgreSQL for the import
// pipeline.
//
// TranslateError is on so uniqueness-constraint violations surface as
// gorm.ErrDuplicatedKey regardless of driver; the resolvers' retry
// protocol depends on that. GORM's own logger is silenced - application
// logging goes through slog.
func OpenGorm(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn(cfg)), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, GormConnectionError(cfg.Host, cfg.Database, err)
	}
	return gdb, nil
}
