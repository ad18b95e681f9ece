// Package ioschema implements the SchemaManager interface for database
// schema management. This is an impure I/O package that wraps GORM
// AutoMigrate functionality.
package ioschema

import (
	"context"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/onestep/osimport/pkg/db"
	"github.com/onestep/osimport/pkg/osimport"
	"github.com/onestep/osimport/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// manager implements the osimport.SchemaManager interface using GORM
// AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) osimport.SchemaManager {
	return &manager{operator: op}
}

// Create creates the initial database schema using GORM AutoMigrate.
func (m *manager) Create(ctx context.Context) error {
	gormDB, err := m.open()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}
	return nil
}

// Migrate updates the database schema to the latest version using GORM
// AutoMigrate. GORM handles column additions automatically; destructive
// changes need manual SQL.
func (m *manager) Migrate(ctx context.Context) error {
	gormDB, err := m.open()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}
	return nil
}

// open builds a GORM session over the operator's connection pool.
func (m *manager) open() (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB, nil
}
