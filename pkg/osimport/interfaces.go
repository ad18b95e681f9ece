// Package osimport defines the contracts between the CLI and the
// import pipeline.
package osimport

import (
	"context"
	"io"

	"github.com/onestep/osimport/pkg/flows"
	"github.com/onestep/osimport/pkg/report"
)

// Importer runs one import: it streams rows from input, processes each
// row in its own transaction and accumulates outcomes.
//
// Row-scoped problems never surface as errors; they are converted into
// Failed or Skipped outcomes on the returned report. Only whole-file
// problems (unreadable input, missing or wrong header) and cancellation
// return a non-nil error, always alongside a nil report.
type Importer interface {
	Run(ctx context.Context, input io.Reader, flow flows.Flow) (*report.Report, error)
}

// SchemaManager handles database schema lifecycle.
// Both operations run GORM AutoMigrate and are idempotent; Create is
// meant for an empty database, Migrate for bringing an existing one up
// to date.
type SchemaManager interface {
	Create(ctx context.Context) error
	Migrate(ctx context.Context) error
}
