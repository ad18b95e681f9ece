package ioimport

import (
	"errors"

	"github.com/onestep/osimport/internal/iocsv"
	"github.com/onestep/osimport/internal/ioresolve"
	"github.com/onestep/osimport/pkg/flows"
	"github.com/onestep/osimport/pkg/report"
	"github.com/onestep/osimport/pkg/rowcheck"
	"gorm.io/gorm"
)

// errDryRun forces the row transaction to roll back after the row went
// through every step. The row's outcome is kept, its writes are not.
var errDryRun = errors.New("dry run rollback")

// rowHandler persists one validated row for a given flow kind.
type rowHandler interface {
	handle(tx *gorm.DB, row iocsv.Row) (report.Status, string, error)
}

// processor runs rows through the pipeline: validate, resolve, persist.
// One processor serves one run and carries the run-scoped resolvers.
type processor struct {
	db      *gorm.DB
	flow    flows.Flow
	dryRun  bool
	res     *ioresolve.Resolvers
	handler rowHandler
}

func newProcessor(
	db *gorm.DB, flow flows.Flow, dryRun bool,
) (*processor, error) {
	res := ioresolve.New()

	var handler rowHandler
	switch kind := flow.HandlerKind(); kind {
	case "research_groups":
		handler = &groupHandler{flow: flow, res: res}
	case "sponsors":
		handler = &sponsorHandler{flow: flow}
	default:
		return nil, UnknownHandlerError(flow.Name, kind)
	}

	return &processor{
		db:      db,
		flow:    flow,
		dryRun:  dryRun,
		res:     res,
		handler: handler,
	}, nil
}

// process takes one row to its terminal state. A failed row rolls back
// completely; rows never fail the run.
func (p *processor) process(row iocsv.Row) report.Outcome {
	result := rowcheck.Validate(p.flow.Rules(), row.Fields, row.Line)
	if !result.Valid() {
		return report.Outcome{
			Row:     row.Line,
			Status:  report.Failed,
			Message: result.Message(),
		}
	}

	var status report.Status
	var msg string
	err := p.db.Transaction(func(tx *gorm.DB) error {
		var hErr error
		status, msg, hErr = p.handler.handle(tx, row)
		if hErr != nil {
			return hErr
		}
		if p.dryRun {
			return errDryRun
		}
		return nil
	})

	if err != nil && !errors.Is(err, errDryRun) {
		p.res.Discard()
		return report.Outcome{
			Row:     row.Line,
			Status:  report.Failed,
			Message: rowMessage(err),
		}
	}

	// Dry runs roll back too; their resolved entities must not be
	// cached as if they existed.
	if p.dryRun {
		p.res.Discard()
	} else {
		p.res.Commit()
	}

	return report.Outcome{Row: row.Line, Status: status, Message: msg}
}
