// Package ioimport implements the Importer interface: it streams rows
// from a delimited file, validates and resolves each one, and persists
// the results one transaction per row.
// This is an impure I/O package; the pure contracts live in pkg.
package ioimport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/onestep/osimport/internal/iocsv"
	"github.com/onestep/osimport/pkg/config"
	"github.com/onestep/osimport/pkg/flows"
	"github.com/onestep/osimport/pkg/osimport"
	"github.com/onestep/osimport/pkg/report"
	"github.com/onestep/osimport/pkg/schema"
	"gorm.io/gorm"
)

// importer implements the Importer interface.
type importer struct {
	cfg *config.Config
	db  *gorm.DB
}

// New creates a new Importer on top of an open GORM session.
func New(cfg *config.Config, db *gorm.DB) osimport.Importer {
	return &importer{cfg: cfg, db: db}
}

// Run streams the input file row by row. Each row gets its own
// transaction, so a failed row never leaves partial entities behind and
// never touches the rows around it. Cancellation is honored between
// rows only; the row in flight always finishes.
func (imp *importer) Run(
	ctx context.Context,
	input io.Reader,
	flow flows.Flow,
) (*report.Report, error) {
	startTime := time.Now()

	total := countRows(input)

	reader, err := iocsv.New(
		input, imp.cfg.Import.Encoding, delimiter(imp.cfg.Import.Delimiter))
	if err != nil {
		return nil, err
	}
	err = reader.RequireColumns(flow.RequiredHeaders())
	if err != nil {
		return nil, err
	}

	proc, err := newProcessor(imp.db, flow, imp.cfg.Import.DryRun)
	if err != nil {
		return nil, err
	}

	run, err := imp.startRun(flow)
	if err != nil {
		return nil, err
	}

	slog.Info("Starting import",
		"flow", flow.Name, "dryRun", imp.cfg.Import.DryRun)

	var bar *pb.ProgressBar
	if total > 0 {
		bar = pb.Full.Start(total)
		bar.Set("prefix", "Importing rows: ")
		bar.Set(pb.CleanOnFinish, true)
	}

	rep := report.New()
	for {
		if ctx.Err() != nil {
			if bar != nil {
				bar.Finish()
			}
			imp.finishRun(run, rep, ctx.Err())
			return nil, CancelledError(ctx.Err())
		}

		row, rowErr := reader.Next()
		if errors.Is(rowErr, io.EOF) {
			break
		}
		if rowErr != nil {
			if !iocsv.IsFieldCount(rowErr) {
				if bar != nil {
					bar.Finish()
				}
				imp.finishRun(run, rep, rowErr)
				return nil, rowErr
			}
			rep.Add(row.Line, report.Failed, rowMessage(rowErr))
			if bar != nil {
				bar.Increment()
			}
			continue
		}

		outcome := proc.process(row)
		rep.Add(outcome.Row, outcome.Status, outcome.Message)
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	err = imp.finishRun(run, rep, nil)
	if err != nil {
		return nil, err
	}

	s := rep.Summary()
	slog.Info("Import finished",
		"flow", flow.Name,
		"total", s.Total,
		"succeeded", s.Succeeded,
		"skipped", s.Skipped,
		"failed", s.Failed,
	)
	gn.Info("Processed <em>%s</em> rows in %s",
		humanize.Comma(int64(s.Total)),
		gnfmt.TimeString(time.Since(startTime).Seconds()),
	)

	return rep, nil
}

// startRun opens the persisted audit record for this run. Dry runs
// leave no trace, audit row included.
func (imp *importer) startRun(flow flows.Flow) (*schema.ImportRun, error) {
	if imp.cfg.Import.DryRun {
		return nil, nil
	}
	run := &schema.ImportRun{
		Flow:      flow.Name,
		Status:    schema.ImportRunStatusRunning,
		StartedAt: time.Now(),
	}
	err := imp.db.Create(run).Error
	if err != nil {
		return nil, RunRecordError(err)
	}
	return run, nil
}

// finishRun closes the audit record with final counts. A runErr marks
// the run failed and keeps its message.
func (imp *importer) finishRun(
	run *schema.ImportRun, rep *report.Report, runErr error,
) error {
	if run == nil {
		return nil
	}

	s := rep.Summary()
	now := time.Now()
	run.Status = schema.ImportRunStatusSuccess
	if runErr != nil {
		run.Status = schema.ImportRunStatusFailed
		msg := runErr.Error()
		run.ErrorMessage = &msg
	}
	run.RowsTotal = uint(s.Total)
	run.RowsSucceeded = uint(s.Succeeded)
	run.RowsSkipped = uint(s.Skipped)
	run.RowsFailed = uint(s.Failed)
	run.FinishedAt = &now

	err := imp.db.Save(run).Error
	if err != nil {
		return RunRecordError(err)
	}
	return nil
}

// delimiter picks the configured field delimiter rune.
func delimiter(s string) rune {
	for _, r := range s {
		return r
	}
	return ','
}

// countRows pre-counts data rows for the progress bar when the input
// supports seeking. Returns 0 for a plain stream; the bar is then
// skipped rather than guessed.
func countRows(input io.Reader) int {
	seeker, ok := input.(io.ReadSeeker)
	if !ok {
		return 0
	}

	var lines int
	buf := make([]byte, 32*1024)
	for {
		n, err := seeker.Read(buf)
		lines += bytes.Count(buf[:n], []byte{'\n'})
		if err != nil {
			break
		}
	}
	_, err := seeker.Seek(0, io.SeekStart)
	if err != nil {
		return 0
	}

	// The header is not a data row.
	if lines > 0 {
		lines--
	}
	return lines
}

// rowMessage renders a row-scoped error for the report.
func rowMessage(err error) string {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Err != nil {
		return gnErr.Err.Error()
	}
	return err.Error()
}
