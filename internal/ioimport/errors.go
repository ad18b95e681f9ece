package ioimport

import (
	"fmt"
	"time"

	"github.com/gnames/gn"
	"github.com/onestep/osimport/pkg/errcode"
)

// FileError creates an error for an unreadable input file.
func FileError(path string, err error) error {
	msg := `Cannot open input file

<em>Path:</em> %s

<em>How to fix:</em>
  1. Check the path is correct
  2. Check the file is readable`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ImportFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to open %s: %w", path, err),
	}
}

// UnknownHandlerError creates an error for a flow whose kind names no
// persistence handler.
func UnknownHandlerError(flow, kind string) error {
	msg := `Flow <em>%s</em> has no handler for kind <em>%s</em>

<em>Known kinds:</em> research_groups, sponsors`

	vars := []any{flow, kind}

	return &gn.Error{
		Code: errcode.FlowUnknownError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("flow %q: unknown handler kind %q", flow, kind),
	}
}

// CancelledError creates an error for a run stopped between rows.
func CancelledError(err error) error {
	msg := `Import cancelled

Rows processed before cancellation are committed; the rest of the file
was not read.`

	return &gn.Error{
		Code: errcode.ImportCancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("import cancelled: %w", err),
	}
}

// RunRecordError creates an error for a failed write of the run audit
// record.
func RunRecordError(err error) error {
	msg := "Cannot record the import run"

	return &gn.Error{
		Code: errcode.ImportRunRecordError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to record import run: %w", err),
	}
}

// GroupLookupError creates an error for a failed research group lookup.
func GroupLookupError(shortName string, err error) error {
	msg := `Cannot look up research group <em>%s</em>`
	vars := []any{shortName}

	return &gn.Error{
		Code: errcode.ImportIntegrityError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"failed to look up research group %q: %w", shortName, err),
	}
}

// GroupSaveError creates an error for a failed research group insert.
func GroupSaveError(shortName string, err error) error {
	msg := `Cannot save research group <em>%s</em>`
	vars := []any{shortName}

	return &gn.Error{
		Code: errcode.ImportIntegrityError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"failed to save research group %q: %w", shortName, err),
	}
}

// SponsorLookupError creates an error for a failed sponsor lookup.
func SponsorLookupError(name string, err error) error {
	msg := `Cannot look up sponsor <em>%s</em>`
	vars := []any{name}

	return &gn.Error{
		Code: errcode.ImportIntegrityError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to look up sponsor %q: %w", name, err),
	}
}

// SponsorSaveError creates an error for a failed sponsor insert.
func SponsorSaveError(name string, err error) error {
	msg := `Cannot save sponsor <em>%s</em>`
	vars := []any{name}

	return &gn.Error{
		Code: errcode.ImportIntegrityError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to save sponsor %q: %w", name, err),
	}
}

// LeadershipError creates an error for a failed leadership write.
func LeadershipError(person string, err error) error {
	msg := `Cannot record leadership for <em>%s</em>`
	vars := []any{person}

	return &gn.Error{
		Code: errcode.ImportIntegrityError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"failed to record leadership for %q: %w", person, err),
	}
}

// TenureDatesError creates an error for a tenure whose end date falls
// before its start date.
func TenureDatesError(person string, start, end time.Time) error {
	msg := `Tenure of <em>%s</em> cannot end before it starts

<em>Start:</em> %s
<em>End:</em> %s`

	vars := []any{
		person,
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
	}

	return &gn.Error{
		Code: errcode.ImportIntegrityError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"tenure of %q ends %s before it starts %s",
			person, end.Format("2006-01-02"), start.Format("2006-01-02")),
	}
}
