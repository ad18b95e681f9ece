package iocsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/onestep/osimport/pkg/errcode"
)

// IsFieldCount reports whether err is a field count mismatch on a data
// row. This is a row-scoped problem; the caller can record it and keep
// reading.
func IsFieldCount(err error) bool {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return false
	}
	return errors.Is(gnErr.Err, csv.ErrFieldCount)
}

// MissingHeaderError creates an error for an input file without a
// header row. This is a whole-file problem: the run aborts before any
// row is processed.
func MissingHeaderError() error {
	msg := `Input file has no header row

<em>How to fix:</em>
  1. Make sure the first line names the columns
  2. Check the file is not empty`

	return &gn.Error{
		Code: errcode.ImportBadInputError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("missing header row"),
	}
}

// HeaderReadError creates an error for an unreadable header row.
func HeaderReadError(err error) error {
	msg := `Cannot read the header row

<em>Possible causes:</em>
  - Wrong delimiter configured
  - Wrong declared encoding
  - File is not a delimited text file`

	return &gn.Error{
		Code: errcode.ImportBadInputError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to read header: %w", err),
	}
}

// MissingColumnsError creates an error for a header that lacks columns
// the flow requires.
func MissingColumnsError(missing []string) error {
	msg := `Input file is missing required columns

<em>Missing columns:</em> %s

<em>How to fix:</em>
  1. Check the column names against the flow contract
  2. Map renamed headers in flows.yaml`

	vars := []any{strings.Join(missing, ", ")}

	return &gn.Error{
		Code: errcode.ImportBadInputError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("missing required columns: %s",
			strings.Join(missing, ", ")),
	}
}

// FieldCountError creates an error for a data row whose field count
// disagrees with the header.
func FieldCountError(line, want int, err error) error {
	msg := `Row has a wrong number of fields

<em>Line:</em> %d
<em>Expected fields:</em> %d

<em>Possible causes:</em>
  - Unquoted delimiter inside a value
  - Truncated row`

	vars := []any{line, want}

	return &gn.Error{
		Code: errcode.ImportBadInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("line %d: %w", line, err),
	}
}

// RowReadError creates an error for an unreadable data row.
func RowReadError(line int, err error) error {
	msg := `Cannot read row at line <em>%d</em>`
	vars := []any{line}

	return &gn.Error{
		Code: errcode.ImportBadInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("line %d: %w", line, err),
	}
}

// UnknownEncodingError creates an error for an unsupported declared
// encoding.
func UnknownEncodingError(encoding string) error {
	msg := `Unsupported input encoding <em>%s</em>

<em>Supported encodings:</em> utf-8, latin-1, windows-1252`

	vars := []any{encoding}

	return &gn.Error{
		Code: errcode.ImportBadInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unsupported encoding: %s", encoding),
	}
}
