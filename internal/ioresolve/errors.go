package ioresolve

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/onestep/osimport/pkg/errcode"
)

// lookupError creates an error for a failed entity lookup.
func lookupError(kind, key string, err error) error {
	msg := `Cannot look up %s <em>%s</em>`
	vars := []any{kind, key}

	return &gn.Error{
		Code: errcode.ImportIntegrityError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to look up %s %q: %w", kind, key, err),
	}
}

// createError creates an error for a failed entity insert or update.
func createError(kind, key string, err error) error {
	msg := `Cannot save %s <em>%s</em>`
	vars := []any{kind, key}

	return &gn.Error{
		Code: errcode.ImportIntegrityError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to save %s %q: %w", kind, key, err),
	}
}

// conflictError creates an error for a uniqueness conflict that did not
// resolve after the single allowed retry.
func conflictError(kind, key string) error {
	msg := `Resolution of %s <em>%s</em> keeps conflicting

A uniqueness violation was raised on insert, but no matching record
turned up on re-fetch. This is not the transient create race and needs
a look at the data.`

	vars := []any{kind, key}

	return &gn.Error{
		Code: errcode.ImportResolutionConflictError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"unresolved uniqueness conflict for %s %q", kind, key),
	}
}
