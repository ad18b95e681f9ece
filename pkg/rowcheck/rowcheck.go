// Package rowcheck provides pure, per-row validation for import files.
//
// Validation never touches storage and never mutates its input: the row
// processor calls Validate before opening the row transaction, so an
// invalid row is rejected without a single database write.
package rowcheck

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all checks; validator.Validate is safe for
// concurrent use.
var validate = validator.New()

// Rules declares which columns of a flow get which checks.
// Column names are the canonical header names of the flow contract.
type Rules struct {
	// Required columns must be non-empty after trimming.
	Required []string

	// Email columns must match a standard email grammar when non-empty.
	Email []string

	// URL columns must parse as absolute http(s) URLs when non-empty.
	URL []string

	// Date columns must parse under one of the accepted layouts
	// (see DateLayouts) when non-empty.
	Date []string

	// Members is the column holding a comma-separated list of
	// `Name (email)` entries, or empty if the flow has none.
	Members string
}

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result is the outcome of validating one row.
type Result struct {
	Row    int
	Errors []FieldError
}

// Valid reports whether the row passed all checks.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Message joins all field errors into a single row-scoped message.
func (r Result) Message() string {
	if r.Valid() {
		return ""
	}
	parts := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		parts[i] = e.String()
	}
	return fmt.Sprintf("row %d: %s", r.Row, strings.Join(parts, "; "))
}

// Validate checks one row against the rules and returns a structured
// pass/fail with field-level messages. The row map is not modified.
func Validate(rules Rules, row map[string]string, rowNum int) Result {
	res := Result{Row: rowNum}

	for _, col := range rules.Required {
		if strings.TrimSpace(row[col]) == "" {
			res.Errors = append(res.Errors, FieldError{
				Field:   col,
				Message: "required field is empty",
			})
		}
	}

	for _, col := range rules.Email {
		v := strings.TrimSpace(row[col])
		if v == "" {
			continue
		}
		if err := validate.Var(v, "email"); err != nil {
			res.Errors = append(res.Errors, FieldError{
				Field:   col,
				Message: fmt.Sprintf("invalid email %q", v),
			})
		}
	}

	for _, col := range rules.URL {
		v := strings.TrimSpace(row[col])
		if v == "" {
			continue
		}
		if err := validate.Var(v, "http_url"); err != nil {
			res.Errors = append(res.Errors, FieldError{
				Field:   col,
				Message: fmt.Sprintf("invalid http(s) URL %q", v),
			})
		}
	}

	for _, col := range rules.Date {
		v := strings.TrimSpace(row[col])
		if v == "" {
			continue
		}
		if _, err := ParseDate(v); err != nil {
			res.Errors = append(res.Errors, FieldError{
				Field:   col,
				Message: err.Error(),
			})
		}
	}

	if rules.Members != "" {
		if v := strings.TrimSpace(row[rules.Members]); v != "" {
			_, errs := ParseMembers(v)
			for _, e := range errs {
				res.Errors = append(res.Errors, FieldError{
					Field:   rules.Members,
					Message: e,
				})
			}
		}
	}

	return res
}
