package ioflows

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/onestep/osimport/pkg/errcode"
)

// fileError creates an error for an unreadable or malformed flows.yaml.
func fileError(path string, err error) error {
	msg := `Cannot read flows file

<em>Path:</em> %s

<em>How to fix:</em>
  1. Check the file is readable
  2. Check it is valid YAML`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.FlowsConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read flows file %s: %w", path, err),
	}
}

// invalidFlowError creates an error for a structurally broken flow
// definition in flows.yaml.
func invalidFlowError(path string, err error) error {
	msg := `Invalid flow definition in flows file

<em>Path:</em> %s
<em>Problem:</em> %v`

	vars := []any{path, err}

	return &gn.Error{
		Code: errcode.FlowsConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid flow in %s: %w", path, err),
	}
}

// unknownFlowError creates an error for a flow name osimport does not
// know.
func unknownFlowError(name string, known []string) error {
	msg := `Unknown import flow <em>%s</em>

<em>Available flows:</em> %s`

	vars := []any{name, strings.Join(known, ", ")}

	return &gn.Error{
		Code: errcode.FlowUnknownError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown flow %q", name),
	}
}
