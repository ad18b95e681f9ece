package flows

import (
	"fmt"
	"slices"
)

// knownColumns is the closed set of canonical column names.
var knownColumns = []string{
	ColName, ColShortName, ColCampus, ColKnowledgeArea,
	ColURL, ColLeaders, ColStartDate, ColSponsor, ColContactEmail,
}

// Validate checks the flow definition for structural errors: unknown
// canonical names and duplicate header mappings.
func (f Flow) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("flow name is required")
	}

	check := func(kind string, cols []string) error {
		for _, c := range cols {
			if !slices.Contains(knownColumns, c) {
				return fmt.Errorf(
					"flow %s: unknown %s column %q", f.Name, kind, c)
			}
		}
		return nil
	}
	if err := check("required", f.Required); err != nil {
		return err
	}
	if err := check("email", f.Email); err != nil {
		return err
	}
	if err := check("url", f.URL); err != nil {
		return err
	}
	if err := check("date", f.Date); err != nil {
		return err
	}
	if f.Members != "" && !slices.Contains(knownColumns, f.Members) {
		return fmt.Errorf(
			"flow %s: unknown members column %q", f.Name, f.Members)
	}

	for canonical := range f.Columns {
		if !slices.Contains(knownColumns, canonical) {
			return fmt.Errorf(
				"flow %s: column mapping for unknown column %q",
				f.Name, canonical)
		}
	}

	seen := make(map[string]string)
	for _, c := range knownColumns {
		h := f.Header(c)
		if prev, ok := seen[h]; ok {
			return fmt.Errorf(
				"flow %s: columns %q and %q map to the same header %q",
				f.Name, prev, c, h)
		}
		seen[h] = c
	}

	return nil
}
