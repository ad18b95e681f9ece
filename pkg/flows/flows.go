// Package flows declares the import flows osimport understands.
//
// A flow is the contract between the pipeline and an upstream data
// producer: which named columns the file must carry and which checks
// apply to each. Column header names are part of the contract and are
// validated, never inferred positionally; flows.yaml may rename headers
// per institution without changing the canonical column set.
package flows

import (
	"strings"

	"github.com/onestep/osimport/pkg/rowcheck"
)

// Canonical column names shared by the flows.
const (
	ColName          = "name"
	ColShortName     = "short_name"
	ColCampus        = "campus"
	ColKnowledgeArea = "knowledge_area"
	ColURL           = "url"
	ColLeaders       = "leaders"
	ColStartDate     = "start_date"
	ColSponsor       = "sponsor"
	ColContactEmail  = "contact_email"
)

// Flow describes one import flow.
type Flow struct {
	// Name identifies the flow ("research_groups", "sponsors").
	Name string `yaml:"name"`

	// Kind selects the persistence handler for the flow's rows; empty
	// means the flow name itself. A flows.yaml flow named after an
	// institution can still reuse a builtin handler this way.
	Kind string `yaml:"kind,omitempty"`

	// Columns maps canonical column names to the header names used in
	// input files. Unmapped canonical names use themselves as headers.
	Columns map[string]string `yaml:"columns,omitempty"`

	// Required, Email, URL and Date hold canonical column names subject
	// to the corresponding checks.
	Required []string `yaml:"required,omitempty"`
	Email    []string `yaml:"email,omitempty"`
	URL      []string `yaml:"url,omitempty"`
	Date     []string `yaml:"date,omitempty"`

	// Members is the canonical name of the `Name (email)` list column,
	// or empty if the flow has none.
	Members string `yaml:"members,omitempty"`
}

// HandlerKind returns the persistence handler the flow's rows go
// through.
func (f Flow) HandlerKind() string {
	if f.Kind != "" {
		return f.Kind
	}
	return f.Name
}

// Header returns the file header name for a canonical column.
func (f Flow) Header(canonical string) string {
	if h, ok := f.Columns[canonical]; ok && h != "" {
		return h
	}
	return canonical
}

// Value reads a canonical column from a parsed row.
func (f Flow) Value(row map[string]string, canonical string) string {
	return strings.TrimSpace(row[f.Header(canonical)])
}

// Rules translates the flow contract into row validation rules keyed by
// the actual file headers.
func (f Flow) Rules() rowcheck.Rules {
	headers := func(canonicals []string) []string {
		res := make([]string, len(canonicals))
		for i, c := range canonicals {
			res[i] = f.Header(c)
		}
		return res
	}

	rules := rowcheck.Rules{
		Required: headers(f.Required),
		Email:    headers(f.Email),
		URL:      headers(f.URL),
		Date:     headers(f.Date),
	}
	if f.Members != "" {
		rules.Members = f.Header(f.Members)
	}
	return rules
}

// RequiredHeaders returns the file headers the flow cannot work without.
func (f Flow) RequiredHeaders() []string {
	res := make([]string, len(f.Required))
	for i, c := range f.Required {
		res[i] = f.Header(c)
	}
	return res
}

// ResearchGroups is the primary flow: one research group per row, with
// campus, knowledge area, optional sponsor and a leaders list.
func ResearchGroups() Flow {
	return Flow{
		Name: "research_groups",
		Required: []string{
			ColName, ColCampus, ColKnowledgeArea,
		},
		URL:     []string{ColURL},
		Date:    []string{ColStartDate},
		Members: ColLeaders,
	}
}

// Sponsors imports demanding partners on their own, without a primary
// research group record.
func Sponsors() Flow {
	return Flow{
		Name:     "sponsors",
		Required: []string{ColName},
		Email:    []string{ColContactEmail},
		URL:      []string{ColURL},
	}
}

// Builtin returns the flows shipped with osimport, keyed by name.
func Builtin() map[string]Flow {
	res := make(map[string]Flow)
	for _, f := range []Flow{ResearchGroups(), Sponsors()} {
		res[f.Name] = f
	}
	return res
}
