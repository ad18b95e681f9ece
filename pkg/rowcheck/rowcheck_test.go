package rowcheck_test

import (
	"testing"

	"github.com/onestep/osimport/pkg/rowcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var groupRules = rowcheck.Rules{
	Required: []string{"name", "campus", "knowledge_area"},
	URL:      []string{"url"},
	Date:     []string{"start_date"},
	Members:  "leaders",
}

func validRow() map[string]string {
	return map[string]string{
		"name":           "Ambiente Construído",
		"campus":         "Colatina",
		"knowledge_area": "Engenharias",
		"url":            "https://example.org/ac",
		"start_date":     "25-03-19",
		"leaders":        "Maria Silva (maria@example.org)",
	}
}

func TestValidateOK(t *testing.T) {
	res := rowcheck.Validate(groupRules, validRow(), 2)
	assert.True(t, res.Valid())
	assert.Empty(t, res.Message())
}

func TestValidateRequired(t *testing.T) {
	row := validRow()
	row["campus"] = "   "
	res := rowcheck.Validate(groupRules, row, 3)

	require.False(t, res.Valid())
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "campus", res.Errors[0].Field)
	assert.Contains(t, res.Message(), "row 3")
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://example.org/x", true},
		{"http://example.org", true},
		{"", true}, // optional
		{"example.org/x", false},
		{"ftp://example.org/x", false},
	}

	for _, tt := range tests {
		row := validRow()
		row["url"] = tt.url
		res := rowcheck.Validate(groupRules, row, 2)
		assert.Equal(t, tt.valid, res.Valid(), tt.url)
	}
}

func TestValidateDate(t *testing.T) {
	row := validRow()
	row["start_date"] = "yesterday"
	res := rowcheck.Validate(groupRules, row, 2)

	require.False(t, res.Valid())
	assert.Equal(t, "start_date", res.Errors[0].Field)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	row := validRow()
	row["name"] = ""
	row["url"] = "nope"
	row["start_date"] = "nope"
	res := rowcheck.Validate(groupRules, row, 7)

	assert.Len(t, res.Errors, 3)
}

func TestValidateEmailColumn(t *testing.T) {
	rules := rowcheck.Rules{
		Required: []string{"name"},
		Email:    []string{"contact"},
	}
	row := map[string]string{"name": "X", "contact": "not-an-email"}
	res := rowcheck.Validate(rules, row, 2)

	require.False(t, res.Valid())
	assert.Contains(t, res.Errors[0].Message, "not-an-email")
}

func TestParseMembers(t *testing.T) {
	members, errs := rowcheck.ParseMembers(
		"Maria Silva (maria@example.org), João Souza (joao@example.org)")
	require.Empty(t, errs)
	require.Len(t, members, 2)
	assert.Equal(t, "Maria Silva", members[0].Name)
	assert.Equal(t, "maria@example.org", members[0].Email)
	assert.Equal(t, "João Souza", members[1].Name)
}

func TestParseMembersNameOnly(t *testing.T) {
	members, errs := rowcheck.ParseMembers("Maria Silva")
	require.Empty(t, errs)
	require.Len(t, members, 1)
	assert.Equal(t, "Maria Silva", members[0].Name)
	assert.Empty(t, members[0].Email)
}

func TestParseMembersMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid email", "Maria Silva (not-an-email)"},
		{"missing name", "(maria@example.org)"},
		{"stray paren", "Maria (Silva"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members, errs := rowcheck.ParseMembers(tt.input)
			assert.Empty(t, members)
			require.Len(t, errs, 1)
		})
	}
}

// A bad fragment never hides its well-formed neighbors.
func TestParseMembersPartial(t *testing.T) {
	members, errs := rowcheck.ParseMembers(
		"Maria Silva (maria@example.org), (joao@example.org)")
	require.Len(t, errs, 1)
	require.Len(t, members, 1)
	assert.Equal(t, "Maria Silva", members[0].Name)
}
