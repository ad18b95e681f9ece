package report_test

import (
	"testing"

	"github.com/onestep/osimport/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyReport(t *testing.T) {
	r := report.New()
	assert.Equal(t, report.Summary{}, r.Summary())
	assert.Empty(t, r.Errors())
	assert.Empty(t, r.Outcomes())
}

func TestSummaryCounts(t *testing.T) {
	r := report.New()
	r.Add(2, report.Succeeded, "")
	r.Add(3, report.Failed, "row 3: bad email")
	r.Add(4, report.Succeeded, "")
	r.Add(5, report.Skipped, "duplicate")
	r.Add(6, report.Failed, "row 6: missing campus")

	assert.Equal(t, report.Summary{
		Total:     5,
		Succeeded: 2,
		Skipped:   1,
		Failed:    2,
	}, r.Summary())
}

func TestErrorsKeepRowOrder(t *testing.T) {
	r := report.New()
	r.Add(2, report.Failed, "first")
	r.Add(3, report.Succeeded, "")
	r.Add(4, report.Failed, "second")

	errs := r.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, 2, errs[0].Row)
	assert.Equal(t, "first", errs[0].Message)
	assert.Equal(t, 4, errs[1].Row)
}

func TestOutcomesCopy(t *testing.T) {
	r := report.New()
	r.Add(2, report.Succeeded, "")

	out := r.Outcomes()
	out[0].Message = "mutated"

	assert.Empty(t, r.Outcomes()[0].Message)
}
