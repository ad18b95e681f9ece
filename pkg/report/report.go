// Package report accumulates per-row import outcomes.
//
// The Report is purely additive and does no I/O; rendering the summary
// to a console or HTTP response is the caller's concern. It is the sole
// surface the presentation layer consumes.
package report

// Status is the terminal state of one processed row.
type Status string

const (
	// Succeeded means the primary record was created and its
	// relationships assigned.
	Succeeded Status = "succeeded"

	// Skipped means the primary record already existed; an expected,
	// benign outcome on re-import, deliberately distinct from Failed.
	Skipped Status = "skipped"

	// Failed means the row was rejected and all of its writes rolled
	// back.
	Failed Status = "failed"
)

// Outcome is the recorded result for one input row.
type Outcome struct {
	Row     int
	Status  Status
	Message string
}

// RowError locates one failed row for the user.
type RowError struct {
	Row     int
	Message string
}

// Summary aggregates the counts of one import run.
type Summary struct {
	Total     int
	Succeeded int
	Skipped   int
	Failed    int
}

// Report accumulates outcomes in input row order.
// It is not safe for concurrent use; the pipeline processes rows on a
// single goroutine.
type Report struct {
	outcomes []Outcome
}

// New creates an empty Report.
func New() *Report {
	return &Report{}
}

// Add records the outcome of one row.
func (r *Report) Add(row int, status Status, message string) {
	r.outcomes = append(r.outcomes, Outcome{
		Row:     row,
		Status:  status,
		Message: message,
	})
}

// Summary returns the aggregate counts of all recorded outcomes.
func (r *Report) Summary() Summary {
	s := Summary{Total: len(r.outcomes)}
	for _, o := range r.outcomes {
		switch o.Status {
		case Succeeded:
			s.Succeeded++
		case Skipped:
			s.Skipped++
		case Failed:
			s.Failed++
		}
	}
	return s
}

// Errors returns the failed rows in input order.
func (r *Report) Errors() []RowError {
	var res []RowError
	for _, o := range r.outcomes {
		if o.Status == Failed {
			res = append(res, RowError{Row: o.Row, Message: o.Message})
		}
	}
	return res
}

// Outcomes returns a copy of all recorded outcomes in input order.
func (r *Report) Outcomes() []Outcome {
	res := make([]Outcome, len(r.outcomes))
	copy(res, r.outcomes)
	return res
}
