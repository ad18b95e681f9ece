package rowcheck

import (
	"fmt"
	"time"
)

// DateLayouts are the accepted date layouts, tried strictly in order.
// Day-month-2-digit-year is the primary layout of the upstream data
// producers; ISO and slash variants are fallbacks. The fixed order makes
// ambiguous inputs deterministic: "01-02-03" parses with the first
// layout as 1 February 2003, never as 3 February 2001.
//
// Two-digit years follow Go's stdlib rule for the "06" layout and map
// into 1969–2068.
var DateLayouts = []string{
	"02-01-06",   // day-month-2-digit-year (primary)
	"2006-01-02", // ISO
	"02/01/2006",
	"02/01/06",
	"02-01-2006",
	"2006/01/02",
}

// ParseDate parses s under the first matching layout of DateLayouts.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
