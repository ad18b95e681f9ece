package ioresolve

import "strings"

// Normalize reduces a raw field value to its identity form: outer
// whitespace trimmed, internal whitespace runs collapsed to a single
// space. Casing is untouched; lookups fold case separately, and only
// person names get Title Case on top of this.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
