// Package acronym derives compact identifiers from human-readable names.
//
// The generator is deterministic and side-effect free; collision handling
// of the composed identifier is the caller's responsibility.
package acronym

import (
	"strings"
	"unicode"
)

// maxLetters caps the acronym portion of the identifier.
const maxLetters = 10

// stopWords are articles, prepositions and conjunctions dropped from
// names before taking initials. The list is bilingual (Portuguese and
// English) and fixed; no further language handling is attempted.
var stopWords = map[string]struct{}{
	// Portuguese
	"a": {}, "o": {}, "as": {}, "os": {},
	"um": {}, "uma": {},
	"de": {}, "da": {}, "do": {}, "das": {}, "dos": {},
	"em": {}, "na": {}, "no": {}, "nas": {}, "nos": {},
	"e": {}, "ou": {}, "para": {}, "por": {}, "com": {},
	// English
	"the": {}, "an": {}, "of": {}, "and": {}, "or": {},
	"in": {}, "on": {}, "at": {}, "for": {}, "to": {}, "with": {},
}

// Generate derives a short identifier from a full name and a campus
// code: the uppercase initials of the significant words of the name,
// a hyphen, and the first three characters of the campus code.
//
//	Generate("Ambiente Construído", "COL") == "AC-COL"
func Generate(fullName, campusCode string) string {
	letters := initials(fullName)
	suffix := codePrefix(campusCode)
	if suffix == "" {
		return letters
	}
	return letters + "-" + suffix
}

// initials returns the acronym portion: one uppercase letter per
// significant word. A result shorter than 2 letters falls back to the
// first letters of the single significant word.
func initials(fullName string) string {
	tokens := strings.Fields(fullName)

	var significant []string
	for _, tok := range tokens {
		if _, ok := stopWords[strings.ToLower(tok)]; ok {
			continue
		}
		significant = append(significant, tok)
	}
	// A name made entirely of stop words still gets an identifier.
	if len(significant) == 0 {
		significant = tokens
	}
	if len(significant) == 0 {
		return ""
	}

	var b strings.Builder
	var n int
	for _, tok := range significant {
		for _, r := range tok {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
		n++
		if n >= maxLetters {
			break
		}
	}

	res := b.String()
	if len([]rune(res)) >= 2 {
		return res
	}
	// Single significant word: use its leading characters instead.
	return truncate(strings.ToUpper(significant[0]), 3)
}

// codePrefix returns the first three characters of the campus code.
func codePrefix(code string) string {
	return truncate(strings.ToUpper(strings.TrimSpace(code)), 3)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
