package rowcheck

import (
	"fmt"
	"regexp"
	"strings"
)

// Member is one parsed `Name (email)` entry. Email may be empty when the
// entry carries only a name; the person resolver then falls back to
// name-only matching.
type Member struct {
	Name  string
	Email string
}

// memberRx captures an optional trailing parenthesized email.
var memberRx = regexp.MustCompile(`^(.*?)\s*\(([^()]*)\)$`)

// ParseMembers parses a comma-separated list of `Name (email)` entries.
// A malformed entry produces an error message naming the offending
// fragment instead of aborting the parse; well-formed entries around it
// are still returned.
func ParseMembers(raw string) ([]Member, []string) {
	var members []Member
	var errs []string

	for _, frag := range strings.Split(raw, ",") {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}

		m := memberRx.FindStringSubmatch(frag)
		if m == nil {
			// No parenthesized part: the whole fragment is a name,
			// unless it carries stray parentheses.
			if strings.ContainsAny(frag, "()") {
				errs = append(errs,
					fmt.Sprintf("malformed member entry %q", frag))
				continue
			}
			members = append(members, Member{Name: frag})
			continue
		}

		name := strings.TrimSpace(m[1])
		email := strings.TrimSpace(m[2])

		if name == "" {
			errs = append(errs,
				fmt.Sprintf("member entry %q has no name", frag))
			continue
		}
		if email != "" {
			if err := validate.Var(email, "email"); err != nil {
				errs = append(errs, fmt.Sprintf(
					"member entry %q has invalid email %q", frag, email))
				continue
			}
		}
		members = append(members, Member{Name: name, Email: email})
	}

	return members, errs
}
