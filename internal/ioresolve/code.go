package ioresolve

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/onestep/osimport/pkg/schema"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// maxCodeLen bounds the derived part of a campus code. Collisions get a
// numeric suffix on top.
const maxCodeLen = 3

var deaccent = transform.Chain(
	norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC,
)

// deriveCode turns a campus name into its code base: uppercased,
// diacritics and non-alphanumeric characters stripped, truncated.
// "Vitória" yields "VIT", "São Mateus" yields "SAO".
func deriveCode(name string) string {
	s, _, err := transform.String(deaccent, name)
	if err != nil {
		s = name
	}

	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == maxCodeLen {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "X"
	}
	return b.String()
}

// freeCode finds an unused campus code: the derived base, then the base
// with 2, 3, ... appended until a free one turns up.
func freeCode(tx *gorm.DB, name string) (string, error) {
	base := deriveCode(name)
	for i := 1; ; i++ {
		code := base
		if i > 1 {
			code = fmt.Sprintf("%s%d", base, i)
		}
		var n int64
		err := tx.Model(&schema.Campus{}).
			Where("code = ?", code).Count(&n).Error
		if err != nil {
			return "", err
		}
		if n == 0 {
			return code, nil
		}
	}
}
