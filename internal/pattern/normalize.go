package pattern

import (
	"strings"
	"unicode"

	"github.com/Veraticus/aduana/internal/common"
)

// Normalize lowercases s, strips diacritics, turns every non-alphanumeric rune
// into a space and collapses runs of whitespace.
func Normalize(s string) string {
	folded := common.FoldText(s)

	var b strings.Builder
	b.Grow(len(folded))
	space := true
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}
