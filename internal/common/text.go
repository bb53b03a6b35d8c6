package common

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics decomposes s (NFD) and drops combining marks, so "Médico" becomes "Medico".
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// FoldText lowercases s and strips diacritics for case- and accent-insensitive matching.
func FoldText(s string) string {
	return strings.ToLower(StripDiacritics(s))
}
