package model

import (
	"strings"
	"unicode"
)

// TitleKey reduces a film title to a normalized join key: case-folded,
// punctuation stripped, runs of whitespace collapsed to single spaces.
// Titles from the ranking source and the metadata source disagree on
// casing and punctuation often enough that joining on the raw string
// silently mismatches; every cross-source join in this codebase goes
// through this key while display titles are kept verbatim.
func TitleKey(title string) string {
	var b strings.Builder
	space := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			space = true
		default:
			// punctuation separates words the same way whitespace does,
			// so "Spider-Man" and "Spider Man" collapse to one key
			space = true
		}
	}
	return b.String()
}
