package core

import (
	"regexp"
	"unicode"
)

// spaceClass matches one whitespace rune in the broad Unicode sense: the
// ASCII blanks plus \v, NEL, the information separators and every Z rune.
const spaceClass = `[\s\v\x{85}\x{1c}-\x{1f}\p{Z}]`

var filenamePattern = regexp.MustCompile(`^(\p{Nd}+)` + spaceClass + `+(.*)`)

// ParseFilename splits a note's base name (without extension) into its
// Zettelkasten ID and title. The title is taken verbatim after the first
// whitespace run following the leading digits.
func ParseFilename(stem string) (id, title string, err error) {
	m := filenamePattern.FindStringSubmatch(stem)
	if m == nil {
		return "", "", &NamingError{Name: stem}
	}
	return m[1], m[2], nil
}

// isSpace reports whether r is whitespace as matched by spaceClass.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.In(r, unicode.Z) || (r >= 0x1c && r <= 0x1f)
}
