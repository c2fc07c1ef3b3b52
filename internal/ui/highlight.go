package ui

import "unicode"

// Segments is an option label split around the typed text.
type Segments struct {
	Before string
	Match  string
	After  string
}

// Highlight splits label at the first case-insensitive occurrence of text.
// When text is empty or absent (possible with custom filters) the whole
// label is returned in Before.
func Highlight(label, text string) Segments {
	if text == "" {
		return Segments{Before: label}
	}
	l, q := []rune(label), []rune(text)
	for i := 0; i+len(q) <= len(l); i++ {
		if runesEqualFold(l[i:i+len(q)], q) {
			return Segments{
				Before: string(l[:i]),
				Match:  string(l[i : i+len(q)]),
				After:  string(l[i+len(q):]),
			}
		}
	}
	return Segments{Before: label}
}

func runesEqualFold(a, b []rune) bool {
	for i := range a {
		if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
			return false
		}
	}
	return true
}
