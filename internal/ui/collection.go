package ui

import (
	"fmt"
	"strings"

	apperrors "dropdown/internal/errors"
)

// Collection is the ordered, read-only set of options a DropdownInput
// filters. Filtering, navigation and rendering only ever go through Len/At.
type Collection interface {
	Len() int
	At(i int) string
}

// Counted is the alternate collection protocol exposing Count/Get instead
// of Len/At. Use FromCounted to adapt it.
type Counted interface {
	Count() int
	Get(i int) string
}

// Strings is a plain slice of options.
type Strings []string

// Len implements Collection.
func (s Strings) Len() int { return len(s) }

// At implements Collection.
func (s Strings) At(i int) string { return s[i] }

type counted struct{ c Counted }

func (a counted) Len() int        { return a.c.Count() }
func (a counted) At(i int) string { return a.c.Get(i) }

// FromCounted adapts a Counted collection to Collection.
func FromCounted(c Counted) Collection {
	return counted{c: c}
}

// Collect normalizes a dynamically typed option set. It accepts []string,
// Collection and Counted values; anything else is rejected.
func Collect(v any) (Collection, error) {
	switch c := v.(type) {
	case nil:
		return Strings(nil), nil
	case []string:
		return Strings(c), nil
	case Collection:
		return c, nil
	case Counted:
		return FromCounted(c), nil
	}
	return nil, apperrors.New(apperrors.CodeInvalidOptions,
		fmt.Sprintf("options of type %T are neither indexed nor counted", v), nil)
}

// indexOfFold returns the position of the first option equal to s under
// Unicode case folding, or -1.
func indexOfFold(c Collection, s string) int {
	if c == nil {
		return -1
	}
	for i := 0; i < c.Len(); i++ {
		if strings.EqualFold(c.At(i), s) {
			return i
		}
	}
	return -1
}
