package inspect

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"
)

// Class is how a character code is displayed.
type Class int

const (
	Printable  Class = iota // Shown as its glyph.
	Control                 // Shown as the label "Control".
	Whitespace              // Shown as the label "Whitespace".
)

func (c Class) String() string {
	switch c {
	case Printable:
		return "Printable"
	case Control:
		return "Control"
	case Whitespace:
		return "Whitespace"
	}
	return "Unknown"
}

// Classify interprets code as a Unicode scalar value. Codes that are not
// valid scalar values (negative, surrogates, beyond U+10FFFF) cannot be
// shown as a glyph and count as Control.
func Classify(code int) Class {
	if code < 0 || code > unicode.MaxRune || !utf8.ValidRune(rune(code)) {
		return Control
	}
	r := rune(code)
	switch {
	case unicode.IsControl(r):
		return Control
	case unicode.IsSpace(r):
		return Whitespace
	}
	return Printable
}

// Display returns the text of the "Character:" line for code.
func Display(code int) string {
	if c := Classify(code); c != Printable {
		return c.String()
	}
	return string(rune(code))
}

// Name returns the Unicode name of code, or "" when it has none. Range
// labels such as "<control>" or "<Private Use>" are not names.
func Name(code int) string {
	if code < 0 || code > unicode.MaxRune || !utf8.ValidRune(rune(code)) {
		return ""
	}
	name := runenames.Name(rune(code))
	if strings.HasPrefix(name, "<") {
		return ""
	}
	return name
}
