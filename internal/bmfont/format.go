package bmfont

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Format is an on-disk encoding of a font document.
type Format string

const (
	FormatBinary Format = "binary" // AngelCode binary, version 3.
	FormatText   Format = "text"   // Line-oriented key=value text.
	FormatXML    Format = "xml"    // XML with <font> root.
)

var (
	// ErrUnknownFormat is returned when the leading bytes of a document match
	// none of the supported encodings.
	ErrUnknownFormat = errors.New("unrecognized font format")
	// ErrUnsupportedFormat is returned when asked to write a format that is
	// not one of the three supported encodings.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// ParseFormat maps a format name to a Format, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary":
		return FormatBinary, nil
	case "text":
		return FormatText, nil
	case "xml":
		return FormatXML, nil
	}
	return "", fmt.Errorf("invalid format %q (use 'binary', 'text' or 'xml')", s)
}

// Valid reports whether f is one of the supported encodings.
func (f Format) Valid() bool {
	switch f {
	case FormatBinary, FormatText, FormatXML:
		return true
	}
	return false
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectFormat guesses the encoding of a document from its first bytes.
func DetectFormat(head []byte) (Format, error) {
	if bytes.HasPrefix(head, binaryMagic) {
		return FormatBinary, nil
	}
	head = bytes.TrimPrefix(head, utf8BOM)
	head = bytes.TrimLeft(head, " \t\r\n")
	switch {
	case bytes.HasPrefix(head, []byte("<")):
		return FormatXML, nil
	case textTags[string(firstWord(head))]:
		return FormatText, nil
	}
	return "", ErrUnknownFormat
}

// textTags are the line tags a text descriptor can start with. Blocks absent
// from the document are not written, so any of them may come first.
var textTags = map[string]bool{
	"info": true, "common": true, "page": true,
	"chars": true, "char": true, "kernings": true, "kerning": true,
}

func firstWord(b []byte) []byte {
	if i := bytes.IndexAny(b, " \t\r\n"); i >= 0 {
		return b[:i]
	}
	return b
}
