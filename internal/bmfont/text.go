package bmfont

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// decodeText parses the line-oriented encoding:
//
//	info face="Arial" size=32 bold=0 ...
//	common lineHeight=32 base=26 ...
//	page id=0 file="arial_0.png"
//	chars count=95
//	char id=32 x=0 y=0 ...
//	kernings count=1
//	kerning first=65 second=86 amount=-2
//
// Unknown tags and keys are ignored.
func decodeText(data []byte) (*Font, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	var b fontBuilder
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		tag, attrs, err := splitTextLine(sc.Text())
		if err != nil {
			return nil, &SyntaxError{Line: lineNo, Msg: err.Error()}
		}
		if tag == "" {
			continue
		}
		if err := b.element(tag, lineNo, attrs); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &b.font, nil
}

// splitTextLine splits one line into its tag and key=value attributes.
// Values may be double-quoted to contain spaces.
func splitTextLine(line string) (string, map[string]string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil, nil
	}
	tag, rest, _ := strings.Cut(line, " ")
	attrs := make(map[string]string)
	for {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			return tag, attrs, nil
		}
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 {
			return "", nil, fmt.Errorf("expected key=value, got %q", rest)
		}
		key := rest[:eq]
		if strings.ContainsAny(key, " \t\"") {
			return "", nil, fmt.Errorf("malformed key %q", key)
		}
		rest = rest[eq+1:]
		var value string
		if strings.HasPrefix(rest, `"`) {
			end := strings.IndexByte(rest[1:], '"')
			if end < 0 {
				return "", nil, fmt.Errorf("unterminated quote in %s", key)
			}
			value = rest[1 : end+1]
			rest = rest[end+2:]
		} else {
			value, rest, _ = strings.Cut(rest, " ")
		}
		attrs[key] = value
	}
}

func encodeText(w io.Writer, f *Font) error {
	var buf bytes.Buffer
	line := func(tag string, attrs []attr) error {
		buf.WriteString(tag)
		for _, a := range attrs {
			buf.WriteByte(' ')
			buf.WriteString(a.key)
			buf.WriteByte('=')
			if !a.quoted {
				buf.WriteString(a.value)
				continue
			}
			if strings.ContainsAny(a.value, "\"\r\n") {
				return fmt.Errorf("%s %s: value %q cannot be written in text format", tag, a.key, a.value)
			}
			buf.WriteByte('"')
			buf.WriteString(a.value)
			buf.WriteByte('"')
		}
		buf.WriteByte('\n')
		return nil
	}

	if f.Info != nil {
		if err := line("info", infoAttrs(f.Info)); err != nil {
			return err
		}
	}
	if f.Common != nil {
		if err := line("common", commonAttrs(f.Common, f.Pages.Len())); err != nil {
			return err
		}
	}
	for id, file := range f.Pages.All() {
		if err := line("page", pageAttrs(id, file)); err != nil {
			return err
		}
	}
	if f.Characters != nil {
		if err := line("chars", countAttrs(f.Characters.Len())); err != nil {
			return err
		}
		for id, c := range f.Characters.All() {
			if err := line("char", charAttrs(id, c)); err != nil {
				return err
			}
		}
	}
	if f.KerningPairs != nil {
		if err := line("kernings", countAttrs(f.KerningPairs.Len())); err != nil {
			return err
		}
		for k, amount := range f.KerningPairs.All() {
			if err := line("kerning", kerningAttrs(k, amount)); err != nil {
				return err
			}
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}
