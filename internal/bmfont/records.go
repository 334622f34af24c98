package bmfont

import (
	"fmt"
	"strconv"
	"strings"
)

// The text and XML encodings share one element vocabulary (info, common,
// page, char, kerning, ...) with string attributes. This file converts
// between those attributes and the Font model for both of them.

// SyntaxError reports a malformed element in a text or XML document.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// attr is one key/value pair. quoted marks values the text encoding wraps in
// double quotes.
type attr struct {
	key    string
	value  string
	quoted bool
}

// attrReader reads typed values out of an element's attributes. The first
// conversion error sticks; later reads return zero values.
type attrReader struct {
	attrs map[string]string
	line  int
	err   error
}

func (r *attrReader) fail(format string, args ...interface{}) {
	if r.err == nil {
		r.err = &SyntaxError{Line: r.line, Msg: fmt.Sprintf(format, args...)}
	}
}

func (r *attrReader) str(key string) string {
	return r.attrs[key]
}

func (r *attrReader) int(key string) int {
	s, ok := r.attrs[key]
	if !ok || r.err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		r.fail("%s: invalid integer %q", key, s)
		return 0
	}
	return n
}

func (r *attrReader) bool(key string) bool {
	return r.int(key) != 0
}

// ints reads a comma-separated list of exactly n integers. A missing key
// yields n zeros.
func (r *attrReader) ints(key string, n int) []int {
	out := make([]int, n)
	s, ok := r.attrs[key]
	if !ok || r.err != nil {
		return out
	}
	parts := strings.Split(s, ",")
	if len(parts) != n {
		r.fail("%s: want %d comma-separated values, got %q", key, n, s)
		return out
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			r.fail("%s: invalid integer %q", key, p)
			return out
		}
		out[i] = v
	}
	return out
}

// fontBuilder assembles a Font from a sequence of elements.
type fontBuilder struct {
	font Font
}

func (b *fontBuilder) element(tag string, line int, attrs map[string]string) error {
	r := &attrReader{attrs: attrs, line: line}
	switch tag {
	case "info":
		info := &Info{
			Face:          r.str("face"),
			FontSize:      r.int("size"),
			Bold:          r.bool("bold"),
			Italic:        r.bool("italic"),
			Unicode:       r.bool("unicode"),
			StretchHeight: r.int("stretchH"),
			Smooth:        r.bool("smooth"),
			SuperSampling: r.int("aa"),
			Outline:       r.int("outline"),
			FixedHeight:   r.bool("fixedHeight"),
		}
		cs, err := ParseCharSet(r.str("charset"))
		if err != nil {
			r.fail("%v", err)
		}
		info.CharSet = cs
		pad := r.ints("padding", 4)
		info.PaddingUp, info.PaddingRight, info.PaddingDown, info.PaddingLeft = pad[0], pad[1], pad[2], pad[3]
		sp := r.ints("spacing", 2)
		info.SpacingHorizontal, info.SpacingVertical = sp[0], sp[1]
		b.font.Info = info
	case "common":
		b.font.Common = &Common{
			LineHeight:   r.int("lineHeight"),
			Base:         r.int("base"),
			ScaleWidth:   r.int("scaleW"),
			ScaleHeight:  r.int("scaleH"),
			Packed:       r.bool("packed"),
			AlphaChannel: ChannelData(r.int("alphaChnl")),
			RedChannel:   ChannelData(r.int("redChnl")),
			GreenChannel: ChannelData(r.int("greenChnl")),
			BlueChannel:  ChannelData(r.int("blueChnl")),
		}
	case "pages":
		b.pages()
	case "page":
		id, file := r.int("id"), r.str("file")
		if r.err == nil {
			r.err = put(b.pages(), "page id", id, file)
		}
	case "chars":
		b.chars()
	case "char":
		id := r.int("id")
		c := Character{
			X:        r.int("x"),
			Y:        r.int("y"),
			Width:    r.int("width"),
			Height:   r.int("height"),
			XOffset:  r.int("xoffset"),
			YOffset:  r.int("yoffset"),
			XAdvance: r.int("xadvance"),
			Page:     r.int("page"),
			Channel:  r.int("chnl"),
		}
		if r.err == nil {
			r.err = put(b.chars(), "character id", id, c)
		}
	case "kernings":
		b.kernings()
	case "kerning":
		k := KerningPair{First: r.int("first"), Second: r.int("second")}
		amount := r.int("amount")
		if r.err == nil {
			r.err = put(b.kernings(), "kerning pair", k, amount)
		}
	}
	return r.err
}

func (b *fontBuilder) pages() *Table[int, string] {
	if b.font.Pages == nil {
		b.font.Pages = NewTable[int, string]()
	}
	return b.font.Pages
}

func (b *fontBuilder) chars() *Table[int, Character] {
	if b.font.Characters == nil {
		b.font.Characters = NewTable[int, Character]()
	}
	return b.font.Characters
}

func (b *fontBuilder) kernings() *Table[KerningPair, int] {
	if b.font.KerningPairs == nil {
		b.font.KerningPairs = NewTable[KerningPair, int]()
	}
	return b.font.KerningPairs
}

// --- encoding side ---

func itoa(n int) string { return strconv.Itoa(n) }

func btoa(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func joinInts(ns ...int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func infoAttrs(i *Info) []attr {
	charset := ""
	if !i.Unicode {
		charset = i.CharSet.String()
	}
	return []attr{
		{"face", i.Face, true},
		{"size", itoa(i.FontSize), false},
		{"bold", btoa(i.Bold), false},
		{"italic", btoa(i.Italic), false},
		{"charset", charset, true},
		{"unicode", btoa(i.Unicode), false},
		{"stretchH", itoa(i.StretchHeight), false},
		{"smooth", btoa(i.Smooth), false},
		{"aa", itoa(i.SuperSampling), false},
		{"padding", joinInts(i.PaddingUp, i.PaddingRight, i.PaddingDown, i.PaddingLeft), false},
		{"spacing", joinInts(i.SpacingHorizontal, i.SpacingVertical), false},
		{"outline", itoa(i.Outline), false},
		{"fixedHeight", btoa(i.FixedHeight), false},
	}
}

func commonAttrs(c *Common, pages int) []attr {
	return []attr{
		{"lineHeight", itoa(c.LineHeight), false},
		{"base", itoa(c.Base), false},
		{"scaleW", itoa(c.ScaleWidth), false},
		{"scaleH", itoa(c.ScaleHeight), false},
		{"pages", itoa(pages), false},
		{"packed", btoa(c.Packed), false},
		{"alphaChnl", itoa(int(c.AlphaChannel)), false},
		{"redChnl", itoa(int(c.RedChannel)), false},
		{"greenChnl", itoa(int(c.GreenChannel)), false},
		{"blueChnl", itoa(int(c.BlueChannel)), false},
	}
}

func pageAttrs(id int, file string) []attr {
	return []attr{
		{"id", itoa(id), false},
		{"file", file, true},
	}
}

func charAttrs(id int, c Character) []attr {
	return []attr{
		{"id", itoa(id), false},
		{"x", itoa(c.X), false},
		{"y", itoa(c.Y), false},
		{"width", itoa(c.Width), false},
		{"height", itoa(c.Height), false},
		{"xoffset", itoa(c.XOffset), false},
		{"yoffset", itoa(c.YOffset), false},
		{"xadvance", itoa(c.XAdvance), false},
		{"page", itoa(c.Page), false},
		{"chnl", itoa(c.Channel), false},
	}
}

func kerningAttrs(k KerningPair, amount int) []attr {
	return []attr{
		{"first", itoa(k.First), false},
		{"second", itoa(k.Second), false},
		{"amount", itoa(amount), false},
	}
}

func countAttrs(n int) []attr {
	return []attr{{"count", itoa(n), false}}
}
