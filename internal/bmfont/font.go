package bmfont

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrOddKerningList is returned by [ParseKerningPairs] when the flat list of
// character codes cannot be split into (first, second) pairs.
var ErrOddKerningList = errors.New("kerning pair list must contain an even number of values")

// Font is one bitmap font document. Any block may be nil when the source
// document did not contain it.
type Font struct {
	Info         *Info
	Common       *Common
	Pages        *Table[int, string]      // page ID → texture file name
	Characters   *Table[int, Character]   // character code → layout
	KerningPairs *Table[KerningPair, int] // pair → horizontal adjustment
}

// Info holds how the font was generated.
type Info struct {
	Face              string
	FontSize          int // Negative when the size matches the cell height.
	Bold              bool
	Italic            bool
	CharSet           CharSet
	Unicode           bool
	StretchHeight     int // Percent.
	Smooth            bool
	SuperSampling     int // The "aa" value; 1 means none.
	PaddingUp         int
	PaddingRight      int
	PaddingDown       int
	PaddingLeft       int
	SpacingHorizontal int
	SpacingVertical   int
	Outline           int
	FixedHeight       bool
}

// Common holds information shared by all characters.
type Common struct {
	LineHeight   int
	Base         int
	ScaleWidth   int
	ScaleHeight  int
	Packed       bool
	AlphaChannel ChannelData
	RedChannel   ChannelData
	GreenChannel ChannelData
	BlueChannel  ChannelData
}

// Character describes where a glyph sits in its page texture and how it is
// placed when drawing. The character code is the key in [Font.Characters].
type Character struct {
	X        int
	Y        int
	Width    int
	Height   int
	XOffset  int
	YOffset  int
	XAdvance int
	Page     int
	Channel  int // Bit mask: 1 blue, 2 green, 4 red, 8 alpha, 15 all.
}

// KerningPair identifies two adjacent characters. Order matters:
// (A, B) and (B, A) are different pairs.
type KerningPair struct {
	First  int
	Second int
}

func (k KerningPair) String() string {
	return fmt.Sprintf("(%d, %d)", k.First, k.Second)
}

// ParseKerningPairs groups a flat list of character codes into consecutive
// (first, second) pairs.
func ParseKerningPairs(flat []int) ([]KerningPair, error) {
	if len(flat)%2 != 0 {
		return nil, ErrOddKerningList
	}
	pairs := make([]KerningPair, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		pairs = append(pairs, KerningPair{First: flat[i], Second: flat[i+1]})
	}
	return pairs, nil
}

// ChannelData says what a texture channel of a page holds.
type ChannelData int

const (
	ChannelGlyph        ChannelData = 0
	ChannelOutline      ChannelData = 1
	ChannelGlyphOutline ChannelData = 2
	ChannelZero         ChannelData = 3
	ChannelOne          ChannelData = 4
)

func (c ChannelData) String() string {
	switch c {
	case ChannelGlyph:
		return "Glyph"
	case ChannelOutline:
		return "Outline"
	case ChannelGlyphOutline:
		return "GlyphAndOutline"
	case ChannelZero:
		return "Zero"
	case ChannelOne:
		return "One"
	}
	return strconv.Itoa(int(c))
}

// CharSet is the Windows character set of a non-Unicode font.
type CharSet int

var charSetNames = map[CharSet]string{
	0:   "ANSI",
	1:   "DEFAULT",
	2:   "SYMBOL",
	77:  "MAC",
	128: "SHIFTJIS",
	129: "HANGUL",
	130: "JOHAB",
	134: "GB2312",
	136: "CHINESEBIG5",
	161: "GREEK",
	162: "TURKISH",
	163: "VIETNAMESE",
	177: "HEBREW",
	178: "ARABIC",
	186: "BALTIC",
	204: "RUSSIAN",
	222: "THAI",
	238: "EASTEUROPE",
	255: "OEM",
}

func (c CharSet) String() string {
	if name, ok := charSetNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}

// ParseCharSet accepts a character set name (case-insensitive), a decimal
// number, or the empty string (ANSI).
func ParseCharSet(s string) (CharSet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	for cs, name := range charSetNames {
		if strings.EqualFold(name, s) {
			return cs, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return 0, fmt.Errorf("unknown charset %q", s)
	}
	return CharSet(n), nil
}
