package bmfont

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Binary layout (little endian): "BMF", version byte 3, then blocks of
// [type uint8][size uint32][payload]. Block types: 1 info, 2 common,
// 3 pages, 4 chars, 5 kerning pairs.

var binaryMagic = []byte{'B', 'M', 'F'}

const binaryVersion = 3

const (
	blockInfo     = 1
	blockCommon   = 2
	blockPages    = 3
	blockChars    = 4
	blockKernings = 5
)

const (
	infoFixedSize = 14
	commonSize    = 15
	charSize      = 20
	kerningSize   = 10
)

// Bit positions in the info and common bit fields; bit 0 is the high bit.
const (
	infoSmooth      = 1 << 7
	infoUnicode     = 1 << 6
	infoItalic      = 1 << 5
	infoBold        = 1 << 4
	infoFixedHeight = 1 << 3
	commonPacked    = 1 << 7
)

var errTruncated = errors.New("truncated binary font")

func decodeBinary(data []byte) (*Font, error) {
	if len(data) < 4 || !bytes.HasPrefix(data, binaryMagic) {
		return nil, ErrUnknownFormat
	}
	if v := data[3]; v != binaryVersion {
		return nil, fmt.Errorf("unsupported binary version %d (want %d)", v, binaryVersion)
	}
	f := &Font{}
	rest := data[4:]
	for len(rest) > 0 {
		if len(rest) < 5 {
			return nil, errTruncated
		}
		kind := rest[0]
		size := binary.LittleEndian.Uint32(rest[1:5])
		rest = rest[5:]
		if uint64(size) > uint64(len(rest)) {
			return nil, fmt.Errorf("block %d: %w", kind, errTruncated)
		}
		payload := rest[:size]
		rest = rest[size:]

		var err error
		switch kind {
		case blockInfo:
			f.Info, err = decodeInfoBlock(payload)
		case blockCommon:
			f.Common, err = decodeCommonBlock(payload)
		case blockPages:
			f.Pages, err = decodePagesBlock(payload)
		case blockChars:
			f.Characters, err = decodeCharsBlock(payload)
		case blockKernings:
			f.KerningPairs, err = decodeKerningsBlock(payload)
		default:
			err = fmt.Errorf("unknown block type %d", kind)
		}
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}

func decodeInfoBlock(p []byte) (*Info, error) {
	if len(p) < infoFixedSize {
		return nil, fmt.Errorf("info block: %w", errTruncated)
	}
	bits := p[2]
	info := &Info{
		FontSize:          int(int16(binary.LittleEndian.Uint16(p[0:2]))),
		Smooth:            bits&infoSmooth != 0,
		Unicode:           bits&infoUnicode != 0,
		Italic:            bits&infoItalic != 0,
		Bold:              bits&infoBold != 0,
		FixedHeight:       bits&infoFixedHeight != 0,
		CharSet:           CharSet(p[3]),
		StretchHeight:     int(binary.LittleEndian.Uint16(p[4:6])),
		SuperSampling:     int(p[6]),
		PaddingUp:         int(p[7]),
		PaddingRight:      int(p[8]),
		PaddingDown:       int(p[9]),
		PaddingLeft:       int(p[10]),
		SpacingHorizontal: int(p[11]),
		SpacingVertical:   int(p[12]),
		Outline:           int(p[13]),
	}
	name := p[infoFixedSize:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	info.Face = string(name)
	return info, nil
}

func decodeCommonBlock(p []byte) (*Common, error) {
	if len(p) < commonSize {
		return nil, fmt.Errorf("common block: %w", errTruncated)
	}
	u16 := func(i int) int { return int(binary.LittleEndian.Uint16(p[i : i+2])) }
	return &Common{
		LineHeight:   u16(0),
		Base:         u16(2),
		ScaleWidth:   u16(4),
		ScaleHeight:  u16(6),
		Packed:       p[10]&commonPacked != 0,
		AlphaChannel: ChannelData(p[11]),
		RedChannel:   ChannelData(p[12]),
		GreenChannel: ChannelData(p[13]),
		BlueChannel:  ChannelData(p[14]),
	}, nil
}

// decodePagesBlock reads consecutive NUL-terminated file names; page IDs are
// their positions.
func decodePagesBlock(p []byte) (*Table[int, string], error) {
	pages := NewTable[int, string]()
	for id := 0; len(p) > 0; id++ {
		i := bytes.IndexByte(p, 0)
		if i < 0 {
			return nil, fmt.Errorf("pages block: unterminated name: %w", errTruncated)
		}
		pages.Put(id, string(p[:i]))
		p = p[i+1:]
	}
	return pages, nil
}

func decodeCharsBlock(p []byte) (*Table[int, Character], error) {
	if len(p)%charSize != 0 {
		return nil, fmt.Errorf("chars block: size %d is not a multiple of %d", len(p), charSize)
	}
	chars := NewTable[int, Character]()
	for ; len(p) > 0; p = p[charSize:] {
		u16 := func(i int) int { return int(binary.LittleEndian.Uint16(p[i : i+2])) }
		i16 := func(i int) int { return int(int16(binary.LittleEndian.Uint16(p[i : i+2]))) }
		id := int(binary.LittleEndian.Uint32(p[0:4]))
		c := Character{
			X:        u16(4),
			Y:        u16(6),
			Width:    u16(8),
			Height:   u16(10),
			XOffset:  i16(12),
			YOffset:  i16(14),
			XAdvance: i16(16),
			Page:     int(p[18]),
			Channel:  int(p[19]),
		}
		if err := put(chars, "character id", id, c); err != nil {
			return nil, err
		}
	}
	return chars, nil
}

func decodeKerningsBlock(p []byte) (*Table[KerningPair, int], error) {
	if len(p)%kerningSize != 0 {
		return nil, fmt.Errorf("kerning block: size %d is not a multiple of %d", len(p), kerningSize)
	}
	kernings := NewTable[KerningPair, int]()
	for ; len(p) > 0; p = p[kerningSize:] {
		k := KerningPair{
			First:  int(binary.LittleEndian.Uint32(p[0:4])),
			Second: int(binary.LittleEndian.Uint32(p[4:8])),
		}
		amount := int(int16(binary.LittleEndian.Uint16(p[8:10])))
		if err := put(kernings, "kerning pair", k, amount); err != nil {
			return nil, err
		}
	}
	return kernings, nil
}

// binWriter appends fixed-width fields and records the first value that does
// not fit its field.
type binWriter struct {
	buf bytes.Buffer
	err error
}

func (w *binWriter) check(field string, v int, lo, hi int64) bool {
	if int64(v) < lo || int64(v) > hi {
		if w.err == nil {
			w.err = fmt.Errorf("%s = %d does not fit the binary format (range %d..%d)", field, v, lo, hi)
		}
		return false
	}
	return true
}

func (w *binWriter) u8(field string, v int) {
	w.check(field, v, 0, 0xFF)
	w.buf.WriteByte(byte(v))
}

func (w *binWriter) u16(field string, v int) {
	w.check(field, v, 0, 0xFFFF)
	w.buf.Write(binary.LittleEndian.AppendUint16(nil, uint16(v)))
}

func (w *binWriter) i16(field string, v int) {
	w.check(field, v, -0x8000, 0x7FFF)
	w.buf.Write(binary.LittleEndian.AppendUint16(nil, uint16(int16(v))))
}

func (w *binWriter) u32(field string, v int) {
	w.check(field, v, 0, 0xFFFFFFFF)
	w.buf.Write(binary.LittleEndian.AppendUint32(nil, uint32(v)))
}

func (w *binWriter) cstring(field, s string) {
	if strings.IndexByte(s, 0) >= 0 && w.err == nil {
		w.err = fmt.Errorf("%s contains a NUL byte", field)
	}
	w.buf.WriteString(s)
	w.buf.WriteByte(0)
}

// block wraps the payload produced by body in a typed, sized block.
func (w *binWriter) block(kind byte, body func(*binWriter)) {
	var inner binWriter
	body(&inner)
	if inner.err != nil && w.err == nil {
		w.err = inner.err
	}
	w.buf.WriteByte(kind)
	w.buf.Write(binary.LittleEndian.AppendUint32(nil, uint32(inner.buf.Len())))
	w.buf.Write(inner.buf.Bytes())
}

func encodeBinary(out io.Writer, f *Font) error {
	w := &binWriter{}
	w.buf.Write(binaryMagic)
	w.buf.WriteByte(binaryVersion)

	if i := f.Info; i != nil {
		w.block(blockInfo, func(b *binWriter) {
			var bits int
			for _, flag := range []struct {
				set bool
				bit int
			}{
				{i.Smooth, infoSmooth},
				{i.Unicode, infoUnicode},
				{i.Italic, infoItalic},
				{i.Bold, infoBold},
				{i.FixedHeight, infoFixedHeight},
			} {
				if flag.set {
					bits |= flag.bit
				}
			}
			b.i16("info size", i.FontSize)
			b.u8("info bits", bits)
			b.u8("info charset", int(i.CharSet))
			b.u16("info stretchH", i.StretchHeight)
			b.u8("info aa", i.SuperSampling)
			b.u8("info padding up", i.PaddingUp)
			b.u8("info padding right", i.PaddingRight)
			b.u8("info padding down", i.PaddingDown)
			b.u8("info padding left", i.PaddingLeft)
			b.u8("info spacing horizontal", i.SpacingHorizontal)
			b.u8("info spacing vertical", i.SpacingVertical)
			b.u8("info outline", i.Outline)
			b.cstring("info face", i.Face)
		})
	}
	if c := f.Common; c != nil {
		w.block(blockCommon, func(b *binWriter) {
			bits := 0
			if c.Packed {
				bits = commonPacked
			}
			b.u16("common lineHeight", c.LineHeight)
			b.u16("common base", c.Base)
			b.u16("common scaleW", c.ScaleWidth)
			b.u16("common scaleH", c.ScaleHeight)
			b.u16("common pages", f.Pages.Len())
			b.u8("common bits", bits)
			b.u8("common alphaChnl", int(c.AlphaChannel))
			b.u8("common redChnl", int(c.RedChannel))
			b.u8("common greenChnl", int(c.GreenChannel))
			b.u8("common blueChnl", int(c.BlueChannel))
		})
	}
	if f.Pages != nil {
		w.block(blockPages, func(b *binWriter) {
			// Page IDs are implicit in the binary format.
			for want, id := range f.Pages.Keys() {
				if id != want && b.err == nil {
					b.err = fmt.Errorf("page id %d: binary format needs page ids 0..%d in order", id, f.Pages.Len()-1)
				}
				file, _ := f.Pages.Get(id)
				b.cstring(fmt.Sprintf("page %d file", id), file)
			}
		})
	}
	if f.Characters != nil {
		w.block(blockChars, func(b *binWriter) {
			for id, c := range f.Characters.All() {
				b.u32("char id", id)
				b.u16("char x", c.X)
				b.u16("char y", c.Y)
				b.u16("char width", c.Width)
				b.u16("char height", c.Height)
				b.i16("char xoffset", c.XOffset)
				b.i16("char yoffset", c.YOffset)
				b.i16("char xadvance", c.XAdvance)
				b.u8("char page", c.Page)
				b.u8("char chnl", c.Channel)
			}
		})
	}
	if f.KerningPairs != nil {
		w.block(blockKernings, func(b *binWriter) {
			for k, amount := range f.KerningPairs.All() {
				b.u32("kerning first", k.First)
				b.u32("kerning second", k.Second)
				b.i16("kerning amount", amount)
			}
		})
	}
	if w.err != nil {
		return w.err
	}
	_, err := out.Write(w.buf.Bytes())
	return err
}
