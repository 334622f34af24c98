// Package bmfont holds the in-memory model of an AngelCode bitmap font
// (.fnt) and the codec that reads and writes it in the three AngelCode
// encodings: text, XML, and binary (version 3).
//
// A [Font] has up to five blocks. Info and Common are single records;
// pages, characters and kerning pairs are insertion-ordered [Table]s.
// A nil block means the block was absent from the source document, which is
// distinct from a present but empty table.
//
// Files:
//   - font.go: Font, Info, Common, Character, KerningPair and enums.
//   - table.go: ordered Table with nil-safe reads.
//   - format.go: Format enum and detection from leading bytes.
//   - codec.go: Codec interface, FileCodec, Decode/Encode.
//   - text.go, xml.go, binary.go: the three encodings.
package bmfont
