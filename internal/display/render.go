// Package display renders font records as "Name: value" lines and holds
// small formatting helpers shared by the commands.
//
// Each record type has its own field list in a fixed order (the order of the
// struct declaration in package bmfont), so reports stay stable from run to
// run.
package display

import (
	"fmt"
	"io"
	"strconv"

	"github.com/backmassage/fnttools/internal/bmfont"
)

// Field is one named value of a record.
type Field struct {
	Name  string
	Value string
}

// WriteFields prints each field as "Name: Value" on its own line.
func WriteFields(w io.Writer, fields []Field) {
	for _, f := range fields {
		fmt.Fprintf(w, "%s: %s\n", f.Name, f.Value)
	}
}

func intField(name string, v int) Field { return Field{name, strconv.Itoa(v)} }

func boolField(name string, v bool) Field { return Field{name, strconv.FormatBool(v)} }

// InfoFields lists the fields of an info block.
func InfoFields(i *bmfont.Info) []Field {
	return []Field{
		{"Face", i.Face},
		intField("FontSize", i.FontSize),
		boolField("Bold", i.Bold),
		boolField("Italic", i.Italic),
		{"CharSet", i.CharSet.String()},
		boolField("Unicode", i.Unicode),
		intField("StretchHeight", i.StretchHeight),
		boolField("Smooth", i.Smooth),
		intField("SuperSampling", i.SuperSampling),
		intField("PaddingUp", i.PaddingUp),
		intField("PaddingRight", i.PaddingRight),
		intField("PaddingDown", i.PaddingDown),
		intField("PaddingLeft", i.PaddingLeft),
		intField("SpacingHorizontal", i.SpacingHorizontal),
		intField("SpacingVertical", i.SpacingVertical),
		intField("Outline", i.Outline),
		boolField("FixedHeight", i.FixedHeight),
	}
}

// CommonFields lists the fields of a common block.
func CommonFields(c *bmfont.Common) []Field {
	return []Field{
		intField("LineHeight", c.LineHeight),
		intField("Base", c.Base),
		intField("ScaleWidth", c.ScaleWidth),
		intField("ScaleHeight", c.ScaleHeight),
		boolField("Packed", c.Packed),
		{"AlphaChannel", c.AlphaChannel.String()},
		{"RedChannel", c.RedChannel.String()},
		{"GreenChannel", c.GreenChannel.String()},
		{"BlueChannel", c.BlueChannel.String()},
	}
}

// CharacterFields lists the layout fields of a character.
func CharacterFields(c bmfont.Character) []Field {
	return []Field{
		intField("X", c.X),
		intField("Y", c.Y),
		intField("Width", c.Width),
		intField("Height", c.Height),
		intField("XOffset", c.XOffset),
		intField("YOffset", c.YOffset),
		intField("XAdvance", c.XAdvance),
		intField("Page", c.Page),
		intField("Channel", c.Channel),
	}
}

// KerningPairFields lists the two character codes of a kerning pair.
func KerningPairFields(k bmfont.KerningPair) []Field {
	return []Field{
		intField("First", k.First),
		intField("Second", k.Second),
	}
}
