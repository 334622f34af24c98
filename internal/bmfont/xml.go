package bmfont

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
)

// decodeXML walks the element stream of a <font> document and feeds every
// start element to the same builder the text decoder uses.
func decodeXML(data []byte) (*Font, error) {
	var b fontBuilder
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		attrs := make(map[string]string, len(start.Attr))
		for _, a := range start.Attr {
			attrs[a.Name.Local] = a.Value
		}
		line, _ := dec.InputPos()
		if err := b.element(start.Name.Local, line, attrs); err != nil {
			return nil, err
		}
	}
	return &b.font, nil
}

func encodeXML(w io.Writer, f *Font) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	leaf := func(name string, attrs []attr) error {
		if err := open(enc, name, attrs); err != nil {
			return err
		}
		return enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
	}
	list := func(name string, attrs []attr, body func() error) error {
		if err := open(enc, name, attrs); err != nil {
			return err
		}
		if err := body(); err != nil {
			return err
		}
		return enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
	}

	err := list("font", nil, func() error {
		if f.Info != nil {
			if err := leaf("info", infoAttrs(f.Info)); err != nil {
				return err
			}
		}
		if f.Common != nil {
			if err := leaf("common", commonAttrs(f.Common, f.Pages.Len())); err != nil {
				return err
			}
		}
		if f.Pages != nil {
			err := list("pages", nil, func() error {
				for id, file := range f.Pages.All() {
					if err := leaf("page", pageAttrs(id, file)); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		if f.Characters != nil {
			err := list("chars", countAttrs(f.Characters.Len()), func() error {
				for id, c := range f.Characters.All() {
					if err := leaf("char", charAttrs(id, c)); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		if f.KerningPairs != nil {
			return list("kernings", countAttrs(f.KerningPairs.Len()), func() error {
				for k, amount := range f.KerningPairs.All() {
					if err := leaf("kerning", kerningAttrs(k, amount)); err != nil {
						return err
					}
				}
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func open(enc *xml.Encoder, name string, attrs []attr) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	for _, a := range attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.key}, Value: a.value})
	}
	return enc.EncodeToken(start)
}
