package inspect

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/backmassage/fnttools/internal/bmfont"
	"github.com/backmassage/fnttools/internal/config"
	"github.com/backmassage/fnttools/internal/display"
	"github.com/backmassage/fnttools/internal/logging"
)

// Inspect loads req.Source and writes the requested blocks to out. It
// returns 0 once the font was loaded, whatever the lookups found, and 1 when
// the request is malformed or the font cannot be read. ctx is unused; the
// report is produced from memory in one pass.
func Inspect(ctx context.Context, req config.InspectRequest, codec bmfont.Codec, out io.Writer, log *logging.Logger) int {
	pairs, err := bmfont.ParseKerningPairs(req.KerningPairIDs)
	if err != nil {
		log.Error("%d kerning pair IDs specified; they must be given as first/second pairs. Aborting.", len(req.KerningPairIDs))
		return 1
	}
	if fi, err := os.Stat(req.Source); err != nil || fi.IsDir() {
		log.Error("Source file \"%s\" was not found. Aborting.", req.Source)
		return 1
	}
	font, err := codec.Load(req.Source)
	if err != nil {
		log.Error("Failed to load bitmap font \"%s\".", req.Source)
		log.ErrorChain(err)
		return 1
	}
	log.Debug("Loaded %q: %d page(s), %d character(s), %d kerning pair(s)",
		req.Source, font.Pages.Len(), font.Characters.Len(), font.KerningPairs.Len())

	r := &report{w: out, log: log, font: font}
	if req.Info {
		r.info()
	}
	if req.Common {
		r.common()
	}
	r.pages(Resolve(req.Pages, len(req.PageIDs)), req.PageIDs)
	r.characters(Resolve(req.Characters, len(req.CharacterIDs)), req.CharacterIDs)
	r.kerningPairs(Resolve(req.KerningPairs, len(pairs)), pairs)
	return 0
}

// report writes one font's blocks. Every record is followed by a blank line.
type report struct {
	w    io.Writer
	log  *logging.Logger
	font *bmfont.Font
}

func (r *report) line(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

func (r *report) info() {
	info := r.font.Info
	if info == nil {
		info = &bmfont.Info{}
	}
	r.line("Info Block:")
	display.WriteFields(r.w, display.InfoFields(info))
	r.line("")
}

func (r *report) common() {
	common := r.font.Common
	if common == nil {
		common = &bmfont.Common{}
	}
	r.line("Common Block:")
	display.WriteFields(r.w, display.CommonFields(common))
	r.line("")
}

func (r *report) pages(sel Selection, ids []int) {
	if sel == Skip {
		return
	}
	r.line(sel.header("Pages"))
	if sel.dumps() {
		for id, file := range r.font.Pages.All() {
			r.page(id, file)
		}
	}
	if sel.lookups() {
		for _, id := range ids {
			file, ok := r.font.Pages.Get(id)
			if !ok {
				r.log.Warn("Page %d does not exist.", id)
				continue
			}
			r.page(id, file)
		}
	}
}

func (r *report) page(id int, file string) {
	r.line("ID: %d", id)
	r.line("File: %s", file)
	r.line("")
}

func (r *report) characters(sel Selection, ids []int) {
	if sel == Skip {
		return
	}
	r.line(sel.header("Characters"))
	if sel.dumps() {
		for id, c := range r.font.Characters.All() {
			r.character(id, c)
		}
	}
	if sel.lookups() {
		for _, id := range ids {
			c, ok := r.font.Characters.Get(id)
			if !ok {
				r.log.Warn("Character %d does not exist.", id)
				continue
			}
			r.character(id, c)
		}
	}
}

func (r *report) character(id int, c bmfont.Character) {
	r.line("ID: %d", id)
	r.line("Character: %s", Display(id))
	if name := Name(id); name != "" {
		r.line("Name: %s", name)
	}
	display.WriteFields(r.w, display.CharacterFields(c))
	r.line("")
}

func (r *report) kerningPairs(sel Selection, pairs []bmfont.KerningPair) {
	if sel == Skip {
		return
	}
	r.line(sel.header("Kerning Pairs"))
	if sel.dumps() {
		for k, amount := range r.font.KerningPairs.All() {
			r.kerningPair(k, amount)
		}
	}
	if sel.lookups() {
		for _, k := range pairs {
			amount, ok := r.font.KerningPairs.Get(k)
			if !ok {
				r.log.Warn("Kerning pair %s does not exist.", k)
				continue
			}
			r.kerningPair(k, amount)
		}
	}
}

func (r *report) kerningPair(k bmfont.KerningPair, amount int) {
	display.WriteFields(r.w, display.KerningPairFields(k))
	r.line("Amount: %d", amount)
	r.line("")
}
