package display

import (
	"fmt"
	"io"

	"github.com/backmassage/fnttools/internal/term"
)

// PrintBanner prints the ASCII art banner to w; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, ` _____ _   _ _____ _____           _
|  ___| \ | |_   _|_   _|__   ___ | |___
| |_  |  \| | | |   | |/ _ \ / _ \| / __|
|  _| | |\  | | |   | | (_) | (_) | \__ \
|_|   |_| \_| |_|   |_|\___/ \___/|_|___/
`)
	fmt.Fprint(w, term.NC)
}
