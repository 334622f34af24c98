// Package config holds runtime configuration: defaults, CLI argument parsing,
// and validation. The two subcommands each get a request struct that the
// pipelines read and never modify.
package config

import (
	"errors"
	"fmt"

	"github.com/backmassage/fnttools/internal/bmfont"
)

// Command selects the subcommand to run.
type Command string

const (
	CommandConvert Command = "convert" // Batch format conversion.
	CommandInspect Command = "inspect" // Selective inspection of one font.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ConvertRequest is the input of the batch converter.
type ConvertRequest struct {
	Sources   []string      // Fonts to convert, processed in order.
	Outputs   []string      // Optional; parallel to Sources when non-empty.
	Overwrite bool          // Allow replacing existing output files.
	Format    bmfont.Format // Target encoding.
}

// InspectRequest is the input of the inspector. The bool fields request a
// dump of the whole block; the ID lists request individual lookups.
type InspectRequest struct {
	Source string

	Info         bool
	Common       bool
	Pages        bool
	Characters   bool
	KerningPairs bool

	PageIDs      []int
	CharacterIDs []int
	// KerningPairIDs is a flat list read as consecutive (first, second)
	// pairs; its length must be even.
	KerningPairIDs []int
}

// SelectAll turns on every block dump (--all).
func (r *InspectRequest) SelectAll() {
	r.Info, r.Common, r.Pages, r.Characters, r.KerningPairs = true, true, true, true, true
}

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseArgs] before being passed to the pipelines.
type Config struct {
	Command Command
	Convert ConvertRequest
	Inspect InspectRequest

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with defaults applied. Used as the base
// before [ParseArgs] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
	}
}

// Validate checks enum fields and the per-command positional arguments.
// The source/output arity of a conversion is checked by the converter
// itself so it can report it like every other batch error.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	switch c.Command {
	case CommandConvert:
		if !c.Convert.Format.Valid() {
			return fmt.Errorf("invalid format %q (use 'binary', 'text' or 'xml')", c.Convert.Format)
		}
	case CommandInspect:
		if c.Inspect.Source == "" {
			return errors.New("inspect needs exactly one source file")
		}
	default:
		return fmt.Errorf("unknown command %q (use 'convert' or 'inspect')", c.Command)
	}
	return nil
}
