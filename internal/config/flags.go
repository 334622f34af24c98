package config

// This file implements CLI argument parsing and help text.
// Each subcommand gets its own flag.FlagSet. List flags (-o, -p, -c, -k) take
// every following value up to the next flag (ID lists also stop at the first
// token that is not an integer), so the raw arguments are
// normalized into "-name=value" tokens before flag.Parse sees them.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/backmassage/fnttools/internal/bmfont"
)

var (
	// ErrHelp is returned when --help was requested; the caller prints usage
	// and exits successfully.
	ErrHelp = errors.New("help requested")
	// ErrVersion is returned when --version was requested.
	ErrVersion = errors.New("version requested")
)

// displayFlags holds boolean flags that are applied after Parse.
type displayFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// ParseArgs parses the command line (without the program name) into cfg.
// It returns [ErrHelp] or [ErrVersion] for the informational flags and a
// descriptive error for any usage problem.
func ParseArgs(args []string, cfg *Config) error {
	if len(args) == 0 {
		return errors.New("need a command: convert or inspect")
	}
	switch args[0] {
	case "-h", "--help", "help":
		return ErrHelp
	case "-V", "--version":
		return ErrVersion
	}

	cfg.Command = Command(strings.ToLower(args[0]))
	fs := flag.NewFlagSet("fnttools "+args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var d displayFlags
	var all bool
	var listFlags map[string]listValues
	defineDisplayFlags(fs, cfg, &d)
	switch cfg.Command {
	case CommandConvert:
		defineConvertFlags(fs, &cfg.Convert)
		listFlags = map[string]listValues{"output": anyValues, "o": anyValues}
	case CommandInspect:
		defineInspectFlags(fs, &cfg.Inspect, &all)
		listFlags = map[string]listValues{
			"page": intValues, "p": intValues,
			"character": intValues, "c": intValues,
			"kerningpair": intValues, "k": intValues,
		}
	default:
		return fmt.Errorf("unknown command %q (use 'convert' or 'inspect')", args[0])
	}

	flagArgs, positional, err := normalizeArgs(fs, args[1:], listFlags)
	if err != nil {
		return err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return err
	}
	applyDisplayFlags(cfg, &d)
	if d.showHelp {
		return ErrHelp
	}
	if d.showVersion {
		return ErrVersion
	}
	if all {
		cfg.Inspect.SelectAll()
	}
	return parsePositionalArgs(cfg, positional)
}

// defineConvertFlags registers -o/--output and --overwrite.
func defineConvertFlags(fs *flag.FlagSet, req *ConvertRequest) {
	fs.Var(&stringList{&req.Outputs}, "output", "Output file(s), one per source")
	fs.Var(&stringList{&req.Outputs}, "o", "Same as --output")
	fs.BoolVar(&req.Overwrite, "overwrite", false, "Allow existing files to be overwritten")
}

// defineInspectFlags registers the block switches and the ID lookup lists.
func defineInspectFlags(fs *flag.FlagSet, req *InspectRequest, all *bool) {
	fs.BoolVar(all, "all", false, "Display all blocks")
	fs.BoolVar(&req.Info, "info", false, "Display the info block")
	fs.BoolVar(&req.Common, "common", false, "Display the common block")
	fs.BoolVar(&req.Pages, "pages", false, "Display the pages block")
	fs.BoolVar(&req.Characters, "characters", false, "Display the characters block")
	fs.BoolVar(&req.KerningPairs, "kerningpairs", false, "Display the kerning pairs block")
	fs.Var(&intList{&req.PageIDs, "page"}, "page", "Display page(s) by ID")
	fs.Var(&intList{&req.PageIDs, "page"}, "p", "Same as --page")
	fs.Var(&intList{&req.CharacterIDs, "character"}, "character", "Display character(s) by ID")
	fs.Var(&intList{&req.CharacterIDs, "character"}, "c", "Same as --character")
	fs.Var(&intList{&req.KerningPairIDs, "kerning pair"}, "kerningpair", "Display kerning pair(s) by first and second ID")
	fs.Var(&intList{&req.KerningPairIDs, "kerning pair"}, "k", "Same as --kerningpair")
}

// defineDisplayFlags registers the flags shared by every command.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, d *displayFlags) {
	fs.BoolVar(&d.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&d.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
	fs.BoolVar(&d.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&d.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&d.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&d.showHelp, "h", false, "Same as --help")
}

func applyDisplayFlags(cfg *Config, d *displayFlags) {
	if d.noColor {
		cfg.ColorMode = ColorNever
	} else if d.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs assigns the non-flag arguments of each command.
func parsePositionalArgs(cfg *Config, args []string) error {
	switch cfg.Command {
	case CommandConvert:
		if len(args) == 0 {
			return errors.New("convert needs a format (binary, text or xml) and source file(s)")
		}
		format, err := bmfont.ParseFormat(args[0])
		if err != nil {
			return err
		}
		cfg.Convert.Format = format
		cfg.Convert.Sources = args[1:]
	case CommandInspect:
		if len(args) != 1 {
			return fmt.Errorf("inspect needs exactly one source file (got %d)", len(args))
		}
		cfg.Inspect.Source = args[0]
	}
	return nil
}

// listValues reports whether a token following a list flag is one of its
// values. The first token it rejects ends the list.
type listValues func(tok string) bool

func anyValues(string) bool { return true }

// intValues accepts tokens made only of integers, so "-p 0 font.fnt" leaves
// font.fnt as a positional argument.
func intValues(tok string) bool {
	fields := strings.Fields(tok)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if _, err := strconv.Atoi(f); err != nil {
			return false
		}
	}
	return true
}

// normalizeArgs separates flag tokens from positional arguments. List flags
// consume the values that follow them and are rewritten as one "-name=value"
// token per value. A single token such as "-p 0 1 2" is split on spaces.
// Negative numbers are values, never flags.
func normalizeArgs(fs *flag.FlagSet, args []string, listFlags map[string]listValues) (flagArgs, positional []string, err error) {
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if tok == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if !isFlagToken(tok) {
			positional = append(positional, tok)
			continue
		}

		name := strings.TrimLeft(tok, "-")
		var values []string
		hasValue := false
		if n, v, ok := strings.Cut(name, "="); ok {
			name, values, hasValue = n, []string{v}, true
		} else if fields := strings.Fields(name); len(fields) > 1 {
			name, values, hasValue = fields[0], fields[1:], true
		}

		if accept, ok := listFlags[name]; ok {
			for i+1 < len(args) && !isFlagToken(args[i+1]) && accept(args[i+1]) {
				values = append(values, strings.Fields(args[i+1])...)
				i++
			}
			if len(values) == 0 {
				return nil, nil, fmt.Errorf("flag needs an argument: -%s", name)
			}
			for _, v := range values {
				flagArgs = append(flagArgs, "-"+name+"="+v)
			}
			continue
		}

		f := fs.Lookup(name)
		if f == nil {
			return nil, nil, fmt.Errorf("flag provided but not defined: -%s", name)
		}
		switch {
		case hasValue:
			flagArgs = append(flagArgs, "-"+name+"="+strings.Join(values, " "))
		case isBoolFlag(f):
			flagArgs = append(flagArgs, "-"+name)
		case i+1 < len(args):
			flagArgs = append(flagArgs, "-"+name+"="+args[i+1])
			i++
		default:
			return nil, nil, fmt.Errorf("flag needs an argument: -%s", name)
		}
	}
	return flagArgs, positional, nil
}

func isFlagToken(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	_, err := strconv.Atoi(tok)
	return err != nil
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}

// PrintUsage writes the help text to w. Column-aligned for readability.
func PrintUsage(w io.Writer, version string) {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "fnttools v" + version + " - AngelCode bitmap font (.fnt) tools"},
		{"", ""},
		{"  fnttools convert <binary|text|xml> <source...> [OPTIONS]", ""},
		{"  fnttools inspect <source> [OPTIONS]", ""},
		{"", ""},
		{"Convert", ""},
		{"  -o, --output <path...>", "Output file(s), one per source (default: source name)"},
		{"  --overwrite", "Allow existing files to be overwritten"},
		{"", ""},
		{"Inspect", ""},
		{"  --all", "Display all blocks (not recommended for large fonts)"},
		{"  --info", "Display the info block"},
		{"  --common", "Display the common block"},
		{"  --pages", "Display the pages block"},
		{"  -p, --page <id...>", "Display page(s) by ID"},
		{"  --characters", "Display the characters block"},
		{"  -c, --character <id...>", "Display character(s) by ID"},
		{"  --kerningpairs", "Display the kerning pairs block"},
		{"  -k, --kerningpair <id...>", "Display kerning pair(s): first second ..."},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"", ""},
		{"Utility", ""},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters for list flags. Each Set call appends one value.

type stringList struct{ p *[]string }

func (s *stringList) String() string {
	if s.p == nil {
		return ""
	}
	return strings.Join(*s.p, " ")
}

func (s *stringList) Set(v string) error {
	*s.p = append(*s.p, v)
	return nil
}

type intList struct {
	p    *[]int
	what string
}

func (l *intList) String() string {
	if l.p == nil {
		return ""
	}
	parts := make([]string, len(*l.p))
	for i, n := range *l.p {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

func (l *intList) Set(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("invalid %s ID %q (must be a whole number)", l.what, v)
	}
	*l.p = append(*l.p, n)
	return nil
}
