// Command fnttools converts AngelCode bitmap font descriptors between the
// binary, text and XML formats and prints their contents.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/backmassage/fnttools/internal/bmfont"
	"github.com/backmassage/fnttools/internal/config"
	"github.com/backmassage/fnttools/internal/display"
	"github.com/backmassage/fnttools/internal/inspect"
	"github.com/backmassage/fnttools/internal/logging"
	"github.com/backmassage/fnttools/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Bootstrap: no logger yet, so usage problems go to stderr.
	cfg := config.DefaultConfig()
	switch err := config.ParseArgs(args, &cfg); {
	case errors.Is(err, config.ErrHelp):
		display.PrintBanner(os.Stderr)
		config.PrintUsage(os.Stderr, version)
		return 0
	case errors.Is(err, config.ErrVersion):
		fmt.Printf("fnttools v%s (%s)\n", version, commit)
		return 0
	case err != nil:
		fmt.Fprintf(os.Stderr, "fnttools: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'fnttools --help' for usage.")
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "fnttools: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fnttools: %v\n", err)
		return 1
	}
	defer log.Close()

	// Commands run to completion; SIGINT/SIGTERM keep their default
	// behavior and terminate the process.
	ctx := context.Background()

	codec := bmfont.FileCodec{}
	switch cfg.Command {
	case config.CommandConvert:
		return pipeline.Convert(ctx, cfg.Convert, codec, log)
	case config.CommandInspect:
		return inspect.Inspect(ctx, cfg.Inspect, codec, os.Stdout, log)
	}
	return 1
}
