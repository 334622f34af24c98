package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/backmassage/fnttools/internal/bmfont"
	"github.com/backmassage/fnttools/internal/config"
	"github.com/backmassage/fnttools/internal/display"
	"github.com/backmassage/fnttools/internal/logging"
	"github.com/backmassage/fnttools/internal/naming"
)

// Convert is the batch entry point. It converts every source in order and
// returns 0 when all of them were written, 1 otherwise. ctx is not
// consulted: a batch runs to completion or until a failure aborts it, and
// only process termination interrupts it.
func Convert(ctx context.Context, req config.ConvertRequest, codec bmfont.Codec, log *logging.Logger) int {
	if len(req.Sources) == 0 {
		log.Error("No sources specified. Aborting.")
		return 1
	}
	if len(req.Outputs) != 0 && len(req.Outputs) != len(req.Sources) {
		log.Error("%d out of %d outputs specified. Aborting.", len(req.Outputs), len(req.Sources))
		return 1
	}

	stats := RunStats{Total: len(req.Sources)}
	tracker := naming.NewCollisionTracker()
	outcome := Continuing

	log.Debug("Converting %d file(s) to %s", stats.Total, req.Format)
	for i := range req.Sources {
		stats.Current = i + 1
		outcome = outcome.Then(convertOne(req, i, codec, log, &stats, tracker))
		if outcome.Stopped() {
			if n := stats.Pending(); n > 0 {
				log.Error("Aborting; %d remaining source(s) not converted.", n)
			}
			break
		}
	}

	logSummary(log, &stats)
	return outcome.ExitCode()
}

// convertOne handles one source: exists → output path → overwrite guard →
// load → save. It never returns Aborted for a condition the user can fix by
// changing arguments.
func convertOne(
	req config.ConvertRequest,
	i int,
	codec bmfont.Codec,
	log *logging.Logger,
	stats *RunStats,
	tracker *naming.CollisionTracker,
) Outcome {
	src := req.Sources[i]

	// --- Validate source ---
	if fi, err := os.Stat(src); err != nil || fi.IsDir() {
		log.Warn("Source file \"%s\" was not found. Skipping.", src)
		stats.Skipped++
		return ItemFailedContinue
	}

	// --- Resolve output and apply the overwrite guard ---
	out := naming.OutputPath(req.Sources, req.Outputs, i)
	if !req.Overwrite {
		if _, err := os.Stat(out); err == nil {
			log.Warn("File \"%s\" already exists. Use \"--overwrite\" to allow existing files to be overwritten. Skipping.", out)
			stats.Skipped++
			return ItemFailedContinue
		}
	}
	if prev := tracker.Claim(src, out); prev != "" {
		log.Warn("\"%s\" replaces the output written from \"%s\" earlier in this run.", out, prev)
	}

	// --- Convert ---
	log.Debug("[%d/%d] %s -> %s", stats.Current, stats.Total, src, out)
	font, err := codec.Load(src)
	if err != nil {
		return fail(log, stats, src, err)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fail(log, stats, src, err)
	}
	if err := codec.Save(font, out, req.Format); err != nil {
		return fail(log, stats, src, err)
	}

	var size int64
	if fi, err := os.Stat(out); err == nil {
		size = fi.Size()
	}
	stats.BytesWritten += size
	stats.Converted++
	log.Success("Converted \"%s\" -> \"%s\" (%s, %s)", src, out, req.Format, display.FormatBytes(size))
	return Continuing
}

func fail(log *logging.Logger, stats *RunStats, src string, err error) Outcome {
	log.Error("Failed to convert bitmap font \"%s\".", src)
	log.ErrorChain(err)
	stats.Failed++
	return Aborted
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("Done: %d converted, %d skipped, %d failed (%s written)",
		stats.Converted, stats.Skipped, stats.Failed, display.FormatBytes(stats.BytesWritten))
}
