// Package pipeline runs the batch converter: it walks the sources in order,
// resolves each output path, applies the overwrite guard, converts through a
// [bmfont.Codec], and folds the per-file results into one exit code.
//
// Missing sources and existing outputs are per-file skips; the batch keeps
// going so one run reports every such problem. A load or save failure is
// unexpected and stops the batch.
//
// Files:
//   - convert.go: Convert and the per-source step.
//   - outcome.go: Outcome, the skip-vs-abort state machine.
//   - stats.go: RunStats counters for the summary line.
package pipeline
