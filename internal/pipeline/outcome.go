package pipeline

// Outcome is the state of a batch after each source. It only moves forward:
// Continuing → ItemFailedContinue → Aborted.
type Outcome int

const (
	Continuing         Outcome = iota // Every source so far converted.
	ItemFailedContinue                // A source was skipped; keep going.
	Aborted                           // A conversion failed; stop the batch.
)

func (o Outcome) String() string {
	switch o {
	case Continuing:
		return "continuing"
	case ItemFailedContinue:
		return "item failed, continuing"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// Then folds the outcome of the next source into the batch state. Aborted is
// absorbing and a skipped item is never forgotten.
func (o Outcome) Then(next Outcome) Outcome {
	return max(o, next)
}

// Stopped reports whether no further sources may be processed.
func (o Outcome) Stopped() bool {
	return o == Aborted
}

// ExitCode maps the final state to the process exit status.
func (o Outcome) ExitCode() int {
	if o == Continuing {
		return 0
	}
	return 1
}
