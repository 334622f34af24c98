package inspect

// Selection is what to print for one block.
type Selection int

const (
	Skip           Selection = iota // Nothing requested.
	Dump                            // Every entry, under "<Block> Block:".
	DumpThenLookup                  // Every entry, then each requested ID.
	Lookup                          // Only the requested IDs, under "Selected <Block>:".
)

func (s Selection) String() string {
	switch s {
	case Skip:
		return "skip"
	case Dump:
		return "dump"
	case DumpThenLookup:
		return "dump+lookup"
	case Lookup:
		return "lookup"
	}
	return "unknown"
}

// Resolve applies the block selection rule: the dump flag wins the header,
// explicit IDs are always looked up.
func Resolve(dumpAll bool, ids int) Selection {
	switch {
	case dumpAll && ids > 0:
		return DumpThenLookup
	case dumpAll:
		return Dump
	case ids > 0:
		return Lookup
	}
	return Skip
}

func (s Selection) dumps() bool   { return s == Dump || s == DumpThenLookup }
func (s Selection) lookups() bool { return s == Lookup || s == DumpThenLookup }

// header returns the heading printed above a block, given its display name
// (e.g. "Pages").
func (s Selection) header(block string) string {
	if s.dumps() {
		return block + " Block:"
	}
	return "Selected " + block + ":"
}
