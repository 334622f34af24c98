package naming

import "path/filepath"

// OutputPath returns where the i-th source of a batch is written: the
// matching entry of outputs when outputs were given, otherwise the source's
// base name, which lands in the working directory.
//
//	OutputPath([]string{"fonts/a.fnt"}, nil, 0)          → "a.fnt"
//	OutputPath([]string{"a.fnt"}, []string{"out/b.fnt"}, 0) → "out/b.fnt"
func OutputPath(sources, outputs []string, i int) string {
	if i < len(outputs) {
		return outputs[i]
	}
	return filepath.Base(sources[i])
}
