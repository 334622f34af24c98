package bmfont

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Codec loads and saves font documents. The pipelines depend on this
// interface rather than on [FileCodec] so they can run against fakes.
type Codec interface {
	Load(path string) (*Font, error)
	Save(f *Font, path string, format Format) error
}

// FileCodec is the filesystem [Codec].
type FileCodec struct{}

// Load reads and decodes the font at path, detecting its encoding.
func (FileCodec) Load(path string) (*Font, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return f, nil
}

// NewFileMode is the permission of fonts written to a path that did not
// exist yet.
const NewFileMode os.FileMode = 0o644

// Save encodes f into a temporary file next to path and renames it into
// place, so a failed save leaves any existing file at path untouched.
// A replaced file keeps its permissions; a new one gets [NewFileMode].
func (FileCodec) Save(f *Font, path string, format Format) error {
	if !format.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	mode := NewFileMode
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}

	w := bufio.NewWriter(tmp)
	if err := Encode(w, f, format); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Decode reads a whole document and decodes it with the encoding detected
// from its leading bytes.
func Decode(r io.Reader) (*Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	format, err := DetectFormat(data)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatBinary:
		return decodeBinary(data)
	case FormatXML:
		return decodeXML(data)
	default:
		return decodeText(data)
	}
}

// Encode writes f to w in the given format.
func Encode(w io.Writer, f *Font, format Format) error {
	switch format {
	case FormatBinary:
		return encodeBinary(w, f)
	case FormatText:
		return encodeText(w, f)
	case FormatXML:
		return encodeXML(w, f)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// put adds an entry to a table being decoded, rejecting duplicate keys.
func put[K comparable, V any](t *Table[K, V], what string, k K, v V) error {
	if !t.Put(k, v) {
		return fmt.Errorf("duplicate %s %v", what, k)
	}
	return nil
}
