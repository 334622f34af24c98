package inspect

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/backmassage/fnttools/internal/bmfont"
	"github.com/backmassage/fnttools/internal/config"
	"github.com/backmassage/fnttools/internal/logging"
)

var samplePath = filepath.Join("..", "bmfont", "testdata", "sample.fnt")

// countingCodec serves a fixed font, or the file codec when font is nil, and
// counts loads.
type countingCodec struct {
	font  *bmfont.Font
	loads int
}

func (c *countingCodec) Load(path string) (*bmfont.Font, error) {
	c.loads++
	if c.font != nil {
		return c.font, nil
	}
	return bmfont.FileCodec{}.Load(path)
}

func (c *countingCodec) Save(*bmfont.Font, string, bmfont.Format) error { return nil }

func run(t *testing.T, req config.InspectRequest, codec bmfont.Codec) (code int, out, log string) {
	t.Helper()
	var o, l bytes.Buffer
	code = Inspect(context.Background(), req, codec, &o, logging.New(&l, false))
	return code, o.String(), l.String()
}

var headers = []string{
	"Info Block:", "Common Block:", "Pages Block:", "Characters Block:", "Kerning Pairs Block:",
	"Selected Pages:", "Selected Characters:", "Selected Kerning Pairs:",
}

func TestInspect_RequestErrorsPrintNoReport(t *testing.T) {
	tests := []struct {
		name    string
		req     config.InspectRequest
		wantLog string
		loads   int
	}{
		{"missing source", config.InspectRequest{Source: "does/not/exist.fnt", Info: true},
			"was not found. Aborting.", 0},
		{"odd kerning list", config.InspectRequest{Source: samplePath, KerningPairIDs: []int{65}},
			"1 kerning pair IDs specified", 0},
		{"odd kerning list beats missing source", config.InspectRequest{Source: "nope.fnt", KerningPairIDs: []int{65, 66, 67}},
			"3 kerning pair IDs specified", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := &countingCodec{}
			code, out, log := run(t, tt.req, codec)
			if code != 1 {
				t.Errorf("exit = %d, want 1", code)
			}
			if codec.loads != tt.loads {
				t.Errorf("loads = %d, want %d", codec.loads, tt.loads)
			}
			for _, h := range headers {
				if strings.Contains(out, h) {
					t.Errorf("report header %q printed on failure", h)
				}
			}
			if !strings.Contains(log, tt.wantLog) {
				t.Errorf("log missing %q:\n%s", tt.wantLog, log)
			}
		})
	}
}

func TestInspect_MalformedSource(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.fnt")
	writeFile(t, bad, "garbage")
	code, out, log := run(t, config.InspectRequest{Source: bad, Info: true}, bmfont.FileCodec{})
	if code != 1 || out != "" {
		t.Errorf("exit = %d, out = %q", code, out)
	}
	if !strings.Contains(log, "Failed to load bitmap font") {
		t.Errorf("log:\n%s", log)
	}
}

func TestInspect_BlockOrder(t *testing.T) {
	req := config.InspectRequest{Source: samplePath}
	req.SelectAll()
	code, out, _ := run(t, req, bmfont.FileCodec{})
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	last := -1
	for _, h := range headers[:5] {
		i := strings.Index(out, h)
		if i < 0 {
			t.Fatalf("missing header %q", h)
		}
		if i < last {
			t.Errorf("%q out of order", h)
		}
		last = i
	}
	for _, want := range []string{"Face: Test Sans\n", "LineHeight: 19\n", "File: test 1.png\n", "Amount: 2\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestInspect_DumpThenLookupRepeats(t *testing.T) {
	code, out, _ := run(t, config.InspectRequest{Source: samplePath, Pages: true, PageIDs: []int{0}}, bmfont.FileCodec{})
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	want := "Pages Block:\n" +
		"ID: 0\nFile: test_0.png\n\n" +
		"ID: 1\nFile: test 1.png\n\n" +
		"ID: 0\nFile: test_0.png\n\n"
	if d := cmp.Diff(want, out); d != "" {
		t.Errorf("report (-want +got):\n%s", d)
	}
}

func TestInspect_MissingLookupsWarn(t *testing.T) {
	tests := []struct {
		name string
		req  config.InspectRequest
		want string
	}{
		{"character", config.InspectRequest{CharacterIDs: []int{9999}}, "Character 9999 does not exist."},
		{"page", config.InspectRequest{PageIDs: []int{7}}, "Page 7 does not exist."},
		{"kerning pair", config.InspectRequest{KerningPairIDs: []int{65, 65}}, "Kerning pair (65, 65) does not exist."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Source = samplePath
			code, _, log := run(t, tt.req, bmfont.FileCodec{})
			if code != 0 {
				t.Errorf("exit = %d, want 0", code)
			}
			if n := strings.Count(log, "does not exist"); n != 1 {
				t.Errorf("%d warnings, want 1:\n%s", n, log)
			}
			if !strings.Contains(log, tt.want) {
				t.Errorf("log missing %q:\n%s", tt.want, log)
			}
		})
	}
}

func TestInspect_CharacterRendering(t *testing.T) {
	tests := []struct {
		id   int
		want []string
	}{
		{65, []string{"ID: 65\n", "Character: A\n", "Name: LATIN CAPITAL LETTER A\n", "XOffset: -1\n"}},
		{10, []string{"ID: 10\n", "Character: Control\n"}},
		{32, []string{"ID: 32\n", "Character: Whitespace\n", "Name: SPACE\n", "YOffset: 15\n"}},
	}
	for _, tt := range tests {
		req := config.InspectRequest{Source: samplePath, CharacterIDs: []int{tt.id}}
		code, out, _ := run(t, req, bmfont.FileCodec{})
		if code != 0 {
			t.Fatalf("char %d: exit = %d", tt.id, code)
		}
		if !strings.HasPrefix(out, "Selected Characters:\n") {
			t.Errorf("char %d: header missing:\n%s", tt.id, out)
		}
		for _, w := range tt.want {
			if !strings.Contains(out, w) {
				t.Errorf("char %d: missing %q:\n%s", tt.id, w, out)
			}
		}
		if tt.id == 10 && strings.Contains(out, "Name:") {
			t.Errorf("char 10 printed a name:\n%s", out)
		}
	}
}

func TestInspect_KerningLookup(t *testing.T) {
	req := config.InspectRequest{Source: samplePath, KerningPairIDs: []int{66, 65}}
	_, out, _ := run(t, req, bmfont.FileCodec{})
	want := "Selected Kerning Pairs:\nFirst: 66\nSecond: 65\nAmount: 2\n\n"
	if d := cmp.Diff(want, out); d != "" {
		t.Errorf("report (-want +got):\n%s", d)
	}
}

func TestInspect_AbsentBlocks(t *testing.T) {
	codec := &countingCodec{font: &bmfont.Font{}}
	req := config.InspectRequest{
		Source:       samplePath,
		Info:         true,
		Common:       true,
		Characters:   true,
		CharacterIDs: []int{65},
	}
	code, out, log := run(t, req, codec)
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	for _, want := range []string{"Info Block:\nFace: \nFontSize: 0\n", "Common Block:\nLineHeight: 0\n", "Characters Block:\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ID: ") {
		t.Errorf("absent collection produced records:\n%s", out)
	}
	if !strings.Contains(log, "Character 65 does not exist.") {
		t.Errorf("log:\n%s", log)
	}
}
