package inspect

import (
	"os"
	"testing"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		code int
		want Class
	}{
		{'A', Printable},
		{'é', Printable},
		{0x4E2D, Printable},
		{0, Control},
		{'\n', Control},
		{0x7F, Control},
		{0x85, Control},
		{' ', Whitespace},
		{0xA0, Whitespace},
		{0x3000, Whitespace},
		{-1, Control},
		{0xD800, Control},
		{0x110000, Control},
	}
	for _, tt := range tests {
		if got := Classify(tt.code); got != tt.want {
			t.Errorf("Classify(%#x) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestDisplayAndName(t *testing.T) {
	if got := Display('B'); got != "B" {
		t.Errorf("Display('B') = %q", got)
	}
	if got := Display('\t'); got != "Control" {
		t.Errorf("Display(tab) = %q", got)
	}
	if got := Name('B'); got != "LATIN CAPITAL LETTER B" {
		t.Errorf("Name('B') = %q", got)
	}
	for _, code := range []int{0xD800, '\n', 0x85, 0xE000, -5} {
		if got := Name(code); got != "" {
			t.Errorf("Name(%#x) = %q, want no name", code, got)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		dump   bool
		ids    int
		want   Selection
		header string
	}{
		{false, 0, Skip, ""},
		{true, 0, Dump, "Pages Block:"},
		{true, 2, DumpThenLookup, "Pages Block:"},
		{false, 1, Lookup, "Selected Pages:"},
	}
	for _, tt := range tests {
		got := Resolve(tt.dump, tt.ids)
		if got != tt.want {
			t.Errorf("Resolve(%v, %d) = %v, want %v", tt.dump, tt.ids, got, tt.want)
		}
		if got != Skip && got.header("Pages") != tt.header {
			t.Errorf("header = %q, want %q", got.header("Pages"), tt.header)
		}
	}
}
