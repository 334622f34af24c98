package main

import (
	"path/filepath"
	"testing"
)

func TestRun_ExitCodes(t *testing.T) {
	sample := filepath.Join("..", "..", "internal", "bmfont", "testdata", "sample.fnt")
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"--help"}, 0},
		{"version", []string{"-V"}, 0},
		{"no command", nil, 1},
		{"unknown command", []string{"render"}, 1},
		{"bad format", []string{"convert", "svg", sample}, 1},
		{"inspect", []string{"inspect", sample, "--info", "--no-color"}, 0},
		{"inspect missing", []string{"inspect", "missing.fnt", "--no-color"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args); got != tt.want {
				t.Errorf("run(%q) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}
