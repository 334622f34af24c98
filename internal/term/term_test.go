package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/fnttools/internal/config"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorAlways)
	if !Enabled() || Red == "" {
		t.Error("ColorAlways: colors not enabled")
	}
	Configure(config.ColorNever)
	if Enabled() || Red != "" || NC != "" {
		t.Error("ColorNever: colors still enabled")
	}
}

func TestConfigure_AutoHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	Configure(config.ColorAuto)
	if Enabled() {
		t.Error("ColorAuto with NO_COLOR set enabled colors")
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("IsTerminal(nil) = true")
	}
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
}
