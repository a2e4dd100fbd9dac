package display

import (
	"os"
	"strings"
	"testing"
)

// withColor forces the color state for a test and restores it after.
func withColor(t *testing.T, on bool) {
	t.Helper()
	orig := Enabled()
	SetEnabled(on)
	t.Cleanup(func() { SetEnabled(orig) })
}

func TestStyles_Disabled(t *testing.T) {
	withColor(t, false)

	for name, fn := range map[string]func(string) string{
		"Bold":   Bold,
		"Dim":    Dim,
		"Gray":   Gray,
		"Accent": Accent,
	} {
		if got := fn("hello"); got != "hello" {
			t.Errorf("%s with colors disabled = %q, want plain text", name, got)
		}
	}
}

func TestStyles_Enabled(t *testing.T) {
	withColor(t, true)

	tests := []struct {
		name string
		fn   func(string) string
		code string
	}{
		{"Bold", Bold, bold},
		{"Dim", Dim, dim},
		{"Gray", Gray, fgGray},
		{"Accent", Accent, bold + cyan},
	}

	for _, tt := range tests {
		got := tt.fn("hello")
		if !strings.HasPrefix(got, tt.code) || !strings.HasSuffix(got, reset) {
			t.Errorf("%s = %q, want wrapped in %q...%q", tt.name, got, tt.code, reset)
		}
		if !strings.Contains(got, "hello") {
			t.Errorf("%s dropped the text: %q", tt.name, got)
		}
	}
}

func TestShouldEnable_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if shouldEnable() {
		t.Error("shouldEnable true despite NO_COLOR")
	}
}

func TestShouldEnable_ForceColor(t *testing.T) {
	// NO_COLOR wins over FORCE_COLOR, so make sure it is absent.
	t.Setenv("NO_COLOR", "x") // register restore
	os.Unsetenv("NO_COLOR")
	t.Setenv("FORCE_COLOR", "1")
	if !shouldEnable() {
		t.Error("shouldEnable false despite FORCE_COLOR")
	}
}
