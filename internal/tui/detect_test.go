package tui

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestColorEnabled_ExplicitModes(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if !ColorEnabled(ColorAlways, nil) {
		t.Error("ColorEnabled(always) = false, want true even with NO_COLOR")
	}
	if !ColorEnabled("ALWAYS", nil) {
		t.Error("ColorEnabled is case-insensitive")
	}

	t.Setenv("NO_COLOR", "")
	if ColorEnabled(ColorNever, os.Stdout) {
		t.Error("ColorEnabled(never) = true, want false")
	}
}

func TestColorEnabled_AutoRespectsEnvironment(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"NO_COLOR", map[string]string{"NO_COLOR": "1", "CI": "", "TERM": "xterm"}},
		{"CI", map[string]string{"NO_COLOR": "", "CI": "true", "TERM": "xterm"}},
		{"dumb terminal", map[string]string{"NO_COLOR": "", "CI": "", "TERM": "dumb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if ColorEnabled(ColorAuto, os.Stdout) {
				t.Errorf("ColorEnabled(auto) = true with %s", tt.name)
			}
		})
	}
}

func TestColorEnabled_AutoWithoutTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CI", "")
	t.Setenv("TERM", "xterm-256color")

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if ColorEnabled(ColorAuto, w) {
		t.Error("ColorEnabled(auto) = true for a pipe, want false")
	}
	if ColorEnabled(ColorAuto, nil) {
		t.Error("ColorEnabled(auto) = true for nil file, want false")
	}
}

func TestNewStyles_Disabled(t *testing.T) {
	st := NewStyles(&bytes.Buffer{}, false)

	if st.Enabled {
		t.Error("Enabled = true, want false")
	}
	if got := st.Error.Render("boom"); got != "boom" {
		t.Errorf("Error.Render() = %q, want plain text", got)
	}
	if got := st.Title.Render("Title"); got != "Title" {
		t.Errorf("Title.Render() = %q, want plain text", got)
	}
}

func TestNewStyles_Enabled(t *testing.T) {
	st := NewStyles(&bytes.Buffer{}, true)

	got := st.Error.Render("boom")
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Error.Render() = %q, want ANSI escape sequences", got)
	}
	if !strings.Contains(got, "boom") {
		t.Errorf("Error.Render() = %q, want the text kept", got)
	}
}
