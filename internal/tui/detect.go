package tui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Color modes accepted by ColorEnabled.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorEnabled decides whether output written to f should be colored.
//
// "always" and "never" are honored as given. In "auto" mode (or any other
// value) color is disabled if:
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention)
//   - TERM is "dumb"
//   - f is not a terminal (piped or redirected output)
func ColorEnabled(mode string, f *os.File) bool {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return true
}
