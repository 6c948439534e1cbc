// Package theme holds the light/dark presentation preference.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the binary color scheme of the form.
type Theme int

const (
	Light Theme = iota
	Dark
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Detect reads the ambient preference from the terminal background. Call it
// once at startup; it queries the terminal.
func Detect() Theme {
	if lipgloss.HasDarkBackground() {
		return Dark
	}
	return Light
}

// Resolve turns a configured preference ("auto", "light", "dark") into a
// Theme, calling detect only for "auto" or an empty value.
func Resolve(pref string, detect func() Theme) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(pref)) {
	case "", "auto":
		if detect == nil {
			return Light, nil
		}
		return detect(), nil
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme %q (want auto, light or dark)", pref)
	}
}
