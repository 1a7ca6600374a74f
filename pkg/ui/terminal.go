// Package ui handles the terminal-facing edges of zml: detecting the
// hosting terminal's color capability and presenting diagnostics. The
// rendering core never does I/O; everything environmental lives here.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/zenith/pkg/color"
)

// DetectLevel determines the color capability of the given output.
// NO_COLOR and non-terminal outputs disable styling entirely; otherwise
// the terminal's reported profile decides.
func DetectLevel(output *os.File) color.Level {
	if os.Getenv("NO_COLOR") != "" {
		return color.LevelNone
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return color.LevelNone
	}

	switch termenv.ColorProfile() {
	case termenv.TrueColor:
		return color.LevelTrueColor
	case termenv.ANSI256:
		return color.LevelANSI256
	case termenv.ANSI:
		return color.LevelANSI16
	default:
		return color.LevelNone
	}
}

// ResolveLevel turns a --color flag value into a capability level:
// "auto" (or empty) detects from the output, anything else is parsed as
// an explicit level.
func ResolveLevel(flag string, output *os.File) (color.Level, error) {
	if flag == "" || flag == "auto" {
		return DetectLevel(output), nil
	}
	return color.ParseLevel(flag)
}
