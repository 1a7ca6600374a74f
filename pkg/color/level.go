package color

import (
	"fmt"
	"strings"
)

// Level represents a terminal's color capability
type Level int

const (
	// LevelNone disables all styling output
	LevelNone Level = iota
	// LevelANSI16 supports the 16 base colors
	LevelANSI16
	// LevelANSI256 supports the xterm 256-color palette
	LevelANSI256
	// LevelTrueColor supports 24-bit color
	LevelTrueColor
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelANSI16:
		return "16"
	case LevelANSI256:
		return "256"
	case LevelTrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}

// ParseLevel parses a string into a Level value
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "none", "never", "off":
		return LevelNone, nil
	case "16", "ansi", "ansi16":
		return LevelANSI16, nil
	case "256", "ansi256":
		return LevelANSI256, nil
	case "truecolor", "24bit", "full":
		return LevelTrueColor, nil
	default:
		return LevelNone, fmt.Errorf("unknown color level: %s", s)
	}
}
