package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/zenith/pkg/errors"
)

// Form identifies the representation a color was declared in
type Form int

const (
	// FormANSI16 is a 16-color index (0-15)
	FormANSI16 Form = iota
	// FormANSI256 is an xterm 256-color index (0-255)
	FormANSI256
	// FormRGB is a 24-bit true color value
	FormRGB
)

// String returns the string representation of the form
func (f Form) String() string {
	switch f {
	case FormANSI16:
		return "ansi16"
	case FormANSI256:
		return "ansi256"
	case FormRGB:
		return "rgb"
	default:
		return "unknown"
	}
}

// Color is a terminal color: a canonical RGB value plus the form it was
// declared in. Indexed colors keep their index so re-emission and
// downsampling are exact.
type Color struct {
	R, G, B uint8
	Form    Form
	Index   uint8
}

// FromRGB creates a true color value from its channels
func FromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Form: FormRGB}
}

// FromIndex creates an indexed color. Indexes 0-15 are declared as
// 16-color values, 16-255 as 256-color values.
func FromIndex(index int) (Color, error) {
	if index < 0 || index > 255 {
		return Color{}, errors.Newf(errors.ErrColorRange,
			"indexed color %d is out of range; it should be between 0 and 255", index)
	}

	rgb := ansi256[index]
	form := FormANSI256
	if index < 16 {
		form = FormANSI16
	}

	return Color{R: rgb[0], G: rgb[1], B: rgb[2], Form: form, Index: uint8(index)}, nil
}

// FromHex parses a CSS-style hex color, with or without the leading '#'.
// Both the shorthand (#abc) and full (#aabbcc) notations are accepted.
func FromHex(hex string) (Color, error) {
	raw := strings.TrimPrefix(hex, "#")

	if len(raw) == 3 {
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
	}

	if len(raw) != 6 {
		return Color{}, errors.Newf(errors.ErrParse, "malformed hex color %q", hex)
	}

	value, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(err, errors.ErrParse, "malformed hex color %q", hex)
	}

	return FromRGB(uint8(value>>16), uint8(value>>8), uint8(value)), nil
}

// FromTriplet parses an "r;g;b" decimal triplet
func FromTriplet(triplet string) (Color, error) {
	parts := strings.Split(triplet, ";")
	if len(parts) != 3 {
		return Color{}, errors.Newf(errors.ErrColorRange, "malformed RGB triplet %q", triplet)
	}

	var channels [3]uint8
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return Color{}, errors.Wrapf(err, errors.ErrColorRange, "malformed RGB triplet %q", triplet)
		}
		if value < 0 || value > 255 {
			return Color{}, errors.Newf(errors.ErrColorRange,
				"RGB channel %d is out of range in %q", value, triplet)
		}
		channels[i] = uint8(value)
	}

	return FromRGB(channels[0], channels[1], channels[2]), nil
}

// FromName resolves a CSS named color (e.g. "lavender") to its value
func FromName(name string) (Color, bool) {
	hex, ok := cssColors[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}

	c, err := FromHex(hex)
	if err != nil {
		return Color{}, false
	}
	return c, true
}

// Hex returns the color as a CSS-style hex string
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer
func (c Color) String() string {
	switch c.Form {
	case FormANSI16, FormANSI256:
		return fmt.Sprintf("%d", c.Index)
	default:
		return c.Hex()
	}
}

// Sequence returns the SGR parameter body selecting this color as a
// foreground or background, in the color's declared form.
func (c Color) Sequence(background bool) string {
	offset := 0
	if background {
		offset = 10
	}

	switch c.Form {
	case FormANSI16:
		if c.Index < 8 {
			return strconv.Itoa(30 + offset + int(c.Index))
		}
		return strconv.Itoa(90 + offset + int(c.Index) - 8)
	case FormANSI256:
		return fmt.Sprintf("%d;5;%d", 38+offset, c.Index)
	default:
		return fmt.Sprintf("%d;2;%d;%d;%d", 38+offset, c.R, c.G, c.B)
	}
}
