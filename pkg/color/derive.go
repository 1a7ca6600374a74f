package color

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// colorful converts to a go-colorful color for color-space math
func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// fromColorful converts back from go-colorful, clamping out-of-gamut
// values. Derived colors are always true color.
func fromColorful(cc colorful.Color) Color {
	clamped := cc.Clamped()
	return FromRGB(
		uint8(math.Round(clamped.R*255)),
		uint8(math.Round(clamped.G*255)),
		uint8(math.Round(clamped.B*255)),
	)
}

// Lighten raises the color's perceptual lightness by steps increments of
// stepSize, clamped to the valid range. Stepping happens in HCL space so
// hue stays stable.
func (c Color) Lighten(steps int, stepSize float64) Color {
	h, chroma, l := c.colorful().Hcl()

	l += float64(steps) * stepSize
	l = math.Max(0, math.Min(1, l))

	return fromColorful(colorful.Hcl(h, chroma, l))
}

// Darken lowers the color's perceptual lightness; the mirror of Lighten
func (c Color) Darken(steps int, stepSize float64) Color {
	return c.Lighten(-steps, stepSize)
}

// HueShift rotates the color's hue by the given fraction of a full turn,
// preserving saturation and lightness.
func (c Color) HueShift(fraction float64) Color {
	h, s, l := c.colorful().Hsl()

	h = math.Mod(h+fraction*360, 360)
	if h < 0 {
		h += 360
	}

	return fromColorful(colorful.Hsl(h, s, l))
}

// Complement returns the color's complementary color (hue rotated by half
// a turn).
func (c Color) Complement() Color {
	return c.HueShift(0.5)
}

// Blend mixes the color with another in RGB space. An alpha of 0 returns
// the receiver unchanged, 1 returns other.
func (c Color) Blend(other Color, alpha float64) Color {
	return fromColorful(c.colorful().BlendRgb(other.colorful(), alpha))
}
