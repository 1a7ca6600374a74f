package color

import "math"

// Colors used for automatic contrast selection. Slightly off-white and
// off-black read better than the pure values on most displays.
var (
	OffWhite = FromRGB(245, 245, 245)
	OffBlack = FromRGB(35, 35, 35)
)

// luminanceThreshold is the W3C-style cutoff between light and dark
// backgrounds.
const luminanceThreshold = 0.179

// Luminance returns the color's relative luminance, computed from
// gamma-linearized sRGB channels.
func (c Color) Luminance() float64 {
	linearize := func(channel float64) float64 {
		if channel <= 0.04045 {
			return channel / 12.92
		}
		return math.Pow((channel+0.055)/1.055, 2.4)
	}

	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns a readable foreground color (off-white or off-black)
// for text drawn over this color.
func (c Color) Contrast() Color {
	if c.Luminance() > luminanceThreshold {
		return OffBlack
	}
	return OffWhite
}
