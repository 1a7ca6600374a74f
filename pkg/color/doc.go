// Package color implements the terminal color model used by the markup
// renderer and the palette generator.
//
// A Color is a canonical 24-bit RGB value that remembers the form it was
// declared in (16-color index, 256-color index, or true color). The declared
// form decides which escape sequence body the color produces, and makes
// downsampling reproducible: converting a color to a lower capability level
// is a pure function of its RGB value and the target level.
//
// The package also provides the color math the palette generator builds on:
// perceptual lightness stepping, hue rotation, blending, and W3C-style
// contrast selection.
package color
