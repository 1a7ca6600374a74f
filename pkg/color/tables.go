package color

// ansi16 holds the RGB values of the 16 base terminal colors, using the
// common xterm defaults.
var ansi16 = [16][3]uint8{
	{0, 0, 0},       // black
	{128, 0, 0},     // red
	{0, 128, 0},     // green
	{128, 128, 0},   // yellow
	{0, 0, 128},     // blue
	{128, 0, 128},   // magenta
	{0, 128, 128},   // cyan
	{192, 192, 192}, // white
	{128, 128, 128}, // bright black
	{255, 0, 0},     // bright red
	{0, 255, 0},     // bright green
	{255, 255, 0},   // bright yellow
	{0, 0, 255},     // bright blue
	{255, 0, 255},   // bright magenta
	{0, 255, 255},   // bright cyan
	{255, 255, 255}, // bright white
}

// cubeLevels are the channel values of the xterm 6x6x6 color cube
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// ansi256 holds the RGB values of the full xterm 256-color palette:
// the 16 base colors, the 6x6x6 cube (16-231), and the grayscale
// ramp (232-255).
var ansi256 = buildANSI256()

func buildANSI256() [256][3]uint8 {
	var table [256][3]uint8

	copy(table[:16], ansi16[:])

	for i := 16; i < 232; i++ {
		n := i - 16
		table[i] = [3]uint8{
			cubeLevels[n/36],
			cubeLevels[n/6%6],
			cubeLevels[n%6],
		}
	}

	for i := 232; i < 256; i++ {
		gray := uint8(8 + 10*(i-232))
		table[i] = [3]uint8{gray, gray, gray}
	}

	return table
}
