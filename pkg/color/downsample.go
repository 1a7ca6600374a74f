package color

// Downsample converts the color to the nearest value representable at the
// given capability level. Colors already representable are returned
// unchanged, so the operation is idempotent. The result is a pure function
// of the RGB value and the target level; ties are broken by the lowest
// palette index.
func (c Color) Downsample(level Level) Color {
	switch level {
	case LevelANSI16:
		if c.Form == FormANSI16 {
			return c
		}
		index := nearestIndex(c, ansi16[:])
		rgb := ansi16[index]
		return Color{R: rgb[0], G: rgb[1], B: rgb[2], Form: FormANSI16, Index: uint8(index)}

	case LevelANSI256:
		if c.Form != FormRGB {
			return c
		}
		index := nearestIndex(c, ansi256[:])
		rgb := ansi256[index]
		form := FormANSI256
		if index < 16 {
			form = FormANSI16
		}
		return Color{R: rgb[0], G: rgb[1], B: rgb[2], Form: form, Index: uint8(index)}

	default:
		// True color never needs conversion; LevelNone colors are
		// dropped by the renderer before reaching this point.
		return c
	}
}

// nearestIndex finds the table entry with the smallest squared Euclidean
// distance to the color. The first match wins on ties.
func nearestIndex(c Color, table [][3]uint8) int {
	best := 0
	bestDist := 1 << 30

	for i, entry := range table {
		dr := int(c.R) - int(entry[0])
		dg := int(c.G) - int(entry[1])
		db := int(c.B) - int(entry[2])

		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	return best
}
