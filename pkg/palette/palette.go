// Package palette derives a full named color palette from a single seed
// color and registers the results as markup aliases, so styling can say
// [primary-2] or [@surface1] instead of hard-coding hex values.
package palette

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/zenith/pkg/color"
	"github.com/arthur-debert/zenith/pkg/markup"
)

// Strategy derives the four main palette colors from a seed. The first
// returned color is always the seed itself.
type Strategy func(seed color.Color) [4]color.Color

// Triadic spaces the main colors a third of the color wheel apart, with
// the seed's complement as the fourth.
func Triadic(seed color.Color) [4]color.Color {
	return [4]color.Color{
		seed,
		seed.HueShift(1.0 / 3),
		seed.HueShift(2.0 / 3),
		seed.Complement(),
	}
}

// Analogous picks the two colors adjacent to the seed on the wheel, with
// the seed's complement as the fourth.
func Analogous(seed color.Color) [4]color.Color {
	return [4]color.Color{
		seed,
		seed.HueShift(1.0 / 12),
		seed.HueShift(2.0 / 12),
		seed.Complement(),
	}
}

// Tetradic spaces the four main colors evenly around the wheel
func Tetradic(seed color.Color) [4]color.Color {
	return [4]color.Color{
		seed,
		seed.HueShift(1.0 / 4),
		seed.HueShift(2.0 / 4),
		seed.HueShift(3.0 / 4),
	}
}

// Blend bases and alphas for the derived colors. Semantic colors tint a
// fixed base toward the seed so that success/warning/error stay
// recognizable across palettes while still matching the interface.
var (
	defaultSuccess = mustHex("#67eb7f")
	defaultWarning = mustHex("#ebe267")
	defaultError   = mustHex("#eb7067")
	defaultSurface = color.FromRGB(0, 0, 0)
)

const (
	semanticBlendAlpha = 0.3
	surfaceBlendAlpha  = 0.2
)

// Shade spacing used by Alias and RenderMarkup
const (
	defaultShadeCount = 3
	defaultShadeStep  = 0.1
)

func mustHex(hex string) color.Color {
	c, err := color.FromHex(hex)
	if err != nil {
		panic(fmt.Sprintf("bad builtin palette color %q: %v", hex, err))
	}
	return c
}

// Palette holds the colors derived from one seed: four main colors, an
// accent, three semantic colors, and a surface tint per main color.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Tertiary   color.Color
	Quaternary color.Color

	Accent color.Color

	Success color.Color
	Warning color.Color
	Error   color.Color

	Surface1 color.Color
	Surface2 color.Color
	Surface3 color.Color
	Surface4 color.Color

	// Namespace is prepended to every alias name this palette registers
	Namespace string

	aliased []string
}

// New derives a palette from a seed color. A nil strategy means Triadic.
// Derivation is deterministic: the same seed and strategy always produce
// the same palette.
func New(seed color.Color, strategy Strategy) *Palette {
	if strategy == nil {
		strategy = Triadic
	}

	main := strategy(seed)

	p := &Palette{
		Primary:    main[0],
		Secondary:  main[1],
		Tertiary:   main[2],
		Quaternary: main[3],

		Accent: seed.Complement(),

		Success: defaultSuccess.Blend(main[0], semanticBlendAlpha),
		Warning: defaultWarning.Blend(main[0], semanticBlendAlpha),
		Error:   defaultError.Blend(main[0], semanticBlendAlpha),
	}

	p.Surface1 = defaultSurface.Blend(p.Primary, surfaceBlendAlpha)
	p.Surface2 = defaultSurface.Blend(p.Secondary, surfaceBlendAlpha)
	p.Surface3 = defaultSurface.Blend(p.Tertiary, surfaceBlendAlpha)
	p.Surface4 = defaultSurface.Blend(p.Quaternary, surfaceBlendAlpha)

	return p
}

// FromHex derives a palette from a CSS-style hex seed
func FromHex(hex string, strategy Strategy) (*Palette, error) {
	seed, err := color.FromHex(hex)
	if err != nil {
		return nil, err
	}
	return New(seed, strategy), nil
}

// entry pairs an alias name with its color; Mapping keeps a fixed order
// so aliasing and rendering are reproducible.
type entry struct {
	name  string
	color color.Color
}

func (p *Palette) entries() []entry {
	return []entry{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"tertiary", p.Tertiary},
		{"quaternary", p.Quaternary},
		{"accent", p.Accent},
		{"success", p.Success},
		{"warning", p.Warning},
		{"error", p.Error},
		{"surface1", p.Surface1},
		{"surface2", p.Surface2},
		{"surface3", p.Surface3},
		{"surface4", p.Surface4},
	}
}

// Mapping returns the palette's name->color table
func (p *Palette) Mapping() map[string]color.Color {
	mapping := make(map[string]color.Color)
	for _, e := range p.entries() {
		mapping[e.name] = e.color
	}
	return mapping
}

// shadeName formats a shade key: "primary", "primary-2", "primary+3"
func shadeName(name string, step int) string {
	switch {
	case step < 0:
		return fmt.Sprintf("%s%d", name, step)
	case step > 0:
		return fmt.Sprintf("%s+%d", name, step)
	default:
		return name
	}
}

// shade returns the color at a lightness step away from base
func shade(base color.Color, step int) color.Color {
	switch {
	case step < 0:
		return base.Darken(-step, defaultShadeStep)
	case step > 0:
		return base.Lighten(step, defaultShadeStep)
	default:
		return base
	}
}

// Alias registers every palette color, plus shades up to three lightness
// steps in each direction, into the context's alias registry. Each name
// is registered twice: bare for foreground use and '@'-prefixed for
// background use. Re-aliasing overwrites prior registrations.
//
// After aliasing, markup like "[primary-2]x[/]" or "[@surface1]x[/]"
// resolves through the registry like any other tag word.
func (p *Palette) Alias(ctx *markup.Context) {
	if ctx == nil {
		ctx = markup.Default()
	}

	p.aliased = p.aliased[:0]

	for _, e := range p.entries() {
		for step := -defaultShadeCount; step <= defaultShadeCount; step++ {
			key := p.Namespace + shadeName(e.name, step)
			hex := shade(e.color, step).Hex()

			ctx.Alias(key, hex)
			ctx.Alias("@"+key, "@"+hex)
			p.aliased = append(p.aliased, key, "@"+key)
		}
	}
}

// Unalias removes every alias the last Alias call registered
func (p *Palette) Unalias(ctx *markup.Context) {
	if ctx == nil {
		ctx = markup.Default()
	}

	for _, key := range p.aliased {
		ctx.Unalias(key)
	}
	p.aliased = nil
}

// RenderMarkup returns a markup document showing off the palette: one
// column per color, one row per shade, with the base shade labeled.
// Render it through the markup package to see the swatches.
func (p *Palette) RenderMarkup() string {
	width := 0
	for _, e := range p.entries() {
		if len(e.name) > width {
			width = len(e.name)
		}
	}
	width += 4

	rows := make([][]string, 2*defaultShadeCount+1)

	for _, e := range p.entries() {
		for step := -defaultShadeCount; step <= defaultShadeCount; step++ {
			label := ""
			if step == 0 {
				label = e.name
			}

			pad := width - len(label)
			cell := fmt.Sprintf("[@%s]%s%s%s[/]",
				p.Namespace+shadeName(e.name, step),
				strings.Repeat(" ", pad/2),
				label,
				strings.Repeat(" ", pad-pad/2),
			)
			rows[step+defaultShadeCount] = append(rows[step+defaultShadeCount], cell)
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, " ")
	}
	return strings.Join(lines, "\n")
}
