package palette_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/zenith/pkg/color"
	"github.com/arthur-debert/zenith/pkg/markup"
	"github.com/arthur-debert/zenith/pkg/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, hex string) color.Color {
	t.Helper()
	c, err := color.FromHex(hex)
	require.NoError(t, err)
	return c
}

func TestStrategies(t *testing.T) {
	t.Run("triadic", func(t *testing.T) {
		s := seed(t, "#FABCDE")
		p := palette.New(s, palette.Triadic)

		assert.Equal(t, s, p.Primary)
		assert.Equal(t, s.HueShift(1.0/3), p.Secondary)
		assert.Equal(t, s.HueShift(2.0/3), p.Tertiary)
		assert.Equal(t, s.Complement(), p.Quaternary)
	})

	t.Run("analogous", func(t *testing.T) {
		s := seed(t, "#EDCBAF")
		p := palette.New(s, palette.Analogous)

		assert.Equal(t, s, p.Primary)
		assert.Equal(t, s.HueShift(1.0/12), p.Secondary)
		assert.Equal(t, s.HueShift(2.0/12), p.Tertiary)
		assert.Equal(t, s.Complement(), p.Quaternary)
	})

	t.Run("tetradic", func(t *testing.T) {
		s := seed(t, "#F45A11")
		p := palette.New(s, palette.Tetradic)

		assert.Equal(t, s, p.Primary)
		assert.Equal(t, s.HueShift(1.0/4), p.Secondary)
		assert.Equal(t, s.HueShift(2.0/4), p.Tertiary)
		assert.Equal(t, s.HueShift(3.0/4), p.Quaternary)
	})

	t.Run("nil strategy means triadic", func(t *testing.T) {
		s := seed(t, "#4A7A9F")
		assert.Equal(t, palette.New(s, palette.Triadic), palette.New(s, nil))
	})
}

func TestDerivationIsDeterministic(t *testing.T) {
	a, err := palette.FromHex("#4A7A9F", nil)
	require.NoError(t, err)

	b, err := palette.FromHex("#4A7A9F", nil)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestFromHexRejectsMalformedSeeds(t *testing.T) {
	_, err := palette.FromHex("#12345", nil)
	assert.Error(t, err)
}

func TestAlias(t *testing.T) {
	p, err := palette.FromHex("#42DFBC", nil)
	require.NoError(t, err)

	ctx := markup.NewContext()
	p.Alias(ctx)

	t.Run("base names resolve to the palette color", func(t *testing.T) {
		got, ok := ctx.LookupAlias("primary")
		require.True(t, ok)
		assert.Equal(t, p.Primary.Hex(), got)
	})

	t.Run("shade names step lightness", func(t *testing.T) {
		got, ok := ctx.LookupAlias("error-2")
		require.True(t, ok)
		assert.Equal(t, p.Error.Darken(2, 0.1).Hex(), got)

		got, ok = ctx.LookupAlias("success+3")
		require.True(t, ok)
		assert.Equal(t, p.Success.Lighten(3, 0.1).Hex(), got)
	})

	t.Run("background variants carry the prefix", func(t *testing.T) {
		got, ok := ctx.LookupAlias("@surface1")
		require.True(t, ok)
		assert.Equal(t, "@"+p.Surface1.Hex(), got)
	})

	t.Run("shades stop at the configured count", func(t *testing.T) {
		_, ok := ctx.LookupAlias("success+4")
		assert.False(t, ok)
		_, ok = ctx.LookupAlias("primary-5")
		assert.False(t, ok)
	})

	t.Run("aliased names render as colors", func(t *testing.T) {
		r := markup.NewRenderer(ctx, color.LevelTrueColor)

		out, err := r.Render("[primary-2]x[/]")
		require.NoError(t, err)

		want := "\x1b[" + p.Primary.Darken(2, 0.1).Sequence(false) + "mx\x1b[0m"
		assert.Equal(t, want, out)
	})

	t.Run("re-aliasing overwrites without error", func(t *testing.T) {
		other, err := palette.FromHex("#F45A11", nil)
		require.NoError(t, err)
		other.Alias(ctx)

		got, ok := ctx.LookupAlias("primary")
		require.True(t, ok)
		assert.Equal(t, other.Primary.Hex(), got)
	})
}

func TestUnalias(t *testing.T) {
	ctx := markup.NewContext()
	before := ctx.Aliases()

	p, err := palette.FromHex("#4A7A9F", nil)
	require.NoError(t, err)

	p.Alias(ctx)
	assert.NotEqual(t, before, ctx.Aliases())

	p.Unalias(ctx)
	assert.Equal(t, before, ctx.Aliases())
}

func TestNamespacing(t *testing.T) {
	p, err := palette.FromHex("#4A7A9F", nil)
	require.NoError(t, err)
	p.Namespace = "ui.1."

	ctx := markup.NewContext()
	p.Alias(ctx)

	_, ok := ctx.LookupAlias("ui.1.error")
	assert.True(t, ok)
	_, ok = ctx.LookupAlias("error")
	assert.False(t, ok)
}

func TestRenderMarkup(t *testing.T) {
	p, err := palette.FromHex("#4A7A9F", nil)
	require.NoError(t, err)

	ctx := markup.NewContext()
	p.Alias(ctx)

	doc := p.RenderMarkup()
	assert.Equal(t, 7, len(strings.Split(doc, "\n")))
	assert.Contains(t, doc, "[@primary]")
	assert.Contains(t, doc, "[@surface4-3]")

	for _, line := range strings.Split(doc, "\n") {
		out, err := markup.NewRenderer(ctx, color.LevelTrueColor).Render(line)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	}
}
