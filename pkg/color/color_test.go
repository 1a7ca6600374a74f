package color

import (
	"testing"

	"github.com/arthur-debert/zenith/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromIndex(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		wantForm Form
		wantRGB  [3]uint8
	}{
		{name: "black", index: 0, wantForm: FormANSI16, wantRGB: [3]uint8{0, 0, 0}},
		{name: "red", index: 1, wantForm: FormANSI16, wantRGB: [3]uint8{128, 0, 0}},
		{name: "bright_white", index: 15, wantForm: FormANSI16, wantRGB: [3]uint8{255, 255, 255}},
		{name: "cube_start", index: 16, wantForm: FormANSI256, wantRGB: [3]uint8{0, 0, 0}},
		{name: "cube_end", index: 231, wantForm: FormANSI256, wantRGB: [3]uint8{255, 255, 255}},
		{name: "gray_ramp", index: 232, wantForm: FormANSI256, wantRGB: [3]uint8{8, 8, 8}},
		{name: "last_gray", index: 255, wantForm: FormANSI256, wantRGB: [3]uint8{238, 238, 238}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromIndex(tt.index)
			require.NoError(t, err)

			assert.Equal(t, tt.wantForm, c.Form)
			assert.Equal(t, uint8(tt.index), c.Index)
			assert.Equal(t, tt.wantRGB, [3]uint8{c.R, c.G, c.B})
		})
	}

	t.Run("out of range", func(t *testing.T) {
		_, err := FromIndex(333)
		assert.True(t, errors.IsErrorCode(err, errors.ErrColorRange))

		_, err = FromIndex(-1)
		assert.True(t, errors.IsErrorCode(err, errors.ErrColorRange))
	})
}

func TestFromHex(t *testing.T) {
	t.Run("full notation", func(t *testing.T) {
		c, err := FromHex("#4a7a9f")
		require.NoError(t, err)

		assert.Equal(t, FormRGB, c.Form)
		assert.Equal(t, [3]uint8{0x4a, 0x7a, 0x9f}, [3]uint8{c.R, c.G, c.B})
		assert.Equal(t, "#4a7a9f", c.Hex())
	})

	t.Run("without hash", func(t *testing.T) {
		c, err := FromHex("dedede")
		require.NoError(t, err)
		assert.Equal(t, "#dedede", c.Hex())
	})

	t.Run("shorthand", func(t *testing.T) {
		c, err := FromHex("#abc")
		require.NoError(t, err)
		assert.Equal(t, "#aabbcc", c.Hex())
	})

	t.Run("malformed", func(t *testing.T) {
		for _, input := range []string{"#12345", "#gghhii", "nope", ""} {
			_, err := FromHex(input)
			assert.True(t, errors.IsErrorCode(err, errors.ErrParse), "input %q", input)
		}
	})
}

func TestFromTriplet(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := FromTriplet("11;22;123")
		require.NoError(t, err)
		assert.Equal(t, [3]uint8{11, 22, 123}, [3]uint8{c.R, c.G, c.B})
	})

	t.Run("invalid", func(t *testing.T) {
		for _, input := range []string{"1;2", "1;2;3;4", "a;b;c", "300;0;0", "-1;0;0"} {
			_, err := FromTriplet(input)
			assert.True(t, errors.IsErrorCode(err, errors.ErrColorRange), "input %q", input)
		}
	})
}

func TestFromName(t *testing.T) {
	c, ok := FromName("lavender")
	require.True(t, ok)
	assert.Equal(t, "#e6e6fa", c.Hex())

	c, ok = FromName("CadetBlue")
	require.True(t, ok)
	assert.Equal(t, "#5f9ea0", c.Hex())

	_, ok = FromName("not-a-color")
	assert.False(t, ok)
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name       string
		color      func() Color
		background bool
		want       string
	}{
		{name: "base_fg", color: index(1), want: "31"},
		{name: "base_bg", color: index(0), background: true, want: "40"},
		{name: "bright_fg", color: index(15), want: "97"},
		{name: "bright_bg", color: index(9), background: true, want: "101"},
		{name: "indexed_fg", color: index(141), want: "38;5;141"},
		{name: "indexed_bg", color: index(54), background: true, want: "48;5;54"},
		{name: "rgb_fg", color: func() Color { return FromRGB(255, 0, 0) }, want: "38;2;255;0;0"},
		{name: "rgb_bg", color: func() Color { return FromRGB(33, 33, 33) }, background: true, want: "48;2;33;33;33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color().Sequence(tt.background))
		})
	}
}

func index(n int) func() Color {
	return func() Color {
		c, err := FromIndex(n)
		if err != nil {
			panic(err)
		}
		return c
	}
}

func TestDownsample(t *testing.T) {
	t.Run("truecolor passthrough", func(t *testing.T) {
		c := FromRGB(74, 122, 159)
		assert.Equal(t, c, c.Downsample(LevelTrueColor))
	})

	t.Run("16-color value survives 16-color downsampling", func(t *testing.T) {
		c, _ := FromIndex(3)
		assert.Equal(t, c, c.Downsample(LevelANSI16))
	})

	t.Run("indexed value survives 256-color downsampling", func(t *testing.T) {
		c, _ := FromIndex(141)
		assert.Equal(t, c, c.Downsample(LevelANSI256))
	})

	t.Run("exact table values round-trip", func(t *testing.T) {
		// 95;135;175 is cube entry 67
		c, err := FromTriplet("95;135;175")
		require.NoError(t, err)

		down := c.Downsample(LevelANSI256)
		assert.Equal(t, uint8(67), down.Index)
		assert.Equal(t, [3]uint8{95, 135, 175}, [3]uint8{down.R, down.G, down.B})
	})

	t.Run("pure red maps to bright red", func(t *testing.T) {
		down := FromRGB(255, 0, 0).Downsample(LevelANSI16)
		assert.Equal(t, uint8(9), down.Index)
	})

	t.Run("deterministic", func(t *testing.T) {
		c := FromRGB(74, 122, 159)
		assert.Equal(t, c.Downsample(LevelANSI256), c.Downsample(LevelANSI256))
		assert.Equal(t, c.Downsample(LevelANSI16), c.Downsample(LevelANSI16))
	})

	t.Run("downsampling is idempotent", func(t *testing.T) {
		c := FromRGB(74, 122, 159)

		once := c.Downsample(LevelANSI256)
		assert.Equal(t, once, once.Downsample(LevelANSI256))

		small := c.Downsample(LevelANSI16)
		assert.Equal(t, small, small.Downsample(LevelANSI16))
	})

	t.Run("ties break toward the lowest index", func(t *testing.T) {
		// 64,64,64 is equidistant from black (0) and... verify stability:
		// running twice must give the same index.
		c := FromRGB(64, 64, 64)
		assert.Equal(t, c.Downsample(LevelANSI16).Index, c.Downsample(LevelANSI16).Index)
	})
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 0.0376950966, FromRGB(38, 45, 125).Luminance(), 1e-9)
	assert.InDelta(t, 0.2009973426, FromRGB(145, 121, 67).Luminance(), 1e-9)
	assert.InDelta(t, 0, FromRGB(0, 0, 0).Luminance(), 1e-12)
	assert.InDelta(t, 1, FromRGB(255, 255, 255).Luminance(), 1e-9)
}

func TestContrast(t *testing.T) {
	assert.Equal(t, OffWhite, FromRGB(0, 0, 0).Contrast())
	assert.Equal(t, OffBlack, FromRGB(255, 255, 255).Contrast())
	assert.Equal(t, OffWhite, FromRGB(67, 10, 193).Contrast())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "16", want: LevelANSI16},
		{input: "256", want: LevelANSI256},
		{input: "truecolor", want: LevelTrueColor},
		{input: "none", want: LevelNone},
		{input: "never", want: LevelNone},
		{input: "potato", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
