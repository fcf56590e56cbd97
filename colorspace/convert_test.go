package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	rgb, err := HexToRGB("#ff8040")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 255, G: 128, B: 64}, rgb)

	// Leading # is optional and case does not matter
	rgb, err = HexToRGB("FF8040")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 255, G: 128, B: 64}, rgb)
}

func TestHexToRGBMalformed(t *testing.T) {
	for _, input := range []string{"not-a-color", "#fff", "#12345", "#gggggg", ""} {
		_, err := HexToRGB(input)
		require.Error(t, err, "input %q should not parse", input)
		assert.IsType(t, FormatError{}, err)
	}
}

func TestRGBToHex(t *testing.T) {
	assert.Equal(t, "#ff8040", RGBToHex(RGB{R: 255, G: 128, B: 64}))
	assert.Equal(t, "#000000", RGBToHex(RGB{}))

	// Out-of-range channels clamp rather than wrap
	assert.Equal(t, "#ff0000", RGBToHex(RGB{R: 300, G: -5, B: 0}))
}

func TestRGBToHSLAchromatic(t *testing.T) {
	hsl := RGBToHSL(RGB{R: 128, G: 128, B: 128})
	assert.Zero(t, hsl.H)
	assert.Zero(t, hsl.S)
	assert.InDelta(t, 50.2, hsl.L, 0.1)
}

func TestRGBToHSLPrimaries(t *testing.T) {
	red := RGBToHSL(RGB{R: 255})
	assert.InDelta(t, 0, red.H, 0.001)
	assert.InDelta(t, 100, red.S, 0.001)
	assert.InDelta(t, 50, red.L, 0.001)

	green := RGBToHSL(RGB{G: 255})
	assert.InDelta(t, 120, green.H, 0.001)

	blue := RGBToHSL(RGB{B: 255})
	assert.InDelta(t, 240, blue.H, 0.001)
}

func TestHSLToRGBGray(t *testing.T) {
	rgb := HSLToRGB(HSL{H: 0, S: 0, L: 50})
	assert.Equal(t, RGB{R: 128, G: 128, B: 128}, rgb)
}

func TestHueWraparound(t *testing.T) {
	wrapped := HSLToHex(HSL{H: 370, S: 50, L: 50})
	direct := HSLToHex(HSL{H: 10, S: 50, L: 50})
	assert.Equal(t, direct, wrapped)

	negative := HSLToHex(HSL{H: -350, S: 50, L: 50})
	assert.Equal(t, direct, negative)
}

func TestRGBToHSVValue(t *testing.T) {
	hsv := RGBToHSV(RGB{R: 255, G: 128, B: 0})
	assert.InDelta(t, 100, hsv.V, 0.001)
	assert.InDelta(t, 100, hsv.S, 0.001)

	black := RGBToHSV(RGB{})
	assert.Zero(t, black.S)
	assert.Zero(t, black.V)
}

func TestHSVToRGB(t *testing.T) {
	assert.Equal(t, RGB{R: 255}, HSVToRGB(HSV{H: 0, S: 100, V: 100}))
	assert.Equal(t, RGB{G: 255}, HSVToRGB(HSV{H: 120, S: 100, V: 100}))
	assert.Equal(t, RGB{R: 255, G: 255, B: 255}, HSVToRGB(HSV{H: 0, S: 0, V: 100}))
}

func TestConvertRoutesThroughRGB(t *testing.T) {
	out, err := Convert("#ff0000", "hex", "hsl")
	require.NoError(t, err)
	assert.Equal(t, "hsl(0,100%,50%)", out)

	out, err = Convert("rgb(0,0,255)", "rgb", "hex")
	require.NoError(t, err)
	assert.Equal(t, "#0000ff", out)

	out, err = Convert("hsl(120,100%,50%)", "hsl", "rgb")
	require.NoError(t, err)
	assert.Equal(t, "rgb(0,255,0)", out)

	out, err = Convert("hsv(240,100%,100%)", "hsv", "hex")
	require.NoError(t, err)
	assert.Equal(t, "#0000ff", out)
}

func TestConvertUnsupportedFormat(t *testing.T) {
	_, err := Convert("#ff0000", "hex", "cmyk")
	require.Error(t, err)
	assert.IsType(t, UnsupportedFormatError{}, err)

	_, err = Convert("#ff0000", "xyz", "hex")
	require.Error(t, err)
	assert.IsType(t, UnsupportedFormatError{}, err)
}

func TestConvertMalformedValue(t *testing.T) {
	_, err := Convert("nonsense", "rgb", "hex")
	require.Error(t, err)
	assert.IsType(t, FormatError{}, err)
}

func TestParseRGBVariants(t *testing.T) {
	for _, input := range []string{"rgb(12, 34, 56)", "12,34,56", "rgb(12,34,56)"} {
		rgb, err := ParseRGB(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, RGB{R: 12, G: 34, B: 56}, rgb)
	}
}

func TestParseHSLClampsAndWraps(t *testing.T) {
	hsl, err := ParseHSL("hsl(400, 150%, -10%)")
	require.NoError(t, err)
	assert.InDelta(t, 40, hsl.H, 0.001)
	assert.InDelta(t, 100, hsl.S, 0.001)
	assert.Zero(t, hsl.L)
}
