package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryBuiltins(t *testing.T) {
	reg := NewRegistry()

	galaxy, err := reg.Get("galaxy")
	require.NoError(t, err)
	assert.NotEmpty(t, galaxy)

	assert.Contains(t, reg.Names(), "nebula")
}

func TestRegistryRegisterValidates(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register("brand", []string{"#FF0000", "00ff00"})
	require.NoError(t, err)

	// Stored normalized to lowercase #rrggbb
	colors, err := reg.Get("brand")
	require.NoError(t, err)
	assert.Equal(t, []string{"#ff0000", "#00ff00"}, colors)

	err = reg.Register("bad", []string{"#ff0000", "nope"})
	require.Error(t, err)
	assert.IsType(t, FormatError{}, err)

	_, err = reg.Get("bad")
	assert.Error(t, err, "failed registration should not leave a partial palette")
}

func TestRegistryUnknownPalette(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get("missing")
	require.Error(t, err)
	assert.IsType(t, UnknownPaletteError{}, err)

	_, err = reg.Pick("missing")
	require.Error(t, err)
	assert.IsType(t, UnknownPaletteError{}, err)
}

func TestRegistryPickStaysInPalette(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("duo", []string{"#111111", "#222222"}))

	for i := 0; i < 20; i++ {
		picked, err := reg.Pick("duo")
		require.NoError(t, err)
		assert.Contains(t, []string{"#111111", "#222222"}, picked)
	}
}

func TestRegistryGetReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	colors, err := reg.Get("sunset")
	require.NoError(t, err)

	colors[0] = "#deadbe"
	again, err := reg.Get("sunset")
	require.NoError(t, err)
	assert.NotEqual(t, "#deadbe", again[0])
}

func TestGenerateDefaultsInDomain(t *testing.T) {
	for i := 0; i < 50; i++ {
		color, err := Generate(GenerateOptions{}, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, color.HSL.H, 0.0)
		assert.Less(t, color.HSL.H, 360.0)
		assert.GreaterOrEqual(t, color.HSL.S, 0.0)
		assert.LessOrEqual(t, color.HSL.S, 100.0)
		assert.GreaterOrEqual(t, color.Alpha, 0.0)
		assert.Less(t, color.Alpha, 1.0)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, color.Hex)
	}
}

func TestGenerateOverrides(t *testing.T) {
	hue := 120.0
	sat := 100.0
	light := 50.0
	alpha := 0.5

	color, err := Generate(GenerateOptions{
		Hue:        &hue,
		Saturation: &sat,
		Lightness:  &light,
		Alpha:      &alpha,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "#00ff00", color.Hex)
	assert.Equal(t, 0.5, color.Alpha)
}

func TestGenerateFromPalette(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("solo", []string{"#123456"}))

	color, err := Generate(GenerateOptions{Palette: "solo"}, reg)
	require.NoError(t, err)
	assert.Equal(t, "#123456", color.Hex)
}

func TestGenerateUnknownPaletteDegrades(t *testing.T) {
	reg := NewRegistry()

	color, err := Generate(GenerateOptions{Palette: "missing"}, reg)

	// Still produces a usable random color; the miss is reported as a
	// non-fatal lookup error.
	assert.Regexp(t, `^#[0-9a-f]{6}$`, color.Hex)
	assert.IsType(t, UnknownPaletteError{}, err)
}
