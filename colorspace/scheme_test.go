package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchemeTriadic(t *testing.T) {
	scheme, err := GenerateScheme("#ff0000", RuleTriadic, 5)
	require.NoError(t, err)

	// The rule produces 3 colors; count caps but never pads.
	require.Len(t, scheme, 3)
	assert.Equal(t, "#ff0000", scheme[0])
	assert.Equal(t, "#00ff00", scheme[1])
	assert.Equal(t, "#0000ff", scheme[2])
}

func TestGenerateSchemeTetradic(t *testing.T) {
	scheme, err := GenerateScheme("#ff0000", RuleTetradic, 0)
	require.NoError(t, err)
	require.Len(t, scheme, 4)
	assert.Equal(t, "#ff0000", scheme[0])
	assert.Equal(t, "#80ff00", scheme[1])
	assert.Equal(t, "#00ffff", scheme[2])
	assert.Equal(t, "#8000ff", scheme[3])
}

func TestGenerateSchemeMonochromatic(t *testing.T) {
	scheme, err := GenerateScheme("#3f3fbf", RuleMonochromatic, 0)
	require.NoError(t, err)
	require.Len(t, scheme, 7)

	// Lightness climbs from 20 to the 90 ceiling; hue stays put.
	base, err := HexToHSL("#3f3fbf")
	require.NoError(t, err)
	for i, hex := range scheme {
		hsl, err := HexToHSL(hex)
		require.NoError(t, err)
		assert.InDelta(t, base.H, hsl.H, 2, "entry %d drifted in hue", i)
	}
	last, err := HexToHSL(scheme[6])
	require.NoError(t, err)
	assert.InDelta(t, 90, last.L, 1)
}

func TestGenerateSchemeMonochromaticTruncates(t *testing.T) {
	scheme, err := GenerateScheme("#3f3fbf", RuleMonochromatic, 4)
	require.NoError(t, err)
	assert.Len(t, scheme, 4)
}

func TestGenerateSchemeAnalogous(t *testing.T) {
	scheme, err := GenerateScheme("#ff0000", RuleAnalogous, 0)
	require.NoError(t, err)
	require.Len(t, scheme, 5)

	wantHues := []float64{300, 330, 0, 30, 60}
	for i, hex := range scheme {
		hsl, err := HexToHSL(hex)
		require.NoError(t, err)
		assert.InDelta(t, wantHues[i], hsl.H, 1, "entry %d", i)
	}
}

func TestGenerateSchemeSplitComplementary(t *testing.T) {
	scheme, err := GenerateScheme("#ff0000", RuleSplitComplementary, 0)
	require.NoError(t, err)
	require.Len(t, scheme, 3)

	wantHues := []float64{0, 150, 210}
	for i, hex := range scheme {
		hsl, err := HexToHSL(hex)
		require.NoError(t, err)
		assert.InDelta(t, wantHues[i], hsl.H, 1, "entry %d", i)
	}
}

func TestGenerateSchemeComplementary(t *testing.T) {
	scheme, err := GenerateScheme("#ff0000", RuleComplementary, 0)
	require.NoError(t, err)
	require.Len(t, scheme, 4)
	assert.Equal(t, "#ff0000", scheme[0])

	complement, err := HexToHSL(scheme[1])
	require.NoError(t, err)
	assert.InDelta(t, 180, complement.H, 1)
}

func TestGenerateSchemeUnknownRuleFallsBack(t *testing.T) {
	scheme, err := GenerateScheme("#ff0000", "vaporwave", 5)

	// Degrades to the base color alone; the error is a warning, not fatal.
	require.Len(t, scheme, 1)
	assert.Equal(t, "#ff0000", scheme[0])
	assert.IsType(t, UnknownHarmonyError{}, err)
}

func TestGenerateSchemeMalformedBase(t *testing.T) {
	_, err := GenerateScheme("not-a-color", RuleTriadic, 3)
	require.Error(t, err)
	assert.IsType(t, FormatError{}, err)
}
