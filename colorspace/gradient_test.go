package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGradientEndpoints(t *testing.T) {
	gradient, err := GenerateGradient("#000000", "#ffffff", 5)
	require.NoError(t, err)
	require.Len(t, gradient, 5)

	assert.Equal(t, "#000000", gradient[0])
	assert.Equal(t, "#ffffff", gradient[4])
	assert.Equal(t, "#808080", gradient[2])
}

func TestGenerateGradientTwoSteps(t *testing.T) {
	gradient, err := GenerateGradient("#112233", "#445566", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"#112233", "#445566"}, gradient)
}

func TestGenerateGradientTooFewSteps(t *testing.T) {
	_, err := GenerateGradient("#000000", "#ffffff", 1)
	assert.Error(t, err)
}

func TestGenerateGradientMalformedEndpoint(t *testing.T) {
	_, err := GenerateGradient("nope", "#ffffff", 3)
	require.Error(t, err)
	assert.IsType(t, FormatError{}, err)

	_, err = GenerateGradient("#ffffff", "nope", 3)
	require.Error(t, err)
	assert.IsType(t, FormatError{}, err)
}

func TestBrightness(t *testing.T) {
	for _, tc := range []struct {
		hex  string
		want int
	}{
		{"#000000", 0},
		{"#ffffff", 255},
		{"#ff0000", 76},
		{"#00ff00", 150},
		{"#0000ff", 29},
	} {
		got, err := Brightness(tc.hex)
		require.NoError(t, err, tc.hex)
		assert.Equal(t, tc.want, got, tc.hex)
	}
}

func TestIsLight(t *testing.T) {
	light, err := IsLight("#ffffff")
	require.NoError(t, err)
	assert.True(t, light)

	light, err = IsLight("#000080")
	require.NoError(t, err)
	assert.False(t, light)
}

func TestContrastColor(t *testing.T) {
	contrast, err := ContrastColor("#ffffff")
	require.NoError(t, err)
	assert.Equal(t, "#000000", contrast)

	contrast, err = ContrastColor("#000000")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", contrast)
}

func TestContrastColorMalformed(t *testing.T) {
	_, err := ContrastColor("zzz")
	require.Error(t, err)
	assert.IsType(t, FormatError{}, err)
}
