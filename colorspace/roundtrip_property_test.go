package colorspace

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Any RGB triple survives a trip through hex formatting and parsing exactly.
func TestProperty_HexRoundTripExact(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("hexToRgb(rgbToHex(c)) == c", prop.ForAll(
		func(r, g, b int) bool {
			rgb := RGB{R: r, G: g, B: b}
			parsed, err := HexToRGB(RGBToHex(rgb))
			if err != nil {
				return false
			}
			return parsed == rgb
		},
		gen.IntRange(0, 255),
		gen.IntRange(0, 255),
		gen.IntRange(0, 255),
	))

	properties.TestingRun(t)
}

// Any RGB triple survives a trip through HSL within one unit per channel.
func TestProperty_HSLRoundTripTolerance(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("hslToRgb(rgbToHsl(c)) within ±1 of c", prop.ForAll(
		func(r, g, b int) bool {
			original := RGB{R: r, G: g, B: b}
			back := HSLToRGB(RGBToHSL(original))
			return within(back.R, original.R, 1) &&
				within(back.G, original.G, 1) &&
				within(back.B, original.B, 1)
		},
		gen.IntRange(0, 255),
		gen.IntRange(0, 255),
		gen.IntRange(0, 255),
	))

	properties.TestingRun(t)
}

// Any RGB triple survives a trip through HSV within one unit per channel.
func TestProperty_HSVRoundTripTolerance(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("hsvToRgb(rgbToHsv(c)) within ±1 of c", prop.ForAll(
		func(r, g, b int) bool {
			original := RGB{R: r, G: g, B: b}
			back := HSVToRGB(RGBToHSV(original))
			return within(back.R, original.R, 1) &&
				within(back.G, original.G, 1) &&
				within(back.B, original.B, 1)
		},
		gen.IntRange(0, 255),
		gen.IntRange(0, 255),
		gen.IntRange(0, 255),
	))

	properties.TestingRun(t)
}

// Conversion outputs always land in their valid domains.
func TestProperty_OutputsInRange(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("rgbToHsl stays in domain", prop.ForAll(
		func(r, g, b int) bool {
			hsl := RGBToHSL(RGB{R: r, G: g, B: b})
			return hsl.H >= 0 && hsl.H < 360 &&
				hsl.S >= 0 && hsl.S <= 100 &&
				hsl.L >= 0 && hsl.L <= 100
		},
		gen.IntRange(0, 255),
		gen.IntRange(0, 255),
		gen.IntRange(0, 255),
	))

	properties.Property("hslToRgb stays in domain even for wild inputs", prop.ForAll(
		func(h, s, l float64) bool {
			rgb := HSLToRGB(HSL{H: h, S: s, L: l})
			return rgb.R >= 0 && rgb.R <= 255 &&
				rgb.G >= 0 && rgb.G <= 255 &&
				rgb.B >= 0 && rgb.B <= 255
		},
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(-50, 150),
		gen.Float64Range(-50, 150),
	))

	properties.TestingRun(t)
}

func within(a, b, tolerance int) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}
