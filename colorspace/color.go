package colorspace

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Component maximums for the supported color models.
const (
	hueMax     = 360
	percentMax = 100
	channelMax = 255
	lightPivot = 127 // brightness above this counts as light
)

// RGB is a color with integer channels in [0, 255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL is a color with hue in degrees [0, 360) and saturation/lightness as
// percentages [0, 100]. Components stay floating point so that conversion
// round trips lose at most one unit per RGB channel; rounding happens only
// when rendering.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// HSV is a color with hue in degrees [0, 360) and saturation/value as
// percentages [0, 100].
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// HexToRGB parses a 6-digit hex string, with or without a leading #.
func HexToRGB(hex string) (RGB, error) {
	match := hexPattern.FindStringSubmatch(strings.TrimSpace(hex))
	if match == nil {
		return RGB{}, FormatError{Input: hex, Format: "hex"}
	}

	digits := match[1]
	r, _ := strconv.ParseInt(digits[0:2], 16, 32)
	g, _ := strconv.ParseInt(digits[2:4], 16, 32)
	b, _ := strconv.ParseInt(digits[4:6], 16, 32)

	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

// RGBToHex renders a color as a lowercase #rrggbb string. Channels outside
// [0, 255] are clamped first.
func RGBToHex(rgb RGB) string {
	return fmt.Sprintf("#%02x%02x%02x",
		clampChannel(rgb.R),
		clampChannel(rgb.G),
		clampChannel(rgb.B),
	)
}

func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", rgb.R, rgb.G, rgb.B)
}

func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%d,%d%%,%d%%)",
		int(math.Round(hsl.H)), int(math.Round(hsl.S)), int(math.Round(hsl.L)))
}

func (hsv HSV) String() string {
	return fmt.Sprintf("hsv(%d,%d%%,%d%%)",
		int(math.Round(hsv.H)), int(math.Round(hsv.S)), int(math.Round(hsv.V)))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > channelMax {
		return channelMax
	}
	return v
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > percentMax {
		return percentMax
	}
	return v
}

// wrapHue maps any hue, including negative offsets, into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, hueMax)
	if h < 0 {
		h += hueMax
	}
	return h
}
