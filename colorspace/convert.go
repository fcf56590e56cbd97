package colorspace

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Format names accepted by Convert.
const (
	FormatHex = "hex"
	FormatRGB = "rgb"
	FormatHSL = "hsl"
	FormatHSV = "hsv"
)

// RGBToHSL converts integer RGB channels to HSL. The achromatic case
// (equal channels) yields hue 0 and saturation 0.
func RGBToHSL(rgb RGB) HSL {
	r := float64(clampChannel(rgb.R)) / channelMax
	g := float64(clampChannel(rgb.G)) / channelMax
	b := float64(clampChannel(rgb.B)) / channelMax

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l * percentMax}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{H: wrapHue(h), S: s * percentMax, L: l * percentMax}
}

// HSLToRGB converts HSL back to integer RGB channels. Hue wraps modulo 360;
// saturation and lightness are clamped into [0, 100].
func HSLToRGB(hsl HSL) RGB {
	h := wrapHue(hsl.H) / hueMax
	s := clampPercent(hsl.S) / percentMax
	l := clampPercent(hsl.L) / percentMax

	if s == 0 {
		v := roundChannel(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: roundChannel(hueToChannel(p, q, h+1.0/3.0)),
		G: roundChannel(hueToChannel(p, q, h)),
		B: roundChannel(hueToChannel(p, q, h-1.0/3.0)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

func roundChannel(v float64) int {
	return clampChannel(int(math.Round(v * channelMax)))
}

// RGBToHSV converts integer RGB channels to HSV. Value is the maximum
// channel; saturation is 0 when the maximum channel is 0.
func RGBToHSV(rgb RGB) HSV {
	r := float64(clampChannel(rgb.R)) / channelMax
	g := float64(clampChannel(rgb.G)) / channelMax
	b := float64(clampChannel(rgb.B)) / channelMax

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	d := max - min

	var s float64
	if max > 0 {
		s = d / max
	}

	var h float64
	if d > 0 {
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h *= 60
	}

	return HSV{H: wrapHue(h), S: s * percentMax, V: max * percentMax}
}

// HSVToRGB converts HSV back to integer RGB channels.
func HSVToRGB(hsv HSV) RGB {
	h := wrapHue(hsv.H) / 60
	s := clampPercent(hsv.S) / percentMax
	v := clampPercent(hsv.V) / percentMax

	sector := int(math.Floor(h)) % 6
	f := h - math.Floor(h)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGB{R: roundChannel(r), G: roundChannel(g), B: roundChannel(b)}
}

// HexToHSL parses a hex string and converts it to HSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// HSLToHex converts HSL to a lowercase #rrggbb string.
func HSLToHex(hsl HSL) string {
	return RGBToHex(HSLToRGB(hsl))
}

// HexToHSV parses a hex string and converts it to HSV.
func HexToHSV(hex string) (HSV, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSV{}, err
	}
	return RGBToHSV(rgb), nil
}

// HSVToHex converts HSV to a lowercase #rrggbb string.
func HSVToHex(hsv HSV) string {
	return RGBToHex(HSVToRGB(hsv))
}

// Convert translates a color string between two named formats, routing
// through RGB as the common intermediate. Accepted formats are hex, rgb,
// hsl and hsv. A malformed value fails with FormatError; an unrecognized
// format name fails with UnsupportedFormatError.
func Convert(value, from, to string) (string, error) {
	rgb, err := parseAs(value, strings.ToLower(from))
	if err != nil {
		return "", err
	}
	return formatAs(rgb, strings.ToLower(to))
}

func parseAs(value, format string) (RGB, error) {
	switch format {
	case FormatHex:
		return HexToRGB(value)
	case FormatRGB:
		return ParseRGB(value)
	case FormatHSL:
		hsl, err := ParseHSL(value)
		if err != nil {
			return RGB{}, err
		}
		return HSLToRGB(hsl), nil
	case FormatHSV:
		hsv, err := ParseHSV(value)
		if err != nil {
			return RGB{}, err
		}
		return HSVToRGB(hsv), nil
	default:
		return RGB{}, UnsupportedFormatError{Format: format}
	}
}

func formatAs(rgb RGB, format string) (string, error) {
	switch format {
	case FormatHex:
		return RGBToHex(rgb), nil
	case FormatRGB:
		return rgb.String(), nil
	case FormatHSL:
		return RGBToHSL(rgb).String(), nil
	case FormatHSV:
		return RGBToHSV(rgb).String(), nil
	default:
		return "", UnsupportedFormatError{Format: format}
	}
}

var tripletPattern = regexp.MustCompile(`^[a-zA-Z]*\(?\s*(-?[\d.]+)\s*,\s*(-?[\d.]+)%?\s*,\s*(-?[\d.]+)%?\s*\)?$`)

func parseTriplet(value, format string) (a, b, c float64, err error) {
	match := tripletPattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return 0, 0, 0, FormatError{Input: value, Format: format}
	}
	for i, out := range []*float64{&a, &b, &c} {
		v, parseErr := strconv.ParseFloat(match[i+1], 64)
		if parseErr != nil {
			return 0, 0, 0, FormatError{Input: value, Format: format}
		}
		*out = v
	}
	return a, b, c, nil
}

// ParseRGB parses "rgb(r,g,b)" or a bare "r,g,b" triplet. Channels clamp
// into [0, 255].
func ParseRGB(value string) (RGB, error) {
	r, g, b, err := parseTriplet(value, FormatRGB)
	if err != nil {
		return RGB{}, err
	}
	return RGB{
		R: clampChannel(int(math.Round(r))),
		G: clampChannel(int(math.Round(g))),
		B: clampChannel(int(math.Round(b))),
	}, nil
}

// ParseHSL parses "hsl(h,s%,l%)" or a bare "h,s,l" triplet.
func ParseHSL(value string) (HSL, error) {
	h, s, l, err := parseTriplet(value, FormatHSL)
	if err != nil {
		return HSL{}, err
	}
	return HSL{H: wrapHue(h), S: clampPercent(s), L: clampPercent(l)}, nil
}

// ParseHSV parses "hsv(h,s%,v%)" or a bare "h,s,v" triplet.
func ParseHSV(value string) (HSV, error) {
	h, s, v, err := parseTriplet(value, FormatHSV)
	if err != nil {
		return HSV{}, err
	}
	return HSV{H: wrapHue(h), S: clampPercent(s), V: clampPercent(v)}, nil
}
