package models

import (
	"math"

	"github.com/jsversehub/colorapi/colorspace"
)

// ColorDetail is the full API envelope for a single color: every supported
// representation plus the derived brightness/contrast values.
type ColorDetail struct {
	Hex      ColorHex      `json:"hex"`
	RGB      ColorRGB      `json:"rgb"`
	HSL      ColorHSL      `json:"hsl"`
	HSV      ColorHSV      `json:"hsv"`
	Contrast ColorContrast `json:"contrast"`
}

type ColorHex struct {
	Value string `json:"value"`
	Clean string `json:"clean"`
}

type ColorRGB struct {
	R     int    `json:"r"`
	G     int    `json:"g"`
	B     int    `json:"b"`
	Value string `json:"value"`
}

type ColorHSL struct {
	H     int    `json:"h"`
	S     int    `json:"s"`
	L     int    `json:"l"`
	Value string `json:"value"`
}

type ColorHSV struct {
	H     int    `json:"h"`
	S     int    `json:"s"`
	V     int    `json:"v"`
	Value string `json:"value"`
}

type ColorContrast struct {
	Brightness int    `json:"brightness"`
	IsLight    bool   `json:"isLight"`
	Value      string `json:"value"`
}

// NewColorDetail builds the envelope for an RGB color. Derived values cannot
// fail here: the hex we feed back into the contrast helpers is produced by
// RGBToHex and always well formed.
func NewColorDetail(rgb colorspace.RGB) ColorDetail {
	hex := colorspace.RGBToHex(rgb)
	hsl := colorspace.RGBToHSL(rgb)
	hsv := colorspace.RGBToHSV(rgb)

	brightness, _ := colorspace.Brightness(hex)
	light, _ := colorspace.IsLight(hex)
	contrast, _ := colorspace.ContrastColor(hex)

	return ColorDetail{
		Hex: ColorHex{Value: hex, Clean: hex[1:]},
		RGB: ColorRGB{R: rgb.R, G: rgb.G, B: rgb.B, Value: rgb.String()},
		HSL: ColorHSL{
			H:     int(math.Round(hsl.H)),
			S:     int(math.Round(hsl.S)),
			L:     int(math.Round(hsl.L)),
			Value: hsl.String(),
		},
		HSV: ColorHSV{
			H:     int(math.Round(hsv.H)),
			S:     int(math.Round(hsv.S)),
			V:     int(math.Round(hsv.V)),
			Value: hsv.String(),
		},
		Contrast: ColorContrast{
			Brightness: brightness,
			IsLight:    light,
			Value:      contrast,
		},
	}
}
