package colorspace

import "math/rand"

// GenerateOptions selects overrides for Generate. Nil fields are drawn
// uniformly from the field's domain; Palette, when set, seeds hue,
// saturation and lightness from a random entry of that palette before the
// other overrides apply.
type GenerateOptions struct {
	Hue        *float64
	Saturation *float64
	Lightness  *float64
	Alpha      *float64
	Palette    string
}

// GeneratedColor is the result of Generate, carrying every representation a
// caller might want.
type GeneratedColor struct {
	Hex   string  `json:"hex"`
	RGB   RGB     `json:"rgb"`
	HSL   HSL     `json:"hsl"`
	Alpha float64 `json:"alpha"`
}

// Generate produces a color from the options. A named palette that is not in
// the registry degrades to fully random generation; the UnknownPaletteError
// is returned alongside the generated color so callers can log the miss.
func Generate(opts GenerateOptions, reg *Registry) (GeneratedColor, error) {
	hsl := HSL{
		H: float64(rand.Intn(hueMax)),
		S: float64(rand.Intn(percentMax + 1)),
		L: float64(rand.Intn(percentMax + 1)),
	}

	var lookupErr error
	if opts.Palette != "" && reg != nil {
		if picked, err := reg.Pick(opts.Palette); err != nil {
			lookupErr = err
		} else if base, err := HexToHSL(picked); err == nil {
			hsl = base
		}
	}

	if opts.Hue != nil {
		hsl.H = wrapHue(*opts.Hue)
	}
	if opts.Saturation != nil {
		hsl.S = clampPercent(*opts.Saturation)
	}
	if opts.Lightness != nil {
		hsl.L = clampPercent(*opts.Lightness)
	}

	alpha := rand.Float64()
	if opts.Alpha != nil {
		alpha = *opts.Alpha
		if alpha < 0 {
			alpha = 0
		}
		if alpha > 1 {
			alpha = 1
		}
	}

	rgb := HSLToRGB(hsl)
	return GeneratedColor{
		Hex:   RGBToHex(rgb),
		RGB:   rgb,
		HSL:   hsl,
		Alpha: alpha,
	}, lookupErr
}
