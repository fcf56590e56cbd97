package colorspace

// Harmony rule names accepted by GenerateScheme.
const (
	RuleMonochromatic      = "monochromatic"
	RuleAnalogous          = "analogous"
	RuleComplementary      = "complementary"
	RuleTriadic            = "triadic"
	RuleTetradic           = "tetradic"
	RuleSplitComplementary = "splitComplementary"
)

// HarmonyRules lists every known rule name.
var HarmonyRules = []string{
	RuleMonochromatic,
	RuleAnalogous,
	RuleComplementary,
	RuleTriadic,
	RuleTetradic,
	RuleSplitComplementary,
}

// GenerateScheme derives an ordered set of hex colors related to baseHex by
// the named harmony rule, truncated to at most count entries (count <= 0
// keeps everything the rule produces; rules producing fewer than count
// colors are not padded).
//
// A malformed base color fails with FormatError. An unknown rule degrades to
// the base color alone, returned alongside UnknownHarmonyError so callers
// can log the miss without treating it as fatal.
func GenerateScheme(baseHex, rule string, count int) ([]string, error) {
	base, err := HexToHSL(baseHex)
	if err != nil {
		return nil, err
	}

	var scheme []HSL
	switch rule {
	case RuleMonochromatic:
		// 7 lightness steps at fixed hue and saturation.
		for i := 0; i < 7; i++ {
			l := float64(20 + 12*i)
			if l < 10 {
				l = 10
			}
			if l > 90 {
				l = 90
			}
			scheme = append(scheme, HSL{H: base.H, S: base.S, L: l})
		}
	case RuleAnalogous:
		for _, offset := range []float64{-60, -30, 0, 30, 60} {
			scheme = append(scheme, hueShift(base, offset))
		}
	case RuleComplementary:
		complement := hueShift(base, 180)
		scheme = append(scheme,
			base,
			complement,
			soften(base),
			soften(complement),
		)
	case RuleTriadic:
		scheme = append(scheme, base, hueShift(base, 120), hueShift(base, 240))
	case RuleTetradic:
		scheme = append(scheme, base, hueShift(base, 90), hueShift(base, 180), hueShift(base, 270))
	case RuleSplitComplementary:
		scheme = append(scheme, base, hueShift(base, 150), hueShift(base, 210))
	default:
		return []string{RGBToHex(HSLToRGB(base))}, UnknownHarmonyError{Rule: rule}
	}

	if count > 0 && len(scheme) > count {
		scheme = scheme[:count]
	}

	hexes := make([]string, len(scheme))
	for i, hsl := range scheme {
		hexes[i] = HSLToHex(hsl)
	}
	return hexes, nil
}

func hueShift(hsl HSL, degrees float64) HSL {
	return HSL{H: wrapHue(hsl.H + degrees), S: hsl.S, L: hsl.L}
}

// soften produces the desaturated, lightened variant used by the
// complementary rule.
func soften(hsl HSL) HSL {
	return HSL{
		H: hsl.H,
		S: clampPercent(hsl.S - 30),
		L: clampPercent(hsl.L + 15),
	}
}
