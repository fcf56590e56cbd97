package colorspace

import "math"

// Brightness returns the perceived brightness of a hex color in [0, 255]
// using the ITU-R BT.601 luma weights.
func Brightness(hex string) (int, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return 0, err
	}
	luma := (float64(rgb.R)*299 + float64(rgb.G)*587 + float64(rgb.B)*114) / 1000
	return int(math.Round(luma)), nil
}

// IsLight reports whether a hex color reads as light (brightness above 127).
func IsLight(hex string) (bool, error) {
	brightness, err := Brightness(hex)
	if err != nil {
		return false, err
	}
	return brightness > lightPivot, nil
}

// ContrastColor returns pure black for light colors and pure white for dark
// ones, for use as a readable foreground.
func ContrastColor(hex string) (string, error) {
	light, err := IsLight(hex)
	if err != nil {
		return "", err
	}
	if light {
		return "#000000", nil
	}
	return "#ffffff", nil
}
