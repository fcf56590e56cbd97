package colorspace

import (
	"fmt"
	"math"
)

// GenerateGradient interpolates RGB channels linearly between two hex colors
// across steps evenly spaced points. The first entry equals start and the
// last equals end exactly. steps must be at least 2.
func GenerateGradient(startHex, endHex string, steps int) ([]string, error) {
	if steps < 2 {
		return nil, fmt.Errorf("gradient requires at least 2 steps, got %d", steps)
	}

	start, err := HexToRGB(startHex)
	if err != nil {
		return nil, err
	}
	end, err := HexToRGB(endHex)
	if err != nil {
		return nil, err
	}

	gradient := make([]string, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		gradient[i] = RGBToHex(RGB{
			R: lerpChannel(start.R, end.R, t),
			G: lerpChannel(start.G, end.G, t),
			B: lerpChannel(start.B, end.B, t),
		})
	}
	return gradient, nil
}

func lerpChannel(a, b int, t float64) int {
	return int(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
