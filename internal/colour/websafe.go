package colour

import "math"

// webSafeStep is the distance between adjacent web-safe channel levels.
const webSafeStep = 51.0

// NearestWebSafe snaps each channel to the 6-level web-safe grid
// {0, 51, 102, 153, 204, 255}/255, rounding half-up.
func NearestWebSafe(c Color) Color {
	return Color{
		R: snapWebSafe(c.R),
		G: snapWebSafe(c.G),
		B: snapWebSafe(c.B),
	}
}

// IsWebSafe reports whether c already encodes to a web-safe hex code.
func IsWebSafe(c Color) bool {
	return Encode(c) == Encode(NearestWebSafe(c))
}

// ToShorthand returns the 3-digit form of a canonical hex code when every
// channel is a doubled digit, and the input unchanged otherwise.
func ToShorthand(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}

	body := hex[1:]
	if body[0] != body[1] || body[2] != body[3] || body[4] != body[5] {
		return hex
	}
	return string([]byte{'#', body[0], body[2], body[4]})
}

func snapWebSafe(v float64) float64 {
	level := math.Floor(v*255/webSafeStep + 0.5)
	return clampUnit(level * webSafeStep / 255)
}
