package colour

import "math"

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c Color) float64 {
	return 0.2126*gammaCorrect(c.R) + 0.7152*gammaCorrect(c.G) + 0.0722*gammaCorrect(c.B)
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// HueDistance calculates the angular distance between two hues in degrees.
// Returns a value between 0 and 180 (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(math.Mod(h1-h2, 360))
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}

// ReadableInk returns black or white, whichever contrasts more with bg.
func ReadableInk(bg Color) Color {
	black := Color{}
	white := Color{R: 1, G: 1, B: 1}
	if ContrastRatio(bg, black) >= ContrastRatio(bg, white) {
		return black
	}
	return white
}
