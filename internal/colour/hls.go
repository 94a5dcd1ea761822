package colour

import "math"

// HLS is a hue/lightness/saturation triple.
// H is a fraction of a full turn in [0, 1); L and S are in [0, 1].
type HLS struct {
	H float64
	L float64
	S float64
}

// Degrees returns the hue in degrees, [0, 360).
func (h HLS) Degrees() float64 {
	return h.H * 360
}

// RGBToHLS converts a colour to HLS.
// Achromatic colours (max == min) have zero hue and saturation.
func RGBToHLS(c Color) HLS {
	maxVal := math.Max(c.R, math.Max(c.G, c.B))
	minVal := math.Min(c.R, math.Min(c.G, c.B))
	sum := maxVal + minVal
	delta := maxVal - minVal

	l := sum / 2.0
	if delta == 0 {
		return HLS{H: 0, L: l, S: 0}
	}

	var s float64
	if l <= 0.5 {
		s = delta / sum
	} else {
		s = delta / (2.0 - sum)
	}

	rc := (maxVal - c.R) / delta
	gc := (maxVal - c.G) / delta
	bc := (maxVal - c.B) / delta

	var h float64
	switch maxVal {
	case c.R:
		h = bc - gc
	case c.G:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}

	return HLS{H: wrapUnit(h / 6.0), L: l, S: s}
}

// HLSToRGB converts an HLS triple back to a colour.
func HLSToRGB(hls HLS) Color {
	if hls.S == 0 {
		l := clampUnit(hls.L)
		return Color{R: l, G: l, B: l}
	}

	var m2 float64
	if hls.L <= 0.5 {
		m2 = hls.L * (1.0 + hls.S)
	} else {
		m2 = hls.L + hls.S - hls.L*hls.S
	}
	m1 := 2.0*hls.L - m2

	return Color{
		R: clampUnit(hueToChannel(m1, m2, hls.H+1.0/3.0)),
		G: clampUnit(hueToChannel(m1, m2, hls.H)),
		B: clampUnit(hueToChannel(m1, m2, hls.H-1.0/3.0)),
	}
}

// ShiftHue rotates the hue of c by amount turns, keeping lightness and saturation.
func ShiftHue(c Color, amount float64) Color {
	hls := RGBToHLS(c)
	hls.H = wrapUnit(hls.H + amount)
	return HLSToRGB(hls)
}

// hueToChannel is a helper for HLS to RGB conversion; t is in turns.
func hueToChannel(m1, m2, t float64) float64 {
	t = wrapUnit(t)

	switch {
	case t < 1.0/6.0:
		return m1 + (m2-m1)*t*6.0
	case t < 0.5:
		return m2
	case t < 2.0/3.0:
		return m1 + (m2-m1)*(2.0/3.0-t)*6.0
	default:
		return m1
	}
}

// wrapUnit reduces v modulo 1 into [0, 1), wrapping negatives upwards.
func wrapUnit(v float64) float64 {
	v = math.Mod(v, 1.0)
	if v < 0 {
		v += 1.0
	}
	// -tiny + 1 rounds to exactly 1.
	if v >= 1.0 {
		v = 0
	}
	return v
}
