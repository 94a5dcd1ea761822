package colour

import "fmt"

const (
	// DefaultAnalogousSpread is the analogous hue offset in degrees.
	DefaultAnalogousSpread = 30.0

	// MonochromaticSteps is the number of colours in a monochromatic scheme.
	MonochromaticSteps = 12

	monoMinLightness = 6.0
	monoMaxLightness = 94.0
)

// Scheme is an ordered set of colours. The first element is the base colour.
type Scheme []Color

// Len returns the number of colours in the scheme.
func (s Scheme) Len() int {
	return len(s)
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (s Scheme) Get(index int) (Color, error) {
	if index < 0 || index >= len(s) {
		return Color{}, fmt.Errorf("index out of bounds: %d (scheme has %d colours)", index, len(s))
	}
	return s[index], nil
}

// Hex converts the scheme colours to hex strings.
func (s Scheme) Hex() []string {
	hexColours := make([]string, len(s))
	for i, c := range s {
		hexColours[i] = Encode(c)
	}
	return hexColours
}

// All returns an iterator over all colours in the scheme.
func (s Scheme) All() func(func(int, Color) bool) {
	return func(yield func(int, Color) bool) {
		for i, c := range s {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Complementary returns the base colour and its opposite on the hue wheel.
func Complementary(c Color) Scheme {
	return Scheme{c, ShiftHue(c, 0.5)}
}

// Analogous returns the base colour followed by its neighbours spreadDegrees
// either side: clockwise first, then anticlockwise.
func Analogous(c Color, spreadDegrees float64) Scheme {
	turn := spreadDegrees / 360
	return Scheme{c, ShiftHue(c, turn), ShiftHue(c, -turn)}
}

// Monochromatic returns MonochromaticSteps colours sharing the hue and
// saturation of c, with lightness stepped evenly from 6% to 94%.
// The lightness of c itself does not affect the ramp.
func Monochromatic(c Color) Scheme {
	hls := RGBToHLS(c)
	span := monoMaxLightness - monoMinLightness

	scheme := make(Scheme, MonochromaticSteps)
	for i := range scheme {
		lightness := monoMinLightness + span*float64(i)/float64(MonochromaticSteps-1)
		scheme[i] = HLSToRGB(HLS{H: hls.H, L: lightness / 100, S: hls.S})
	}
	return scheme
}

// ModeAccents picks the suggested dark-background and light-background
// accents from a monochromatic scheme: the second-darkest and second-lightest.
func ModeAccents(mono Scheme) (dark, light Color, err error) {
	if len(mono) < 2 {
		return Color{}, Color{}, fmt.Errorf("monochromatic scheme too short: %d colours", len(mono))
	}
	return mono[1], mono[len(mono)-2], nil
}
