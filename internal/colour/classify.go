package colour

import "math"

// Hue is a colour name produced by Classify.
type Hue string

// Chromatic hue names.
const (
	HueRed    Hue = "red"
	HueOrange Hue = "orange"
	HueYellow Hue = "yellow"
	HueGreen  Hue = "green"
	HueTeal   Hue = "teal"
	HueBlue   Hue = "blue"
	HuePurple Hue = "purple"
	HueBrown  Hue = "brown"
	HueOlive  Hue = "olive"
)

// Achromatic names.
const (
	HueWhite Hue = "white"
	HueGrey  Hue = "grey"
	HueBlack Hue = "black"
)

// Shade is the lightness modifier applied to a chromatic hue.
type Shade string

// Lightness modifiers.
const (
	ShadeNone  Shade = ""
	ShadeDark  Shade = "dark"
	ShadeLight Shade = "light"
)

// Classification thresholds.
const (
	darkThreshold       = 0.3
	lightThreshold      = 0.7
	achromaticThreshold = 0.06
	whiteThreshold      = 0.9
	blackThreshold      = 0.1
)

// hueAnchor maps a hue in degrees to its name.
type hueAnchor struct {
	degrees float64
	hue     Hue
}

// hueAnchors is scanned in increasing order; 0 and 360 are both red.
var hueAnchors = []hueAnchor{
	{0, HueRed},
	{30, HueOrange},
	{60, HueYellow},
	{120, HueGreen},
	{180, HueTeal},
	{240, HueBlue},
	{300, HuePurple},
	{360, HueRed},
}

// NamedHue is a human-readable colour name.
type NamedHue struct {
	Hue   Hue
	Shade Shade
}

// String returns the name, e.g. "dark blue" or "grey".
func (n NamedHue) String() string {
	if n.Shade == ShadeNone {
		return string(n.Hue)
	}
	return string(n.Shade) + " " + string(n.Hue)
}

// Achromatic reports whether the name is white, grey or black.
func (n NamedHue) Achromatic() bool {
	switch n.Hue {
	case HueWhite, HueGrey, HueBlack:
		return true
	}
	return false
}

// Classify names c by its nearest anchor hue and its lightness.
// Near-grey colours collapse to white, grey or black.
func Classify(c Color) NamedHue {
	hls := RGBToHLS(c)

	if hls.S < achromaticThreshold {
		switch {
		case hls.L > whiteThreshold:
			return NamedHue{Hue: HueWhite}
		case hls.L > blackThreshold:
			return NamedHue{Hue: HueGrey}
		default:
			return NamedHue{Hue: HueBlack}
		}
	}

	name := NamedHue{Hue: nearestHue(math.Trunc(hls.Degrees()))}
	switch {
	case hls.L < darkThreshold:
		name.Shade = ShadeDark
	case hls.L > lightThreshold:
		name.Shade = ShadeLight
	}

	if name.Shade == ShadeDark {
		switch name.Hue {
		case HueOrange:
			return NamedHue{Hue: HueBrown}
		case HueYellow:
			return NamedHue{Hue: HueOlive}
		}
	}
	return name
}

// nearestHue returns the anchor closest to degrees by circular distance.
// Ties go to the anchor scanned first, so 330 is red rather than purple.
func nearestHue(degrees float64) Hue {
	best := hueAnchors[0]
	bestDist := HueDistance(degrees, best.degrees)
	for _, a := range hueAnchors[1:] {
		if d := HueDistance(degrees, a.degrees); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best.hue
}
