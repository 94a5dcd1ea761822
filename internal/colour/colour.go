// Package colour implements the colour engine: hex codec, RGB/HLS transforms,
// scheme generation, web-safe quantization and hue naming.
package colour

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when an operation needs at least one colour.
var ErrEmptyInput = errors.New("no colours supplied")

// Color is an RGB triple with each channel in [0.0, 1.0].
type Color struct {
	R float64
	G float64
	B float64
}

// Valid reports whether every channel lies within [0, 1].
func (c Color) Valid() bool {
	return inUnit(c.R) && inUnit(c.G) && inUnit(c.B)
}

// Hex returns the canonical "#rrggbb" form of the colour.
func (c Color) Hex() string {
	return Encode(c)
}

// RGB returns the colour quantized to 8 bits per channel.
func (c Color) RGB() RGB {
	return RGB{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
	}
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Color converts the 8-bit value back to a normalized Color.
func (rgb RGB) Color() Color {
	return Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

// Average returns the channel-wise mean of the given colours.
func Average(colors ...Color) (Color, error) {
	if len(colors) == 0 {
		return Color{}, ErrEmptyInput
	}

	var sum Color
	for _, c := range colors {
		sum.R += c.R
		sum.G += c.G
		sum.B += c.B
	}

	n := float64(len(colors))
	return Color{R: sum.R / n, G: sum.G / n, B: sum.B / n}, nil
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
