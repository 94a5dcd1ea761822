package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedHex is the sentinel wrapped by every HexError.
var ErrMalformedHex = errors.New("malformed hex colour")

// HexError describes a token that could not be read as a hex colour.
type HexError struct {
	Token  string
	Reason string
}

func (e *HexError) Error() string {
	return fmt.Sprintf("invalid hex colour %q: %s", e.Token, e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedHex.
func (e *HexError) Unwrap() error {
	return ErrMalformedHex
}

// Normalize converts a hex colour token to canonical "#rrggbb" form.
// Supports formats: #RRGGBB, RRGGBB, #RGB, RGB.
func Normalize(text string) (string, error) {
	digits := strings.ToLower(strings.TrimPrefix(text, "#"))

	// Expand shorthand format (RGB -> RRGGBB).
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}

	if len(digits) != 6 {
		return "", &HexError{
			Token:  text,
			Reason: fmt.Sprintf("expected 3 or 6 hex digits, got %d", len(digits)),
		}
	}

	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return "", &HexError{
				Token:  text,
				Reason: fmt.Sprintf("%q is not a hex digit", digits[i]),
			}
		}
	}

	return "#" + digits, nil
}

// Decode parses a hex colour (canonical or shorthand) into a Color.
func Decode(hex string) (Color, error) {
	canonical, err := Normalize(hex)
	if err != nil {
		return Color{}, err
	}

	var channels [3]float64
	for i := range channels {
		v, err := strconv.ParseUint(canonical[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return Color{}, &HexError{Token: hex, Reason: err.Error()}
		}
		channels[i] = float64(v) / 255.0
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Encode formats a Color as "#rrggbb".
// Channels are rounded half-up, never half-to-even, so output is stable.
func Encode(c Color) string {
	return RGB{R: toByte(c.R), G: toByte(c.G), B: toByte(c.B)}.Hex()
}

// ParseAll decodes every token, failing on the first malformed one.
func ParseAll(tokens []string) ([]Color, error) {
	colors := make([]Color, 0, len(tokens))
	for _, tok := range tokens {
		c, err := Decode(tok)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func toByte(v float64) uint8 {
	n := math.Floor(v*255 + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
