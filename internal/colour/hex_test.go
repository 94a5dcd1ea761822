package colour

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "canonical", input: "#ff0000", want: "#ff0000"},
		{name: "missing hash", input: "336699", want: "#336699"},
		{name: "shorthand", input: "#369", want: "#336699"},
		{name: "shorthand without hash", input: "fa0", want: "#ffaa00"},
		{name: "uppercase", input: "#ABCDEF", want: "#abcdef"},
		{name: "too short", input: "#12", wantErr: true},
		{name: "four digits", input: "#1234", wantErr: true},
		{name: "too long", input: "#1234567", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "not hex", input: "#gg0000", wantErr: true},
		{name: "double hash", input: "##fff", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Normalize(%q) = %q, want error", tt.input, got)
				}
				if !errors.Is(err, ErrMalformedHex) {
					t.Errorf("Normalize(%q) error = %v, want ErrMalformedHex", tt.input, err)
				}
				var hexErr *HexError
				if !errors.As(err, &hexErr) || hexErr.Token != tt.input {
					t.Errorf("Normalize(%q) error does not carry the token: %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	c, err := Decode("#ff8000")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	want := Color{R: 1, G: 128.0 / 255.0, B: 0}
	if c != want {
		t.Errorf("Decode(#ff8000) = %+v, want %+v", c, want)
	}
}

func TestDecodeShorthandMatchesExpansion(t *testing.T) {
	for _, short := range []string{"#000", "#fff", "#369", "a1b", "#F0c"} {
		long, err := Normalize(short)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", short, err)
		}
		a, err := Decode(short)
		if err != nil {
			t.Fatalf("Decode(%q): %v", short, err)
		}
		b, err := Decode(long)
		if err != nil {
			t.Fatalf("Decode(%q): %v", long, err)
		}
		if a != b {
			t.Errorf("Decode(%q) = %+v, Decode(%q) = %+v", short, a, long, b)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// Walk a coarse grid plus the channel extremes.
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 51 {
			for _, b := range []int{0, 1, 127, 128, 254, 255} {
				hex := fmt.Sprintf("#%02x%02x%02x", r, g, b)
				c, err := Decode(hex)
				if err != nil {
					t.Fatalf("Decode(%q): %v", hex, err)
				}
				if got := Encode(c); got != hex {
					t.Errorf("Encode(Decode(%q)) = %q", hex, got)
				}
			}
		}
	}
}

func TestEncodeQuantizationTolerance(t *testing.T) {
	for _, c := range []Color{
		{R: 0.1234, G: 0.5678, B: 0.9012},
		{R: 0.5, G: 0.5, B: 0.5},
		{R: 0.001, G: 0.999, B: 0.333},
	} {
		back, err := Decode(Encode(c))
		if err != nil {
			t.Fatalf("Decode(Encode(%+v)): %v", c, err)
		}
		for _, d := range []float64{back.R - c.R, back.G - c.G, back.B - c.B} {
			if math.Abs(d) > 1.0/255.0 {
				t.Errorf("round trip of %+v drifted by %v", c, d)
			}
		}
	}
}

func TestEncodeRoundsHalfUp(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "mid grey rounds up", color: Color{R: 0.5, G: 0.5, B: 0.5}, want: "#808080"},
		{name: "black", color: Color{}, want: "#000000"},
		{name: "white", color: Color{R: 1, G: 1, B: 1}, want: "#ffffff"},
		{name: "clamped above", color: Color{R: 1.2, G: 0, B: 0}, want: "#ff0000"},
		{name: "clamped below", color: Color{R: -0.1, G: 0, B: 1}, want: "#0000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.color); got != tt.want {
				t.Errorf("Encode(%+v) = %q, want %q", tt.color, got, tt.want)
			}
		})
	}
}

func TestParseAll(t *testing.T) {
	colors, err := ParseAll([]string{"#fff", "000000"})
	if err != nil {
		t.Fatalf("ParseAll returned error: %v", err)
	}
	if len(colors) != 2 {
		t.Fatalf("ParseAll returned %d colours, want 2", len(colors))
	}

	_, err = ParseAll([]string{"#fff", "#12", "#000"})
	var hexErr *HexError
	if !errors.As(err, &hexErr) {
		t.Fatalf("ParseAll error = %v, want *HexError", err)
	}
	if hexErr.Token != "#12" {
		t.Errorf("HexError.Token = %q, want %q", hexErr.Token, "#12")
	}
}

func TestAverage(t *testing.T) {
	white := Color{R: 1, G: 1, B: 1}
	black := Color{}

	avg, err := Average(white, black)
	if err != nil {
		t.Fatalf("Average returned error: %v", err)
	}
	if got := Encode(avg); got != "#808080" {
		t.Errorf("Average(white, black) = %s, want #808080", got)
	}

	if _, err := Average(); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Average() error = %v, want ErrEmptyInput", err)
	}
}

func TestColorRGB(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0}
	want := RGB{R: 255, G: 128, B: 0}
	if got := c.RGB(); got != want {
		t.Errorf("RGB() = %+v, want %+v", got, want)
	}
	if got := want.String(); got != "rgb(255, 128, 0)" {
		t.Errorf("String() = %q", got)
	}
	if !c.Valid() {
		t.Error("expected colour to be valid")
	}
	if (Color{R: 1.5}).Valid() {
		t.Error("expected out-of-range colour to be invalid")
	}
}
