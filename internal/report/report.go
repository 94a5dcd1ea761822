// Package report turns a list of hex colour tokens into a complete colour
// report: the averaged colour, its name, an optional web-safe substitute and
// the derived schemes.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/shade/internal/colour"
)

// Options controls how a report is built.
type Options struct {
	// WebSafe snaps the averaged colour to the web-safe grid before
	// generating schemes.
	WebSafe bool

	// AnalogousSpread is the analogous offset in degrees.
	AnalogousSpread float64
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		AnalogousSpread: colour.DefaultAnalogousSpread,
	}
}

// WebSafeResult describes the web-safe substitute for the averaged colour.
type WebSafeResult struct {
	Colour    colour.Color
	Hex       string
	Shorthand string
	// Exact is true when the averaged colour was already web-safe.
	Exact bool
}

// Report holds every value the presentation layer displays.
type Report struct {
	Inputs     []string
	Average    colour.Color
	AverageHex string
	Name       colour.NamedHue
	WebSafe    *WebSafeResult

	// Base is the colour schemes are derived from: the web-safe
	// substitute when requested, the average otherwise.
	Base colour.Color

	Complementary colour.Scheme
	Analogous     colour.Scheme
	Monochromatic colour.Scheme

	DarkAccent     colour.Color
	LightAccent    colour.Color
	AccentContrast float64
}

// Builder builds reports.
type Builder struct {
	logger hclog.Logger
}

// NewBuilder returns a Builder that logs to logger. A nil logger discards.
func NewBuilder(logger hclog.Logger) *Builder {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Builder{logger: logger.Named("report")}
}

// Build parses tokens and derives a report from their average.
// It returns colour.ErrEmptyInput when tokens is empty and a *colour.HexError
// when any token is malformed; no partial report is produced.
func (b *Builder) Build(tokens []string, opts Options) (*Report, error) {
	if len(tokens) == 0 {
		return nil, colour.ErrEmptyInput
	}
	if opts.AnalogousSpread == 0 {
		opts.AnalogousSpread = colour.DefaultAnalogousSpread
	}

	colours, err := colour.ParseAll(tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to parse colours: %w", err)
	}

	inputs := make([]string, len(colours))
	for i, c := range colours {
		inputs[i] = c.Hex()
	}
	b.logger.Debug("parsed colours", "count", len(colours), "inputs", strings.Join(inputs, " "))

	avg, err := colour.Average(colours...)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Inputs:     inputs,
		Average:    avg,
		AverageHex: avg.Hex(),
		Name:       colour.Classify(avg),
		Base:       avg,
	}
	b.logger.Debug("averaged colours", "hex", r.AverageHex, "name", r.Name.String())

	if opts.WebSafe {
		safe := colour.NearestWebSafe(avg)
		hex := safe.Hex()
		r.WebSafe = &WebSafeResult{
			Colour:    safe,
			Hex:       hex,
			Shorthand: colour.ToShorthand(hex),
			Exact:     hex == r.AverageHex,
		}
		r.Base = safe
		b.logger.Debug("snapped to web-safe grid", "hex", hex, "exact", r.WebSafe.Exact)
	}

	r.Complementary = colour.Complementary(r.Base)
	r.Analogous = colour.Analogous(r.Base, opts.AnalogousSpread)
	r.Monochromatic = colour.Monochromatic(r.Base)

	r.DarkAccent, r.LightAccent, err = colour.ModeAccents(r.Monochromatic)
	if err != nil {
		return nil, fmt.Errorf("failed to pick mode accents: %w", err)
	}
	r.AccentContrast = colour.ContrastRatio(r.DarkAccent, r.LightAccent)
	b.logger.Debug("generated schemes",
		"analogous_spread", opts.AnalogousSpread,
		"dark_accent", r.DarkAccent.Hex(),
		"light_accent", r.LightAccent.Hex())

	return r, nil
}

// SplitTokens splits each part on whitespace and commas, dropping empties.
func SplitTokens(parts ...string) []string {
	var tokens []string
	for _, p := range parts {
		tokens = append(tokens, strings.FieldsFunc(p, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})...)
	}
	return tokens
}

// ColourJSON represents a colour in JSON output format.
type ColourJSON struct {
	Hex string     `json:"hex"`
	RGB colour.RGB `json:"rgb"`
}

// WebSafeJSON represents the web-safe substitute in JSON output format.
type WebSafeJSON struct {
	ColourJSON
	Shorthand string `json:"shorthand"`
	Exact     bool   `json:"exact"`
}

// ReportJSON is the JSON form of a Report.
type ReportJSON struct {
	Inputs         []string     `json:"inputs"`
	Average        ColourJSON   `json:"average"`
	Name           string       `json:"name"`
	WebSafe        *WebSafeJSON `json:"web_safe,omitempty"`
	Complementary  []ColourJSON `json:"complementary"`
	Analogous      []ColourJSON `json:"analogous"`
	Monochromatic  []ColourJSON `json:"monochromatic"`
	DarkMode       ColourJSON   `json:"dark_mode"`
	LightMode      ColourJSON   `json:"light_mode"`
	AccentContrast float64      `json:"accent_contrast"`
}

// ToJSON converts the report to indented JSON.
func (r *Report) ToJSON() ([]byte, error) {
	out := ReportJSON{
		Inputs:         r.Inputs,
		Average:        toColourJSON(r.Average),
		Name:           r.Name.String(),
		Complementary:  schemeJSON(r.Complementary),
		Analogous:      schemeJSON(r.Analogous),
		Monochromatic:  schemeJSON(r.Monochromatic),
		DarkMode:       toColourJSON(r.DarkAccent),
		LightMode:      toColourJSON(r.LightAccent),
		AccentContrast: r.AccentContrast,
	}
	if r.WebSafe != nil {
		out.WebSafe = &WebSafeJSON{
			ColourJSON: toColourJSON(r.WebSafe.Colour),
			Shorthand:  r.WebSafe.Shorthand,
			Exact:      r.WebSafe.Exact,
		}
	}

	return json.MarshalIndent(out, "", "  ")
}

func toColourJSON(c colour.Color) ColourJSON {
	return ColourJSON{Hex: c.Hex(), RGB: c.RGB()}
}

func schemeJSON(s colour.Scheme) []ColourJSON {
	out := make([]ColourJSON, len(s))
	for i, c := range s {
		out[i] = toColourJSON(c)
	}
	return out
}
