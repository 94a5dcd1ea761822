package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/config"
	"github.com/jmylchreest/shade/internal/report"
	"github.com/muesli/termenv"
)

// chartEmptyColour is the unfilled part of the RGB chart bars.
const chartEmptyColour = "#4a4b4f"

// printer renders reports for a terminal or plain writer.
type printer struct {
	r          *lipgloss.Renderer
	chartWidth int
}

// newPrinter returns a printer bound to w. mode is one of the config colour
// modes; auto lets lipgloss detect what w supports.
func newPrinter(w io.Writer, mode string, chartWidth int) *printer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColourNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColourAlways:
		r.SetColorProfile(termenv.TrueColor)
	}

	return &printer{
		r:          r,
		chartWidth: fitWidth(w, chartWidth),
	}
}

// swatch renders a hex code in its own colour.
func (p *printer) swatch(c colour.Color) string {
	hex := c.Hex()
	return p.r.NewStyle().Foreground(lipgloss.Color(hex)).Render(hex)
}

// pair renders text in fg on a bg background.
func (p *printer) pair(text string, fg, bg colour.Color) string {
	return p.r.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Render(text)
}

// block renders a solid colour block for table cells.
func (p *printer) block(c colour.Color) string {
	return p.r.NewStyle().Background(lipgloss.Color(c.Hex())).Render("      ")
}

func (p *printer) scheme(s colour.Scheme) string {
	parts := make([]string, 0, s.Len())
	for _, c := range s.All() {
		parts = append(parts, p.swatch(c))
	}
	return strings.Join(parts, " ")
}

// bar renders one channel of the RGB chart.
func (p *printer) bar(label string, value float64, fill string) string {
	bar := progress.New(
		progress.WithSolidFill(fill),
		progress.WithWidth(p.chartWidth),
		progress.WithoutPercentage(),
		progress.WithColorProfile(p.r.ColorProfile()),
	)
	bar.EmptyColor = chartEmptyColour

	return fmt.Sprintf("%s %s %5.1f%%", label, bar.ViewAs(value), value*100)
}

// text renders the human-readable report.
func (p *printer) text(rep *report.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The input is: %s (%s)\n", p.swatch(rep.Average), rep.Name)

	if ws := rep.WebSafe; ws != nil {
		if ws.Exact {
			fmt.Fprintf(&b, "%s is a websafe color.\n", ws.Shorthand)
		} else {
			fmt.Fprintf(&b, "Closest websafe color is: %s\n", ws.Shorthand)
		}
	}

	b.WriteString("\nRGB color chart:\n")
	b.WriteString(p.bar("R", rep.Average.R, "#ff0000") + "\n")
	b.WriteString(p.bar("G", rep.Average.G, "#00ff00") + "\n")
	b.WriteString(p.bar("B", rep.Average.B, "#0000ff") + "\n")
	b.WriteString("\n")

	fmt.Fprintf(&b, "Complementary Color Scheme: %s\n", p.scheme(rep.Complementary))
	fmt.Fprintf(&b, "Analogous Color Scheme: %s\n", p.scheme(rep.Analogous))
	fmt.Fprintf(&b, "Monochromatic Color Scheme: %s\n", p.scheme(rep.Monochromatic))

	dark, light := rep.DarkAccent, rep.LightAccent
	fmt.Fprintf(&b, "Dark Mode: %s\n", p.pair(dark.Hex(), light, dark))
	fmt.Fprintf(&b, "Light Mode: %s\n", p.pair(light.Hex(), dark, light))
	fmt.Fprintf(&b, "Contrast: %.2f:1\n", rep.AccentContrast)

	return b.String()
}

// table renders every scheme colour as a table row.
func (p *printer) table(rep *report.Report) string {
	t := NewTable([]string{"Scheme", "#", "Hex", "RGB", "Name", "Swatch"})

	addScheme := func(name string, s colour.Scheme) {
		for i, c := range s.All() {
			t.AddRow([]string{
				name,
				strconv.Itoa(i),
				c.Hex(),
				c.RGB().String(),
				colour.Classify(c).String(),
				p.block(c),
			})
		}
	}

	t.AddRow([]string{"average", "-", rep.AverageHex, rep.Average.RGB().String(), rep.Name.String(), p.block(rep.Average)})
	if ws := rep.WebSafe; ws != nil {
		t.AddRow([]string{"web-safe", "-", ws.Shorthand, ws.Colour.RGB().String(), colour.Classify(ws.Colour).String(), p.block(ws.Colour)})
	}
	addScheme("complementary", rep.Complementary)
	addScheme("analogous", rep.Analogous)
	addScheme("monochromatic", rep.Monochromatic)
	t.AddRow([]string{"dark mode", "-", rep.DarkAccent.Hex(), rep.DarkAccent.RGB().String(), colour.Classify(rep.DarkAccent).String(), p.block(rep.DarkAccent)})
	t.AddRow([]string{"light mode", "-", rep.LightAccent.Hex(), rep.LightAccent.RGB().String(), colour.Classify(rep.LightAccent).String(), p.block(rep.LightAccent)})

	return t.Render()
}
