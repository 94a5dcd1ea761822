package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is a simple left-aligned table with dynamic column widths.
// Widths are measured in terminal cells, so styled cells align correctly.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	normalised := make([]string, len(t.headers))
	copy(normalised, row)
	t.rows = append(t.rows, normalised)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			colWidths[i] = max(colWidths[i], lipgloss.Width(cell))
		}
	}

	var result strings.Builder
	sep := strings.Repeat(" ", t.padding)

	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = padRight(c, colWidths[i])
		}
		result.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		result.WriteString("\n")
	}

	writeLine(t.headers)

	rule := make([]string, len(colWidths))
	for i, w := range colWidths {
		rule[i] = strings.Repeat("-", w)
	}
	writeLine(rule)

	for _, row := range t.rows {
		writeLine(row)
	}

	return result.String()
}

// padRight pads a string with spaces on the right to reach the desired width.
// If the string is already at least that wide, it is returned unchanged.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
