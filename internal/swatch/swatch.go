// Package swatch renders colour schemes as a PNG swatch sheet with a hex
// label on every cell.
package swatch

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/jmylchreest/shade/internal/colour"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Row is one labelled line of swatches.
type Row struct {
	Label   string
	Colours colour.Scheme
}

// Options controls the sheet geometry.
type Options struct {
	CellWidth   int
	CellHeight  int
	Padding     int
	Background  colour.Color
	LabelHeight int
}

// DefaultOptions returns the default geometry.
func DefaultOptions() Options {
	return Options{
		CellWidth:   96,
		CellHeight:  64,
		Padding:     8,
		Background:  colour.Color{R: 0x1e / 255.0, G: 0x1e / 255.0, B: 0x1e / 255.0},
		LabelHeight: 18,
	}
}

// Render draws rows onto a single image.
func Render(rows []Row, opts Options) (*image.RGBA, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows to render")
	}

	maxCells := 0
	for _, r := range rows {
		maxCells = max(maxCells, r.Colours.Len())
	}
	if maxCells == 0 {
		return nil, fmt.Errorf("rows contain no colours")
	}

	rowHeight := opts.LabelHeight + opts.CellHeight + opts.Padding
	width := opts.Padding + maxCells*(opts.CellWidth+opts.Padding)
	height := opts.Padding + len(rows)*rowHeight

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := toRGBA(opts.Background)
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for i, row := range rows {
		top := opts.Padding + i*rowHeight
		drawText(img, row.Label, opts.Padding, top+opts.LabelHeight-5, colour.ReadableInk(opts.Background))

		cellTop := top + opts.LabelHeight
		for j, c := range row.Colours {
			left := opts.Padding + j*(opts.CellWidth+opts.Padding)
			cell := image.Rect(left, cellTop, left+opts.CellWidth, cellTop+opts.CellHeight)
			draw.Draw(img, cell, image.NewUniform(toRGBA(c)), image.Point{}, draw.Src)
			drawText(img, c.Hex(), left+4, cell.Max.Y-6, colour.ReadableInk(c))
		}
	}

	return img, nil
}

// Write renders rows and encodes them as PNG to w.
func Write(w io.Writer, rows []Row, opts Options) error {
	img, err := Render(rows, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// CellCentre returns the centre point of cell col in row for opts.
func CellCentre(row, col int, opts Options) image.Point {
	rowHeight := opts.LabelHeight + opts.CellHeight + opts.Padding
	left := opts.Padding + col*(opts.CellWidth+opts.Padding)
	top := opts.Padding + row*rowHeight + opts.LabelHeight
	return image.Pt(left+opts.CellWidth/2, top+opts.CellHeight/2)
}

func drawText(dst draw.Image, text string, x, y int, ink colour.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(toRGBA(ink)),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func toRGBA(c colour.Color) color.RGBA {
	rgb := c.RGB()
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}
