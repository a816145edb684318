package tinyqrc

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strconv"

	svgo "github.com/ajstarks/svgo"

	"github.com/Mictilt/tinyqrc/symbol"
)

// ContentType is the media type of rendered documents.
const ContentType = "image/svg+xml"

// Rect is a rectangle in floating point coordinates.
type Rect struct {
	X, Y, W, H float64
}

// LogoPlacement locates the logo in the finished document.
type LogoPlacement struct {
	Source string
	// Module is the image rectangle in viewBox units, margin included.
	Module Rect
	// Pixel is Module scaled to the declared document size.
	Pixel Rect
	// Excavation is the cleared region in grid coordinates, margin
	// excluded. Nil when the logo does not excavate.
	Excavation *Region
}

func newLogoPlacement(src string, p *Placement, margin int, pixelRatio float64) *LogoPlacement {
	m := float64(margin)
	lp := &LogoPlacement{
		Source: src,
		Module: Rect{X: p.X + m, Y: p.Y + m, W: p.W, H: p.H},
	}
	lp.Pixel = Rect{
		X: lp.Module.X * pixelRatio,
		Y: lp.Module.Y * pixelRatio,
		W: lp.Module.W * pixelRatio,
		H: lp.Module.H * pixelRatio,
	}
	if p.Excavation != nil {
		r := *p.Excavation
		lp.Excavation = &r
	}

	return lp
}

// Document is a rendered symbol.
type Document struct {
	// Width and Height are the declared pixel size.
	Width, Height int
	// ViewBox is the side of the viewBox: grid size plus twice the margin.
	ViewBox int
	Margin  int
	// Level is the error correction level the symbol was encoded with.
	Level      Level
	Background string
	Foreground string
	// Modules is the grid after excavation, margin excluded.
	Modules symbol.Grid
	// Runs is the foreground path in document coordinates.
	Runs []Run
	// Logo is nil when no logo was requested.
	Logo *LogoPlacement

	attrs  []Attr
	markup []byte
}

// PixelRatio is the number of output pixels per module.
func (d *Document) PixelRatio() float64 {
	return float64(d.Width) / float64(d.ViewBox)
}

// Markup returns the SVG markup.
func (d *Document) Markup() string {
	return string(d.markup)
}

// String returns the SVG markup.
func (d *Document) String() string {
	return d.Markup()
}

// Bytes returns a copy of the SVG markup.
func (d *Document) Bytes() []byte {
	return append([]byte(nil), d.markup...)
}

// WriteTo writes the SVG markup to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.markup)
	return int64(n), err
}

// ContentType returns the media type of the markup.
func (d *Document) ContentType() string {
	return ContentType
}

func (d *Document) assemble() []byte {
	var buf bytes.Buffer
	canvas := svgo.New(&buf)

	rootAttrs := []string{
		fmt.Sprintf(` viewBox="0 0 %d %d"`, d.ViewBox, d.ViewBox),
		` role="img"`,
		` aria-label="QR Code"`,
		` data-generator="tinyqrc"`,
	}
	for _, a := range d.attrs {
		rootAttrs = append(rootAttrs, " "+attr(a.Name, a.Value))
	}
	canvas.Start(d.Width, d.Height, rootAttrs...)
	canvas.Title("QR Code")
	canvas.Desc("Scan this QR code with your mobile device")

	canvas.Path(fmt.Sprintf("M0,0 h%dv%dH0z", d.ViewBox, d.ViewBox),
		attr("fill", d.Background), attr("shape-rendering", "crispEdges"))
	canvas.Path(PathData(d.Runs),
		attr("fill", d.Foreground), attr("shape-rendering", "crispEdges"))

	if d.Logo != nil {
		m := d.Logo.Module
		fmt.Fprintf(canvas.Writer, "<image %s %s %s %s %s %s/>\n",
			attr("href", d.Logo.Source),
			attr("x", formatFloat(m.X)),
			attr("y", formatFloat(m.Y)),
			attr("width", formatFloat(m.W)),
			attr("height", formatFloat(m.H)),
			attr("preserveAspectRatio", "none"))
	}

	canvas.End()

	return buf.Bytes()
}

func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
