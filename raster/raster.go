package raster

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/Mictilt/tinyqrc"
)

type rasterOptions struct {
	size      int
	loader    LogoLoader
	newCanvas func(size int) Canvas
}

// Option customises Rasterize.
type Option func(ro *rasterOptions)

// WithSize sets the output side in pixels. It defaults to the document's
// declared width.
func WithSize(px int) Option {
	return func(ro *rasterOptions) {
		ro.size = px
	}
}

// WithLogoLoader replaces DefaultLogoLoader.
func WithLogoLoader(l LogoLoader) Option {
	return func(ro *rasterOptions) {
		if l != nil {
			ro.loader = l
		}
	}
}

// WithCanvas replaces the gg backed canvas.
func WithCanvas(newCanvas func(size int) Canvas) Option {
	return func(ro *rasterOptions) {
		if newCanvas != nil {
			ro.newCanvas = newCanvas
		}
	}
}

// Rasterize draws doc into a square bitmap.
func Rasterize(doc *tinyqrc.Document, opts ...Option) (image.Image, error) {
	if doc == nil {
		return nil, errors.New("nil document")
	}

	ro := rasterOptions{
		size:      doc.Width,
		loader:    DefaultLogoLoader,
		newCanvas: NewGGCanvas,
	}
	for _, opt := range opts {
		opt(&ro)
	}
	if ro.size <= 0 {
		return nil, errors.Errorf("raster size must be positive, got %d", ro.size)
	}
	if doc.ViewBox <= 0 {
		return nil, errors.Errorf("document has an empty viewBox")
	}

	bg, err := ParseColor(doc.Background)
	if err != nil {
		return nil, errors.Wrap(err, "background")
	}
	fg, err := ParseColor(doc.Foreground)
	if err != nil {
		return nil, errors.Wrap(err, "foreground")
	}

	var logo image.Image
	if doc.Logo != nil {
		if logo, err = ro.loader(doc.Logo.Source); err != nil {
			return nil, errors.Wrap(err, "load logo")
		}
	}

	c := ro.newCanvas(ro.size)
	scale := float64(ro.size) / float64(doc.ViewBox)
	drawModules(c, doc, ro.size, scale, bg, fg)
	if logo != nil {
		drawLogo(c, logo, doc.Logo.Module, scale)
	}

	tinyqrc.Logger().Debug("rasterized document",
		slog.Int("size", ro.size),
		slog.Float64("pixelsPerModule", scale),
		slog.Int("runs", len(doc.Runs)))

	return c.Image(), nil
}

func drawModules(c Canvas, doc *tinyqrc.Document, size int, scale float64, bg, fg color.Color) {
	c.SetColor(bg)
	c.DrawRectangle(0, 0, float64(size), float64(size))
	c.Fill()

	if len(doc.Runs) == 0 {
		return
	}

	c.SetColor(fg)
	for _, r := range doc.Runs {
		x0, x1 := snap(r.X, scale), snap(r.X+r.W, scale)
		y0, y1 := snap(r.Y, scale), snap(r.Y+1, scale)
		if x1 <= x0 || y1 <= y0 {
			continue
		}
		c.DrawRectangle(x0, y0, x1-x0, y1-y0)
	}
	c.Fill()
}

// snap maps a module edge to the nearest pixel edge.
func snap(v int, scale float64) float64 {
	return math.Round(float64(v) * scale)
}

func drawLogo(c Canvas, logo image.Image, m tinyqrc.Rect, scale float64) {
	w := int(math.Max(1, math.Round(m.W*scale)))
	h := int(math.Max(1, math.Round(m.H*scale)))

	scaled := Scale(logo, image.Rect(0, 0, w, h), draw.CatmullRom)
	c.DrawImage(scaled, int(math.Round(m.X*scale)), int(math.Round(m.Y*scale)))
}
