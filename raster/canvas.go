package raster

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Canvas is the subset of drawing operations Rasterize needs.
type Canvas interface {
	SetColor(c color.Color)
	DrawRectangle(x, y, w, h float64)
	Fill()
	DrawImage(img image.Image, x, y int)
	Image() image.Image
}

// GGContextWrapper wraps gg.Context to implement Canvas.
type GGContextWrapper struct {
	*gg.Context
}

// NewGGCanvas returns a gg backed Canvas of size x size pixels.
func NewGGCanvas(size int) Canvas {
	return &GGContextWrapper{Context: gg.NewContext(size, size)}
}

func (wrapper *GGContextWrapper) SetColor(c color.Color) {
	wrapper.Context.SetColor(c)
}

func (wrapper *GGContextWrapper) DrawRectangle(x, y, w, h float64) {
	wrapper.Context.DrawRectangle(x, y, w, h)
}

func (wrapper *GGContextWrapper) Fill() {
	wrapper.Context.Fill()
}

func (wrapper *GGContextWrapper) DrawImage(img image.Image, x, y int) {
	wrapper.Context.DrawImage(img, x, y)
}

func (wrapper *GGContextWrapper) Image() image.Image {
	return wrapper.Context.Image()
}
