package raster

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Format is a raster output format.
type Format uint8

const (
	// PNG keeps transparency.
	PNG Format = iota
	// JPEG is flattened onto white.
	JPEG
)

// ParseFormat parses "png", "jpeg" or "jpg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	}

	return 0, errors.Errorf("unsupported raster format %q", s)
}

// ContentType returns the media type of f.
func (f Format) ContentType() string {
	if f == JPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// ImageEncoder is an interface which describes the rule how to encode image.Image into io.Writer
type ImageEncoder interface {
	// Encode specify which format to encode image into io.Writer.
	Encode(w io.Writer, img image.Image) error
}

// JPEGQuality is used by the JPEG encoder.
const JPEGQuality = 95

type jpegEncoder struct{}

func (j jpegEncoder) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, flatten(img, color.White), &jpeg.Options{Quality: JPEGQuality})
}

type pngEncoder struct{}

func (j pngEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// NewEncoder returns the encoder for f.
func NewEncoder(f Format) (ImageEncoder, error) {
	switch f {
	case PNG:
		return pngEncoder{}, nil
	case JPEG:
		return jpegEncoder{}, nil
	}

	return nil, errors.Errorf("unsupported raster format %d", f)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	enc, err := NewEncoder(f)
	if err != nil {
		return err
	}

	return errors.Wrap(enc.Encode(w, img), "encode "+f.ContentType())
}

// flatten composites img over an opaque background.
func flatten(img image.Image, bg color.Color) image.Image {
	bounds := img.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Over)

	return dst
}
