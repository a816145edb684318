package raster

import (
	"image"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Read decodes a PNG or JPEG file.
func Read(path string) (image.Image, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return img, nil
}

// Scale resizes src into rect. A nil scaler means draw.ApproxBiLinear.
func Scale(src image.Image, rect image.Rectangle, scale draw.Scaler) image.Image {
	if scale == nil {
		scale = draw.ApproxBiLinear
	}

	dst := image.NewNRGBA(rect)
	scale.Scale(dst, rect, src, src.Bounds(), draw.Over, nil)
	return dst
}
