package tinyqrc

import (
	"math"
)

// Region is a rectangle of whole modules in grid coordinates.
type Region struct {
	X, Y, W, H int
}

// Empty reports whether the region covers no module.
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether module (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool {
	return !r.Empty() && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Clip intersects the region with [0, n) x [0, n). A region that misses the
// grid becomes the zero Region.
func (r Region) Clip(n int) Region {
	x0, y0 := maxInt(r.X, 0), maxInt(r.Y, 0)
	x1, y1 := minInt(r.X+r.W, n), minInt(r.Y+r.H, n)
	if r.Empty() || x1 <= x0 || y1 <= y0 {
		return Region{}
	}

	return Region{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Placement is the logo footprint in module space, margin excluded.
type Placement struct {
	X, Y, W, H float64

	// Excavation is nil unless the logo asked for it. It is clipped to the
	// grid and may be empty when the logo lies entirely outside it.
	Excavation *Region
}

// ComputePlacement maps logo settings onto a grid of side gridSize rendered
// at pixelSize pixels. It returns nil when logo is nil. pixelSize must be
// positive.
//
// Width and height convert from pixels with gridSize/pixelSize; explicit X
// and Y are taken as modules. The excavation is widened to whole modules so
// it always covers the image.
func ComputePlacement(gridSize, pixelSize int, logo *LogoSettings) *Placement {
	if logo == nil {
		return nil
	}

	scale := float64(gridSize) / float64(pixelSize)
	defaultFootprint := math.Floor(float64(pixelSize) * DefaultLogoScale)

	w := orDefault(logo.Width, defaultFootprint) * scale
	h := orDefault(logo.Height, defaultFootprint) * scale
	x := orDefault(logo.X, float64(gridSize)/2-w/2)
	y := orDefault(logo.Y, float64(gridSize)/2-h/2)

	p := &Placement{X: x, Y: y, W: w, H: h}
	if logo.Excavate {
		r := excavation(x, y, w, h, float64(gridSize))
		p.Excavation = &r
	}

	return p
}

// excavation widens the footprint to whole modules and clips it to [0, n)
// before converting to int, so huge footprints cannot overflow.
func excavation(x, y, w, h, n float64) Region {
	x0, y0 := math.Max(math.Floor(x), 0), math.Max(math.Floor(y), 0)
	x1, y1 := math.Min(math.Ceil(x+w), n), math.Min(math.Ceil(y+h), n)
	if x1 <= x0 || y1 <= y0 {
		return Region{}
	}

	return Region{X: int(x0), Y: int(y0), W: int(x1 - x0), H: int(y1 - y0)}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}

	return *v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
