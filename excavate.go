package tinyqrc

import (
	"github.com/Mictilt/tinyqrc/symbol"
)

// Excavate returns a grid whose modules inside r are light. The source grid
// is never written: rows crossing r are copied, every other row is shared
// with the source. Parts of r outside the grid are ignored.
func Excavate(g symbol.Grid, r Region) symbol.Grid {
	r = r.Clip(g.Size())

	out := make(symbol.Grid, len(g))
	for y, row := range g {
		if y < r.Y || y >= r.Y+r.H {
			out[y] = row
			continue
		}

		cleared := append([]bool(nil), row...)
		for x := r.X; x < r.X+r.W && x < len(cleared); x++ {
			cleared[x] = false
		}
		out[y] = cleared
	}

	return out
}
