package symbol

import (
	"github.com/pkg/errors"
)

// Grid is a square module grid indexed as cells[y][x]. A true cell is a dark
// module. A Grid returned by an Encoder must not be modified; derive a new
// one instead.
type Grid [][]bool

// NewGrid returns an all-light grid of side n.
func NewGrid(n int) Grid {
	g := make(Grid, n)
	for y := range g {
		g[y] = make([]bool, n)
	}

	return g
}

// Size returns the side length of the grid.
func (g Grid) Size() int {
	return len(g)
}

// Dark reports whether the module at (x, y) is dark. Coordinates outside the
// grid are light.
func (g Grid) Dark(x, y int) bool {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return false
	}

	return g[y][x]
}

// Validate checks that the grid is square and non-empty.
func (g Grid) Validate() error {
	n := len(g)
	if n == 0 {
		return errors.New("empty module grid")
	}
	for y, row := range g {
		if len(row) != n {
			return errors.Errorf("module grid row %d has %d cells, want %d", y, len(row), n)
		}
	}

	return nil
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = append([]bool(nil), row...)
	}

	return out
}

// Equal reports whether both grids have the same shape and cells.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(other[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != other[y][x] {
				return false
			}
		}
	}

	return true
}

// DarkCount returns the number of dark modules.
func (g Grid) DarkCount() int {
	count := 0
	for _, row := range g {
		for _, v := range row {
			if v {
				count++
			}
		}
	}

	return count
}
