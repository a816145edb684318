package tinyqrc

import (
	"math/rand"
	"sync"

	"github.com/Mictilt/tinyqrc/symbol"
)

// fixedEncoder returns a copy of grid for any content and records the levels
// it was asked for.
type fixedEncoder struct {
	grid symbol.Grid
	err  error

	mu     sync.Mutex
	levels []Level
}

func (f *fixedEncoder) Encode(content string, lv Level) (symbol.Grid, error) {
	f.mu.Lock()
	f.levels = append(f.levels, lv)
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	return f.grid.Clone(), nil
}

func (f *fixedEncoder) lastLevel() Level {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.levels) == 0 {
		return 0
	}
	return f.levels[len(f.levels)-1]
}

func randomGrid(rnd *rand.Rand, n int, density float64) symbol.Grid {
	g := symbol.NewGrid(n)
	for y := range g {
		for x := range g[y] {
			g[y][x] = rnd.Float64() < density
		}
	}

	return g
}

func darkGrid(n int) symbol.Grid {
	g := symbol.NewGrid(n)
	for y := range g {
		for x := range g[y] {
			g[y][x] = true
		}
	}

	return g
}

// translate places g at (margin, margin) on a light grid of side n+2*margin.
func translate(g symbol.Grid, margin int) symbol.Grid {
	out := symbol.NewGrid(g.Size() + 2*margin)
	for y, row := range g {
		for x, v := range row {
			out[y+margin][x+margin] = v
		}
	}

	return out
}
