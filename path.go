package tinyqrc

import (
	"strconv"
	"strings"

	"github.com/Mictilt/tinyqrc/symbol"
)

// Run is a horizontal stretch of dark modules, one module high, in document
// coordinates (the margin already added).
type Run struct {
	X, Y, W int
}

// Compress merges the dark modules of every row into runs, translated by
// margin on both axes. Runs are ordered top to bottom, left to right.
func Compress(g symbol.Grid, margin int) []Run {
	var runs []Run
	for y, row := range g {
		start := -1
		last := len(row) - 1
		for x, dark := range row {
			if !dark && start >= 0 {
				runs = append(runs, Run{X: start + margin, Y: y + margin, W: x - start})
				start = -1
				continue
			}

			if x == last {
				if !dark {
					continue
				}
				if start < 0 {
					start = x
				}
				runs = append(runs, Run{X: start + margin, Y: y + margin, W: x + 1 - start})
				continue
			}

			if dark && start < 0 {
				start = x
			}
		}
	}

	return runs
}

// PathData serialises runs as SVG path commands, one closed rectangle per
// run: "M{x},{y}h{w}v1H{x}z".
func PathData(runs []Run) string {
	var sb strings.Builder
	buf := make([]byte, 0, 32)
	for _, r := range runs {
		buf = buf[:0]
		buf = append(buf, 'M')
		buf = strconv.AppendInt(buf, int64(r.X), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(r.Y), 10)
		buf = append(buf, 'h')
		buf = strconv.AppendInt(buf, int64(r.W), 10)
		buf = append(buf, "v1H"...)
		buf = strconv.AppendInt(buf, int64(r.X), 10)
		buf = append(buf, 'z')
		sb.Write(buf)
	}

	return sb.String()
}

// Paint marks the modules covered by runs on an all-light grid of side n,
// undoing Compress. Runs are in document coordinates, so n normally is the
// grid size plus twice the margin.
func Paint(runs []Run, n int) symbol.Grid {
	g := symbol.NewGrid(n)
	for _, r := range runs {
		if r.Y < 0 || r.Y >= n {
			continue
		}
		for x := maxInt(r.X, 0); x < r.X+r.W && x < n; x++ {
			g[r.Y][x] = true
		}
	}

	return g
}
