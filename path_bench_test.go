package tinyqrc

import (
	"math/rand"
	"testing"

	"github.com/Mictilt/tinyqrc/symbol"
)

var (
	benchGrid symbol.Grid
	benchRuns []Run
	benchPath string
)

func init() {
	// version 40 symbol size
	benchGrid = randomGrid(rand.New(rand.NewSource(1)), 177, 0.5)
}

// compressPerModule emits one rectangle per dark module, the baseline the
// run merge is measured against.
func compressPerModule(g symbol.Grid, margin int) []Run {
	var runs []Run
	for y, row := range g {
		for x, dark := range row {
			if dark {
				runs = append(runs, Run{X: x + margin, Y: y + margin, W: 1})
			}
		}
	}
	return runs
}

func BenchmarkCompress_PerModule(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		benchRuns = compressPerModule(benchGrid, 4)
		benchPath = PathData(benchRuns)
	}
}

func BenchmarkCompress_Runs(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		benchRuns = Compress(benchGrid, 4)
		benchPath = PathData(benchRuns)
	}
}

// go test -bench=Compress -benchmem
