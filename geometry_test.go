package tinyqrc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePlacement_NoLogo(t *testing.T) {
	assert.Nil(t, ComputePlacement(21, 128, nil))
}

func TestComputePlacement_Centered(t *testing.T) {
	for _, tc := range []struct {
		n, px int
	}{{21, 128}, {25, 300}, {57, 1000}, {177, 64}} {
		p := ComputePlacement(tc.n, tc.px, &LogoSettings{Source: "logo.png"})
		require.NotNil(t, p)

		scale := float64(tc.n) / float64(tc.px)
		wantW := math.Floor(float64(tc.px)*DefaultLogoScale) * scale
		assert.Equal(t, wantW, p.W)
		assert.Equal(t, wantW, p.H)
		assert.Equal(t, float64(tc.n)/2-p.W/2, p.X)
		assert.Equal(t, float64(tc.n)/2-p.H/2, p.Y)
		assert.Nil(t, p.Excavation)
	}
}

func TestComputePlacement_Excavation(t *testing.T) {
	p := ComputePlacement(21, 128, &LogoSettings{Source: "logo.png", Excavate: true})
	require.NotNil(t, p)
	require.NotNil(t, p.Excavation)

	// 12px * 21/128 = 1.96875 modules, centred at 9.515625.
	assert.Equal(t, 1.96875, p.W)
	assert.Equal(t, 9.515625, p.X)
	assert.Equal(t, Region{X: 9, Y: 9, W: 3, H: 3}, *p.Excavation)
}

func TestComputePlacement_ExcavationCoversImage(t *testing.T) {
	for px := 32; px <= 512; px += 7 {
		for _, size := range []float64{1, 5, 13.3, 40, 77.7} {
			logo := &LogoSettings{Source: "l.png", Width: Float(size), Height: Float(size * 0.7), Excavate: true}
			p := ComputePlacement(33, px, logo)
			r := *p.Excavation

			assert.LessOrEqual(t, float64(r.X), math.Max(p.X, 0))
			assert.LessOrEqual(t, float64(r.Y), math.Max(p.Y, 0))
			assert.GreaterOrEqual(t, float64(r.X+r.W), math.Min(p.X+p.W, 33))
			assert.GreaterOrEqual(t, float64(r.Y+r.H), math.Min(p.Y+p.H, 33))
			// at most one extra module on each edge
			assert.Less(t, float64(r.X+r.W)-(p.X+p.W), 1.0+1e-9)
		}
	}
}

func TestComputePlacement_ExplicitPosition(t *testing.T) {
	logo := &LogoSettings{
		Source:   "logo.png",
		Width:    Float(64),
		Height:   Float(32),
		X:        Float(2.5),
		Y:        Float(4),
		Excavate: true,
	}
	p := ComputePlacement(32, 128, logo)

	assert.Equal(t, 2.5, p.X)
	assert.Equal(t, 4.0, p.Y)
	assert.Equal(t, 16.0, p.W)
	assert.Equal(t, 8.0, p.H)
	assert.Equal(t, Region{X: 2, Y: 4, W: 17, H: 8}, *p.Excavation)
}

func TestComputePlacement_OversizedLogoClamps(t *testing.T) {
	logo := &LogoSettings{Source: "logo.png", Width: Float(10000), Height: Float(10000), Excavate: true}
	p := ComputePlacement(21, 128, logo)

	require.NotNil(t, p.Excavation)
	assert.Equal(t, Region{X: 0, Y: 0, W: 21, H: 21}, *p.Excavation)
}

func TestComputePlacement_HugeFootprintClamps(t *testing.T) {
	for _, v := range []float64{1e6, 1e18, 1e300, math.MaxFloat64} {
		logo := &LogoSettings{Source: "logo.png", Width: Float(v), Height: Float(v), Excavate: true}
		p := ComputePlacement(21, 128, logo)

		require.NotNil(t, p.Excavation, "width %g", v)
		assert.Equal(t, Region{X: 0, Y: 0, W: 21, H: 21}, *p.Excavation, "width %g", v)
	}

	far := &LogoSettings{Source: "logo.png", X: Float(1e300), Y: Float(1e300), Excavate: true}
	p := ComputePlacement(21, 128, far)
	require.NotNil(t, p.Excavation)
	assert.True(t, p.Excavation.Empty())
}

func TestComputePlacement_OutsideGrid(t *testing.T) {
	logo := &LogoSettings{Source: "logo.png", X: Float(40), Y: Float(40), Excavate: true}
	p := ComputePlacement(21, 128, logo)

	require.NotNil(t, p.Excavation)
	assert.True(t, p.Excavation.Empty())
}

func TestRegion_Clip(t *testing.T) {
	cases := []struct {
		in, want Region
	}{
		{Region{X: 2, Y: 2, W: 3, H: 3}, Region{X: 2, Y: 2, W: 3, H: 3}},
		{Region{X: -2, Y: -1, W: 5, H: 4}, Region{X: 0, Y: 0, W: 3, H: 3}},
		{Region{X: 8, Y: 9, W: 10, H: 10}, Region{X: 8, Y: 9, W: 2, H: 1}},
		{Region{X: 10, Y: 0, W: 3, H: 3}, Region{}},
		{Region{X: -5, Y: 0, W: 3, H: 3}, Region{}},
		{Region{X: 1, Y: 1, W: 0, H: 3}, Region{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.Clip(10), "%+v", tc.in)
	}
}

func TestRegion_Contains(t *testing.T) {
	r := Region{X: 1, Y: 2, W: 2, H: 1}
	assert.True(t, r.Contains(1, 2))
	assert.True(t, r.Contains(2, 2))
	assert.False(t, r.Contains(3, 2))
	assert.False(t, r.Contains(1, 3))
	assert.False(t, Region{}.Contains(0, 0))
}
