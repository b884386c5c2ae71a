package crop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectFromDragMatchesMinAbs(t *testing.T) {
	points := []Point{{0, 0}, {10, 300}, {400, 0}, {399.5, 299.5}, {200, 150}, {37.25, 12.75}}
	for _, a := range points {
		for _, p := range points {
			r := RectFromDrag(a, p)
			assert.Equal(t, min(a.X, p.X), r.X)
			assert.Equal(t, min(a.Y, p.Y), r.Y)
			assert.GreaterOrEqual(t, r.Width, 0.0)
			assert.GreaterOrEqual(t, r.Height, 0.0)
			assert.InDelta(t, max(a.X, p.X), r.X+r.Width, 1e-9)
			assert.InDelta(t, max(a.Y, p.Y), r.Y+r.Height, 1e-9)
		}
	}
}

func TestClampPoint(t *testing.T) {
	bounds := Size{Width: 400, Height: 300}

	assert.Equal(t, Point{X: 0, Y: 0}, ClampPoint(Point{X: -5, Y: -5}, bounds))
	assert.Equal(t, Point{X: 400, Y: 300}, ClampPoint(Point{X: 401, Y: 1e6}, bounds))
	assert.Equal(t, Point{X: 12.5, Y: 299}, ClampPoint(Point{X: 12.5, Y: 299}, bounds))
}

func TestScaleFactorsAreIndependent(t *testing.T) {
	sx, sy := ScaleFactors(Size{Width: 800, Height: 1000}, Size{Width: 400, Height: 200})
	assert.Equal(t, 2.0, sx)
	assert.Equal(t, 5.0, sy)
}

func TestToNaturalAsymmetricScale(t *testing.T) {
	got := ToNatural(
		Rect{X: 40, Y: 20, Width: 40, Height: 20},
		Size{Width: 400, Height: 200},
		Size{Width: 800, Height: 1000},
	)
	assert.Equal(t, Rect{X: 80, Y: 100, Width: 80, Height: 100}, got)
}

func TestRound(t *testing.T) {
	tests := map[float64]int{
		0:     0,
		0.49:  0,
		0.5:   1,
		2.5:   3,
		-2.5:  -2,
		-2.51: -3,
		99.99: 100,
	}
	for in, want := range tests {
		assert.Equal(t, want, Round(in), "Round(%v)", in)
	}
}

func TestParseInt(t *testing.T) {
	tests := map[string]float64{
		"":       0,
		"abc":    0,
		"42":     42,
		"  42":   42,
		"\t-17":  -17,
		"+8":     8,
		"12.7":   12,
		"30px":   30,
		"-":      0,
		"-0":     0,
		"1e3":    1,
		"007":    7,
		"x12":    0,
		"- 5":    0,
		"123456": 123456,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseInt(in), "ParseInt(%q)", in)
	}
}

func TestSizeEmpty(t *testing.T) {
	assert.True(t, Size{}.Empty())
	assert.True(t, Size{Width: 10}.Empty())
	assert.False(t, Size{Width: 10, Height: 1}.Empty())
}
