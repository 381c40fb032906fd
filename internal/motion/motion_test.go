package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-circuit-pulse/internal/diagram"
)

var phases = []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 0.999999}

func TestPosition_CenterIsStationary(t *testing.T) {
	anchor := Vec{12, -7}
	for _, p := range phases {
		assert.Equal(t, anchor, Position(diagram.Center, anchor, Vec{25, 25}, p))
	}
}

func TestPosition_Right(t *testing.T) {
	half := Vec{5, 5}

	assert.Equal(t, Vec{-5, 0}, Position(diagram.Right, Vec{}, half, 0))
	assert.Equal(t, Vec{0, 0}, Position(diagram.Right, Vec{}, half, 0.5))

	end := Position(diagram.Right, Vec{}, half, 0.999999)
	assert.Less(t, end.X, 5.0)
	assert.InDelta(t, 5.0, end.X, 1e-4)
	assert.Equal(t, 0.0, end.Y)
}

func TestPosition_Straight(t *testing.T) {
	anchor, half := Vec{100, 50}, Vec{10, 20}
	tests := []struct {
		d          diagram.Directive
		start, mid Vec
	}{
		{diagram.Left, Vec{110, 50}, Vec{100, 50}},
		{diagram.Right, Vec{90, 50}, Vec{100, 50}},
		{diagram.Up, Vec{100, 30}, Vec{100, 50}},
		{diagram.Down, Vec{100, 70}, Vec{100, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			assert.Equal(t, tt.start, Position(tt.d, anchor, half, 0))
			assert.Equal(t, tt.mid, Position(tt.d, anchor, half, 0.5))
			q := Position(tt.d, anchor, half, 0.25)
			// одна из осей всегда закреплена на якоре
			assert.True(t, q.X == anchor.X || q.Y == anchor.Y)
		})
	}
}

func TestPosition_Corners(t *testing.T) {
	anchor, half := Vec{0, 0}, Vec{4, 6}
	tests := []struct {
		d         diagram.Directive
		entry, to Vec
	}{
		{diagram.BottomToLeft, Vec{0, -6}, Vec{-4, 0}},
		{diagram.TopToLeft, Vec{0, 6}, Vec{-4, 0}},
		{diagram.BottomToRight, Vec{0, -6}, Vec{4, 0}},
		{diagram.TopToRight, Vec{0, 6}, Vec{4, 0}},
		{diagram.LeftToTop, Vec{-4, 0}, Vec{0, 6}},
		{diagram.RightToTop, Vec{4, 0}, Vec{0, 6}},
		{diagram.LeftToBottom, Vec{-4, 0}, Vec{0, -6}},
		{diagram.RightToBottom, Vec{4, 0}, Vec{0, -6}},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			assert.Equal(t, diagram.ClassCorner, tt.d.Class())
			assert.Equal(t, tt.entry, Position(tt.d, anchor, half, 0))

			from, to := Endpoints(tt.d, anchor, half)
			assert.Equal(t, tt.entry, from)
			assert.Equal(t, tt.to, to)

			prev := Position(tt.d, anchor, half, 0)
			for _, p := range phases[1:] {
				cur := Position(tt.d, anchor, half, p)
				assertMonotonic(t, prev.X, cur.X, tt.to.X-tt.entry.X)
				assertMonotonic(t, prev.Y, cur.Y, tt.to.Y-tt.entry.Y)
				prev = cur
			}
			assert.InDelta(t, tt.to.X, prev.X, 1e-4)
			assert.InDelta(t, tt.to.Y, prev.Y, 1e-4)
		})
	}
}

func assertMonotonic(t *testing.T, prev, cur, direction float64) {
	t.Helper()
	switch {
	case direction > 0:
		assert.Greater(t, cur, prev)
	case direction < 0:
		assert.Less(t, cur, prev)
	default:
		assert.Equal(t, prev, cur)
	}
}

func TestPosition_BlankStaysAtAnchor(t *testing.T) {
	anchor := Vec{3, 4}
	assert.Equal(t, anchor, Position(diagram.Blank, anchor, Vec{1, 1}, 0.4))
}

func TestPosition_TotalOverDirectives(t *testing.T) {
	for _, d := range diagram.All() {
		assert.NotPanics(t, func() { Position(d, Vec{}, Vec{1, 1}, 0.3) }, d.String())
	}
}

func TestPhase(t *testing.T) {
	assert.Equal(t, 0.0, Phase(0, 2))
	assert.InDelta(t, 0.25, Phase(0.5, 2), 1e-12)
	assert.Equal(t, 0.0, Phase(2, 2))

	const eps = 1e-3
	for _, cycle := range []float64{0.5, 1, 3.7} {
		assert.InDelta(t, Phase(eps, cycle), Phase(cycle+eps, cycle), 1e-9)
		assert.InDelta(t, Phase(eps, cycle), Phase(10*cycle+eps, cycle), 1e-9)
		p := Phase(cycle-1e-9, cycle)
		assert.Less(t, p, 1.0)
		assert.GreaterOrEqual(t, p, 0.0)
	}
}
