package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arborcrest/frlayout/geom"
)

func TestBox_Contains(t *testing.T) {
	b := geom.NewBox(geom.Point{X: 0, Y: 0}, 10, 5)
	assert.True(t, b.Contains(geom.Point{X: 10, Y: 5}))
	assert.True(t, b.Contains(geom.Point{X: -10, Y: -5}))
	assert.True(t, b.Contains(geom.Point{X: 0, Y: 0}))
	assert.False(t, b.Contains(geom.Point{X: 10.0001, Y: 0}))
	assert.False(t, b.Contains(geom.Point{X: 0, Y: -5.0001}))
}

func TestBox_QuadrantAndChildAgree(t *testing.T) {
	b := geom.NewBox(geom.Point{X: 0, Y: 0}, 8, 8)
	for _, q := range geom.Quadrants() {
		child := b.Child(q)
		assert.InDelta(t, 4.0, child.HalfW, 1e-12)
		assert.InDelta(t, 4.0, child.HalfH, 1e-12)
	}

	cases := []struct {
		p    geom.Point
		want geom.Quadrant
	}{
		{geom.Point{X: 1, Y: 1}, geom.NE},
		{geom.Point{X: -1, Y: 1}, geom.NW},
		{geom.Point{X: -1, Y: -1}, geom.SW},
		{geom.Point{X: 1, Y: -1}, geom.SE},
	}
	for _, c := range cases {
		q := b.Quadrant(c.p)
		assert.Equal(t, c.want, q)
		assert.True(t, b.Child(q).Contains(c.p))
	}
}

func TestBox_Size(t *testing.T) {
	b := geom.NewBox(geom.Point{}, 10, 4)
	assert.InDelta(t, 20.0, b.Size(), 1e-12)
	b2 := geom.NewBox(geom.Point{}, 3, 9)
	assert.InDelta(t, 18.0, b2.Size(), 1e-12)
}

func TestBox_FromBounds_Margin(t *testing.T) {
	b := geom.FromBounds(0, 10, 0, 10, 1)
	assert.True(t, b.Contains(geom.Point{X: 0, Y: 0}))
	assert.True(t, b.Contains(geom.Point{X: 10, Y: 10}))
	// margin keeps the boundary points strictly interior of the box extents.
	assert.Less(t, b.Center.X-b.HalfW, 0.0)
	assert.Greater(t, b.Center.X+b.HalfW, 10.0)
}
