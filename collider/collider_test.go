package collider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingCollision(t *testing.T) {
	ring := Ring{Radius: 100, Thickness: 20}

	tests := []struct {
		name     string
		distance float32
		want     bool
	}{
		{"inside band near inner edge", 95, true},
		{"inside band near outer edge", 105, true},
		{"on inner edge", 90, true},
		{"on outer edge", 110, true},
		{"inside hole", 80, false},
		{"outside ring", 120, false},
		{"center", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ring.CollidesWith(tt.distance, 0), "along x axis")
			assert.Equal(t, tt.want, ring.CollidesWith(0, -tt.distance), "along y axis")
		})
	}
}

func TestRingOffCenter(t *testing.T) {
	ring := Ring{CenterX: 50, CenterY: -20, Radius: 10, Thickness: 4}

	assert.True(t, ring.CollidesWith(60, -20))
	assert.False(t, ring.CollidesWith(50, -20))
	assert.False(t, ring.CollidesWith(0, 0))
}

func TestRingThickerThanDiameter(t *testing.T) {
	// The inner edge clamps at zero so the ring degenerates into a disc.
	ring := Ring{Radius: 5, Thickness: 20}

	assert.Equal(t, float32(0), ring.InnerRadius())
	assert.True(t, ring.CollidesWith(0, 0))
	assert.True(t, ring.CollidesWith(14, 0))
	assert.False(t, ring.CollidesWith(16, 0))
}

func TestCircleCollision(t *testing.T) {
	c := Circle{CenterX: 10, CenterY: 10, Radius: 5}

	assert.True(t, c.CollidesWith(10, 10))
	assert.True(t, c.CollidesWith(15, 10))
	assert.True(t, c.CollidesWith(13, 14))
	assert.False(t, c.CollidesWith(16, 10))
	assert.False(t, c.CollidesWith(0, 0))
}

func TestRectangleCollision(t *testing.T) {
	r := Rectangle{CenterX: -30, CenterY: 5, Width: 40, Height: 20}

	assert.Equal(t, float32(-50), r.Left())
	assert.Equal(t, float32(-10), r.Right())
	assert.Equal(t, float32(-5), r.Top())
	assert.Equal(t, float32(15), r.Bottom())

	assert.True(t, r.CollidesWith(-30, 5))
	assert.True(t, r.CollidesWith(-50, -5))
	assert.True(t, r.CollidesWith(-10, 15))
	assert.False(t, r.CollidesWith(-9, 5))
	assert.False(t, r.CollidesWith(-30, 16))
}

func TestDegenerateShapesNeverCollide(t *testing.T) {
	shapes := map[string]Collider{
		"zero circle":        Circle{},
		"negative circle":    Circle{Radius: -1},
		"zero ring":          Ring{},
		"ring without band":  Ring{Radius: 10},
		"negative ring":      Ring{Radius: -10, Thickness: 4},
		"zero rectangle":     Rectangle{},
		"flat rectangle":     Rectangle{Width: 10},
		"negative rectangle": Rectangle{Width: -4, Height: -4},
	}

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			assert.False(t, shape.CollidesWith(0, 0))
			assert.False(t, shape.CollidesWith(1, 1))
		})
	}
}
