// Package collider provides the hit shapes used by the dial to decide which
// interactive region a pointer landed in. All shapes live in the dial's
// centered coordinate frame.
package collider

// Collider is implemented by every hit shape.
type Collider interface {
	// CollidesWith reports whether the point lies inside the shape.
	// Degenerate shapes (zero or negative extent) never collide.
	CollidesWith(x, y float32) bool
}

// ============================================================================
// Circle
// ============================================================================

// Circle is a filled disc. The dial pointer uses it.
type Circle struct {
	CenterX, CenterY float32
	Radius           float32
}

// CollidesWith reports whether (x, y) lies inside or on the circle.
func (c Circle) CollidesWith(x, y float32) bool {
	if c.Radius <= 0 {
		return false
	}
	dx := c.CenterX - x
	dy := c.CenterY - y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// ============================================================================
// Ring
// ============================================================================

// Ring is an annulus centered on (CenterX, CenterY). Radius is measured to
// the middle of the band and Thickness is the full band width.
type Ring struct {
	CenterX, CenterY float32
	Radius           float32
	Thickness        float32
}

// InnerRadius returns the radius of the inner edge, never below zero.
func (r Ring) InnerRadius() float32 {
	inner := r.Radius - r.Thickness*0.5
	if inner < 0 {
		return 0
	}
	return inner
}

// OuterRadius returns the radius of the outer edge.
func (r Ring) OuterRadius() float32 {
	return r.Radius + r.Thickness*0.5
}

// CollidesWith reports whether (x, y) lies on the band, edges included.
func (r Ring) CollidesWith(x, y float32) bool {
	if r.Radius <= 0 || r.Thickness <= 0 {
		return false
	}
	dx := r.CenterX - x
	dy := r.CenterY - y
	distSqr := dx*dx + dy*dy
	inner := r.InnerRadius()
	outer := r.OuterRadius()
	return distSqr >= inner*inner && distSqr <= outer*outer
}

// ============================================================================
// Rectangle
// ============================================================================

// Rectangle is an axis-aligned box described by its center and full extents.
// The dial uses it for the tappable hour and minute labels.
type Rectangle struct {
	CenterX, CenterY float32
	Width, Height    float32
}

// Left returns the minimum x edge.
func (r Rectangle) Left() float32 { return r.CenterX - r.Width*0.5 }

// Right returns the maximum x edge.
func (r Rectangle) Right() float32 { return r.CenterX + r.Width*0.5 }

// Top returns the minimum y edge (y grows downward in the dial frame).
func (r Rectangle) Top() float32 { return r.CenterY - r.Height*0.5 }

// Bottom returns the maximum y edge.
func (r Rectangle) Bottom() float32 { return r.CenterY + r.Height*0.5 }

// CollidesWith reports whether (x, y) lies inside the box, edges included.
func (r Rectangle) CollidesWith(x, y float32) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	return x >= r.Left() && x <= r.Right() &&
		y >= r.Top() && y <= r.Bottom()
}
