package core

// Vec2 is a two-dimensional vector, used for ball velocity.
type Vec2 struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle identified by its top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// NewRect constructs a Rect from a top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the x coordinate of the rectangle's center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the y coordinate of the rectangle's center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// SetLeft moves the rectangle so its left edge sits at x.
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetRight moves the rectangle so its right edge sits at x.
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetTop moves the rectangle so its top edge sits at y.
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetBottom moves the rectangle so its bottom edge sits at y.
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// SetCenter moves the rectangle so its center sits at (x, y).
func (r *Rect) SetCenter(x, y float64) {
	r.X = x - r.W/2
	r.Y = y - r.H/2
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && other.X < r.X+r.W &&
		r.Y < other.Y+other.H && other.Y < r.Y+r.H
}
