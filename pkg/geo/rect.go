package geo

// =============================================================================
// Point & Dims
// =============================================================================

// Point is a position in cell coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dims holds a width/height pair.
type Dims struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// =============================================================================
// Rect - Axis-Aligned Bounding Box
// =============================================================================

// Rect is an axis-aligned rectangle in cell coordinates.
// Width and Height are expected to be non-negative; the edge accessors
// tolerate negative extents for robustness against caller bugs.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a Rect from a position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Top returns the top edge.
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Left returns the left edge.
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Right returns the right edge.
func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Dims returns the rectangle's dimensions.
func (r Rect) Dims() Dims {
	return Dims{Width: r.Width, Height: r.Height}
}

// Contains reports whether the point (x, y) lies inside the rectangle,
// with inclusive edges.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x <= r.Right() && y >= r.Top() && y <= r.Bottom()
}

// Translate returns the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}
