package gamemath

// Rect is an axis-aligned rectangle in world pixels. Containment and
// intersection include the far edges, so touching rectangles intersect.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether (x, y) lies inside r or on its border.
func (r Rect) Contains(x, y float64) bool {
	return r.X <= x && x <= r.Right() && r.Y <= y && y <= r.Bottom()
}

// Intersects reports whether r and o overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	return !(o.X > r.Right() || o.Right() < r.X || o.Y > r.Bottom() || o.Bottom() < r.Y)
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset grows (negative d) or shrinks r on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}
