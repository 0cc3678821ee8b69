// Package core provides the geometry, input and screen primitives shared by the
// runner simulation and the terminal platform. It has no terminal dependencies so
// the simulation stays pure and testable.
package core

// Rect is an axis-aligned bounding box in integer units.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps world units onto a character grid. The simulation runs in world
// units (playfield pixels); only rendering knows about cells.
type Viewport struct {
	WorldW, WorldH   int
	ScreenW, ScreenH int
}

// X converts a world x-coordinate to a screen column.
func (v Viewport) X(wx int) int {
	if v.WorldW <= 0 {
		return 0
	}
	return floorDiv(wx*v.ScreenW, v.WorldW)
}

// Y converts a world y-coordinate to a screen row.
func (v Viewport) Y(wy int) int {
	if v.WorldH <= 0 {
		return 0
	}
	return floorDiv(wy*v.ScreenH, v.WorldH)
}

// Rect converts a world rectangle to screen cells. Any non-empty world rect
// covers at least one cell so small objects never vanish.
func (v Viewport) Rect(r Rect) Rect {
	x0, y0 := v.X(r.X), v.Y(r.Y)
	x1, y1 := v.X(r.Right()), v.Y(r.Bottom())
	w := Max(x1-x0, 1)
	h := Max(y1-y0, 1)
	return NewRect(x0, y0, w, h)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
