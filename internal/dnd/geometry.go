package dnd

// Point is a terminal cell coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned box in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies within r. Empty rects contain nothing.
func (r Rect) Contains(p Point) bool {
	return r.W > 0 && r.H > 0 &&
		p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// LowerHalf reports whether p falls in the bottom half of r.
func (r Rect) LowerHalf(p Point) bool {
	return p.Y-r.Y >= (r.H+1)/2
}

// Chebyshev returns the chessboard distance between a and b, which matches
// how far a pointer visibly travelled on a cell grid.
func Chebyshev(a, b Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
