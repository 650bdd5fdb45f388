package engine

import "fmt"

// Point is an integer coordinate on the sheet. The origin is the top-left
// corner and y grows downward.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Orientation tells whether a Line runs along the x or the y axis.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Line is an axis-aligned segment. A is always the top-most endpoint of a
// vertical line and the left-most endpoint of a horizontal one.
type Line struct {
	A           Point
	B           Point
	Orientation Orientation
}

// NewLine builds a line between two points that share exactly one coordinate.
// Diagonal or identical points are rejected with ErrInvalidGeometry.
func NewLine(p1, p2 Point) (Line, error) {
	switch {
	case p1 == p2:
		return Line{}, fmt.Errorf("%w: zero-length line at %s", ErrInvalidGeometry, p1)
	case p1.X == p2.X:
		if p2.Y < p1.Y {
			p1, p2 = p2, p1
		}
		return Line{A: p1, B: p2, Orientation: Vertical}, nil
	case p1.Y == p2.Y:
		if p2.X < p1.X {
			p1, p2 = p2, p1
		}
		return Line{A: p1, B: p2, Orientation: Horizontal}, nil
	default:
		return Line{}, fmt.Errorf("%w: %s -> %s is not horizontal or vertical", ErrInvalidGeometry, p1, p2)
	}
}

// span returns the line's extent along its own axis.
func (l Line) span() (lo, hi int) {
	if l.Orientation == Vertical {
		return l.A.Y, l.B.Y
	}
	return l.A.X, l.B.X
}

// Overlaps reports whether the open range (lo, hi) shares any interior with
// the line's own span. Ranges that only touch an endpoint do not overlap.
func (l Line) Overlaps(lo, hi int) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	start, end := l.span()
	return lo < end && hi > start
}

// Contains reports whether p lies on the line, endpoints included.
func (l Line) Contains(p Point) bool {
	if l.Orientation == Vertical {
		return p.X == l.A.X && p.Y >= l.A.Y && p.Y <= l.B.Y
	}
	return p.Y == l.A.Y && p.X >= l.A.X && p.X <= l.B.X
}

func (l Line) String() string {
	return fmt.Sprintf("%s -> %s %s", l.A, l.B, l.Orientation)
}
