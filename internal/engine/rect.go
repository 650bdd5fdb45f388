package engine

import "fmt"

// Rectangle describes an input to be packed. Payload is carried through
// untouched so callers can map placements back to their source.
type Rectangle struct {
	Width   int
	Height  int
	Payload any
}

// NewRectangle returns a rectangle with the given size, rejecting
// non-positive dimensions.
func NewRectangle(w, h int, payload any) (Rectangle, error) {
	r := Rectangle{Width: w, Height: h, Payload: payload}
	if err := r.validate(); err != nil {
		return Rectangle{}, err
	}
	return r, nil
}

func (r Rectangle) validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: rectangle %dx%d must have positive sides", ErrInvalidGeometry, r.Width, r.Height)
	}
	return nil
}

// Area returns the rectangle's area.
func (r Rectangle) Area() int {
	return r.Width * r.Height
}

// Size is the bounding box of a field.
type Size struct {
	Width  int
	Height int
}

// Area returns the bounding box area.
func (s Size) Area() int {
	return s.Width * s.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// PositionedRectangle is a Rectangle placed in a field. Index is the order in
// which it was inserted. The corner flags record whether a later placement
// abuts that corner; once set they are never cleared.
type PositionedRectangle struct {
	X                 int
	Y                 int
	Rect              Rectangle
	Index             int
	BottomLeftBlocked bool
	TopRightBlocked   bool
}

// Right returns the x coordinate of the right edge.
func (p PositionedRectangle) Right() int {
	return p.X + p.Rect.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (p PositionedRectangle) Bottom() int {
	return p.Y + p.Rect.Height
}

// TopRight returns the anchor to the right of the rectangle.
func (p PositionedRectangle) TopRight() Point {
	return Point{X: p.Right(), Y: p.Y}
}

// BottomLeft returns the anchor below the rectangle.
func (p PositionedRectangle) BottomLeft() Point {
	return Point{X: p.X, Y: p.Bottom()}
}

// TopEdge returns the rectangle's top side. The rectangle must have a
// positive width.
func (p PositionedRectangle) TopEdge() Line {
	return Line{A: Point{X: p.X, Y: p.Y}, B: p.TopRight(), Orientation: Horizontal}
}

// LeftEdge returns the rectangle's left side. The rectangle must have a
// positive height.
func (p PositionedRectangle) LeftEdge() Line {
	return Line{A: Point{X: p.X, Y: p.Y}, B: p.BottomLeft(), Orientation: Vertical}
}

// Overlaps reports whether the open interiors of p and other intersect.
// Rectangles sharing only an edge or a corner do not overlap.
func (p PositionedRectangle) Overlaps(other PositionedRectangle) bool {
	return p.TopEdge().Overlaps(other.X, other.Right()) &&
		p.LeftEdge().Overlaps(other.Y, other.Bottom())
}

func (p PositionedRectangle) String() string {
	return fmt.Sprintf("#%d %dx%d @ (%d, %d) (tr/bl: %t, %t)",
		p.Index, p.Rect.Width, p.Rect.Height, p.X, p.Y, p.TopRightBlocked, p.BottomLeftBlocked)
}
