package engine

import (
	"fmt"
	"slices"

	"github.com/piwi3910/SpritePack/internal/model"
)

// Field is a packing engine. Rectangles are inserted one at a time; each
// strategy decides where the next one goes.
type Field interface {
	// Add places r and returns the field's bounding box afterwards. On error
	// the field is left exactly as it was.
	Add(r Rectangle) (Size, error)
	// Placements returns a copy of the committed placements in insertion order.
	Placements() []PositionedRectangle
	// Size returns the current bounding box.
	Size() Size
	// Len returns the number of committed placements.
	Len() int
}

// NewField builds the field variant selected by settings.
func NewField(settings model.PackSettings) (Field, error) {
	switch settings.Strategy {
	case model.StrategyGreedy, "":
		return NewGreedyField(), nil
	case model.StrategyVertical:
		return NewVerticalField(settings.Padding), nil
	case model.StrategyHorizontal:
		return NewHorizontalField(settings.Padding), nil
	case model.StrategyBox:
		return NewBoxField(settings.XPadding, settings.YPadding), nil
	case model.StrategyAlternating:
		return NewAlternatingField(settings.Padding), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, settings.Strategy)
	}
}

// placementSet is the bookkeeping shared by every field variant: the ordered
// placements and the bounding box derived from them. It is the only code that
// mutates the placement list.
type placementSet struct {
	placements []PositionedRectangle
	size       Size
}

func (s *placementSet) Placements() []PositionedRectangle {
	return slices.Clone(s.placements)
}

func (s *placementSet) Size() Size {
	return s.size
}

func (s *placementSet) Len() int {
	return len(s.placements)
}

// last returns the most recently committed placement.
func (s *placementSet) last() PositionedRectangle {
	return s.placements[len(s.placements)-1]
}

// candidate returns the placement r would get at (x, y) without committing it.
func (s *placementSet) candidate(x, y int, r Rectangle) PositionedRectangle {
	return PositionedRectangle{X: x, Y: y, Rect: r, Index: len(s.placements)}
}

// commit appends r at (x, y) and recomputes the bounding box.
func (s *placementSet) commit(x, y int, r Rectangle) PositionedRectangle {
	p := s.candidate(x, y, r)
	s.placements = append(s.placements, p)
	s.size = calculateBounds(s.placements)
	return p
}

// collides reports whether p would overlap any committed placement. The
// candidate's top edge is tested against each placement's horizontal span and
// its left edge against the vertical span; a hit needs both.
func (s *placementSet) collides(p PositionedRectangle) bool {
	top, left := p.TopEdge(), p.LeftEdge()
	for _, placed := range s.placements {
		if top.Overlaps(placed.X, placed.Right()) && left.Overlaps(placed.Y, placed.Bottom()) {
			return true
		}
	}
	return false
}

// markCorners flags every committed placement whose top-right or bottom-left
// corner lies on the top or left edge of p. It must run before p is appended
// so that p never blocks its own corners.
func (s *placementSet) markCorners(p PositionedRectangle) {
	top, left := p.TopEdge(), p.LeftEdge()
	for i := range s.placements {
		placed := &s.placements[i]
		if !placed.TopRightBlocked {
			tr := placed.TopRight()
			if top.Contains(tr) || left.Contains(tr) {
				placed.TopRightBlocked = true
			}
		}
		if !placed.BottomLeftBlocked {
			bl := placed.BottomLeft()
			if top.Contains(bl) || left.Contains(bl) {
				placed.BottomLeftBlocked = true
			}
		}
	}
}

// calculateBounds derives a bounding box from a list of placements. The width
// only considers placements whose top-right corner is free and the height
// only those whose bottom-left corner is free: a blocked corner means another
// rectangle continues past it.
func calculateBounds(placements []PositionedRectangle) Size {
	var size Size
	for _, p := range placements {
		if !p.TopRightBlocked {
			size.Width = max(size.Width, p.Right())
		}
		if !p.BottomLeftBlocked {
			size.Height = max(size.Height, p.Bottom())
		}
	}
	return size
}
