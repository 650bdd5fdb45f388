package engine

import "sort"

// GreedyField places each rectangle at the free corner of an existing
// placement that grows the bounding box the least. Only the bottom-left and
// top-right corners of placed rectangles are tried.
//
// Rectangles should arrive largest first (see SortRectangles); the search is
// local and makes no attempt to revisit earlier decisions.
type GreedyField struct {
	placementSet
}

func NewGreedyField() *GreedyField {
	return &GreedyField{}
}

// greedyCandidate is a collision-free anchor and the area it would produce.
type greedyCandidate struct {
	area   int
	source int // Index of the placement the anchor belongs to
	corner Point
}

// Add places r at the cheapest anchor. A candidate that leaves the area
// unchanged is taken immediately; otherwise the smallest resulting area wins,
// with ties going to the most recently inserted source rectangle.
func (f *GreedyField) Add(r Rectangle) (Size, error) {
	if err := r.validate(); err != nil {
		return f.size, err
	}

	if len(f.placements) == 0 {
		f.commit(0, 0, r)
		return f.size, nil
	}

	current := f.size.Area()
	var candidates []greedyCandidate

	for _, placed := range f.placements {
		for _, corner := range f.anchors(placed) {
			trial := f.candidate(corner.X, corner.Y, r)
			if f.collides(trial) {
				continue
			}

			// The three-index slice forces append to copy, so the committed
			// placements are never touched while evaluating.
			area := calculateBounds(append(f.placements[:len(f.placements):len(f.placements)], trial)).Area()
			if area == current {
				f.place(trial)
				return f.size, nil
			}
			candidates = append(candidates, greedyCandidate{area: area, source: placed.Index, corner: corner})
		}
	}

	if len(candidates) == 0 {
		return f.size, &InvariantError{Op: "greedy add", Placed: len(f.placements), Err: ErrNoViablePlacement}
	}

	// Smallest area first, then the newest source. The stable sort keeps
	// bottom-left ahead of top-right for the same source.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].area != candidates[j].area {
			return candidates[i].area < candidates[j].area
		}
		return candidates[i].source > candidates[j].source
	})

	best := candidates[0]
	f.place(f.candidate(best.corner.X, best.corner.Y, r))
	return f.size, nil
}

// anchors returns the unblocked corners of placed, bottom-left first.
func (f *GreedyField) anchors(placed PositionedRectangle) []Point {
	corners := make([]Point, 0, 2)
	if !placed.BottomLeftBlocked {
		corners = append(corners, placed.BottomLeft())
	}
	if !placed.TopRightBlocked {
		corners = append(corners, placed.TopRight())
	}
	return corners
}

// place blocks the corners p abuts and then commits it.
func (f *GreedyField) place(p PositionedRectangle) {
	f.markCorners(p)
	f.commit(p.X, p.Y, p.Rect)
}
