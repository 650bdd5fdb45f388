package engine

// AlternatingField stacks rectangles downward, alternating between the right
// and the left edge of a column whose width is fixed by the first rectangle.
// It is useful for buttons with separate left and right caps. Rectangles
// should arrive widest first (see SortByWidth).
type AlternatingField struct {
	placementSet
	padding    int
	alignRight bool
}

func NewAlternatingField(padding int) *AlternatingField {
	return &AlternatingField{padding: max(padding, 0)}
}

// Add places r below the current bounding box, right-aligned after the first
// rectangle and flipping sides on every call.
func (f *AlternatingField) Add(r Rectangle) (Size, error) {
	if err := r.validate(); err != nil {
		return f.size, err
	}

	if len(f.placements) == 0 {
		f.commit(0, 0, r)
		f.alignRight = true
		return f.size, nil
	}

	y := f.size.Height + f.padding
	if f.alignRight {
		// A rectangle wider than the column is pinned to the left edge.
		f.commit(max(f.size.Width-r.Width, 0), y, r)
	} else {
		f.commit(0, y, r)
	}
	f.alignRight = !f.alignRight
	return f.size, nil
}
