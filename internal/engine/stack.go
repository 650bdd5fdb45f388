package engine

// VerticalField stacks every rectangle directly below the previously
// inserted one, separated by a fixed padding. It suits backgrounds that
// repeat along the x axis.
type VerticalField struct {
	placementSet
	padding int
}

func NewVerticalField(padding int) *VerticalField {
	return &VerticalField{padding: max(padding, 0)}
}

// Add places r below the last inserted rectangle, aligned to its x.
func (f *VerticalField) Add(r Rectangle) (Size, error) {
	if err := r.validate(); err != nil {
		return f.size, err
	}
	if len(f.placements) == 0 {
		f.commit(0, 0, r)
		return f.size, nil
	}
	last := f.last()
	f.commit(last.X, last.Bottom()+f.padding, r)
	return f.size, nil
}

// HorizontalField stacks every rectangle directly to the right of the
// previously inserted one, separated by a fixed padding. It suits backgrounds
// that repeat along the y axis.
type HorizontalField struct {
	placementSet
	padding int
}

func NewHorizontalField(padding int) *HorizontalField {
	return &HorizontalField{padding: max(padding, 0)}
}

// Add places r to the right of the last inserted rectangle, on the top edge.
func (f *HorizontalField) Add(r Rectangle) (Size, error) {
	if err := r.validate(); err != nil {
		return f.size, err
	}
	if len(f.placements) == 0 {
		f.commit(0, 0, r)
		return f.size, nil
	}
	last := f.last()
	f.commit(last.Right()+f.padding, 0, r)
	return f.size, nil
}
