package engine

import "fmt"

// boxCapacity is the number of corners a BoxField fills.
const boxCapacity = 4

// BoxField packs exactly four rectangles into the corners of a box, clockwise
// from the top-left. It is meant for rounded-corner images.
type BoxField struct {
	placementSet
	xpadding int
	ypadding int
}

func NewBoxField(xpadding, ypadding int) *BoxField {
	return &BoxField{xpadding: max(xpadding, 0), ypadding: max(ypadding, 0)}
}

// Add places r into the next free corner. A fifth rectangle is rejected with
// ErrFieldFull.
func (f *BoxField) Add(r Rectangle) (Size, error) {
	if err := r.validate(); err != nil {
		return f.size, err
	}

	switch len(f.placements) {
	case 0: // top left
		f.commit(0, 0, r)
	case 1: // top right
		tl := f.placements[0]
		f.commit(tl.Rect.Width+f.xpadding, 0, r)
	case 2: // bottom right, under the top-right rectangle
		tl, tr := f.placements[0], f.placements[1]
		y := max(tl.Rect.Height, tr.Rect.Height) + f.ypadding
		f.commit(tr.X, y, r)
	case 3: // bottom left, bottom edge aligned with the bottom-right rectangle
		tl, br := f.placements[0], f.placements[2]
		// A piece taller than the bottom-right one would reach into the top
		// row; it stays below the top-left rectangle instead.
		y := max(br.Bottom()-r.Height, tl.Bottom()+f.ypadding)
		f.commit(0, y, r)
	default:
		return f.size, fmt.Errorf("%w: box holds %d rectangles", ErrFieldFull, boxCapacity)
	}
	return f.size, nil
}
