package engine

import "sort"

// SortRectangles orders rects for the greedy, vertical and horizontal
// strategies: largest area first, then widest, then by key in descending
// order. key supplies a stable identifier such as a file name; it may be nil.
func SortRectangles(rects []Rectangle, key func(Rectangle) string) {
	sort.SliceStable(rects, func(i, j int) bool {
		a, b := rects[i], rects[j]
		if a.Area() != b.Area() {
			return a.Area() > b.Area()
		}
		if a.Width != b.Width {
			return a.Width > b.Width
		}
		if key == nil {
			return false
		}
		return key(a) > key(b)
	})
}

// SortByWidth orders rects widest first, keeping the caller's order for equal
// widths. The alternating strategy relies on the first rectangle being the
// widest.
func SortByWidth(rects []Rectangle) {
	sort.SliceStable(rects, func(i, j int) bool {
		return rects[i].Width > rects[j].Width
	})
}
