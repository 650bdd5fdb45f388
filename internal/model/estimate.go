package model

// SheetEstimate holds lower bounds for a sprite sheet computed before packing.
type SheetEstimate struct {
	SpriteCount     int `json:"sprite_count"`
	TotalSpriteArea int `json:"total_sprite_area"` // Sum of all sprite areas (px²)
	MinWidth        int `json:"min_width"`         // Widest sprite; no layout can be narrower
	MinHeight       int `json:"min_height"`        // Tallest sprite; no layout can be shorter
	RGBABytes       int `json:"rgba_bytes"`        // Decoded size of a perfectly packed sheet
}

// bytesPerPixel is the size of one RGBA pixel.
const bytesPerPixel = 4

// EstimateSheet computes the lower bounds of any sheet that holds all sprites.
func EstimateSheet(sprites []Sprite) SheetEstimate {
	est := SheetEstimate{SpriteCount: len(sprites)}
	for _, s := range sprites {
		est.TotalSpriteArea += s.Area()
		if s.Width > est.MinWidth {
			est.MinWidth = s.Width
		}
		if s.Height > est.MinHeight {
			est.MinHeight = s.Height
		}
	}
	est.RGBABytes = est.TotalSpriteArea * bytesPerPixel
	return est
}

// Waste returns the percentage of a packed sheet not covered by sprites,
// measured against the estimate's total sprite area.
func (e SheetEstimate) Waste(sheet SheetResult) float64 {
	total := sheet.TotalArea()
	if total == 0 {
		return 0
	}
	return float64(total-e.TotalSpriteArea) / float64(total) * 100.0
}
