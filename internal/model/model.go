package model

import (
	"fmt"
	"image"
	"strings"

	"github.com/google/uuid"
)

// Sprite represents a single source image to be packed into a sheet.
type Sprite struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`           // identifier used for style rules and tie-breaking
	Path   string      `json:"path,omitempty"` // source file; empty for manifest placeholders
	Width  int         `json:"width"`          // px
	Height int         `json:"height"`         // px
	Image  image.Image `json:"-"`              // decoded pixels; nil for placeholders
}

func NewSprite(name, path string, w, h int) Sprite {
	return Sprite{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Path:   path,
		Width:  w,
		Height: h,
	}
}

// Area returns the sprite's pixel area.
func (s Sprite) Area() int {
	return s.Width * s.Height
}

// Strategy selects the packing layout used for a sheet.
type Strategy string

const (
	StrategyGreedy      Strategy = "greedy"      // Minimal area increase, any free corner (default)
	StrategyVertical    Strategy = "vertical"    // Stack downward, for x-repeating backgrounds
	StrategyHorizontal  Strategy = "horizontal"  // Stack rightward, for y-repeating backgrounds
	StrategyBox         Strategy = "box"         // Exactly four images in the four corners
	StrategyAlternating Strategy = "alternating" // Stack downward alternating right/left alignment
)

// Strategies returns every known strategy in display order.
func Strategies() []Strategy {
	return []Strategy{
		StrategyGreedy,
		StrategyVertical,
		StrategyHorizontal,
		StrategyBox,
		StrategyAlternating,
	}
}

// ParseStrategy converts a user supplied name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	name := Strategy(strings.ToLower(strings.TrimSpace(s)))
	if name == "" {
		return StrategyGreedy, nil
	}
	for _, st := range Strategies() {
		if st == name {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

// PackSettings holds the strategy selection and its construction parameters.
type PackSettings struct {
	Strategy Strategy `json:"strategy" toml:"strategy"`
	Padding  int      `json:"padding" toml:"padding"`   // vertical/horizontal/alternating gap in px
	XPadding int      `json:"xpadding" toml:"xpadding"` // box: gap between left and right columns
	YPadding int      `json:"ypadding" toml:"ypadding"` // box: gap between top and bottom rows
}

func DefaultSettings() PackSettings {
	return PackSettings{
		Strategy: StrategyGreedy,
		Padding:  0,
		XPadding: 0,
		YPadding: 0,
	}
}

// Placement represents a single sprite placed on the sheet.
type Placement struct {
	Sprite Sprite `json:"sprite"`
	X      int    `json:"x"` // Position from left edge (px)
	Y      int    `json:"y"` // Position from top edge (px)
}

// Right returns the x coordinate of the placement's right edge.
func (p Placement) Right() int {
	return p.X + p.Sprite.Width
}

// Bottom returns the y coordinate of the placement's bottom edge.
func (p Placement) Bottom() int {
	return p.Y + p.Sprite.Height
}

// SheetResult represents a packed sprite sheet.
type SheetResult struct {
	Strategy   Strategy    `json:"strategy"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Placements []Placement `json:"placements"`
}

// UsedArea returns the total area covered by placed sprites.
func (sr SheetResult) UsedArea() int {
	var total int
	for _, p := range sr.Placements {
		total += p.Sprite.Area()
	}
	return total
}

// TotalArea returns the sheet area.
func (sr SheetResult) TotalArea() int {
	return sr.Width * sr.Height
}

// Efficiency returns the usage percentage.
func (sr SheetResult) Efficiency() float64 {
	ta := sr.TotalArea()
	if ta == 0 {
		return 0
	}
	return float64(sr.UsedArea()) / float64(ta) * 100.0
}

// Lookup returns the placement for the named sprite.
func (sr SheetResult) Lookup(name string) (Placement, bool) {
	for _, p := range sr.Placements {
		if p.Sprite.Name == name {
			return p, true
		}
	}
	return Placement{}, false
}
