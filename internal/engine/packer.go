package engine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/SpritePack/internal/model"
)

// Packer lays out sprites on a single sheet using the configured strategy.
type Packer struct {
	Settings model.PackSettings
	// Logger receives a debug entry per committed placement. Nil disables logging.
	Logger *log.Logger
}

func New(settings model.PackSettings) *Packer {
	return &Packer{Settings: settings}
}

// Pack orders the sprites for the selected strategy, inserts them into a new
// field and returns the resulting sheet.
//
// Greedy, vertical and horizontal sheets take sprites largest area first,
// then widest, then by name. Alternating sheets take them widest first. Box
// sheets keep the caller's order, which decides the corner each sprite lands in.
func (p *Packer) Pack(sprites []model.Sprite) (model.SheetResult, error) {
	if len(sprites) == 0 {
		return model.SheetResult{}, ErrNothingToPack
	}

	field, err := NewField(p.Settings)
	if err != nil {
		return model.SheetResult{}, err
	}

	rects, err := p.order(sprites)
	if err != nil {
		return model.SheetResult{}, err
	}

	for _, r := range rects {
		size, err := field.Add(r)
		if err != nil {
			s := sprites[r.Payload.(int)]
			return model.SheetResult{}, fmt.Errorf("placing %q (%dx%d): %w", s.Name, s.Width, s.Height, err)
		}
		if p.Logger != nil {
			s := sprites[r.Payload.(int)]
			p.Logger.Debug("placed sprite", "name", s.Name, "size", fmt.Sprintf("%dx%d", s.Width, s.Height), "sheet", size)
		}
	}

	return toSheetResult(p.strategy(), field, sprites), nil
}

func (p *Packer) strategy() model.Strategy {
	if p.Settings.Strategy == "" {
		return model.StrategyGreedy
	}
	return p.Settings.Strategy
}

// order converts sprites into rectangles whose payload is the sprite's index,
// sorted for the configured strategy.
func (p *Packer) order(sprites []model.Sprite) ([]Rectangle, error) {
	rects := make([]Rectangle, 0, len(sprites))
	for i, s := range sprites {
		r, err := NewRectangle(s.Width, s.Height, i)
		if err != nil {
			return nil, fmt.Errorf("sprite %q: %w", s.Name, err)
		}
		rects = append(rects, r)
	}

	switch p.strategy() {
	case model.StrategyBox:
		// Caller's order picks the corners.
	case model.StrategyAlternating:
		SortByWidth(rects)
	default:
		SortRectangles(rects, func(r Rectangle) string {
			return sprites[r.Payload.(int)].Name
		})
	}
	return rects, nil
}

// toSheetResult maps the field's placements back to their sprites.
func toSheetResult(strategy model.Strategy, field Field, sprites []model.Sprite) model.SheetResult {
	size := field.Size()
	result := model.SheetResult{
		Strategy:   strategy,
		Width:      size.Width,
		Height:     size.Height,
		Placements: make([]model.Placement, 0, field.Len()),
	}
	for _, pr := range field.Placements() {
		result.Placements = append(result.Placements, model.Placement{
			Sprite: sprites[pr.Rect.Payload.(int)],
			X:      pr.X,
			Y:      pr.Y,
		})
	}
	return result
}
