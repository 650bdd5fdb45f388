package export

import (
	"fmt"

	"github.com/piwi3910/SpritePack/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
)

// Layer names written into the DXF drawing.
const (
	dxfSheetLayer   = "SHEET"
	dxfSpriteLayer  = "SPRITES"
	dxfLabelLayer   = "LABELS"
	dxfLabelMinSide = 12 // px; smaller sprites are drawn without a name
)

// ExportDXF writes the sheet outline and every sprite outline as LINE entities,
// one unit per pixel. DXF's y axis points up, so rows are flipped against the
// sheet height.
func ExportDXF(path string, sheet model.SheetResult) error {
	if len(sheet.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	d := dxf.NewDrawing()
	flip := func(y int) float64 { return float64(sheet.Height - y) }

	rect := func(x, y, w, h int) error {
		x0, x1 := float64(x), float64(x+w)
		top, bottom := flip(y), flip(y+h)
		edges := [4][4]float64{
			{x0, top, x1, top},
			{x1, top, x1, bottom},
			{x1, bottom, x0, bottom},
			{x0, bottom, x0, top},
		}
		for _, e := range edges {
			if _, err := d.Line(e[0], e[1], 0, e[2], e[3], 0); err != nil {
				return err
			}
		}
		return nil
	}

	if _, err := d.AddLayer(dxfSheetLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	if err := rect(0, 0, sheet.Width, sheet.Height); err != nil {
		return fmt.Errorf("drawing sheet outline: %w", err)
	}

	if _, err := d.AddLayer(dxfSpriteLayer, color.Cyan, dxf.DefaultLineType, true); err != nil {
		return err
	}
	for _, p := range sheet.Placements {
		if err := rect(p.X, p.Y, p.Sprite.Width, p.Sprite.Height); err != nil {
			return fmt.Errorf("drawing %s: %w", p.Sprite.Name, err)
		}
	}

	if _, err := d.AddLayer(dxfLabelLayer, color.White, dxf.DefaultLineType, true); err != nil {
		return err
	}
	for _, p := range sheet.Placements {
		if min(p.Sprite.Width, p.Sprite.Height) < dxfLabelMinSide {
			continue
		}
		height := float64(min(p.Sprite.Height/4, 10))
		if _, err := d.Text(p.Sprite.Name, float64(p.X)+1, flip(p.Bottom())+1, 0, height); err != nil {
			return fmt.Errorf("labelling %s: %w", p.Sprite.Name, err)
		}
	}

	return d.SaveAs(path)
}
