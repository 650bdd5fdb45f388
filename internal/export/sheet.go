// Package export writes a packed sprite sheet and its companion files: the
// composed image, style sheets for the web, a JSON table of contents, and
// preview or report formats (PDF, XLSX, DXF, SVG).
package export

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/piwi3910/SpritePack/internal/model"
)

// ComposeSheet draws every placed sprite onto a transparent canvas the size of
// the sheet. Placeholder sprites without pixels leave their area transparent.
func ComposeSheet(sheet model.SheetResult) *image.NRGBA {
	canvas := imaging.New(sheet.Width, sheet.Height, color.NRGBA{})
	for _, p := range sheet.Placements {
		if p.Sprite.Image == nil {
			continue
		}
		canvas = imaging.Paste(canvas, p.Sprite.Image, image.Pt(p.X, p.Y))
	}
	return canvas
}

// HasPixels reports whether at least one placement carries image data.
func HasPixels(sheet model.SheetResult) bool {
	for _, p := range sheet.Placements {
		if p.Sprite.Image != nil {
			return true
		}
	}
	return false
}

// WriteSheetPNG composes the sheet and saves it to path. The format follows
// the file extension, so ".png" is the usual choice.
func WriteSheetPNG(path string, sheet model.SheetResult) error {
	if sheet.Width <= 0 || sheet.Height <= 0 {
		return fmt.Errorf("sheet %dx%d has no area", sheet.Width, sheet.Height)
	}
	if err := imaging.Save(ComposeSheet(sheet), path); err != nil {
		return fmt.Errorf("saving sheet image: %w", err)
	}
	return nil
}

// EncodeSheetPNG composes the sheet and writes it to w as PNG.
func EncodeSheetPNG(w io.Writer, sheet model.SheetResult) error {
	if sheet.Width <= 0 || sheet.Height <= 0 {
		return fmt.Errorf("sheet %dx%d has no area", sheet.Width, sheet.Height)
	}
	return imaging.Encode(w, ComposeSheet(sheet), imaging.PNG)
}
