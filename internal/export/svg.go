package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/piwi3910/SpritePack/internal/model"
)

// SVGOptions controls RenderSVG.
type SVGOptions struct {
	EmbedImage bool // inline the composed sheet as a PNG data URI under the outlines
	Labels     bool // write each sprite's name inside its outline
}

// RenderSVG draws the sheet at 1:1 scale: a frame, the optional bitmap, and
// one outlined rectangle per placement titled with the sprite name.
func RenderSVG(w io.Writer, sheet model.SheetResult, opts SVGOptions) error {
	if sheet.Width <= 0 || sheet.Height <= 0 {
		return fmt.Errorf("sheet %dx%d has no area", sheet.Width, sheet.Height)
	}

	canvas := svg.New(w)
	canvas.Start(sheet.Width, sheet.Height)
	canvas.Title(fmt.Sprintf("%s sheet %dx%d", sheet.Strategy, sheet.Width, sheet.Height))
	canvas.Rect(0, 0, sheet.Width, sheet.Height, "fill:#ebebeb;stroke:#646464;stroke-width:1")

	if opts.EmbedImage && HasPixels(sheet) {
		var buf bytes.Buffer
		if err := EncodeSheetPNG(&buf, sheet); err != nil {
			return err
		}
		uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
		canvas.Image(0, 0, sheet.Width, sheet.Height, uri)
	}

	canvas.Gid("sprites")
	for i, p := range sheet.Placements {
		col := spriteColors[i%len(spriteColors)]
		fill := fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:0.35", col.R, col.G, col.B)
		if opts.EmbedImage && p.Sprite.Image != nil {
			fill = "fill:none"
		}
		style := fmt.Sprintf("%s;stroke:rgb(%d,%d,%d);stroke-width:1", fill, col.R, col.G, col.B)

		canvas.Group(fmt.Sprintf(`id="%s"`, Slugify(p.Sprite.Name)))
		canvas.Title(fmt.Sprintf("%s %dx%d @ %d,%d", p.Sprite.Name, p.Sprite.Width, p.Sprite.Height, p.X, p.Y))
		canvas.Rect(p.X, p.Y, p.Sprite.Width, p.Sprite.Height, style)
		if opts.Labels && p.Sprite.Width >= 24 && p.Sprite.Height >= 12 {
			canvas.Text(p.X+p.Sprite.Width/2, p.Y+p.Sprite.Height/2, p.Sprite.Name,
				"text-anchor:middle;dominant-baseline:middle;font-size:10px;font-family:sans-serif;fill:#000")
		}
		canvas.Gend()
	}
	canvas.Gend()

	canvas.End()
	return nil
}
