package export

import (
	"encoding/json"
	"io"

	"github.com/piwi3910/SpritePack/internal/model"
)

// Frame is the JSON form of one placement.
type Frame struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"w"`
	Height int    `json:"h"`
	Source string `json:"source,omitempty"`
}

// Manifest is the table of contents written next to a sheet.
type Manifest struct {
	Image    string           `json:"image,omitempty"`
	Strategy model.Strategy   `json:"strategy"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Frames   map[string]Frame `json:"frames"`
}

// BuildManifest maps every sprite name to its frame.
func BuildManifest(sheet model.SheetResult, image string) Manifest {
	m := Manifest{
		Image:    image,
		Strategy: sheet.Strategy,
		Width:    sheet.Width,
		Height:   sheet.Height,
		Frames:   make(map[string]Frame, len(sheet.Placements)),
	}
	for _, p := range sheet.Placements {
		m.Frames[p.Sprite.Name] = Frame{
			X:      p.X,
			Y:      p.Y,
			Width:  p.Sprite.Width,
			Height: p.Sprite.Height,
			Source: p.Sprite.Path,
		}
	}
	return m
}

// WriteJSON writes the sheet's table of contents as indented JSON. Frame keys
// come out sorted.
func WriteJSON(w io.Writer, sheet model.SheetResult, image string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildManifest(sheet, image))
}
