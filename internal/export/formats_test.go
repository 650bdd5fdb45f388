package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/SpritePack/internal/importer"
	"github.com/piwi3910/SpritePack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// ─── JSON ──────────────────────────────────────────────────

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, buildTestSheet(), "sheet.png"))

	var got Manifest
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "sheet.png", got.Image)
	assert.Equal(t, model.StrategyGreedy, got.Strategy)
	assert.Equal(t, 192, got.Width)
	assert.Equal(t, 96, got.Height)
	require.Len(t, got.Frames, 4)
	assert.Equal(t, Frame{X: 128, Y: 32, Width: 64, Height: 16, Source: "img/strip.png"}, got.Frames["strip"])
	assert.Equal(t, Frame{X: 0, Y: 64, Width: 64, Height: 32}, got.Frames["banner"])

	// Keys are emitted in sorted order.
	out := buf.String()
	assert.Less(t, strings.Index(out, `"Header"`), strings.Index(out, `"banner"`))
	assert.Less(t, strings.Index(out, `"icon square"`), strings.Index(out, `"strip"`))
}

// ─── XLSX ──────────────────────────────────────────────────

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.xlsx")
	require.NoError(t, ExportXLSX(path, buildTestSheet()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{placementsSheet, summarySheet}, f.GetSheetList())

	rows, err := f.GetRows(placementsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Name", "X", "Y", "Width", "Height", "Area", "Source"}, rows[0])
	assert.Equal(t, []string{"strip", "128", "32", "64", "16", "1024", "img/strip.png"}, rows[4])

	eff, err := f.GetCellValue(summarySheet, "B7")
	require.NoError(t, err)
	assert.Equal(t, "66.7", eff)
}

func TestExportXLSX_ReimportsAsManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.xlsx")
	require.NoError(t, ExportXLSX(path, buildTestSheet()))

	result := importer.ImportExcel(path)
	require.Empty(t, result.Errors)
	require.Len(t, result.Sprites, 4)
	assert.Equal(t, "icon square", result.Sprites[2].Name)
	assert.Equal(t, 32, result.Sprites[2].Width)
	assert.Equal(t, 32, result.Sprites[2].Height)
}

func TestExportXLSX_Empty(t *testing.T) {
	assert.Error(t, ExportXLSX(filepath.Join(t.TempDir(), "x.xlsx"), model.SheetResult{}))
}

// ─── DXF ───────────────────────────────────────────────────

func TestExportDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.dxf")
	sheet := buildTestSheet()
	require.NoError(t, ExportDXF(path, sheet))

	drawing, err := dxf.Open(path)
	require.NoError(t, err)

	var lines []*entity.Line
	var texts int
	for _, e := range drawing.Entities() {
		switch v := e.(type) {
		case *entity.Line:
			lines = append(lines, v)
		case *entity.Text:
			texts++
		}
	}

	// Sheet frame plus four edges per sprite.
	assert.Len(t, lines, 4*(1+len(sheet.Placements)))
	// All four sprites are at least 12px on each side.
	assert.Equal(t, len(sheet.Placements), texts)

	// The header's top edge sits at the top of the flipped drawing.
	top := lines[4]
	assert.InDelta(t, 0, top.Start[0], 1e-9)
	assert.InDelta(t, 96, top.Start[1], 1e-9)
	assert.InDelta(t, 128, top.End[0], 1e-9)
	assert.InDelta(t, 96, top.End[1], 1e-9)
}

func TestExportDXF_Empty(t *testing.T) {
	assert.Error(t, ExportDXF(filepath.Join(t.TempDir(), "x.dxf"), model.SheetResult{}))
}

// ─── SVG ───────────────────────────────────────────────────

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, buildTestSheet(), SVGOptions{Labels: true}))
	out := buf.String()

	assert.Contains(t, out, `width="192"`)
	assert.Contains(t, out, `height="96"`)
	assert.Contains(t, out, `id="icon-square"`)
	assert.Contains(t, out, `<rect x="128" y="32" width="64" height="16"`)
	assert.Contains(t, out, ">Header<")
	assert.NotContains(t, out, "data:image/png")
	assert.Equal(t, 1+len(buildTestSheet().Placements), strings.Count(out, "<rect "))
}

func TestRenderSVG_EmbedImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, withPixels(buildTestSheet()), SVGOptions{EmbedImage: true}))
	out := buf.String()

	assert.Contains(t, out, "data:image/png;base64,")
	assert.Contains(t, out, "fill:none")
	assert.NotContains(t, out, ">Header<")
}

func TestRenderSVG_NoArea(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, RenderSVG(&buf, model.SheetResult{}, SVGOptions{}))
}
