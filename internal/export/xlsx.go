package export

import (
	"fmt"

	"github.com/piwi3910/SpritePack/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names used in the exported workbook.
const (
	placementsSheet = "Placements"
	summarySheet    = "Summary"
)

var placementHeaders = []interface{}{"Name", "X", "Y", "Width", "Height", "Area", "Source"}

// ExportXLSX writes a workbook with one row per placement and a summary sheet.
// The placement columns match the manifest importer, so the file can be fed
// back in as a plan.
func ExportXLSX(path string, sheet model.SheetResult) error {
	if len(sheet.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), placementsSheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(placementsSheet, "A1", &placementHeaders); err != nil {
		return err
	}
	if err := f.SetCellStyle(placementsSheet, "A1", "G1", headerStyle); err != nil {
		return err
	}

	for i, p := range sheet.Placements {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{p.Sprite.Name, p.X, p.Y, p.Sprite.Width, p.Sprite.Height, p.Sprite.Area(), p.Sprite.Path}
		if err := f.SetSheetRow(placementsSheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s: %w", p.Sprite.Name, err)
		}
	}
	if err := f.SetColWidth(placementsSheet, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(placementsSheet, "G", "G", 40); err != nil {
		return err
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	summary := [][]interface{}{
		{"Strategy", string(sheet.Strategy)},
		{"Width", sheet.Width},
		{"Height", sheet.Height},
		{"Sprites", len(sheet.Placements)},
		{"Used Area", sheet.UsedArea()},
		{"Sheet Area", sheet.TotalArea()},
		{"Efficiency %", fmt.Sprintf("%.1f", sheet.Efficiency())},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", len(summary)), headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 16); err != nil {
		return err
	}

	return f.SaveAs(path)
}
