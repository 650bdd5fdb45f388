package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Name,Width,Height\nicon,32,32\nlogo,120,40\n")
	if d := DetectCSVDelimiter(data); d != ',' {
		t.Errorf("expected comma, got %q", d)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Name;Width;Height\nicon;32;32\nlogo;120;40\n")
	if d := DetectCSVDelimiter(data); d != ';' {
		t.Errorf("expected semicolon, got %q", d)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Name\tWidth\tHeight\nicon\t32\t32\n")
	if d := DetectCSVDelimiter(data); d != '\t' {
		t.Errorf("expected tab, got %q", d)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Name|Width|Height\nicon|32|32\n")
	if d := DetectCSVDelimiter(data); d != '|' {
		t.Errorf("expected pipe, got %q", d)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Name", "Width", "Height", "Quantity"})

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Name != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Quantity != 3 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestDetectColumns_CaseInsensitiveAliases(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"SPRITE", "W", "H", "Frames"})

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Name != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Quantity != 3 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestDetectColumns_ReorderedColumns(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Qty", "Height", "Width", "File"})

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Quantity != 0 || mapping.Height != 1 || mapping.Width != 2 || mapping.Name != 3 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"icon", "32", "32", "2"})

	if isHeader {
		t.Error("expected no header detection for numeric data")
	}
	if mapping.Name != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Quantity != 3 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	data := "Name,Width,Height,Quantity\nheader,128,64,1\nsmall,32,16,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Sprites) != 2 {
		t.Fatalf("expected 2 sprites, got %d", len(result.Sprites))
	}
	s := result.Sprites[0]
	if s.Name != "header" || s.Width != 128 || s.Height != 64 {
		t.Errorf("unexpected sprite %+v", s)
	}
	if s.Path != "" || s.Image != nil {
		t.Errorf("manifest sprites should be placeholders, got path %q", s.Path)
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "header,128,64\nsmall,32,16\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Sprites) != 2 {
		t.Fatalf("expected 2 sprites, got %d (errors: %v)", len(result.Sprites), result.Errors)
	}
	if result.Sprites[1].Name != "small" || result.Sprites[1].Width != 32 {
		t.Errorf("unexpected sprite %+v", result.Sprites[1])
	}
}

func TestImportCSVFromReader_QuantityExpandsCopies(t *testing.T) {
	data := "Name,Width,Height,Qty\nframe,16,16,3\nlogo,64,32,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Sprites) != 4 {
		t.Fatalf("expected 4 sprites, got %d (errors: %v)", len(result.Sprites), result.Errors)
	}
	want := []string{"frame-1", "frame-2", "frame-3", "logo"}
	for i, name := range want {
		if result.Sprites[i].Name != name {
			t.Errorf("sprite %d: expected %q, got %q", i, name, result.Sprites[i].Name)
		}
	}
}

func TestImportCSVFromReader_QuantityOptional(t *testing.T) {
	data := "Name,Width,Height\nicon,32,32\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 || len(result.Sprites) != 1 {
		t.Fatalf("expected 1 sprite and no errors, got %d / %v", len(result.Sprites), result.Errors)
	}
}

func TestImportCSVFromReader_PixelSuffix(t *testing.T) {
	data := "Name,Width,Height\nicon,32px,24PX\nbar,64.0,8\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Sprites) != 2 {
		t.Fatalf("expected 2 sprites, got %d (errors: %v)", len(result.Sprites), result.Errors)
	}
	if result.Sprites[0].Width != 32 || result.Sprites[0].Height != 24 {
		t.Errorf("expected 32x24, got %dx%d", result.Sprites[0].Width, result.Sprites[0].Height)
	}
	if result.Sprites[1].Width != 64 {
		t.Errorf("expected width 64, got %d", result.Sprites[1].Width)
	}
}

func TestImportCSVFromReader_SemicolonDelimiter(t *testing.T) {
	data := "Name;Width;Height\nicon;32;32\n"
	result := ImportCSVFromReader(strings.NewReader(data), ';')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Sprites) != 1 {
		t.Fatalf("expected 1 sprite, got %d", len(result.Sprites))
	}
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

func TestImportCSVFromReader_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"non-numeric width", "icon,abc,32,1"},
		{"fractional width", "icon,32.5,32,1"},
		{"negative height", "icon,32,-4,1"},
		{"zero width", "icon,0,32,1"},
		{"zero quantity", "icon,32,32,0"},
		{"invalid quantity", "icon,32,32,x"},
		{"missing height", "icon,32,,1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := "Name,Width,Height,Quantity\n" + tt.row + "\n"
			result := ImportCSVFromReader(strings.NewReader(data), ',')

			if len(result.Errors) != 1 {
				t.Errorf("expected 1 error, got %v", result.Errors)
			}
			if len(result.Sprites) != 0 {
				t.Errorf("expected 0 sprites, got %d", len(result.Sprites))
			}
		})
	}
}

func TestImportCSVFromReader_MixedValidAndInvalid(t *testing.T) {
	data := "Name,Width,Height\ngood,32,32\nbad,abc,32\nalso-good,16,16\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Sprites) != 2 {
		t.Errorf("expected 2 valid sprites, got %d", len(result.Sprites))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
	if !strings.Contains(result.Errors[0], "Line 3") {
		t.Errorf("expected error to name line 3, got %q", result.Errors[0])
	}
}

func TestImportCSVFromReader_EmptyRowsAndNames(t *testing.T) {
	data := "Name,Width,Height\n,32,32\n\n\nlogo,16,16\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Sprites) != 2 {
		t.Fatalf("expected 2 sprites, got %d (errors: %v)", len(result.Sprites), result.Errors)
	}
	if result.Sprites[0].Name != "sprite-1" {
		t.Errorf("expected generated name 'sprite-1', got %q", result.Sprites[0].Name)
	}
}

func TestImportCSVFromReader_DuplicateNamesWarn(t *testing.T) {
	data := "Name,Width,Height\nicon,32,32\nicon,16,16\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Sprites) != 2 {
		t.Fatalf("expected 2 sprites, got %d", len(result.Sprites))
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Duplicate sprite name 'icon'") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected duplicate warning, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_MissingRequiredColumnInHeader(t *testing.T) {
	data := "Name,Width,Qty\nicon,32,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	foundMissing := false
	for _, e := range result.Errors {
		if strings.Contains(e, "Required columns not found in header: Height") {
			foundMissing = true
		}
	}
	if !foundMissing {
		t.Errorf("expected 'Required columns not found' error, got: %v", result.Errors)
	}
}

func TestImportCSVFromReader_OnlyHeaders(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Name,Width,Height\n"), ',')

	if len(result.Sprites) != 0 {
		t.Errorf("expected 0 sprites for header-only file, got %d", len(result.Sprites))
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %v", result.Errors)
	}
}

// ─── File Import Tests ─────────────────────────────────────

func TestImportCSV_SemicolonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprites.csv")
	content := "Name;Width;Height\nicon;32;32\nlogo;120;40\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Sprites) != 2 {
		t.Errorf("expected 2 sprites, got %d (errors: %v)", len(result.Sprites), result.Errors)
	}
	hasSemicolonWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			hasSemicolonWarning = true
		}
	}
	if !hasSemicolonWarning {
		t.Error("expected warning about semicolon delimiter detection")
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV("/nonexistent/path/file.csv")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sprites.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Name", "Width", "Height", "Quantity"},
		{"header", 128, 64, 1},
		{"frame", 16, 16, 2},
	})

	result := ImportExcel(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Sprites) != 3 {
		t.Fatalf("expected 3 sprites, got %d", len(result.Sprites))
	}
	if result.Sprites[0].Name != "header" || result.Sprites[0].Width != 128 {
		t.Errorf("unexpected sprite %+v", result.Sprites[0])
	}
	if result.Sprites[2].Name != "frame-2" {
		t.Errorf("expected 'frame-2', got %q", result.Sprites[2].Name)
	}
}

func TestImportExcel_ReorderedColumns(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Height", "Image", "Width"},
		{40, "logo", 120},
	})

	result := ImportExcel(path)

	if len(result.Sprites) != 1 {
		t.Fatalf("expected 1 sprite, got %d (errors: %v)", len(result.Sprites), result.Errors)
	}
	s := result.Sprites[0]
	if s.Name != "logo" || s.Width != 120 || s.Height != 40 {
		t.Errorf("unexpected sprite %+v", s)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/file.xlsx")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportManifest_DispatchesOnExtension(t *testing.T) {
	xlsx := createTestExcel(t, [][]interface{}{
		{"Name", "Width", "Height"},
		{"icon", 32, 32},
	})
	if got := ImportManifest(xlsx); len(got.Sprites) != 1 {
		t.Errorf("xlsx: expected 1 sprite, got %d (errors: %v)", len(got.Sprites), got.Errors)
	}

	csvPath := filepath.Join(t.TempDir(), "sprites.txt")
	if err := os.WriteFile(csvPath, []byte("icon,32,32\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	if got := ImportManifest(csvPath); len(got.Sprites) != 1 {
		t.Errorf("csv: expected 1 sprite, got %d (errors: %v)", len(got.Sprites), got.Errors)
	}
}
