package export

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/piwi3910/SpritePack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeSheet(t *testing.T) {
	sheet := withPixels(buildTestSheet())
	img := ComposeSheet(sheet)

	require.Equal(t, 192, img.Bounds().Dx())
	require.Equal(t, 96, img.Bounds().Dy())

	assert.Equal(t, color.NRGBA{R: 255, A: 255}, img.NRGBAAt(0, 0), "header")
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, img.NRGBAAt(127, 63), "header corner")
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, img.NRGBAAt(10, 70), "banner")
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, img.NRGBAAt(130, 2), "square")
	assert.Equal(t, color.NRGBA{R: 255, G: 255, A: 255}, img.NRGBAAt(191, 47), "strip")
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(180, 80), "uncovered area stays transparent")
}

func TestComposeSheet_SkipsPlaceholders(t *testing.T) {
	sheet := buildTestSheet()
	assert.False(t, HasPixels(sheet))

	img := ComposeSheet(sheet)
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(5, 5))
}

func TestWriteSheetPNG_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	require.NoError(t, WriteSheetPNG(path, withPixels(buildTestSheet())))

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 192, img.Bounds().Dx())
	assert.Equal(t, 96, img.Bounds().Dy())

	r, g, b, a := img.At(130, 2).RGBA()
	assert.Equal(t, []uint32{0, 0, 0xffff, 0xffff}, []uint32{r, g, b, a})
}

func TestWriteSheetPNG_NoArea(t *testing.T) {
	err := WriteSheetPNG(filepath.Join(t.TempDir(), "x.png"), model.SheetResult{})
	assert.Error(t, err)
}

func TestEncodeSheetPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeSheetPNG(&buf, buildTestSheet()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}
