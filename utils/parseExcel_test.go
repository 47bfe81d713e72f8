package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"autoPallet/config"
	"autoPallet/models"
)

func writeCatalog(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, writeRows(f, "Sheet1", rows))
	path := filepath.Join(t.TempDir(), "boxes.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		text    string
		w, h, d float64
		ok      bool
	}{
		{text: "20*10*15", w: 20, h: 10, d: 15, ok: true},
		{text: "纸箱 20×10×15cm", w: 20, h: 10, d: 15, ok: true},
		{text: "12.5x8 x 3", w: 12.5, h: 8, d: 3, ok: true},
		{text: "35-124.5-7", w: 35, h: 124.5, d: 7, ok: true},
		{text: "35*120", ok: false},
		{text: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			w, h, d, ok := ParseSize(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, []float64{tt.w, tt.h, tt.d}, []float64{w, h, d})
			}
		})
	}
}

func TestReadBoxCatalogFile(t *testing.T) {
	path := writeCatalog(t, [][]interface{}{
		{"备注", "箱号", "尺寸", "数量"},
		{"", "A", "20×10×15", 10},
		{"", "", "5*5*5", 1},
		{"", "C", "5*5*5cm", "4"},
	})

	boxes, err := ReadBoxCatalogFile(path, config.Default().Excel)
	require.NoError(t, err)
	assert.Equal(t, []models.BoxType{
		{ID: "A", Width: 20, Height: 10, Depth: 15, Qty: 10},
		{ID: "C", Width: 5, Height: 5, Depth: 5, Qty: 4},
	}, boxes)
}

func TestReadBoxCatalogFile_MissingColumn(t *testing.T) {
	path := writeCatalog(t, [][]interface{}{{"箱号", "尺寸"}, {"A", "1*2*3"}})

	_, err := ReadBoxCatalogFile(path, config.Default().Excel)
	assert.ErrorContains(t, err, "数量")
}

func TestReadBoxCatalogFile_BadSize(t *testing.T) {
	path := writeCatalog(t, [][]interface{}{
		{"箱号", "尺寸", "数量"},
		{"A", "1*2*3", 1},
		{"B", "待定", 3},
	})

	_, err := ReadBoxCatalogFile(path, config.Default().Excel)
	assert.ErrorContains(t, err, "第3行尺寸无效")
}

func TestReadBoxCatalogFile_BadQuantity(t *testing.T) {
	path := writeCatalog(t, [][]interface{}{{"箱号", "尺寸", "数量"}, {"A", "1*2*3", "many"}})

	_, err := ReadBoxCatalogFile(path, config.Default().Excel)
	assert.ErrorContains(t, err, "第2行")
}
