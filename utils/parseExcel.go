package utils

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"autoPallet/config"
	"autoPallet/models"
)

// 支持 20*10*15、20x10x15cm、20×10×15、20-10-15 等格式
var sizePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[×xX*-]\s*(\d+(?:\.\d+)?)\s*[×xX*-]\s*(\d+(?:\.\d+)?)`)

// ParseSize 从文本中提取 宽×高×深
func ParseSize(text string) (float64, float64, float64, bool) {
	match := sizePattern.FindStringSubmatch(text)
	if len(match) < 4 {
		return 0, 0, 0, false
	}
	w, _ := strconv.ParseFloat(match[1], 64)
	h, _ := strconv.ParseFloat(match[2], 64)
	d, _ := strconv.ParseFloat(match[3], 64)
	return w, h, d, true
}

func ReadBoxCatalogFile(filePath string, cols config.ExcelConfig) ([]models.BoxType, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readBoxCatalog(f, cols)
}

func ReadBoxCatalog(r io.Reader, cols config.ExcelConfig) ([]models.BoxType, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readBoxCatalog(f, cols)
}

// readBoxCatalog 读取第一个工作表, 表头需包含箱号、尺寸、数量三列
func readBoxCatalog(f *excelize.File, cols config.ExcelConfig) ([]models.BoxType, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("工作表为空：%s", sheet)
	}

	// 找出指定列位置
	index := map[string]int{cols.IDColumn: -1, cols.SizeColumn: -1, cols.QtyColumn: -1}
	for i, val := range rows[0] {
		if _, ok := index[strings.TrimSpace(val)]; ok {
			index[strings.TrimSpace(val)] = i
		}
	}
	for name, i := range index {
		if i == -1 {
			return nil, fmt.Errorf("找不到列：%s", name)
		}
	}
	idCol, sizeCol, qtyCol := index[cols.IDColumn], index[cols.SizeColumn], index[cols.QtyColumn]

	var result []models.BoxType
	for n, row := range rows[1:] {
		if len(row) <= max(idCol, sizeCol, qtyCol) {
			continue
		}
		id := strings.TrimSpace(row[idCol])
		if id == "" {
			continue
		}
		w, h, d, ok := ParseSize(row[sizeCol])
		if !ok {
			return nil, fmt.Errorf("第%d行尺寸无效 %q", n+2, row[sizeCol])
		}
		qty, err := strconv.Atoi(strings.TrimSpace(row[qtyCol]))
		if err != nil {
			return nil, fmt.Errorf("第%d行数量无效 %q: %w", n+2, row[qtyCol], err)
		}
		result = append(result, models.BoxType{ID: id, Width: w, Height: h, Depth: d, Qty: qty})
	}
	return result, nil
}
