package utils

import (
	"io"

	"github.com/xuri/excelize/v2"

	"autoPallet/models"
)

const (
	SummarySheet   = "汇总"
	PlacementSheet = "摆放"
	RemainingSheet = "剩余"
)

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// WriteSolution 导出汇总、摆放明细和剩余库存三个工作表
func WriteSolution(w io.Writer, sol models.Solution) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	for _, name := range []string{PlacementSheet, RemainingSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	res := sol.Result
	summary := [][]interface{}{
		{"运行ID", sol.RunID},
		{"托盘 (宽×高×深)", sol.Pallet.Width, sol.Pallet.Height, sol.Pallet.Depth},
		{"最优方向", sol.Oriented.Width, sol.Oriented.Height, sol.Oriented.Depth},
		{"层高", res.LayerHeight},
		{"层数", len(res.Layers)},
		{"箱数", len(res.Placements)},
		{"已用体积", res.UsedVolume},
		{"利用率", res.Utilization},
	}
	if err := writeRows(f, SummarySheet, summary); err != nil {
		return err
	}

	placements := [][]interface{}{{"箱号", "x", "y", "z", "宽", "高", "深"}}
	for _, p := range res.Placements {
		placements = append(placements, []interface{}{p.BoxID, p.X, p.Y, p.Z, p.Width, p.Height, p.Depth})
	}
	if err := writeRows(f, PlacementSheet, placements); err != nil {
		return err
	}

	remaining := [][]interface{}{{"箱号", "宽", "高", "深", "剩余数量"}}
	for _, b := range res.Remaining {
		remaining = append(remaining, []interface{}{b.ID, b.Width, b.Height, b.Depth, b.Qty})
	}
	if err := writeRows(f, RemainingSheet, remaining); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}
