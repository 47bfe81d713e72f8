package utils

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"autoPallet/models"
)

func candidateChart(sol models.Solution) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "各方向/层高利用率",
		Subtitle: fmt.Sprintf("托盘 %g×%g×%g", sol.Pallet.Width, sol.Pallet.Height, sol.Pallet.Depth),
	}))

	labels := make([]string, 0, len(sol.Candidates))
	data := make([]opts.BarData, 0, len(sol.Candidates))
	for _, c := range sol.Candidates {
		o := c.Orientation
		labels = append(labels, fmt.Sprintf("%g×%g×%g@%g", o.Width, o.Height, o.Depth, c.LayerHeight))
		data = append(data, opts.BarData{Name: fmt.Sprintf("%d箱", c.Placed), Value: c.Utilization})
	}
	bar.SetXAxis(labels).AddSeries("利用率", data)
	return bar
}

func layerChart(sol models.Solution) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "每层箱数",
		Subtitle: fmt.Sprintf("层高 %g, 利用率 %.2f%%", sol.Result.LayerHeight, sol.Result.Utilization*100),
	}))

	labels := make([]string, 0, len(sol.Result.Layers))
	counts := make([]opts.BarData, 0, len(sol.Result.Layers))
	heights := make([]opts.BarData, 0, len(sol.Result.Layers))
	for _, l := range sol.Result.Layers {
		labels = append(labels, fmt.Sprintf("y=%g", l.Elevation))
		counts = append(counts, opts.BarData{Value: l.Count})
		heights = append(heights, opts.BarData{Value: l.Height})
	}
	bar.SetXAxis(labels).
		AddSeries("箱数", counts).
		AddSeries("实际层高", heights)
	return bar
}

// RenderChart 输出包含两张柱状图的 HTML 页面
func RenderChart(w io.Writer, sol models.Solution) error {
	page := components.NewPage()
	page.AddCharts(candidateChart(sol), layerChart(sol))
	return page.Render(w)
}
