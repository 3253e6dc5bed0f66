// Package chart renders loaded table data as self-contained HTML charts
// for quick inspection without a LaTeX toolchain.
package chart

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
)

// LineConfig labels a rendered line chart.
type LineConfig struct {
	Title  string
	XLabel string
	YLabel string

	// Labels names the series, one per ys column. Columns beyond the
	// list (or with an empty label) fall back to their column number.
	Labels []string
}

// Line renders x against each column of ys as an HTML line chart
// written to w. The abscissa length must equal the ys row count.
func Line(w io.Writer, cfg LineConfig, x []float64, ys mat.Matrix) error {
	rows, cols := ys.Dims()
	if len(x) != rows {
		return fmt.Errorf("chart: %d abscissa points for %d data rows", len(x), rows)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: cfg.Title}),
		charts.WithTitleOpts(opts.Title{Title: cfg.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: cfg.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: cfg.YLabel}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	xs := make([]string, len(x))
	for i, v := range x {
		xs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	line.SetXAxis(xs)

	for j := 0; j < cols; j++ {
		data := make([]opts.LineData, rows)
		for i := 0; i < rows; i++ {
			data[i] = opts.LineData{Value: ys.At(i, j)}
		}
		name := ""
		if j < len(cfg.Labels) {
			name = cfg.Labels[j]
		}
		if name == "" {
			name = "col " + strconv.Itoa(j+1)
		}
		line.AddSeries(name, data)
	}

	return line.Render(w)
}

// SaveLine renders the chart to a new HTML file at path.
func SaveLine(path string, cfg LineConfig, x []float64, ys mat.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = Line(f, cfg, x, ys)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
