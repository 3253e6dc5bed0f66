// Command table-report loads selected columns from a delimited text
// table and emits report fragments: a LaTeX tabular and/or an HTML line
// chart.
package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/banshee-data/datakit/chart"
	"github.com/banshee-data/datakit/fsutil"
	"github.com/banshee-data/datakit/latex"
	"github.com/banshee-data/datakit/table"
)

func main() {
	in := flag.String("in", "", "input table file")
	colsArg := flag.String("cols", "1", "comma-separated ordinate column indices")
	skip := flag.Int("skip", 0, "header rows to skip")
	comment := flag.String("comment", "", "comment line prefix")
	delim := flag.String("delim", "", "column delimiter (default: whitespace)")
	normalize := flag.Bool("normalize", false, "normalize each column to a peak of 1")
	headerLabels := flag.Bool("header-labels", false, "read series labels from a comma-delimited first line")
	tex := flag.String("tex", "", "output LaTeX table fragment")
	format := flag.String("format", "%1.4e", "cell format for the LaTeX table")
	html := flag.String("html", "", "output HTML line chart")
	title := flag.String("title", "", "chart title")
	flag.Parse()

	if *in == "" || (*tex == "" && *html == "") {
		flag.Usage()
		os.Exit(2)
	}
	if !fsutil.Exists(*in) {
		log.Fatalf("input file %s does not exist", *in)
	}

	var cols []int
	for _, tok := range strings.Split(*colsArg, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			log.Fatalf("bad column index %q: %v", tok, err)
		}
		cols = append(cols, n)
	}

	skipRows := *skip
	if *headerLabels {
		// The label line is not numeric data.
		skipRows++
	}

	// Load the abscissa alongside the requested ordinates.
	loadCols := append([]int{0}, cols...)
	grid, err := table.LoadColumns(*in, loadCols, &table.LoadOptions{
		Comment:   *comment,
		SkipRows:  skipRows,
		Delimiter: *delim,
		Normalize: *normalize,
	})
	if err != nil {
		log.Fatal(err)
	}
	rows, ncols := grid.Dims()

	// labels covers the loaded columns, abscissa first.
	var labels []string
	if *headerLabels {
		labels, err = table.LoadHeader(*in, loadCols)
		if err != nil {
			log.Fatal(err)
		}
	}

	if *tex != "" {
		if err := latex.WriteTable(*tex, grid, strings.Join(labels, " & "), nil, *format, latex.Overwrite); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (%d rows)", *tex, rows)
	}

	if *html != "" {
		x := make([]float64, rows)
		for i := range x {
			x[i] = grid.At(i, 0)
		}
		ys := grid.Slice(0, rows, 1, ncols)
		xlabel := "x"
		var seriesLabels []string
		if len(labels) > 0 {
			xlabel = labels[0]
			seriesLabels = labels[1:]
		}
		cfg := chart.LineConfig{Title: *title, XLabel: xlabel, Labels: seriesLabels}
		if err := chart.SaveLine(*html, cfg, x, ys); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (%d series)", *html, ncols-1)
	}
}
