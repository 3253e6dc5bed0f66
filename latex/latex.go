// Package latex emits LaTeX table and figure fragments. Fragments are
// written to plain text files for inclusion in a report and are never
// read back.
package latex

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Mode selects whether an emitter truncates the output file or appends
// to it.
type Mode int

const (
	Overwrite Mode = iota
	Append
)

func (m Mode) openFlag() int {
	if m == Append {
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
}

// WriteFigure emits a figure environment that includes the named
// graphic from the report's eps/ directory. scale is the fraction of
// \textwidth the graphic is resized to, expected in [0,1]. The figure
// label is derived from the graphic name up to its first dot.
func WriteFigure(path, graphic, caption string, scale float64, mode Mode) error {
	f, err := os.OpenFile(path, mode.openFlag(), 0644)
	if err != nil {
		return err
	}

	label := strings.SplitN(graphic, ".", 2)[0]
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "\\begin{figure}[tb]\n")
	fmt.Fprintf(w, "\\centering\n")
	fmt.Fprintf(w, "\\resizebox{%s\\textwidth}{!}{\\includegraphics{eps/%s}}\n",
		strconv.FormatFloat(scale, 'g', -1, 64), graphic)
	fmt.Fprintf(w, "\\caption{%s. \\label{fig:%s}}\n", caption, label)
	fmt.Fprintf(w, "\\end{figure}\n\n\n")

	err = w.Flush()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteTable emits a tabular environment holding grid. An optional
// header row and an optional left header column may be supplied
// independently: header is a single pre-formatted LaTeX row (cells
// joined by &), leftCol supplies one label per row with leftCol[0]
// pairing with the header row. Cells are formatted with the C-style
// format verb, e.g. "%1.4e" or "%.3f". Header or left column sizes
// that disagree with the grid produce a malformed table, not an error.
func WriteTable(path string, grid mat.Matrix, header string, leftCol []string, format string, mode Mode) error {
	if format == "" {
		format = "%1.4e"
	}

	f, err := os.OpenFile(path, mode.openFlag(), 0644)
	if err != nil {
		return err
	}

	rows, cols := grid.Dims()
	specCols := cols
	if leftCol != nil {
		specCols++
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "\\begin{tabular}{ %s }\n\\hline\n", "|"+strings.Repeat("c|", specCols))

	if header != "" {
		if leftCol != nil {
			fmt.Fprintf(w, "%s & ", leftCol[0])
		}
		fmt.Fprintf(w, "%s\\\\\\hline\n", header)
	}

	if leftCol == nil {
		for i := 0; i < rows; i++ {
			writeRow(w, grid, i, format)
		}
	} else {
		for i, entry := range leftCol[1:] {
			if i >= rows {
				break
			}
			fmt.Fprintf(w, "%s&", entry)
			writeRow(w, grid, i, format)
		}
	}

	fmt.Fprintf(w, "\\hline\n\\end{tabular}")

	err = w.Flush()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeRow(w *bufio.Writer, grid mat.Matrix, i int, format string) {
	_, cols := grid.Dims()
	for j := 0; j < cols; j++ {
		if j > 0 {
			w.WriteByte('&')
		}
		fmt.Fprintf(w, format, grid.At(i, j))
	}
	w.WriteString("\\\\\n")
}
