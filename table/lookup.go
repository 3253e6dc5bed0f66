package table

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Lookup2D is a two-dimensional lookup table: a data grid with an
// abscissa vector along each axis and descriptive labels.
type Lookup2D struct {
	X      []float64  // row abscissa, length M
	Y      []float64  // column abscissa, length N
	Data   *mat.Dense // M x N grid
	XLabel string
	YLabel string
	Title  string
}

// ReadLookup2D parses a fixed-layout lookup table file:
//
//	x-name y-name title
//	0  y1  y2  y3
//	x1 v11 v12 v13
//	x2 v21 v22 v23
//
// The first line holds exactly three whitespace-separated labels. The
// numeric block below it carries the y abscissa in row 0 (after an
// unused placeholder), the x abscissa in column 0, and the data in the
// remaining submatrix.
func ReadLookup2D(path string) (*Lookup2D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("table: %s: empty file", path)
	}
	labels := strings.Fields(sc.Text())
	if len(labels) != 3 {
		return nil, fmt.Errorf("table: %s: label line has %d tokens, want 3", path, len(labels))
	}

	var grid [][]float64
	lineNo := 1
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, fld := range fields {
			v, err := strconv.ParseFloat(fld, 64)
			if err != nil {
				return nil, fmt.Errorf("table: %s:%d: %w", path, lineNo, err)
			}
			row[i] = v
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("table: %s:%d: row has %d columns, want %d",
				path, lineNo, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(grid) < 2 || len(grid[0]) < 2 {
		return nil, fmt.Errorf("table: %s: grid must be at least 2x2 including axis row and column", path)
	}

	m, n := len(grid)-1, len(grid[0])-1
	lt := &Lookup2D{
		X:      make([]float64, m),
		Y:      make([]float64, n),
		Data:   mat.NewDense(m, n, nil),
		XLabel: labels[0],
		YLabel: labels[1],
		Title:  labels[2],
	}
	copy(lt.Y, grid[0][1:])
	for i := 0; i < m; i++ {
		lt.X[i] = grid[i+1][0]
		lt.Data.SetRow(i, grid[i+1][1:])
	}
	return lt, nil
}
