package table

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

// ErrOutOfDomain reports a resampling target outside the range of the
// parsed abscissa. Piecewise-linear interpolation does not extrapolate.
var ErrOutOfDomain = errors.New("abscissa target outside interpolation domain")

// LoadOptions controls LoadColumns processing. The zero value loads the
// raw columns unchanged.
type LoadOptions struct {
	// Comment marks ignored lines: any line beginning with this prefix
	// is skipped. Empty disables comment handling.
	Comment string

	// SkipRows is the number of leading rows to skip, e.g. headers.
	SkipRows int

	// Delimiter separates columns. Empty means any whitespace run.
	Delimiter string

	// Normalize divides each ordinate column by its own maximum so the
	// column peak becomes 1. All-zero columns are left unchanged.
	Normalize bool

	// AbscissaScale multiplies column 0 after parsing. Zero means 1.
	AbscissaScale float64

	// OrdinateScale multiplies the loaded ordinate columns after
	// parsing. Zero means 1.
	OrdinateScale float64

	// AbscissaOut, when set, is the target abscissa onto which each
	// ordinate column is resampled by piecewise-linear interpolation.
	// The parsed abscissa must be strictly increasing and every target
	// must lie inside its range.
	AbscissaOut []float64
}

// LoadColumns loads the columns at the given file indices from a
// delimited text file. Column 0 is always parsed as the abscissa for
// scaling and interpolation purposes, whether or not it is requested.
// The result has one row per abscissa point (original or resampled) and
// one column per requested index, in the order requested.
func LoadColumns(path string, cols []int, opts *LoadOptions) (*mat.Dense, error) {
	var o LoadOptions
	if opts != nil {
		o = *opts
	}
	if o.AbscissaScale == 0 {
		o.AbscissaScale = 1
	}
	if o.OrdinateScale == 0 {
		o.OrdinateScale = 1
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table: no columns requested")
	}

	abscissa, ordinate, err := parseColumns(path, cols, &o)
	if err != nil {
		return nil, err
	}

	m := len(cols)
	for j := range ordinate {
		for i := range ordinate[j] {
			ordinate[j][i] *= o.OrdinateScale
		}
	}
	for i := range abscissa {
		abscissa[i] *= o.AbscissaScale
	}

	if len(o.AbscissaOut) > 0 {
		ordinate, err = resample(abscissa, ordinate, o.AbscissaOut)
		if err != nil {
			return nil, fmt.Errorf("table: %s: %w", path, err)
		}
	}

	if o.Normalize {
		for j := range ordinate {
			max := columnMax(ordinate[j])
			if max == 0 {
				continue
			}
			for i := range ordinate[j] {
				ordinate[j][i] /= max
			}
		}
	}

	n := len(ordinate[0])
	out := mat.NewDense(n, m, nil)
	for j := range ordinate {
		out.SetCol(j, ordinate[j])
	}
	return out, nil
}

// parseColumns reads the file once, returning the abscissa and one slice
// per requested column.
func parseColumns(path string, cols []int, o *LoadOptions) ([]float64, [][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var abscissa []float64
	ordinate := make([][]float64, len(cols))

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo <= o.SkipRows {
			continue
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if o.Comment != "" && strings.HasPrefix(line, o.Comment) {
			continue
		}

		fields := splitFields(line, o.Delimiter)
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("table: %s:%d: column 0: %w", path, lineNo, err)
		}
		abscissa = append(abscissa, v)

		for j, c := range cols {
			if c < 0 || c >= len(fields) {
				return nil, nil, fmt.Errorf("table: %s:%d: column %d out of range (line has %d columns)",
					path, lineNo, c, len(fields))
			}
			v, err := strconv.ParseFloat(fields[c], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("table: %s:%d: column %d: %w", path, lineNo, c, err)
			}
			ordinate[j] = append(ordinate[j], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if len(abscissa) == 0 {
		return nil, nil, fmt.Errorf("table: %s: no data rows", path)
	}
	return abscissa, ordinate, nil
}

func splitFields(line, delimiter string) []string {
	if delimiter == "" {
		return strings.Fields(line)
	}
	fields := strings.Split(line, delimiter)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// resample evaluates a piecewise-linear interpolant per column at each
// target point. Targets outside [x[0], x[last]] yield ErrOutOfDomain.
func resample(x []float64, columns [][]float64, targets []float64) ([][]float64, error) {
	out := make([][]float64, len(columns))
	for j, col := range columns {
		var pl interp.PiecewiseLinear
		if err := pl.Fit(x, col); err != nil {
			return nil, err
		}
		vals := make([]float64, len(targets))
		for i, t := range targets {
			if t < x[0] || t > x[len(x)-1] {
				return nil, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, t, x[0], x[len(x)-1])
			}
			vals[i] = pl.Predict(t)
		}
		out[j] = vals
	}
	return out, nil
}

func columnMax(col []float64) float64 {
	max := col[0]
	for _, v := range col[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
