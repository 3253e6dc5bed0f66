// Package table reads and writes delimited numeric text tables.
//
// A table is row-per-sample, column-per-variable, with column 0 holding
// the abscissa (x) values and later columns holding ordinates. Save and
// LoadColumns agree on delimiter and comment-prefix semantics, so a saved
// table round-trips through the loader.
package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// SaveOptions controls Save and Write output.
type SaveOptions struct {
	// Header is written before the data, one line per newline-separated
	// segment, each prefixed by Comment.
	Header string

	// Comment prefixes each header line.
	Comment string

	// Delimiter joins columns. Empty means a single space, which the
	// loader's default whitespace splitting reads back.
	Delimiter string
}

// Save writes grid to a new file at path, creating or truncating it.
// Values are formatted with shortest round-trip precision, so a reload
// reproduces them exactly.
func Save(path string, grid mat.Matrix, opts *SaveOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = Write(f, grid, opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Write writes grid to w in the same format as Save.
func Write(w io.Writer, grid mat.Matrix, opts *SaveOptions) error {
	var o SaveOptions
	if opts != nil {
		o = *opts
	}
	if o.Delimiter == "" {
		o.Delimiter = " "
	}

	bw := bufio.NewWriter(w)
	if o.Header != "" {
		for _, line := range strings.Split(o.Header, "\n") {
			if _, err := fmt.Fprintf(bw, "%s%s\n", o.Comment, line); err != nil {
				return err
			}
		}
	}

	r, c := grid.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j > 0 {
				bw.WriteString(o.Delimiter)
			}
			bw.WriteString(strconv.FormatFloat(grid.At(i, j), 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
