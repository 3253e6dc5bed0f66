package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadHeader reads the first line of a comma-delimited file and returns
// the fields at the given zero-based column indices, in the order
// requested. Quoting is honoured and surrounding whitespace is trimmed.
// An empty file or an out-of-range index is an error.
func LoadHeader(path string, cols []int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	record, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("table: %s: empty file", path)
	}
	if err != nil {
		return nil, fmt.Errorf("table: %s: %w", path, err)
	}

	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if c < 0 || c >= len(record) {
			return nil, fmt.Errorf("table: %s: header column %d out of range (line has %d fields)",
				path, c, len(record))
		}
		out = append(out, strings.TrimSpace(record[c]))
	}
	return out, nil
}
