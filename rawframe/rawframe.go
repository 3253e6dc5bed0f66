// Package rawframe extracts fixed-shape 2D frames from flat binary files.
//
// A frame file is a headerless sequence of fixed-width little-endian
// elements. The frame shape and element type must be supplied by the
// caller because the file carries no metadata of its own.
package rawframe

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
)

// ElemType identifies the fixed-width numeric type of file elements.
type ElemType int

const (
	Int8 ElemType = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

var elemNames = map[ElemType]string{
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

func (t ElemType) String() string {
	if s, ok := elemNames[t]; ok {
		return s
	}
	return fmt.Sprintf("ElemType(%d)", int(t))
}

// Size returns the element width in bytes.
func (t ElemType) Size() int {
	switch t {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	}
	return 0
}

// ParseElemType resolves an element type by name, e.g. "uint16".
func ParseElemType(name string) (ElemType, error) {
	for t, s := range elemNames {
		if s == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("rawframe: unknown element type %q", name)
}

// decode converts the element at the start of b to float64.
func (t ElemType) decode(b []byte) float64 {
	switch t {
	case Int8:
		return float64(int8(b[0]))
	case Int16:
		return float64(int16(binary.LittleEndian.Uint16(b)))
	case Int32:
		return float64(int32(binary.LittleEndian.Uint32(b)))
	case Int64:
		return float64(int64(binary.LittleEndian.Uint64(b)))
	case Uint8:
		return float64(b[0])
	case Uint16:
		return float64(binary.LittleEndian.Uint16(b))
	case Uint32:
		return float64(binary.LittleEndian.Uint32(b))
	case Uint64:
		return float64(binary.LittleEndian.Uint64(b))
	case Float32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case Float64:
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	}
	return 0
}

// Stack is an ordered collection of equally shaped frames, stored flat
// in frame-major order (row-major within each frame).
type Stack struct {
	Rows int
	Cols int
	Data []float64
}

// Count returns the number of frames in the stack.
func (s *Stack) Count() int {
	if s == nil || s.Rows <= 0 || s.Cols <= 0 {
		return 0
	}
	return len(s.Data) / (s.Rows * s.Cols)
}

// Frame returns frame i as a matrix view over the stack's data.
func (s *Stack) Frame(i int) mat.Matrix {
	n := s.Rows * s.Cols
	return mat.NewDense(s.Rows, s.Cols, s.Data[i*n:(i+1)*n])
}

// At returns the element at row r, column c of frame f.
func (s *Stack) At(f, r, c int) float64 {
	return s.Data[f*s.Rows*s.Cols+r*s.Cols+c]
}

// Read extracts frames of shape rows x cols from the flat binary file at
// path. With an empty frames list it reads every complete frame in the
// file, silently ignoring a trailing partial frame. With an explicit
// list it reads frames sequentially up to the largest requested index
// and retains the requested ones, in file order regardless of list
// order.
//
// Read never returns an error: a missing or unreadable file, or a
// truncated read that leaves the retained data unaligned to the frame
// size, yields count 0 and a nil stack. Callers must check the count
// before using the stack.
func Read(path string, rows, cols int, typ ElemType, frames []int) (int, *Stack) {
	if rows <= 0 || cols <= 0 || typ.Size() == 0 {
		return 0, nil
	}
	if len(frames) == 0 {
		return readAll(path, rows, cols, typ)
	}
	return readSelected(path, rows, cols, typ, frames)
}

func readAll(path string, rows, cols int, typ ElemType) (int, *Stack) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, nil
	}

	frameElems := rows * cols
	n := len(raw) / typ.Size() / frameElems
	if n == 0 {
		return 0, nil
	}

	data := decodeElems(raw[:n*frameElems*typ.Size()], typ, make([]float64, 0, n*frameElems))
	return n, &Stack{Rows: rows, Cols: cols, Data: data}
}

func readSelected(path string, rows, cols int, typ ElemType, frames []int) (int, *Stack) {
	want := make(map[int]bool, len(frames))
	last := 0
	for _, f := range frames {
		if f < 0 {
			return 0, nil
		}
		want[f] = true
		if f > last {
			last = f
		}
	}

	fin, err := os.Open(path)
	if err != nil {
		return 0, nil
	}
	defer fin.Close()

	r := bufio.NewReader(fin)
	frameElems := rows * cols
	buf := make([]byte, frameElems*typ.Size())
	var data []float64
	for i := 0; i <= last; i++ {
		n, err := io.ReadFull(r, buf)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return 0, nil
		}
		if want[i] {
			data = decodeElems(buf[:n-n%typ.Size()], typ, data)
		}
		if err != nil {
			break
		}
	}

	if len(data) == 0 || len(data)%frameElems != 0 {
		return 0, nil
	}
	return len(data) / frameElems, &Stack{Rows: rows, Cols: cols, Data: data}
}

// decodeElems appends every complete element in b to dst.
func decodeElems(b []byte, typ ElemType, dst []float64) []float64 {
	w := typ.Size()
	for off := 0; off+w <= len(b); off += w {
		dst = append(dst, typ.decode(b[off:off+w]))
	}
	return dst
}
