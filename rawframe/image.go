package rawframe

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveImage writes grid as a grayscale image, linearly rescaled so the
// grid minimum maps to black and the maximum to white. A flat grid
// (min == max) produces an all-black image. The encoding is chosen by
// the path extension: .png, .jpg/.jpeg, .tif/.tiff or .bmp.
func SaveImage(grid mat.Matrix, path string) error {
	rows, cols := grid.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("rawframe: cannot encode empty grid")
	}

	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = png.Encode
	case ".jpg", ".jpeg":
		encode = func(w io.Writer, m image.Image) error { return jpeg.Encode(w, m, nil) }
	case ".tif", ".tiff":
		encode = func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }
	case ".bmp":
		encode = bmp.Encode
	default:
		return fmt.Errorf("rawframe: unsupported image extension %q", filepath.Ext(path))
	}

	min, max := gridBounds(grid)
	span := max - min

	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := 0.0
			if span > 0 {
				v = (grid.At(i, j) - min) / span
			}
			img.Pix[i*img.Stride+j] = uint8(math.Round(v * 255))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// SaveHeatmap renders grid as a colour heatmap plot. The encoding is
// chosen by the path extension; gonum/plot supports png, jpg, tiff,
// pdf, eps, svg and tex output.
func SaveHeatmap(grid mat.Matrix, path, title string) error {
	rows, cols := grid.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("rawframe: cannot plot empty grid")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Row"

	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(matGrid{grid}, pal)
	if hm.Min == hm.Max {
		// Flat data would collapse the palette projection.
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// matGrid adapts a mat.Matrix to the plotter.GridXYZ interface. Row 0
// is drawn at the bottom of the plot.
type matGrid struct {
	m mat.Matrix
}

func (g matGrid) Dims() (int, int) {
	r, c := g.m.Dims()
	return c, r
}

func (g matGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g matGrid) X(c int) float64    { return float64(c) }
func (g matGrid) Y(r int) float64    { return float64(r) }

func gridBounds(grid mat.Matrix) (min, max float64) {
	rows, cols := grid.Dims()
	min, max = grid.At(0, 0), grid.At(0, 0)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := grid.At(i, j)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}
