package rawframe

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSaveImageRescalesToFullRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	grid := mat.NewDense(2, 3, []float64{
		10, 20, 30,
		40, 50, 60,
	})

	require.NoError(t, SaveImage(grid, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 3, b.Dx())
	assert.Equal(t, 2, b.Dy())

	// Minimum maps to black, maximum to white.
	rMin, _, _, _ := img.At(0, 0).RGBA()
	rMax, _, _, _ := img.At(2, 1).RGBA()
	assert.Equal(t, uint32(0), rMin)
	assert.Equal(t, uint32(0xffff), rMax)
}

func TestSaveImageFlatGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.png")
	grid := mat.NewDense(2, 2, []float64{7, 7, 7, 7})

	// min == max must not divide by zero.
	require.NoError(t, SaveImage(grid, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	r, _, _, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0), r)
}

func TestSaveImageFormats(t *testing.T) {
	grid := mat.NewDense(4, 4, nil)
	grid.Set(0, 0, 1)

	dir := t.TempDir()
	for _, ext := range []string{"png", "jpg", "jpeg", "tif", "tiff", "bmp"} {
		path := filepath.Join(dir, "frame."+ext)
		require.NoError(t, SaveImage(grid, path), ext)

		info, err := os.Stat(path)
		require.NoError(t, err, ext)
		assert.Positive(t, info.Size(), ext)
	}
}

func TestSaveImageUnsupportedExtension(t *testing.T) {
	err := SaveImage(mat.NewDense(1, 1, []float64{1}), filepath.Join(t.TempDir(), "frame.gif"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image extension")
}

func TestSaveHeatmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.png")
	grid := mat.NewDense(8, 8, nil)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			grid.Set(i, j, float64(i*j))
		}
	}

	require.NoError(t, SaveHeatmap(grid, path, "test frame"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSaveHeatmapFlatGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.png")
	require.NoError(t, SaveHeatmap(mat.NewDense(4, 4, nil), path, "flat"))
}
