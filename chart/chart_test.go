package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLineRendersSeries(t *testing.T) {
	x := []float64{0, 1, 2}
	ys := mat.NewDense(3, 2, []float64{
		0, 10,
		1, 11,
		2, 12,
	})

	var buf bytes.Buffer
	cfg := LineConfig{
		Title:  "Sample reflectance",
		XLabel: "Wavelength",
		Labels: []string{"sample A"},
	}
	require.NoError(t, Line(&buf, cfg, x, ys))

	html := buf.String()
	assert.True(t, strings.Contains(html, "Sample reflectance"))
	assert.True(t, strings.Contains(html, "sample A"))
	// Second column has no label and falls back to its number.
	assert.True(t, strings.Contains(html, "col 2"))
}

func TestLineRowMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := Line(&buf, LineConfig{}, []float64{0, 1}, mat.NewDense(3, 1, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abscissa")
}

func TestSaveLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.html")
	x := []float64{0, 1}
	ys := mat.NewDense(2, 1, []float64{5, 6})

	require.NoError(t, SaveLine(path, LineConfig{Title: "t"}, x, ys))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
