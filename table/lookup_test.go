package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lookupFixture = `Zenith Azimuth Irradiance
0 10 20 30 40
1 11 12 13 14
2 21 22 23 24
3 31 32 33 34
4 41 42 43 44
`

func TestReadLookup2D(t *testing.T) {
	path := writeTable(t, lookupFixture)

	lt, err := ReadLookup2D(path)
	require.NoError(t, err)

	assert.Equal(t, "Zenith", lt.XLabel)
	assert.Equal(t, "Azimuth", lt.YLabel)
	assert.Equal(t, "Irradiance", lt.Title)

	assert.Equal(t, []float64{1, 2, 3, 4}, lt.X)
	assert.Equal(t, []float64{10, 20, 30, 40}, lt.Y)

	r, c := lt.Data.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)
	assert.Equal(t, 11.0, lt.Data.At(0, 0))
	assert.Equal(t, 24.0, lt.Data.At(1, 3))
	assert.Equal(t, 44.0, lt.Data.At(3, 3))
}

func TestReadLookup2DBadLabelLine(t *testing.T) {
	path := writeTable(t, "Zenith Azimuth\n0 10\n1 11\n")
	_, err := ReadLookup2D(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "label line")
}

func TestReadLookup2DRaggedGrid(t *testing.T) {
	path := writeTable(t, "x y t\n0 10 20\n1 11\n")
	_, err := ReadLookup2D(path)
	require.Error(t, err)
}

func TestReadLookup2DNonNumeric(t *testing.T) {
	path := writeTable(t, "x y t\n0 10\nabc 11\n")
	_, err := ReadLookup2D(path)
	require.Error(t, err)
}
