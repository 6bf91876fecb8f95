// SPDX-License-Identifier: MIT

package quadrature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/equate/quadrature"
)

// TestNewPoints_Validation covers every rejected input.
func TestNewPoints_Validation(t *testing.T) {
	_, err := quadrature.NewPoints(nil, nil)
	assert.ErrorIs(t, err, quadrature.ErrEmpty)

	_, err = quadrature.NewPoints([]float64{0, 1}, []float64{1})
	assert.ErrorIs(t, err, quadrature.ErrBadInput)

	_, err = quadrature.NewPoints([]float64{0}, []float64{-1})
	assert.ErrorIs(t, err, quadrature.ErrBadInput)

	_, err = quadrature.NewPoints([]float64{math.NaN()}, []float64{1})
	assert.ErrorIs(t, err, quadrature.ErrBadInput)
}

// TestNewPoints_Copies verifies inputs are copied and accessors index in order.
func TestNewPoints_Copies(t *testing.T) {
	pts := []float64{-1, 0, 1}
	w := []float64{0.25, 0.5, 0.25}
	p, err := quadrature.NewPoints(pts, w)
	require.NoError(t, err)
	pts[0], w[0] = 9, 9

	require.Equal(t, 3, p.NumberOfPoints())
	assert.Equal(t, -1.0, p.PointAt(0))
	assert.Equal(t, 0.25, p.DensityAt(0))
	assert.Equal(t, 1.0, p.TotalWeight())
}

// TestNewNormal checks the grid, symmetry and normalization.
func TestNewNormal(t *testing.T) {
	p, err := quadrature.NewNormal(0, 1, -4, 4, 41)
	require.NoError(t, err)
	require.Equal(t, 41, p.NumberOfPoints())
	assert.Equal(t, -4.0, p.PointAt(0))
	assert.Equal(t, 4.0, p.PointAt(40))
	assert.InDelta(t, 0, p.PointAt(20), 1e-15)
	assert.InDelta(t, 1, p.TotalWeight(), 1e-14)
	assert.InDelta(t, p.DensityAt(3), p.DensityAt(37), 1e-16)

	for i := 1; i <= 20; i++ {
		assert.Greater(t, p.DensityAt(i), p.DensityAt(i-1), "density rises towards the mean")
	}

	_, err = quadrature.NewNormal(0, 0, -4, 4, 10)
	assert.ErrorIs(t, err, quadrature.ErrBadInput)
	_, err = quadrature.NewNormal(0, 1, 4, -4, 10)
	assert.ErrorIs(t, err, quadrature.ErrBadInput)
	_, err = quadrature.NewNormal(0, 1, -4, 4, 0)
	assert.ErrorIs(t, err, quadrature.ErrEmpty)
}

// TestDefaultNormal matches the documented defaults.
func TestDefaultNormal(t *testing.T) {
	p := quadrature.DefaultNormal()
	assert.Equal(t, quadrature.DefaultPoints, p.NumberOfPoints())
	assert.Equal(t, quadrature.DefaultMin, p.PointAt(0))
	assert.Equal(t, quadrature.DefaultMax, p.PointAt(p.NumberOfPoints()-1))
}

// TestNewUniform checks equal weights and the single-point case.
func TestNewUniform(t *testing.T) {
	p, err := quadrature.NewUniform(-2, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -1, 0, 1, 2}, []float64{p.PointAt(0), p.PointAt(1), p.PointAt(2), p.PointAt(3), p.PointAt(4)})
	assert.Equal(t, 0.2, p.DensityAt(4))

	one, err := quadrature.NewUniform(0.5, 0.5, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, one.PointAt(0))
	assert.Equal(t, 1.0, one.DensityAt(0))

	_, err = quadrature.NewUniform(0, 1, 1)
	assert.ErrorIs(t, err, quadrature.ErrBadInput)
}

// TestRescale verifies a scaled copy leaves the original intact.
func TestRescale(t *testing.T) {
	p, err := quadrature.NewPoints([]float64{0, 1}, []float64{1, 3})
	require.NoError(t, err)
	r := p.Rescale(2)
	assert.Equal(t, 8.0, r.TotalWeight())
	assert.Equal(t, 4.0, p.TotalWeight())
	assert.Equal(t, p.PointAt(1), r.PointAt(1))
}
