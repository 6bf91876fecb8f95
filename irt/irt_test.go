// SPDX-License-Identifier: MIT

package irt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/equate/irt"
)

// TestLogistic3PL_Validation covers parameter domains.
func TestLogistic3PL_Validation(t *testing.T) {
	bad := [][4]float64{
		{0, 0, 0, 1},           // a = 0
		{-1, 0, 0, 1},          // a < 0
		{1, 0, -0.1, 1},        // c < 0
		{1, 0, 1, 1},           // c = 1
		{1, 0, 0, 0},           // d = 0
		{1, math.NaN(), 0, 1},  // NaN
		{math.Inf(1), 0, 0, 1}, // Inf
	}
	for _, p := range bad {
		_, err := irt.NewLogistic3PL(p[0], p[1], p[2], p[3])
		assert.ErrorIs(t, err, irt.ErrBadParameter, "params %v", p)
	}

	m, err := irt.NewLogistic3PL(1.2, 0.3, 0.2, irt.NormalScale)
	require.NoError(t, err)
	assert.Equal(t, irt.Logistic3PL{A: 1.2, B: 0.3, C: 0.2, D: 1.7}, m)
}

// TestLogistic3PL_Probability checks known values.
func TestLogistic3PL_Probability(t *testing.T) {
	m, err := irt.NewLogistic3PL(1, 0, 0.2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, m.Probability(0), 1e-15, "at θ=b: c + (1−c)/2")
	assert.InDelta(t, 0.2, m.Probability(-50), 1e-12, "lower asymptote")
	assert.InDelta(t, 1.0, m.Probability(50), 1e-12)

	r, err := irt.NewRasch(1)
	require.NoError(t, err)
	assert.InDelta(t, 1/(1+math.Exp(1)), r.ExpectedValue(0), 1e-15)

	two, err := irt.NewLogistic2PL(2, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, two.C)
}

// TestLogistic3PL_TransformIdentity checks A=1, B=0 leaves the curve unchanged.
func TestLogistic3PL_TransformIdentity(t *testing.T) {
	m, err := irt.NewLogistic3PL(1.3, -0.4, 0.15, irt.NormalScale)
	require.NoError(t, err)
	for _, th := range []float64{-3, -1, 0, 0.7, 2.5} {
		assert.Equal(t, m.ExpectedValue(th), m.TStarExpectedValue(th, 0, 1))
		assert.Equal(t, m.ExpectedValue(th), m.TSharpExpectedValue(th, 0, 1))
	}
}

// TestLogistic3PL_TransformConsistency checks that evaluating the transformed
// item at θ' = Aθ + B equals the original item at θ.
func TestLogistic3PL_TransformConsistency(t *testing.T) {
	const b, a = 0.4, 1.3
	m, err := irt.NewLogistic3PL(0.9, 0.2, 0.2, irt.NormalScale)
	require.NoError(t, err)
	for _, th := range []float64{-2, -0.5, 0, 1, 3} {
		ty := a*th + b
		assert.InDelta(t, m.ExpectedValue(th), m.TStarExpectedValue(ty, b, a), 1e-12)
		assert.InDelta(t, m.ExpectedValue(ty), m.TSharpExpectedValue(th, b, a), 1e-12)
		assert.InDelta(t, m.TStarExpectedValue(ty, b, a), m.Transform(b, a).ExpectedValue(ty), 1e-15)
	}

	back := m.Transform(b, a).InverseTransform(b, a)
	assert.InDelta(t, m.A, back.A, 1e-15)
	assert.InDelta(t, m.B, back.B, 1e-15)
	assert.Equal(t, m.C, back.C)
}

// TestGradedResponse covers validation and the expected score.
func TestGradedResponse(t *testing.T) {
	_, err := irt.NewGradedResponse(1, nil, 1)
	assert.ErrorIs(t, err, irt.ErrBadParameter)
	_, err = irt.NewGradedResponse(1, []float64{0, 0}, 1)
	assert.ErrorIs(t, err, irt.ErrBadParameter, "thresholds must increase strictly")
	_, err = irt.NewGradedResponse(0, []float64{0}, 1)
	assert.ErrorIs(t, err, irt.ErrBadParameter)

	th := []float64{-1, 0, 1}
	m, err := irt.NewGradedResponse(1.1, th, irt.NormalScale)
	require.NoError(t, err)
	th[0] = -99
	assert.Equal(t, -1.0, m.Thresholds[0], "thresholds are copied")
	assert.Equal(t, 3, m.MaxScore())

	// Symmetric thresholds around 0 ⇒ expected score is m/2 at θ=0.
	assert.InDelta(t, 1.5, m.ExpectedValue(0), 1e-15)
	assert.InDelta(t, 0, m.ExpectedValue(-40), 1e-12)
	assert.InDelta(t, 3, m.ExpectedValue(40), 1e-12)

	const b, a = -0.2, 0.8
	for _, x := range []float64{-2, 0, 1.5} {
		y := a*x + b
		assert.InDelta(t, m.ExpectedValue(x), m.TStarExpectedValue(y, b, a), 1e-12)
		assert.InDelta(t, m.ExpectedValue(y), m.TSharpExpectedValue(x, b, a), 1e-12)
	}
}
