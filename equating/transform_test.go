// SPDX-License-Identifier: MIT

package equating_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/equate/equating"
)

// TestLinearTransformation_Defaults checks the identity defaults.
func TestLinearTransformation_Defaults(t *testing.T) {
	lt := equating.NewLinearTransformation()
	assert.Equal(t, 0.0, lt.Intercept())
	assert.Equal(t, 1.0, lt.Scale())
	assert.Equal(t, equating.DefaultPrecision, lt.Precision())
	assert.Equal(t, 3.5, lt.Transform(3.5))
}

// TestLinearTransformation_Affine checks Transform(x) == slope·x + intercept.
func TestLinearTransformation_Affine(t *testing.T) {
	cases := []struct{ a, b, x float64 }{
		{1, 0, 2.5},
		{-0.5, 3, 4},
		{0.25, -1.75, -8},
		{1.0731, 0.1942, 0.333},
	}
	for _, tc := range cases {
		lt := equating.NewLinearTransformation()
		lt.SetScale(tc.a)
		lt.SetIntercept(tc.b)
		want := tc.a*tc.x + tc.b
		assert.InDelta(t, want, lt.Transform(tc.x), 1e-12, "A=%v B=%v x=%v", tc.a, tc.b, tc.x)
	}
}

// TestLinearTransformation_Precision reads at precision 2, then 4, and checks
// the stored value is untouched.
func TestLinearTransformation_Precision(t *testing.T) {
	lt := equating.NewLinearTransformation()
	lt.SetIntercept(-0.123456)
	lt.SetScale(1.098765)

	assert.Equal(t, -0.12, lt.Intercept())
	assert.Equal(t, 1.1, lt.Scale())

	lt.SetPrecision(4)
	assert.Equal(t, -0.1235, lt.Intercept())
	assert.Equal(t, 1.0988, lt.Scale())
	assert.Equal(t, -0.123456, lt.RawIntercept())
	assert.Equal(t, 1.098765, lt.RawScale())

	// Transform always uses raw values.
	assert.InDelta(t, 1.098765*2-0.123456, lt.Transform(2), 1e-12)
	assert.Equal(t, "A=1.0988 B=-0.1235", lt.String())
}

// TestRound covers half-up decimal rounding.
func TestRound(t *testing.T) {
	cases := []struct {
		x      float64
		places int
		want   float64
	}{
		{2.675, 2, 2.68}, // binary 2.67499999… still rounds up
		{1.005, 2, 1.01},
		{-1.005, 2, -1.01},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{9.995, 2, 10},
		{0.125, 2, 0.13},
		{0.124999, 2, 0.12},
		{3, 2, 3},
		{1234.5, -2, 1200},
		{1250, -2, 1300},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, equating.Round(tc.x, tc.places), "Round(%v, %d)", tc.x, tc.places)
	}

	assert.True(t, math.IsNaN(equating.Round(math.NaN(), 2)))
	assert.True(t, math.IsInf(equating.Round(math.Inf(-1), 2), -1))
}

// TestRound_HugeNegativePlaces returns a signed zero past the exponent range.
func TestRound_HugeNegativePlaces(t *testing.T) {
	assert.Equal(t, 0.0, equating.Round(123.4, -400))
	neg := equating.Round(-123.4, -400)
	assert.Equal(t, 0.0, neg)
	assert.True(t, math.Signbit(neg))
	assert.Equal(t, 0.0, equating.Round(1e300, -309))
	assert.Equal(t, 2e300, equating.Round(1.6e300, -300))
}
