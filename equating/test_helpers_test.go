// SPDX-License-Identifier: MIT

package equating_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/equate/equating"
	"github.com/katalvlaran/equate/irt"
	"github.com/katalvlaran/equate/quadrature"
)

// slopeItem is a deterministic stand-in model: E(θ) = k·θ + m.
type slopeItem struct{ k, m float64 }

func (s slopeItem) ExpectedValue(theta float64) float64 { return s.k*theta + s.m }

func (s slopeItem) TStarExpectedValue(theta, intercept, slope float64) float64 {
	return s.k*(slope*theta+intercept) + s.m
}

func (s slopeItem) TSharpExpectedValue(theta, intercept, slope float64) float64 {
	return s.k*(theta-intercept)/slope + s.m
}

// setOf builds an ItemSet of slopeItems keyed by ids, with k = i+1.
func setOf(ids ...string) *equating.ItemSet {
	s := equating.NewItemSet()
	for i, id := range ids {
		s.Set(id, slopeItem{k: float64(i + 1), m: 0.5})
	}

	return s
}

// threePoint is the θ = {-1, 0, 1}, w = {.25, .5, .25} distribution.
func threePoint(t *testing.T) *quadrature.Points {
	t.Helper()
	p, err := quadrature.NewPoints([]float64{-1, 0, 1}, []float64{0.25, 0.5, 0.25})
	require.NoError(t, err)

	return p
}

// anchorForms returns Form Y 3PL items and Form X items constructed so that
// θ_Y = slope·θ_X + intercept holds exactly in parameter space.
func anchorForms(t *testing.T, intercept, slope float64) (x, y *equating.ItemSet) {
	t.Helper()
	params := []struct {
		id      string
		a, b, c float64
	}{
		{"i01", 0.8, -1.5, 0.20},
		{"i02", 1.1, -0.7, 0.15},
		{"i03", 1.4, 0.0, 0.20},
		{"i04", 0.9, 0.6, 0.25},
		{"i05", 1.6, 1.3, 0.10},
		{"i06", 1.2, 2.0, 0.20},
	}
	x, y = equating.NewItemSet(), equating.NewItemSet()
	for _, p := range params {
		my, err := irt.NewLogistic3PL(p.a, p.b, p.c, irt.NormalScale)
		require.NoError(t, err)
		y.Set(p.id, my)
		x.Set(p.id, my.InverseTransform(intercept, slope))
	}

	return x, y
}
