// SPDX-License-Identifier: MIT

package quadrature

import (
	"errors"
	"math"

	"github.com/katalvlaran/equate/equating"
)

// Defaults for DefaultNormal.
const (
	DefaultMin    = -4.0
	DefaultMax    = 4.0
	DefaultPoints = 41
)

var (
	// ErrEmpty indicates a distribution with no points.
	ErrEmpty = errors.New("quadrature: no points")

	// ErrBadInput indicates mismatched lengths, a non-finite value, a negative
	// weight, an inverted range or a non-positive standard deviation.
	ErrBadInput = errors.New("quadrature: invalid input")
)

var _ equating.Distribution = (*Points)(nil)

// Points is an explicit list of (point, weight) pairs.
// Weights need not sum to one.
type Points struct {
	points  []float64
	weights []float64
}

// NewPoints copies points and weights into a distribution.
//
// Errors: ErrEmpty for no points; ErrBadInput for length mismatch,
// non-finite values or negative weights.
func NewPoints(points, weights []float64) (*Points, error) {
	if len(points) == 0 {
		return nil, ErrEmpty
	}
	if len(points) != len(weights) {
		return nil, ErrBadInput
	}
	for i := range points {
		if !finite(points[i]) || !finite(weights[i]) || weights[i] < 0 {
			return nil, ErrBadInput
		}
	}
	p := &Points{
		points:  make([]float64, len(points)),
		weights: make([]float64, len(weights)),
	}
	copy(p.points, points)
	copy(p.weights, weights)

	return p, nil
}

// NewNormal places n evenly spaced points on [lo, hi] and weights them by the
// N(mean, sd²) density, normalized to sum to one.
//
// Errors: ErrEmpty if n < 1; ErrBadInput if sd ≤ 0, lo > hi, n == 1 with
// lo != hi, or any argument is not finite.
func NewNormal(mean, sd, lo, hi float64, n int) (*Points, error) {
	if n < 1 {
		return nil, ErrEmpty
	}
	if !finite(mean) || !finite(sd) || sd <= 0 {
		return nil, ErrBadInput
	}
	pts, err := grid(lo, hi, n)
	if err != nil {
		return nil, err
	}
	w := make([]float64, n)
	var total float64
	for i, x := range pts {
		z := (x - mean) / sd
		w[i] = math.Exp(-0.5*z*z) / (sd * math.Sqrt(2*math.Pi))
		total += w[i]
	}
	for i := range w {
		w[i] /= total
	}

	return &Points{points: pts, weights: w}, nil
}

// DefaultNormal is the standard normal on [-4, 4] with 41 points.
func DefaultNormal() *Points {
	p, _ := NewNormal(0, 1, DefaultMin, DefaultMax, DefaultPoints)

	return p
}

// NewUniform places n evenly spaced points on [lo, hi] with weight 1/n each.
func NewUniform(lo, hi float64, n int) (*Points, error) {
	if n < 1 {
		return nil, ErrEmpty
	}
	pts, err := grid(lo, hi, n)
	if err != nil {
		return nil, err
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}

	return &Points{points: pts, weights: w}, nil
}

// NumberOfPoints returns the number of quadrature points.
func (p *Points) NumberOfPoints() int { return len(p.points) }

// PointAt returns the i-th ability point.
func (p *Points) PointAt(i int) float64 { return p.points[i] }

// DensityAt returns the i-th weight.
func (p *Points) DensityAt(i int) float64 { return p.weights[i] }

// TotalWeight returns the sum of all weights.
func (p *Points) TotalWeight() float64 {
	var s float64
	for _, w := range p.weights {
		s += w
	}

	return s
}

// Rescale returns a copy whose weights are multiplied by c.
func (p *Points) Rescale(c float64) *Points {
	out := &Points{
		points:  make([]float64, len(p.points)),
		weights: make([]float64, len(p.weights)),
	}
	copy(out.points, p.points)
	for i, w := range p.weights {
		out.weights[i] = w * c
	}

	return out
}

// grid returns n evenly spaced points from lo to hi inclusive.
func grid(lo, hi float64, n int) ([]float64, error) {
	if !finite(lo) || !finite(hi) || lo > hi || (n == 1 && lo != hi) {
		return nil, ErrBadInput
	}
	pts := make([]float64, n)
	if n == 1 {
		pts[0] = lo

		return pts, nil
	}
	step := (hi - lo) / float64(n-1)
	for i := range pts {
		pts[i] = lo + float64(i)*step
	}
	pts[n-1] = hi

	return pts, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
