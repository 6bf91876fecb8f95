// SPDX-License-Identifier: MIT

// Package histogram computes bin widths for histograms with a fixed number
// of equally wide bins.
package histogram

import (
	"errors"
	"math"
)

// ErrBadBins is returned when the number of bins is not positive.
var ErrBadBins = errors.New("histogram: number of bins must be > 0")

// SimpleBins tracks the observed min and max and splits that range into a
// caller-chosen number of bins.
type SimpleBins struct {
	bins int
	min  float64
	max  float64
	n    int
}

// NewSimpleBins returns a calculator for the given number of bins.
func NewSimpleBins(bins int) (*SimpleBins, error) {
	if bins <= 0 {
		return nil, ErrBadBins
	}

	return &SimpleBins{bins: bins, min: math.Inf(1), max: math.Inf(-1)}, nil
}

// Increment records one observation. NaN is ignored.
func (s *SimpleBins) Increment(x float64) {
	if math.IsNaN(x) {
		return
	}
	s.min = math.Min(s.min, x)
	s.max = math.Max(s.max, x)
	s.n++
}

// NumberOfBins returns the configured number of bins.
func (s *SimpleBins) NumberOfBins() int { return s.bins }

// N returns the number of recorded observations.
func (s *SimpleBins) N() int { return s.n }

// Min returns the smallest observation, NaN when empty.
func (s *SimpleBins) Min() float64 {
	if s.n == 0 {
		return math.NaN()
	}

	return s.min
}

// Max returns the largest observation, NaN when empty.
func (s *SimpleBins) Max() float64 {
	if s.n == 0 {
		return math.NaN()
	}

	return s.max
}

// BinWidth returns (max − min) / bins; NaN when nothing was recorded.
func (s *SimpleBins) BinWidth() float64 {
	return (s.Max() - s.Min()) / float64(s.bins)
}

// BinWidth is the closed form for a known range.
func BinWidth(min, max float64, bins int) (float64, error) {
	if bins <= 0 {
		return 0, ErrBadBins
	}

	return (max - min) / float64(bins), nil
}
