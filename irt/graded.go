// SPDX-License-Identifier: MIT

package irt

// GradedResponse is Samejima's logistic graded response model for an item
// scored 0..m with m = len(Thresholds).
//
// The cumulative probability of scoring k or higher is
//
//	P*_k(θ) = 1 / (1 + exp(−D·a·(θ − b_k)))   for k = 1..m
//
// so the expected score is Σ_k P*_k(θ).
type GradedResponse struct {
	A          float64
	Thresholds []float64
	D          float64
}

// NewGradedResponse validates and returns a graded response item.
// The thresholds slice is copied.
//
// Errors: ErrBadParameter if a ≤ 0, d ≤ 0, there are no thresholds, any
// value is not finite, or thresholds are not strictly increasing.
func NewGradedResponse(a float64, thresholds []float64, d float64) (GradedResponse, error) {
	if !finite(a, d) || a <= 0 || d <= 0 || len(thresholds) == 0 {
		return GradedResponse{}, ErrBadParameter
	}
	if !finite(thresholds...) {
		return GradedResponse{}, ErrBadParameter
	}
	for k := 1; k < len(thresholds); k++ {
		if thresholds[k] <= thresholds[k-1] {
			return GradedResponse{}, ErrBadParameter
		}
	}
	b := make([]float64, len(thresholds))
	copy(b, thresholds)

	return GradedResponse{A: a, Thresholds: b, D: d}, nil
}

// MaxScore returns the highest attainable category score.
func (m GradedResponse) MaxScore() int { return len(m.Thresholds) }

// ExpectedValue returns the expected item score at theta.
func (m GradedResponse) ExpectedValue(theta float64) float64 {
	return m.expected(theta, m.A, 0, 1)
}

// TStarExpectedValue evaluates the item on the target scale:
// a/slope and slope·b_k + intercept.
func (m GradedResponse) TStarExpectedValue(theta, intercept, slope float64) float64 {
	return m.expected(theta, m.A/slope, intercept, slope)
}

// TSharpExpectedValue evaluates the item on the source scale:
// a·slope and (b_k − intercept)/slope.
func (m GradedResponse) TSharpExpectedValue(theta, intercept, slope float64) float64 {
	return m.expected(theta, m.A*slope, -intercept/slope, 1/slope)
}

// expected sums cumulative probabilities with thresholds mapped b ↦ scale·b + shift.
func (m GradedResponse) expected(theta, a, shift, scale float64) float64 {
	var ev float64
	for _, b := range m.Thresholds {
		ev += logistic3(theta, a, scale*b+shift, 0, m.D)
	}

	return ev
}
