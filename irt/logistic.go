// SPDX-License-Identifier: MIT

package irt

import "math"

// Logistic3PL is the three-parameter logistic model
//
//	P(θ) = c + (1 − c) / (1 + exp(−D·a·(θ − b)))
//
// with discrimination A, difficulty B, lower asymptote C and scaling
// constant D. Set C=0 for the 2PL and additionally A=1 for the 1PL/Rasch.
// The expected item score equals P(θ).
type Logistic3PL struct {
	A float64
	B float64
	C float64
	D float64
}

// NewLogistic3PL validates and returns a 3PL item.
//
// Errors: ErrBadParameter if a ≤ 0, c ∉ [0,1), d ≤ 0 or any value is not finite.
func NewLogistic3PL(a, b, c, d float64) (Logistic3PL, error) {
	if !finite(a, b, c, d) || a <= 0 || c < 0 || c >= 1 || d <= 0 {
		return Logistic3PL{}, ErrBadParameter
	}

	return Logistic3PL{A: a, B: b, C: c, D: d}, nil
}

// NewLogistic2PL is NewLogistic3PL with c = 0.
func NewLogistic2PL(a, b, d float64) (Logistic3PL, error) {
	return NewLogistic3PL(a, b, 0, d)
}

// NewRasch is NewLogistic3PL with a = 1, c = 0 and D = LogisticScale.
func NewRasch(b float64) (Logistic3PL, error) {
	return NewLogistic3PL(1, b, 0, LogisticScale)
}

// Probability returns P(θ) for a correct response.
func (m Logistic3PL) Probability(theta float64) float64 {
	return logistic3(theta, m.A, m.B, m.C, m.D)
}

// ExpectedValue returns the expected item score at theta.
func (m Logistic3PL) ExpectedValue(theta float64) float64 {
	return m.Probability(theta)
}

// TStarExpectedValue evaluates the item after placing it on the target
// (Form Y) scale: a/slope, slope·b + intercept.
func (m Logistic3PL) TStarExpectedValue(theta, intercept, slope float64) float64 {
	return logistic3(theta, m.A/slope, slope*m.B+intercept, m.C, m.D)
}

// TSharpExpectedValue evaluates the item after placing it back on the source
// (Form X) scale: a·slope, (b − intercept)/slope.
func (m Logistic3PL) TSharpExpectedValue(theta, intercept, slope float64) float64 {
	return logistic3(theta, m.A*slope, (m.B-intercept)/slope, m.C, m.D)
}

// Transform returns the item expressed on the scale θ' = slope·θ + intercept.
func (m Logistic3PL) Transform(intercept, slope float64) Logistic3PL {
	return Logistic3PL{A: m.A / slope, B: slope*m.B + intercept, C: m.C, D: m.D}
}

// InverseTransform undoes Transform with the same constants.
func (m Logistic3PL) InverseTransform(intercept, slope float64) Logistic3PL {
	return Logistic3PL{A: m.A * slope, B: (m.B - intercept) / slope, C: m.C, D: m.D}
}

// logistic3 is the 3PL response function.
func logistic3(theta, a, b, c, d float64) float64 {
	return c + (1-c)/(1+math.Exp(-d*a*(theta-b)))
}

// finite reports whether every value is neither NaN nor ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
