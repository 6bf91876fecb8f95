// SPDX-License-Identifier: MIT

package equating

import "math"

// fdStep is cbrt(machine epsilon), the usual step scale for central differences.
var fdStep = math.Cbrt(2.220446049250313e-16)

// Gradient returns ∂Value/∂coef by central finite differences.
//
// Each coordinate uses h_i = fdStep·max(1, |coef_i|). The result is a new
// slice of len(coef); coef itself is copied, never modified.
//
// Complexity: 2·len(coef) evaluations of Value.
func (sl *StockingLord) Gradient(coef []float64) []float64 {
	return centralDifference(sl.Value, coef)
}

// Objective returns Value as a plain function for optimizers.
func (sl *StockingLord) Objective() func([]float64) float64 {
	return sl.Value
}

// ObjectiveGradient returns Gradient as a plain function for optimizers.
func (sl *StockingLord) ObjectiveGradient() func([]float64) []float64 {
	return sl.Gradient
}

// centralDifference approximates the gradient of f at x.
func centralDifference(f func([]float64) float64, x []float64) []float64 {
	g := make([]float64, len(x))
	probe := make([]float64, len(x))
	copy(probe, x)
	for i, xi := range x {
		h := fdStep * math.Max(1, math.Abs(xi))
		probe[i] = xi + h
		fp := f(probe)
		probe[i] = xi - h
		fm := f(probe)
		probe[i] = xi
		// (xi+h)-(xi-h) is the exact step actually taken in floating point.
		g[i] = (fp - fm) / ((xi + h) - (xi - h))
	}

	return g
}
