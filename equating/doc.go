// SPDX-License-Identifier: MIT

// Package equating places two separately calibrated IRT test forms on a
// common ability metric with the Stocking–Lord characteristic-curve method.
//
// 🚀 What does it do?
//
//	Two forms X and Y share a set of common (anchor) items. Each form was
//	calibrated on its own, so the same item has different parameters on
//	each scale. Stocking–Lord looks for the linear transformation
//
//	    θ_Y = A·θ_X + B
//
//	that makes the common items' true-score curves agree, by minimizing the
//	weighted squared difference between them over quadrature points.
//
// ✨ Key features:
//   - Common-item validation at construction (typed DimensionMismatchError)
//   - Three criteria: Q1 (Y-anchored F1), Q2 (X-anchored F2), Q1Q2 (F1+F2)
//   - Deterministic summation order (Form Y insertion order) for reproducible
//     floating-point results
//   - Plain func objective and gradient for any optimizer
//   - LinearTransformation result with half-up display rounding
//
// ⚙️ Usage:
//
//	x := equating.NewItemSet()
//	y := equating.NewItemSet()
//	// ... x.Set("item1", model) ...
//	sl, err := equating.New(x, y, xDist, yDist, equating.Q1Q2)
//	if err != nil {
//	  // handle *DimensionMismatchError
//	}
//	res, _ := optimize.BFGS(ctx, optimize.Problem{Func: sl.Objective(),
//	  Grad: sl.ObjectiveGradient()}, []float64{0, 1}, optimize.DefaultOptions())
//	sl.Fit(res.X)
//	fmt.Println(sl.Intercept(), sl.Scale())
//
// Item models and quadrature are consumed through the small ItemModel and
// Distribution interfaces; packages irt and quadrature provide ready-made
// implementations but are not required.
//
// Performance:
//
//   - One Value evaluation costs O(items × points) model calls per criterion.
//   - No caching: every call recomputes all sums.
package equating
