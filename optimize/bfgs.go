// SPDX-License-Identifier: MIT

package optimize

import (
	"context"
	"math"
)

// Line-search policy.
const (
	armijoC1      = 1e-4
	backtrack     = 0.5
	maxBacktracks = 60
	curvatureTol  = 1e-12
)

// BFGS minimizes p.Func with the Broyden–Fletcher–Goldfarb–Shanno
// quasi-Newton method and an Armijo backtracking line search.
//
// The inverse Hessian starts as the identity and is reset whenever the
// search direction stops being a descent direction. Termination:
//   - max|g_i| ≤ GradTol                        → Converged
//   - accepted step improves f by < FuncTol·(1+|f|) → Converged
//   - line search cannot decrease f             → Converged if max|g_i| is tiny
//   - MaxIters or TimeLimit                     → not converged
//
// A cancelled ctx returns ctx.Err().
//
// Complexity: O(n²) per iteration plus one gradient and ≥1 function evaluations.
func BFGS(ctx context.Context, p Problem, x0 []float64, opts Options) (Result, error) {
	if p.Func == nil || p.Grad == nil || len(x0) == 0 {
		return Result{}, ErrBadInput
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	var evals int
	f := counted(p.Func, &evals)
	n := len(x0)

	x := clone(x0)
	fx := f(x)
	if !finite(fx) {
		return Result{}, ErrNonFinite
	}
	g := p.Grad(x)
	h := newIdentity(n)

	b := newBudget(ctx, opts.TimeLimit)
	res := Result{}
	dir := make([]float64, n)
	trial := make([]float64, n)
	for res.Iterations < opts.MaxIters {
		if maxAbs(g) <= opts.GradTol {
			res.Converged = true

			break
		}
		if stop, err := b.expired(); stop {
			if err != nil {
				return Result{}, err
			}

			break
		}

		h.mulVec(g, dir)
		for i := range dir {
			dir[i] = -dir[i]
		}
		slope := dot(g, dir)
		if slope >= 0 {
			h.reset()
			for i := range dir {
				dir[i] = -g[i]
			}
			slope = dot(g, dir)
		}

		alpha, ft, ok := 1.0, 0.0, false
		for k := 0; k < maxBacktracks; k++ {
			for i := range trial {
				trial[i] = x[i] + alpha*dir[i]
			}
			ft = f(trial)
			if finite(ft) && ft <= fx+armijoC1*alpha*slope {
				ok = true

				break
			}
			alpha *= backtrack
		}
		if !ok {
			// No decrease available at machine precision: x is as good as it gets.
			res.Converged = maxAbs(g) <= math.Sqrt(opts.GradTol)

			break
		}

		s := make([]float64, n)
		for i := range s {
			s[i] = trial[i] - x[i]
		}
		gNew := p.Grad(trial)
		y := make([]float64, n)
		for i := range y {
			y[i] = gNew[i] - g[i]
		}
		if sy := dot(s, y); sy > curvatureTol {
			h.inverseUpdate(s, y, 1/sy)
		}

		improvement := fx - ft
		copy(x, trial)
		fx, g = ft, gNew
		res.Iterations++

		if opts.Logger != nil {
			opts.Logger.Debug("bfgs iteration",
				"iter", res.Iterations, "f", fx, "x", x, "step", alpha)
		}
		if improvement < opts.FuncTol*(1+math.Abs(fx)) {
			res.Converged = true

			break
		}
	}

	res.X = x
	res.F = fx
	res.Evaluations = evals

	return res, nil
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func maxAbs(v []float64) float64 {
	var m float64
	for _, x := range v {
		if a := math.Abs(x); a > m || a != a {
			m = a
		}
	}

	return m
}
