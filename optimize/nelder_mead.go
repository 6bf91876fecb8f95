// SPDX-License-Identifier: MIT

package optimize

import (
	"context"
	"sort"
)

// Standard Nelder–Mead coefficients.
const (
	nmReflect  = 1.0
	nmExpand   = 2.0
	nmContract = 0.5
	nmShrink   = 0.5
)

// NelderMead minimizes p.Func with the downhill simplex method.
//
// The starting simplex is x0 plus x0 + InitialStep·e_i for every coordinate,
// so InitialStep must be positive.
// It stops when max f − min f over the simplex is ≤ FuncTol (Converged),
// after MaxIters, or when TimeLimit elapses. A cancelled ctx returns ctx.Err().
//
// Complexity: O(n) function evaluations per iteration (n+1 on shrink).
func NelderMead(ctx context.Context, p Problem, x0 []float64, opts Options) (Result, error) {
	if p.Func == nil || len(x0) == 0 {
		return Result{}, ErrBadInput
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if opts.InitialStep <= 0 {
		return Result{}, ErrBadInput
	}

	var evals int
	f := counted(p.Func, &evals)
	n := len(x0)

	fx0 := f(x0)
	if !finite(fx0) {
		return Result{}, ErrNonFinite
	}

	// Simplex vertices with their values, kept sorted best → worst.
	verts := make([][]float64, n+1)
	vals := make([]float64, n+1)
	verts[0], vals[0] = clone(x0), fx0
	for i := 0; i < n; i++ {
		v := clone(x0)
		v[i] += opts.InitialStep
		verts[i+1], vals[i+1] = v, f(v)
	}

	order := func() {
		idx := make([]int, n+1)
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return less(vals[idx[a]], vals[idx[b]]) })
		nv := make([][]float64, n+1)
		nf := make([]float64, n+1)
		for i, j := range idx {
			nv[i], nf[i] = verts[j], vals[j]
		}
		verts, vals = nv, nf
	}

	// point returns centroid + t·(centroid − worst).
	centroid := make([]float64, n)
	point := func(t float64) []float64 {
		out := make([]float64, n)
		for j := range out {
			out[j] = centroid[j] + t*(centroid[j]-verts[n][j])
		}

		return out
	}

	b := newBudget(ctx, opts.TimeLimit)
	res := Result{}
	for res.Iterations < opts.MaxIters {
		order()
		if vals[n]-vals[0] <= opts.FuncTol {
			res.Converged = true

			break
		}
		if stop, err := b.expired(); stop {
			if err != nil {
				return Result{}, err
			}

			break
		}

		for j := range centroid {
			centroid[j] = 0
			for i := 0; i < n; i++ {
				centroid[j] += verts[i][j]
			}
			centroid[j] /= float64(n)
		}

		xr := point(nmReflect)
		fr := f(xr)
		switch {
		case less(fr, vals[0]):
			xe := point(nmExpand)
			if fe := f(xe); less(fe, fr) {
				verts[n], vals[n] = xe, fe
			} else {
				verts[n], vals[n] = xr, fr
			}
		case less(fr, vals[n-1]):
			verts[n], vals[n] = xr, fr
		default:
			// Outside contraction must beat the reflected point, inside the worst vertex.
			xc, bound := point(-nmContract), vals[n]
			if less(fr, vals[n]) {
				xc, bound = point(nmContract), fr
			}
			if fc := f(xc); !less(bound, fc) {
				verts[n], vals[n] = xc, fc
			} else {
				for i := 1; i <= n; i++ {
					for j := range verts[i] {
						verts[i][j] = verts[0][j] + nmShrink*(verts[i][j]-verts[0][j])
					}
					vals[i] = f(verts[i])
				}
			}
		}
		res.Iterations++

		if opts.Logger != nil {
			opts.Logger.Debug("nelder-mead iteration",
				"iter", res.Iterations, "f", vals[0], "x", verts[0])
		}
	}
	order()

	res.X = clone(verts[0])
	res.F = vals[0]
	res.Evaluations = evals

	return res, nil
}

// less orders NaN after every number so it is never selected as best.
func less(a, b float64) bool {
	if a != a {
		return false
	}
	if b != b {
		return true
	}

	return a < b
}
