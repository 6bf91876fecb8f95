// SPDX-License-Identifier: MIT

package optimize

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"
)

// Defaults used by DefaultOptions.
const (
	DefaultMaxIters    = 1000
	DefaultGradTol     = 1e-8
	DefaultFuncTol     = 1e-12
	DefaultInitialStep = 0.1
)

var (
	// ErrBadInput is returned for an empty start point, a missing function or
	// gradient, or invalid Options.
	ErrBadInput = errors.New("optimize: invalid input")

	// ErrNonFinite is returned when the objective is NaN or ±Inf at the start point.
	ErrNonFinite = errors.New("optimize: objective is not finite at start")
)

// Problem is a function to minimize and, optionally, its gradient.
// Grad is required by BFGS and ignored by NelderMead.
type Problem struct {
	Func func(x []float64) float64
	Grad func(x []float64) []float64
}

// Options controls termination and diagnostics.
//
//   - MaxIters:    iteration cap (> 0).
//   - GradTol:     BFGS stops when max|g_i| ≤ GradTol.
//   - FuncTol:     Nelder–Mead stops when the simplex's f-spread ≤ FuncTol;
//     BFGS stops when an accepted step improves f by less than FuncTol·(1+|f|).
//   - InitialStep: Nelder–Mead edge length of the starting simplex (> 0 there).
//   - TimeLimit:   soft wall-clock budget; 0 means unlimited.
//   - Logger:      receives one Debug record per iteration when non-nil.
type Options struct {
	MaxIters    int
	GradTol     float64
	FuncTol     float64
	InitialStep float64
	TimeLimit   time.Duration
	Logger      *slog.Logger
}

// DefaultOptions returns Options with the package defaults and no logger.
func DefaultOptions() Options {
	return Options{
		MaxIters:    DefaultMaxIters,
		GradTol:     DefaultGradTol,
		FuncTol:     DefaultFuncTol,
		InitialStep: DefaultInitialStep,
	}
}

// Result is the outcome of a minimization.
type Result struct {
	// X is the best point found (a fresh slice).
	X []float64

	// F is Func(X).
	F float64

	// Iterations is the number of completed iterations.
	Iterations int

	// Evaluations counts calls to Func (gradient calls excluded).
	Evaluations int

	// Converged is true when a tolerance was met before MaxIters or TimeLimit.
	Converged bool
}

// Method is the common signature of NelderMead and BFGS.
type Method func(ctx context.Context, p Problem, x0 []float64, opts Options) (Result, error)

func validateOptions(opts Options) error {
	if opts.MaxIters <= 0 || opts.GradTol < 0 || opts.FuncTol < 0 ||
		opts.InitialStep < 0 || opts.TimeLimit < 0 {
		return ErrBadInput
	}

	return nil
}

// budget tracks the soft deadline and context of a run.
type budget struct {
	ctx      context.Context
	deadline time.Time
}

func newBudget(ctx context.Context, limit time.Duration) budget {
	b := budget{ctx: ctx}
	if limit > 0 {
		b.deadline = time.Now().Add(limit)
	}

	return b
}

// expired reports a passed deadline; a cancelled context is returned as err.
func (b budget) expired() (bool, error) {
	if err := b.ctx.Err(); err != nil {
		return true, err
	}
	if !b.deadline.IsZero() && time.Now().After(b.deadline) {
		return true, nil
	}

	return false, nil
}

// counted wraps f and counts its calls.
func counted(f func([]float64) float64, n *int) func([]float64) float64 {
	return func(x []float64) float64 {
		*n++

		return f(x)
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func clone(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	return out
}
