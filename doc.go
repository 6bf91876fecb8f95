// Package equate links two IRT calibrations onto a common scale with the
// Stocking–Lord characteristic-curve method.
//
// 🚀 What is equate?
//
//	A small, concurrency-safe toolkit for common-item nonequivalent-groups
//	linking:
//		• Item models: 3PL, 2PL, Rasch and graded response (irt/)
//		• Quadrature: normal, uniform and explicit ability distributions (quadrature/)
//		• Objective: Stocking–Lord F1, F2 and the symmetric criterion (equating/)
//		• Minimizers: Nelder–Mead, BFGS and concurrent multi-start (optimize/)
//		• Run files: YAML description of forms, distributions and solver (config/)
//		• CLI: slequate run / slequate binwidth (cmd/slequate/)
//
// ✨ Why choose equate?
//
//   - Plain interfaces: bring your own item model or distribution
//   - Read-only objective: evaluate from many goroutines at once
//   - Deterministic: summation order is fixed by Form Y
//
// Layout:
//
//	equating/:   ItemSet, StockingLord, LinearTransformation, criteria
//	irt/:        item response models with scale transforms
//	quadrature/: ability points and weights
//	optimize/:   derivative-free and quasi-Newton minimizers
//	histogram/:  bin-width helper
//	config/:     YAML run files
//
// Quick example (Form X seen through θ_Y = A·θ_X + B):
//
//	sl, _ := equating.New(formX, formY, dist, dist, equating.Q1Q2)
//	res, _ := optimize.BFGS(ctx, optimize.Problem{
//		Func: sl.Objective(), Grad: sl.ObjectiveGradient(),
//	}, []float64{0, 1}, optimize.DefaultOptions())
//	sl.Fit(res.X) // sl.Scale() ≈ A, sl.Intercept() ≈ B
//
//	go install github.com/katalvlaran/equate/cmd/slequate@latest
package equate
