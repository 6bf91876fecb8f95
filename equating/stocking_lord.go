// SPDX-License-Identifier: MIT

package equating

import "math"

// StockingLord is the Stocking–Lord characteristic-curve criterion for a
// common-item nonequivalent-groups design.
//
// Given coefficients x = [B, A] (intercept, slope) it evaluates
//
//	F1(x) = Σ_i w_i (τ_Y(θ_i) − τ*(θ_i; x))² / Σ_i w_i   over the Y distribution
//	F2(x) = Σ_j w_j (τ_X(θ_j) − τ#(θ_j; x))² / Σ_j w_j   over the X distribution
//
// where τ_Y, τ_X are the common-item true scores on each form, τ* is Form X
// restated on the Y scale and τ# is Form Y restated on the X scale
// (Kim & Kolen, 2007). Value dispatches on the Criterion.
//
// Concurrency:
//   - After construction the receiver is read-only; Value, F1, F2, Gradient
//     and the aggregators may be called from many goroutines as long as the
//     item sets and distributions are not mutated meanwhile.
//
// The embedded LinearTransformation is where callers store the optimizer's
// solution (see Fit); evaluation never touches it.
type StockingLord struct {
	LinearTransformation

	formX *ItemSet
	formY *ItemSet
	xDist Distribution
	yDist Distribution

	xSize int
	ySize int

	criterion Criterion

	// common holds Form Y's key order captured at construction.
	common []string
}

// New builds the objective from both forms, both quadrature distributions
// and the criterion to minimize.
//
// Errors:
//   - ErrNilItems, ErrNilDistribution for nil inputs.
//   - *DimensionMismatchError (errors.Is ErrDimensionMismatch) when the
//     forms' key sets differ.
func New(formX, formY *ItemSet, xDist, yDist Distribution, criterion Criterion) (*StockingLord, error) {
	if xDist == nil || yDist == nil {
		return nil, ErrNilDistribution
	}
	sl := &StockingLord{
		LinearTransformation: NewLinearTransformation(),
		formX:                formX,
		formY:                formY,
		xDist:                xDist,
		yDist:                yDist,
		xSize:                xDist.NumberOfPoints(),
		ySize:                yDist.NumberOfPoints(),
		criterion:            criterion,
	}
	if err := sl.checkDimensions(); err != nil {
		return nil, err
	}

	return sl, nil
}

// NewYOnly builds the objective without an X distribution. Only F1 can be
// evaluated meaningfully, so the criterion is always Q1 whatever is passed.
// F2 on the returned value integrates over zero points and yields NaN.
func NewYOnly(formX, formY *ItemSet, yDist Distribution, criterion Criterion) (*StockingLord, error) {
	if yDist == nil {
		return nil, ErrNilDistribution
	}
	sl := &StockingLord{
		LinearTransformation: NewLinearTransformation(),
		formX:                formX,
		formY:                formY,
		yDist:                yDist,
		ySize:                yDist.NumberOfPoints(),
		criterion:            Q1,
	}
	if err := sl.checkDimensions(); err != nil {
		return nil, err
	}

	return sl, nil
}

// checkDimensions verifies that both forms index the same items and captures
// Form Y's key order as the common-item list.
//
// Complexity: O(n) time and space.
func (sl *StockingLord) checkDimensions() error {
	if sl.formX == nil || sl.formY == nil {
		return ErrNilItems
	}
	if sl.formX.Len() != sl.formY.Len() {
		return &DimensionMismatchError{Got: sl.formX.Len(), Want: sl.formY.Len()}
	}

	mismatch := 0
	for _, id := range sl.formX.keys {
		if !sl.formY.Has(id) {
			mismatch++
		}
	}
	for _, id := range sl.formY.keys {
		if !sl.formX.Has(id) {
			mismatch++
		}
	}
	if mismatch > 0 {
		return &DimensionMismatchError{Got: mismatch, Want: 0}
	}

	sl.common = sl.formY.Keys()

	return nil
}

// Criterion returns the criterion Value minimizes.
func (sl *StockingLord) Criterion() Criterion { return sl.criterion }

// CommonItems returns a copy of the validated common-item identifiers in
// summation order.
func (sl *StockingLord) CommonItems() []string {
	out := make([]string, len(sl.common))
	copy(out, sl.common)

	return out
}

// Value evaluates the selected criterion at coef = [B, A].
// coef must have at least two elements; it is neither retained nor modified.
func (sl *StockingLord) Value(coef []float64) float64 {
	switch sl.criterion {
	case Q1:
		return sl.F1(coef)
	case Q2:
		return sl.F2(coef)
	case Q1Q2:
		return sl.F1(coef) + sl.F2(coef)
	}

	return math.NaN()
}

// F1 is the Y-anchored criterion: weighted mean of (τ_Y − τ*)² over the Y distribution.
func (sl *StockingLord) F1(coef []float64) float64 {
	var sum, total float64
	for i := 0; i < sl.ySize; i++ {
		theta := sl.yDist.PointAt(i)
		w := sl.yDist.DensityAt(i)
		total += w
		d := sl.FormYTCC(theta) - sl.TStar(coef, theta)
		sum += d * d * w
	}

	return sum / total
}

// F2 is the X-anchored criterion: weighted mean of (τ_X − τ#)² over the X distribution.
func (sl *StockingLord) F2(coef []float64) float64 {
	var sum, total float64
	for i := 0; i < sl.xSize; i++ {
		theta := sl.xDist.PointAt(i)
		w := sl.xDist.DensityAt(i)
		total += w
		d := sl.FormXTCC(theta) - sl.TSharp(coef, theta)
		sum += d * d * w
	}

	return sum / total
}

// FormYTCC is the Form Y true score of the common items at theta.
func (sl *StockingLord) FormYTCC(theta float64) float64 {
	var tcc float64
	for _, id := range sl.common {
		tcc += sl.formY.items[id].ExpectedValue(theta)
	}

	return tcc
}

// FormXTCC is the Form X true score of the common items at theta.
func (sl *StockingLord) FormXTCC(theta float64) float64 {
	var tcc float64
	for _, id := range sl.common {
		tcc += sl.formX.items[id].ExpectedValue(theta)
	}

	return tcc
}

// TStar is the Form X true score placed on the Form Y scale by coef.
func (sl *StockingLord) TStar(coef []float64, theta float64) float64 {
	var t float64
	for _, id := range sl.common {
		t += sl.formX.items[id].TStarExpectedValue(theta, coef[0], coef[1])
	}

	return t
}

// TSharp is the Form Y true score placed on the Form X scale by coef.
func (sl *StockingLord) TSharp(coef []float64, theta float64) float64 {
	var t float64
	for _, id := range sl.common {
		t += sl.formY.items[id].TSharpExpectedValue(theta, coef[0], coef[1])
	}

	return t
}

// Fit stores an optimizer solution [B, A] in the embedded LinearTransformation.
func (sl *StockingLord) Fit(coef []float64) {
	sl.SetIntercept(coef[0])
	sl.SetScale(coef[1])
}
