// SPDX-License-Identifier: MIT

package equating

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimal digits Intercept and Scale round to.
const DefaultPrecision = 2

// LinearTransformation holds the fitted equating constants and applies
// x ↦ slope·x + intercept.
//
// Stored values are always raw; rounding happens on read (Intercept, Scale)
// and never mutates state. Use NewLinearTransformation for the defaults
// intercept=0, slope=1, precision=DefaultPrecision.
type LinearTransformation struct {
	intercept float64
	slope     float64
	precision int
}

// NewLinearTransformation returns the identity transformation.
func NewLinearTransformation() LinearTransformation {
	return LinearTransformation{intercept: 0, slope: 1, precision: DefaultPrecision}
}

// SetIntercept stores the raw intercept B.
func (t *LinearTransformation) SetIntercept(v float64) { t.intercept = v }

// SetScale stores the raw slope A.
func (t *LinearTransformation) SetScale(v float64) { t.slope = v }

// SetPrecision changes the number of decimal digits used by subsequent reads.
// Negative values round to tens, hundreds, and so on.
func (t *LinearTransformation) SetPrecision(n int) { t.precision = n }

// Precision returns the current display precision.
func (t *LinearTransformation) Precision() int { return t.precision }

// Intercept returns B rounded half-up to Precision() digits.
func (t *LinearTransformation) Intercept() float64 { return Round(t.intercept, t.precision) }

// Scale returns A rounded half-up to Precision() digits.
func (t *LinearTransformation) Scale() float64 { return Round(t.slope, t.precision) }

// RawIntercept returns the unrounded intercept.
func (t *LinearTransformation) RawIntercept() float64 { return t.intercept }

// RawScale returns the unrounded slope.
func (t *LinearTransformation) RawScale() float64 { return t.slope }

// Transform maps x from the Form X scale to the Form Y scale using the raw
// (unrounded) constants.
func (t *LinearTransformation) Transform(x float64) float64 {
	return t.slope*x + t.intercept
}

// String renders the rounded constants, e.g. "A=1.05 B=-0.12".
func (t *LinearTransformation) String() string {
	return fmt.Sprintf("A=%s B=%s",
		strconv.FormatFloat(t.Scale(), 'f', -1, 64),
		strconv.FormatFloat(t.Intercept(), 'f', -1, 64))
}

// Round rounds x to places decimal digits with ties away from zero.
//
// Rounding is performed on the shortest decimal representation of x, so
// 2.675 rounds to 2.68 (a binary-arithmetic round would give 2.67).
// NaN and ±Inf are returned unchanged. A negative places beyond the float64
// exponent range yields a signed zero.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	if places < 0 {
		p := math.Pow10(-places)
		if math.IsInf(p, 1) {
			return math.Copysign(0, x)
		}

		return math.Round(x/p) * p
	}

	s := strconv.FormatFloat(x, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	if len(frac) <= places {
		return x
	}

	digits := []byte(intPart + frac[:places])
	if frac[places] >= '5' {
		digits = incrementDecimal(digits)
	}
	point := len(digits) - places
	out := string(digits[:point])
	if places > 0 {
		out += "." + string(digits[point:])
	}

	v, err := strconv.ParseFloat(out, 64)
	if err != nil {
		// unreachable: out is built from the digits of a valid float
		return x
	}
	if neg {
		v = -v
	}

	return v
}

// incrementDecimal adds one unit in the last place to a string of ASCII digits.
func incrementDecimal(d []byte) []byte {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] < '9' {
			d[i]++

			return d
		}
		d[i] = '0'
	}

	return append([]byte{'1'}, d...)
}
