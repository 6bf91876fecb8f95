// SPDX-License-Identifier: MIT

package equating_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/equate/equating"
	"github.com/katalvlaran/equate/irt"
	"github.com/katalvlaran/equate/quadrature"
)

func benchForms(b *testing.B, n int) (x, y *equating.ItemSet) {
	b.Helper()
	x, y = equating.NewItemSet(), equating.NewItemSet()
	for i := 0; i < n; i++ {
		m, err := irt.NewLogistic3PL(0.6+float64(i%7)*0.15, -2+4*float64(i)/float64(n), 0.2, irt.NormalScale)
		if err != nil {
			b.Fatal(err)
		}
		id := fmt.Sprintf("i%03d", i)
		y.Set(id, m)
		x.Set(id, m.InverseTransform(0.2, 1.1))
	}

	return x, y
}

// BenchmarkValue_Q1Q2_20Items benchmarks the symmetric criterion on 20 anchors, 41 points.
func BenchmarkValue_Q1Q2_20Items(b *testing.B) {
	x, y := benchForms(b, 20)
	d := quadrature.DefaultNormal()
	sl, err := equating.New(x, y, d, d, equating.Q1Q2)
	if err != nil {
		b.Fatal(err)
	}
	coef := []float64{0.1, 1.0}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sl.Value(coef)
	}
}

// BenchmarkGradient_Q1Q2_20Items benchmarks the finite-difference gradient.
func BenchmarkGradient_Q1Q2_20Items(b *testing.B) {
	x, y := benchForms(b, 20)
	d := quadrature.DefaultNormal()
	sl, err := equating.New(x, y, d, d, equating.Q1Q2)
	if err != nil {
		b.Fatal(err)
	}
	coef := []float64{0.1, 1.0}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sl.Gradient(coef)
	}
}
