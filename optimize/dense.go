// SPDX-License-Identifier: MIT

package optimize

// dense is a square row-major matrix holding BFGS's inverse-Hessian estimate.
// data has n*n elements; element (i, j) lives at i*n + j.
type dense struct {
	n    int
	data []float64
}

// newIdentity returns the n×n identity.
// Complexity: O(n²) time and memory.
func newIdentity(n int) *dense {
	m := &dense{n: n, data: make([]float64, n*n)}
	m.reset()

	return m
}

// reset overwrites m with the identity in place.
func (m *dense) reset() {
	for i := range m.data {
		m.data[i] = 0
	}
	for i := 0; i < m.n; i++ {
		m.data[i*m.n+i] = 1
	}
}

// mulVec writes m·v into out. len(v) and len(out) must equal m.n.
// Complexity: O(n²).
func (m *dense) mulVec(v, out []float64) {
	for i := 0; i < m.n; i++ {
		row := m.data[i*m.n : (i+1)*m.n]
		var s float64
		for j, mij := range row {
			s += mij * v[j]
		}
		out[i] = s
	}
}

// inverseUpdate applies H ← (I − ρ s yᵀ) H (I − ρ y sᵀ) + ρ s sᵀ in place,
// the BFGS update of the inverse Hessian with ρ = 1/(sᵀy).
//
// H stays symmetric, so the expansion
// H − ρ(s (Hy)ᵀ + (Hy) sᵀ) + (ρ² yᵀHy + ρ) s sᵀ needs a single product Hy.
func (m *dense) inverseUpdate(s, y []float64, rho float64) {
	hy := make([]float64, m.n)
	m.mulVec(y, hy)
	yhy := dot(y, hy)
	c := rho*rho*yhy + rho
	for i := 0; i < m.n; i++ {
		row := m.data[i*m.n : (i+1)*m.n]
		for j := range row {
			row[j] += -rho*(s[i]*hy[j]+hy[i]*s[j]) + c*s[i]*s[j]
		}
	}
}
