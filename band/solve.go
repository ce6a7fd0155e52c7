// Package band: substitution solve against a computed factorization, plus
// the matrix-vector product over the unfactored matrix.

package band

// Solve overwrites x, a caller-owned slice of Dim() values, with the
// solution of A·x = b, where b is the incoming content of x and A is the
// matrix as it was when Factor ran. The factorization is reused: any number
// of right-hand sides may be solved after one Factor, each call independent
// and side-effect-free on the matrix itself.
//
// Algorithm Outline (three passes over x, all band-truncated):
//  1. Forward solve L·y = b (unit lower triangular):
//     x[i] -= L[i,j]·x[j],   i = 1..dim-1, j = max(0, i-b) .. i-1
//  2. Diagonal solve D·z = y:
//     x[i] /= D[i]
//  3. Backward solve Lᵀ·w = z:
//     x[i] -= L[j,i]·x[j],   i = dim-2..0, j = min(dim-1, i+b) .. i+1
//
// Complexity: O(dim·b) per call.
//
// Contract (documented, not checked): Factor must have already run exactly
// once, and len(x) must be Dim(). Solving before Factor consumes garbage
// and produces garbage, silently.
func (m *SymBanded) Solve(x []float64) {
	n, b := m.dim, m.bw

	// Stage 1: forward substitution.
	for i := 1; i < n; i++ {
		for j := max(0, i-b); j < i; j++ {
			x[i] -= m.data[(i-j)*n+j] * x[j]
		}
	}

	// Stage 2: diagonal scaling.
	for i := 0; i < n; i++ {
		x[i] /= m.data[i]
	}

	// Stage 3: backward substitution.
	for i := n - 2; i >= 0; i-- {
		for j := min(n-1, i+b); j > i; j-- {
			x[i] -= m.data[(j-i)*n+i] * x[j]
		}
	}
}

// MulVec computes y = A·x over the current (unfactored) matrix contents.
// x and y are caller-owned slices of Dim() values and must not alias each
// other. Complexity: O(dim·b).
//
// Unchecked lengths; meaningless after Factor, which replaces A with its
// factors.
func (m *SymBanded) MulVec(x, y []float64) {
	n, b := m.dim, m.bw

	for i := 0; i < n; i++ {
		s := m.data[i] * x[i] // diagonal term
		for k := 1; k <= b; k++ {
			if j := i - k; j >= 0 {
				s += m.data[k*n+j] * x[j]
			}
			if j := i + k; j < n {
				s += m.data[k*n+i] * x[j]
			}
		}
		y[i] = s
	}
}
