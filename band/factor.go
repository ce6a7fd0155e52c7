// Package band: in-place band-restricted LDLᵀ factorization.

package band

// Factor computes, in place, the LDLᵀ decomposition of the current matrix
// contents, where L is unit lower-triangular within the band and D is
// diagonal. Band 0 is overwritten with D and band k (k ≥ 1) slot j with
// L[j+k, j]; the unit diagonal of L is implicit and never stored.
//
// Algorithm Outline (column-by-column, j = 0..dim-1):
//  1. Diagonal update:
//     d = A[j,j] − Σ L[j,k]²·D[k],   k = max(0, j-b) .. j-1
//     store d as D[j] (band 0, slot j).
//  2. Sub-diagonal updates, i = min(dim-1, j+b) down to j+1:
//     v = A[i,j] − Σ L[i,k]·L[j,k]·D[k],   k = max(0, i-b) .. j-1
//     store v/d as L[i,j] (band i-j, slot j).
//
// Both inner sums are truncated to the band, giving O(dim·b²) total cost.
//
// Contract (documented, not checked):
//   - The matrix must be symmetric positive definite within the band for the
//     result to be numerically valid. No pivoting is performed and no
//     definiteness check exists: a zero or negligible pivot d silently
//     propagates non-finite values through the remaining columns.
//   - Call exactly once per matrix, after population is complete. The buffer
//     is destructively rewritten; the original entries are unrecoverable,
//     so a second Factor or any later Set factors garbage.
func (m *SymBanded) Factor() {
	n, b := m.dim, m.bw

	for j := 0; j < n; j++ {
		// Stage 1: pivot D[j].
		d := m.data[j] // band 0, slot j
		for k := max(0, j-b); k < j; k++ {
			l := m.data[(j-k)*n+k] // L[j,k]
			d -= l * l * m.data[k]
		}
		m.data[j] = d

		// Stage 2: column j of L, bottom-up within the band.
		for i := min(n-1, j+b); i > j; i-- {
			v := m.data[(i-j)*n+j] // A[i,j]
			for k := max(0, i-b); k < j; k++ {
				v -= m.data[(i-k)*n+k] * m.data[(j-k)*n+k] * m.data[k]
			}
			m.data[(i-j)*n+j] = v / d
		}
	}
}

// Det returns the determinant of the original matrix as the product of the
// pivots stored by Factor. Complexity: O(dim).
//
// Meaningless before Factor has run (same contract tier as Solve).
func (m *SymBanded) Det() float64 {
	det := 1.0
	for j := 0; j < m.dim; j++ {
		det *= m.data[j]
	}

	return det
}
