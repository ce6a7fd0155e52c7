// Package band: converters to and from gonum.org/v1/gonum/mat, for callers
// that populate from or hand results to general linear-algebra code.
//
// All converters address the population-phase matrix: exporting after
// Factor copies L/D data instead of A (documented caller error, same tier
// as mutation after Factor).

package band

import "gonum.org/v1/gonum/mat"

// NewFromSymmetric creates a SymBanded covering bands diagonals from the
// gonum symmetric matrix a. Entries of a outside the band are silently
// dropped; the caller chooses bands to match the structure of a.
// Returns ErrInvalidBandwidth when bands is not a positive odd integer.
// Complexity: O(dim·b).
func NewFromSymmetric(a mat.Symmetric, bands int) (*SymBanded, error) {
	m, err := New(a.SymmetricDim(), bands)
	if err != nil {
		return nil, err
	}

	for k := 0; k <= m.bw && k < m.dim; k++ {
		seg := m.Band(k)
		for p := range seg {
			seg[p] = a.At(p, p+k)
		}
	}

	return m, nil
}

// ToSymBand exports the matrix into gonum's symmetric banded format, which
// requires Bandwidth() < Dim(). The result is a copy; later mutation of
// either matrix does not affect the other. Complexity: O(dim·b).
func (m *SymBanded) ToSymBand() *mat.SymBandDense {
	// gonum stores the upper triangle row-major: (i, i+k) at i*(bw+1)+k.
	data := make([]float64, m.dim*(m.bw+1))
	for k := 0; k <= m.bw && k < m.dim; k++ {
		for p, v := range m.Band(k) {
			data[p*(m.bw+1)+k] = v
		}
	}

	return mat.NewSymBandDense(m.dim, m.bw, data)
}

// ToSym exports the matrix into gonum's dense symmetric format, with the
// out-of-band entries explicitly zero. Complexity: O(dim²).
func (m *SymBanded) ToSym() *mat.SymDense {
	s := mat.NewSymDense(m.dim, nil)
	for k := 0; k <= m.bw && k < m.dim; k++ {
		for p, v := range m.Band(k) {
			s.SetSym(p, p+k, v)
		}
	}

	return s
}
