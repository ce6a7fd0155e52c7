// Package band: validated bulk construction from per-diagonal slices.

package band

// NewFromBands creates a symmetric banded matrix directly from its
// diagonals. diag becomes band 0 and fixes dim = len(diag); off[k-1]
// becomes band k and must hold exactly dim-k values, else ErrBandLength.
// The resulting bandwidth is len(off), i.e. bands = 2·len(off)+1.
//
// The input slices are copied; the matrix does not alias them.
// Complexity: O(dim·b) time and memory.
func NewFromBands(diag []float64, off ...[]float64) (*SymBanded, error) {
	dim := len(diag)
	for k, d := range off {
		if len(d) != dim-(k+1) {
			return nil, ErrBandLength
		}
	}

	m, err := New(dim, 2*len(off)+1)
	if err != nil {
		return nil, err
	}

	copy(m.Band(0), diag)
	for k, d := range off {
		copy(m.Band(k+1), d)
	}

	return m, nil
}
