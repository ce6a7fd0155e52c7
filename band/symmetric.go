// Package band: SymBanded storage and band-major indexing.
//
// Layout: the flat buffer holds b+1 segments of stride dim. Band k
// (k = |i-j|, the k-th diagonal) lives at offset k·dim and uses the first
// dim-k slots of its segment; slot p of band k is the unique storage cell
// for the symmetric pair (p, p+k)/(p+k, p). Symmetry is therefore encoded
// by construction: writing (i,j) and reading (j,i) touch the same cell,
// with no mirroring or consistency check.

package band

// SymBanded is a symmetric banded matrix of float64 values.
// dim is the matrix order, bw the bandwidth b, and data the band-major
// backing storage of length dim*(bw+1).
//
// All indexed access is unchecked: valid indices satisfy
// 0 ≤ i,j < dim and |i-j| ≤ bw. Violations are numerically meaningless but
// memory-safe only insofar as the computed slot happens to land inside the
// buffer; they are caller-contract violations, not detectable states.
type SymBanded struct {
	dim  int       // matrix order
	bw   int       // bandwidth b; bands = 2b+1 diagonals are stored
	data []float64 // band-major backing storage, length dim*(bw+1)
}

// New creates a dim×dim symmetric banded matrix covering bands diagonals,
// where bands must be a positive odd integer (bands = 2b+1 for bandwidth b).
// Storage is allocated once and zero-initialized; dim is fixed for the
// lifetime of the matrix.
//
// This is the only validated entry point of the package: invalid bands
// yields ErrInvalidBandwidth. dim is expected positive (unchecked).
// Complexity: O(dim·b) time and memory.
func New(dim, bands int) (*SymBanded, error) {
	if bands < 1 || bands%2 == 0 {
		return nil, ErrInvalidBandwidth
	}
	bw := (bands - 1) / 2

	return &SymBanded{
		dim:  dim,
		bw:   bw,
		data: make([]float64, dim*(bw+1)),
	}, nil
}

// Dim returns the matrix order. Complexity: O(1).
func (m *SymBanded) Dim() int { return m.dim }

// Bandwidth returns the bandwidth b: entries with |i-j| > b are implicitly
// zero and not stored. Complexity: O(1).
func (m *SymBanded) Bandwidth() int { return m.bw }

// Bands returns the number of stored diagonals, 2·Bandwidth()+1.
// Complexity: O(1).
func (m *SymBanded) Bands() int { return 2*m.bw + 1 }

// Band returns the mutable storage view of the k-th diagonal, length dim-k.
// Slot p of the view is the matrix entry (p, p+k) — equivalently (p+k, p).
// The view aliases the matrix storage: writes through it are writes to the
// matrix, and vice versa.
//
// Unchecked: the caller must keep 0 ≤ k ≤ Bandwidth().
func (m *SymBanded) Band(k int) []float64 {
	return m.data[k*m.dim : k*m.dim+m.dim-k]
}

// At returns the entry at row i, column j.
//
// Unchecked: the caller must keep 0 ≤ i,j < dim and |i-j| ≤ Bandwidth().
func (m *SymBanded) At(i, j int) float64 {
	return m.data[m.slot(i, j)]
}

// Set writes v to the entry at row i, column j — and, by storage sharing,
// to (j, i) as well.
//
// Unchecked: the caller must keep 0 ≤ i,j < dim and |i-j| ≤ Bandwidth().
func (m *SymBanded) Set(i, j int, v float64) {
	m.data[m.slot(i, j)] = v
}

// slot maps (i, j) to its band-major storage index: band k = |i-j|,
// slot p = min(i, j), cell k·dim + p.
func (m *SymBanded) slot(i, j int) int {
	k, p := i-j, j
	if k < 0 {
		k, p = -k, i
	}

	return k*m.dim + p
}
