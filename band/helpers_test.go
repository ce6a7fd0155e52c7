// Package band_test: shared fixtures for the band test suite.
package band_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/bandmat/band"
	"github.com/stretchr/testify/require"
)

// mustNew constructs a matrix and fails the test on constructor error.
func mustNew(tb testing.TB, dim, bands int) *band.SymBanded {
	tb.Helper()
	m, err := band.New(dim, bands)
	require.NoError(tb, err)

	return m
}

// randSPD fills a dim×dim matrix of the given bands count with random
// in-band entries and a diagonally dominant diagonal, which makes it
// symmetric positive definite. Returns the matrix and a dense copy of its
// entries taken before any factorization.
func randSPD(tb testing.TB, rnd *rand.Rand, dim, bands int) (*band.SymBanded, [][]float64) {
	tb.Helper()
	m := mustNew(tb, dim, bands)
	bw := m.Bandwidth()

	for k := 1; k <= bw && k < dim; k++ {
		seg := m.Band(k)
		for p := range seg {
			seg[p] = 2*rnd.Float64() - 1
		}
	}
	// Diagonal dominance: A[i,i] > Σ_j |A[i,j]|.
	for i := 0; i < dim; i++ {
		sum := 1.0 + rnd.Float64()
		for k := 1; k <= bw; k++ {
			if i-k >= 0 {
				sum += abs(m.At(i, i-k))
			}
			if i+k < dim {
				sum += abs(m.At(i, i+k))
			}
		}
		m.Set(i, i, sum)
	}

	dense := make([][]float64, dim)
	for i := range dense {
		dense[i] = make([]float64, dim)
		for j := range dense[i] {
			if d := i - j; -bw <= d && d <= bw {
				dense[i][j] = m.At(i, j)
			}
		}
	}

	return m, dense
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
