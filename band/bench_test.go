// Package band_test provides benchmarks for factorization, solve, and
// mat-vec, using deterministic random fill.
package band_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/bandmat/band"
)

// benchDims are the matrix orders to benchmark.
var benchDims = []int{128, 512, 2048}

// benchBands is the stored-diagonal count used across benchmarks (b = 3).
const benchBands = 7

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkV []float64
)

// fillSPD populates m with seeded random off-diagonals and a dominant
// diagonal so that Factor stays numerically well-behaved.
func fillSPD(m *band.SymBanded, seed int64) {
	rnd := rand.New(rand.NewSource(seed))
	for k := 1; k <= m.Bandwidth(); k++ {
		seg := m.Band(k)
		for p := range seg {
			seg[p] = 2*rnd.Float64() - 1
		}
	}
	diag := m.Band(0)
	for p := range diag {
		diag[p] = 2*float64(m.Bandwidth()) + 1 + rnd.Float64()
	}
}

func BenchmarkFactor(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDims {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, err := band.New(n, benchBands)
			if err != nil {
				b.Fatal(err)
			}
			// Factor is destructive, so snapshot the populated bands and
			// restore them each iteration.
			fillSPD(m, 1337)
			pristine := make([][]float64, m.Bandwidth()+1)
			for k := range pristine {
				pristine[k] = append([]float64(nil), m.Band(k)...)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for k, seg := range pristine {
					copy(m.Band(k), seg)
				}
				m.Factor()
				sinkF = m.At(n-1, n-1)
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDims {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, err := band.New(n, benchBands)
			if err != nil {
				b.Fatal(err)
			}
			fillSPD(m, 4242)
			m.Factor()
			x := make([]float64, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := range x {
					x[j] = 1
				}
				m.Solve(x)
				sinkV = x
			}
		})
	}
}

func BenchmarkMulVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDims {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, err := band.New(n, benchBands)
			if err != nil {
				b.Fatal(err)
			}
			fillSPD(m, 7)
			x := make([]float64, n)
			y := make([]float64, n)
			for j := range x {
				x[j] = float64(j % 5)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.MulVec(x, y)
				sinkV = y
			}
		})
	}
}
