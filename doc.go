// Package bandmat hosts a compact numerical kernel for symmetric banded
// matrices.
//
// Everything lives in the band subpackage:
//
//	band/ — SymBanded storage, in-place LDLᵀ factorization, substitution
//	        solve, and gonum.org/v1/gonum/mat converters.
//
// The kernel targets callers who repeatedly solve linear systems with one
// banded symmetric positive-definite coefficient matrix and want to pay
// the factorization cost once:
//
//	m, err := band.New(n, 3)           // tridiagonal
//	...populate via Set or Band views...
//	m.Factor()                          // once, in place
//	m.Solve(rhs1)                       // any number of times
//	m.Solve(rhs2)
//
// See band's package documentation for the storage layout and the
// caller-contract rules around the destructive factorization.
package bandmat
