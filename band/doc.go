// Package band implements a compact kernel for symmetric banded matrices:
// band-major storage that exploits symmetry and bandedness, an in-place
// LDLᵀ factorization, and a substitution solver that reuses one
// factorization across any number of right-hand sides.
//
// The band package provides:
//
//   - SymBanded — an order-n symmetric matrix with bandwidth b, storing the
//     single slot per symmetric pair (i,j)/(j,i) inside a flat buffer of
//     n·(b+1) float64 values. Entries with |i-j| > b are implicitly zero.
//   - Element access (At, Set), whole-diagonal access (Band), and bulk
//     constructors (New, NewFromBands, NewFromSymmetric).
//   - Factor — the band-restricted LDLᵀ decomposition, computed in place in
//     O(n·b²) instead of the dense O(n³).
//   - Solve — forward/diagonal/backward substitution in O(n·b) per call,
//     independent across calls.
//   - gonum interop (ToSymBand, ToSym) for callers that need the matrix in
//     gonum.org/v1/gonum/mat form.
//
// Lifecycle contract (documented, not checked):
//
//	construct → populate (At/Set/Band) → Factor exactly once → Solve freely.
//
// Factor destructively rewrites the buffer with the L and D factors; there
// is no way back to the original entries, and mutating the matrix after
// Factor, factoring twice, or solving before factoring all yield
// numerically meaningless (though memory-safe) results. Hot-path accessors
// perform no bounds checking: index discipline is the caller's job, and
// only construction validates its inputs. This trade of safety for
// throughput is deliberate and applies to the whole package.
//
// SymBanded is best for repeatedly solving linear systems with one banded
// symmetric positive-definite coefficient matrix, such as discretized 1-D
// differential operators, where the factorization cost is paid once.
//
// Instances are independent and may be used concurrently with each other;
// a single instance must be accessed sequentially.
package band
