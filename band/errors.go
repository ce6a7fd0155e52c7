// Package band: sentinel error set.
// This file defines ONLY package-level sentinel errors. Constructors return
// these sentinels directly and tests match them via errors.Is. Hot-path
// accessors (At, Set, Band) and the Factor/Solve engines never return or
// panic on user errors; their preconditions are documented caller contracts.

package band

import "errors"

var (
	// ErrInvalidBandwidth is returned by constructors when the requested
	// bands count is not a positive odd integer (bands = 2·bandwidth + 1).
	ErrInvalidBandwidth = errors.New("band: bands must be a positive odd integer")

	// ErrBandLength is returned by NewFromBands when an off-diagonal slice
	// does not have exactly dim-k elements for its distance k.
	ErrBandLength = errors.New("band: off-diagonal band has wrong length")
)
