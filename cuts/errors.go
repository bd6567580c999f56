// SPDX-License-Identifier: MIT

package cuts

import "errors"

// Sentinel errors for cut store construction and lookup.
var (
	// ErrEmpty indicates that no cuts, or cuts over zero points, were supplied.
	ErrEmpty = errors.New("cuts: no cuts or no points")

	// ErrRaggedValues indicates that cut vectors do not share one length.
	ErrRaggedValues = errors.New("cuts: cut vectors differ in length")

	// ErrCostsLength indicates that the cost slice does not match the cut count.
	ErrCostsLength = errors.New("cuts: costs length does not match cuts")

	// ErrNaNCost indicates a NaN cost; costs must be totally ordered.
	ErrNaNCost = errors.New("cuts: cost is NaN")

	// ErrOutOfRange indicates a cut id outside [0, Len()).
	ErrOutOfRange = errors.New("cuts: cut id out of range")
)
