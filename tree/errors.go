// SPDX-License-Identifier: MIT

package tree

import "errors"

var (
	// ErrNilCuts indicates that a nil *cuts.Cuts was passed.
	ErrNilCuts = errors.New("tree: cuts are nil")

	// ErrNilTangle indicates that no root tangle was supplied.
	ErrNilTangle = errors.New("tree: root tangle is nil")

	// ErrNilTree indicates that a nil or rootless tree was passed.
	ErrNilTree = errors.New("tree: tree is nil")

	// ErrBadAgreement indicates an agreement threshold below 1.
	ErrBadAgreement = errors.New("tree: agreement must be >= 1")

	// ErrMaxClusters is returned by AddCut when the active frontier already
	// holds MaxClusters nodes. The tree is left untouched.
	ErrMaxClusters = errors.New("tree: active frontier reached max clusters")

	// ErrWeightsLength indicates that the weight vector does not have one
	// entry per cut.
	ErrWeightsLength = errors.New("tree: weights length does not match cuts")

	// ErrNoCharacterizingCuts indicates soft prediction was requested before
	// CalculateCharacterizingCuts.
	ErrNoCharacterizingCuts = errors.New("tree: characterizing cuts not computed")
)
