// SPDX-License-Identifier: MIT

// Package tangle defines the consistency oracle a tangle search tree grows
// against, plus a reference oracle based on the agreement axiom.
//
// The tree package treats a Tangle as opaque: it only extends tangles with
// Add and reads the resulting cut orientations through Specification.
// Any consistency notion can be plugged in by implementing the interface.
//
// Agreement (the reference oracle):
//
//   - An oriented cut with fewer than minSize points is rejected.
//   - The tangle keeps a core of inclusion-minimal oriented cuts.
//   - A new oriented cut that contains a core cut is redundant: it is recorded
//     in the specification and the core is unchanged.
//   - Otherwise core cuts containing the new cut are dropped, and the new cut
//     must meet the single remaining core cut, or every pair of remaining core
//     cuts, in at least minSize points.
//
// Complexity: Add is O(k²·p/64) for a core of k cuts over p points.
package tangle

import (
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/tangles/cuts"
)

// Tangle is an immutable, internally consistent set of oriented cuts.
type Tangle interface {
	// Add returns a new tangle extended by cut oriented by o, or false when
	// the extension is not consistent with at least minSize points of
	// support. The receiver is never modified.
	Add(cut *bitset.BitSet, id int, o cuts.Orientation, minSize int) (Tangle, bool)

	// Specification maps every cut id in the tangle to its orientation.
	// Callers must treat the map as read-only.
	Specification() map[int]cuts.Orientation

	// Size is the number of oriented cuts in the tangle.
	Size() int
}

// Agreement is the reference Tangle: a set of oriented cuts in which every
// triple of cuts shares at least the agreement threshold of points.
type Agreement struct {
	points int
	core   []*bitset.BitSet
	spec   map[int]cuts.Orientation
}

var _ Tangle = (*Agreement)(nil)

// NewAgreement returns the empty tangle over points data points.
func NewAgreement(points int) *Agreement {
	return &Agreement{
		points: points,
		spec:   make(map[int]cuts.Orientation),
	}
}

// Add implements Tangle.
func (a *Agreement) Add(cut *bitset.BitSet, id int, o cuts.Orientation, minSize int) (Tangle, bool) {
	// 1. Orient and check raw support
	oriented := o.OrientCut(cut)
	if int(oriented.Count()) < minSize {
		return nil, false
	}

	spec := maps.Clone(a.spec)
	spec[id] = o

	// 2. Redundant: already implied by a smaller core cut
	var c *bitset.BitSet
	for _, c = range a.core {
		if oriented.IsSuperSet(c) {
			return &Agreement{points: a.points, core: a.core, spec: spec}, true
		}
	}

	// 3. Drop core cuts made redundant by the new one
	core := make([]*bitset.BitSet, 0, len(a.core)+1)
	for _, c = range a.core {
		if !c.IsSuperSet(oriented) {
			core = append(core, c)
		}
	}

	// 4. Triple intersections with the new cut
	if !consistent(core, oriented, minSize) {
		return nil, false
	}

	core = append(core, oriented.Clone())

	return &Agreement{points: a.points, core: core, spec: spec}, true
}

// consistent reports whether oriented meets every pair of core cuts (or the
// only core cut) in at least minSize points.
func consistent(core []*bitset.BitSet, oriented *bitset.BitSet, minSize int) bool {
	switch len(core) {
	case 0:
		return true
	case 1:
		return int(core[0].IntersectionCardinality(oriented)) >= minSize
	}

	var i, j int
	var shared *bitset.BitSet
	for i = 0; i < len(core); i++ {
		shared = core[i].Intersection(oriented)
		for j = i + 1; j < len(core); j++ {
			if int(shared.IntersectionCardinality(core[j])) < minSize {
				return false
			}
		}
	}

	return true
}

// Specification implements Tangle.
func (a *Agreement) Specification() map[int]cuts.Orientation { return a.spec }

// Size implements Tangle.
func (a *Agreement) Size() int { return len(a.spec) }

// Points returns the number of data points the tangle ranges over.
func (a *Agreement) Points() int { return a.points }

// CoreSize returns the number of inclusion-minimal cuts kept for checks.
func (a *Agreement) CoreSize() int { return len(a.core) }

// Support returns the number of points lying in every core cut, or Points()
// for the empty tangle.
func (a *Agreement) Support() int {
	if len(a.core) == 0 {
		return a.points
	}
	acc := a.core[0].Clone()
	for _, c := range a.core[1:] {
		acc.InPlaceIntersection(c)
	}

	return int(acc.Count())
}

// IDs returns the cut ids of the specification in ascending order.
func (a *Agreement) IDs() []int {
	return slices.Sorted(maps.Keys(a.spec))
}
