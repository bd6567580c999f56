// SPDX-License-Identifier: MIT

// Package cuts stores the bipartitions ("cuts") a tangle search consumes.
//
// What:
//
//   - Cuts: immutable store of boolean membership vectors, one per cut, each of
//     length Points(), kept in ascending cost order. Cut ids handed to the tree
//     are positions in that order; UnsortedID maps back to the caller's index.
//   - Groups: cut ids bucketed by unique cost, ascending. The tree grows one
//     group per round.
//   - Orientation: the side of a cut a tangle points to. Left keeps the cut,
//     Right takes its complement.
//   - Weights: exp(-normalize(costs)), the default vote weight per cut used by
//     soft prediction.
//
// Costs are supplied by the caller; this package never computes them.
//
// Errors:
//
//   - ErrEmpty          no cuts or no points
//   - ErrRaggedValues   cut vectors of different length
//   - ErrCostsLength    len(costs) != number of cuts
//   - ErrNaNCost        a cost is NaN
//   - ErrOutOfRange     cut id outside [0, Len())
//
// Complexity:
//
//   - New/FromBitSets: O(n log n + n·p/64) for n cuts over p points.
//   - At/Cost/UnsortedID: O(1). Groups: O(n).
package cuts
