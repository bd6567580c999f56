// SPDX-License-Identifier: MIT

// Package tree grows, contracts, prunes and annotates a tangle search tree.
//
// What:
//
//   - Grow / (*Tree).AddCut: binary search tree over tangles. Cuts are offered
//     one cost group at a time to every node of the active frontier; a node
//     extends in one orientation, splits into both, or becomes maximal.
//   - Contract: drops every single-child node so only splits and maximal
//     leaves remain. Iterative; stack depth does not grow with tree height.
//   - (*ContractedTree).Prune: removes short noisy leaves and re-links the
//     tree around the splits they leave behind.
//   - (*ContractedTree).CalculateCharacterizingCuts: for each split, the cut
//     orientations that tell its two subtrees apart.
//   - (*ContractedTree).PropagateSoftPredictions: per-point membership
//     probabilities pushed top-down through the splits, weighted by cut.
//
// Pipeline:
//
//	cuts ─▶ Grow ─▶ Contract ─▶ Prune ─▶ CalculateCharacterizingCuts ─▶ PropagateSoftPredictions
//
// Each stage consumes the previous one's output; none of them may run
// concurrently with another on the same tree.
//
// Early stops are not errors. Growth halts when a cost group cannot be added
// anywhere (HaltInconsistent) or the frontier reaches the cluster cap
// (HaltCapacity); in both cases the unfinished group is rolled back, the halt
// is logged at WARN and the tree grown so far stays usable. A contracted tree
// whose root is a leaf after pruning is reported as empty.
//
// Errors:
//
//   - ErrNilCuts, ErrNilTangle, ErrNilTree   missing inputs
//   - ErrBadAgreement                        agreement < 1
//   - ErrMaxClusters                         AddCut refused by the cluster cap
//   - ErrWeightsLength                       len(weights) != number of cuts
//   - ErrNoCharacterizingCuts                soft prediction before characterizing cuts
//
// Complexity:
//
//   - Grow: O(n·F·T) for n cuts, frontier size F and oracle cost T.
//   - Contract, Prune, CalculateCharacterizingCuts: O(V + V·k) for V nodes and
//     k characterizing cuts per node.
//   - PropagateSoftPredictions: O(S·k·p) for S splits over p points.
package tree
