// SPDX-License-Identifier: MIT

package tree

import (
	"maps"

	"github.com/katalvlaran/tangles/cuts"
)

// CalculateCharacterizingCuts annotates every node bottom-up. Leaves get an
// empty CharacterizingCuts. For a split node, the children's sets are first
// extended with every cut added on the chain contracted away above them;
// then
//
//   - ids present on one side only are dropped,
//   - ids oriented the same way on both sides move up into the node's own
//     CharacterizingCuts,
//   - ids oriented differently stay in CharacterizingCutsLeft and
//     CharacterizingCutsRight: they are what tells the two sides apart.
//
// The children's own sets are not modified, so the call can be repeated.
func (ct *ContractedTree) CalculateCharacterizingCuts() {
	for _, n := range ct.postOrder() {
		if n.IsLeaf() {
			n.CharacterizingCuts = make(map[int]cuts.Orientation)
			n.CharacterizingCutsLeft = nil
			n.CharacterizingCutsRight = nil
			continue
		}
		processSplit(n)
	}
}

// postOrder lists live nodes children-first using two explicit stacks.
func (ct *ContractedTree) postOrder() []*ContractedNode {
	if ct.Root == nil {
		return nil
	}
	var out []*ContractedNode
	stack := []*ContractedNode{ct.Root}
	var n *ContractedNode
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n)
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
	}
	// out is root, right..., left...; reversed it is left, right, root.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// processSplit derives the characterizing cuts of split node n from its two
// already processed children.
func processSplit(n *ContractedNode) {
	// 1. Children's sets extended with the contracted chain
	left := chainExtended(n, n.Left)
	right := chainExtended(n, n.Right)

	own := make(map[int]cuts.Orientation)
	var (
		id     int
		oLeft  cuts.Orientation
		oRight cuts.Orientation
		ok     bool
	)
	for id, oLeft = range left {
		// 2. One-sided ids neither distinguish nor help ancestors
		oRight, ok = right[id]
		if !ok {
			delete(left, id)
			continue
		}
		// 3. Same orientation: useful above, not here
		if oLeft == oRight {
			own[id] = oLeft
			delete(left, id)
			delete(right, id)
		}
		// 4. Opposite orientation stays local to the split
	}
	for id = range right {
		if _, ok = left[id]; !ok {
			delete(right, id)
		}
	}

	n.CharacterizingCuts = own
	n.CharacterizingCutsLeft = left
	n.CharacterizingCutsRight = right
}

// chainExtended returns a copy of child's characterizing cuts plus every cut
// id in (parent.LastCutID, child.LastCutID] oriented as child's tangle does.
func chainExtended(parent, child *ContractedNode) map[int]cuts.Orientation {
	out := maps.Clone(child.CharacterizingCuts)
	if out == nil {
		out = make(map[int]cuts.Orientation)
	}
	spec := child.Tangle.Specification()

	var o cuts.Orientation
	var ok bool
	for id := parent.LastCutID + 1; id <= child.LastCutID; id++ {
		if o, ok = spec[id]; ok {
			out[id] = o
		}
	}

	return out
}
