// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"

	"github.com/katalvlaran/tangles/cuts"
	"github.com/katalvlaran/tangles/tangle"
)

// RootCutID is the LastCutID of a root that no cut has been added to.
const RootCutID = -1

// Label is the part of a node that survives contraction unchanged: the cut
// that created it and the tangle it holds.
type Label struct {
	// LastCutID is the id of the cut added to reach this node, RootCutID for the root.
	LastCutID int

	// Orientation of LastCutID in Tangle. Meaningless for the root.
	Orientation cuts.Orientation

	// Tangle is owned by the node and never mutated.
	Tangle tangle.Tangle
}

// String renders the tree label of a node, e.g. "3T" or "Root".
func (l Label) String() string {
	if l.LastCutID == RootCutID {
		return "Root"
	}

	return fmt.Sprintf("%d%s", l.LastCutID, l.Orientation.Short())
}

// Node is a node of the growing tangle search tree.
//
// Exactly one of: leaf, one child, two children. Parent is a non-owning back
// link; children are owned.
type Node struct {
	Label

	Parent      *Node
	Left, Right *Node

	// IsLeftChild is true when the node hangs on its parent's Left side,
	// which is the side of the Left orientation.
	IsLeftChild bool

	// DidSplit is true when both orientations of a cut were viable when this
	// node's children were created.
	DidSplit bool
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Children returns the number of children (0, 1 or 2).
func (n *Node) Children() int {
	k := 0
	if n.Left != nil {
		k++
	}
	if n.Right != nil {
		k++
	}

	return k
}

// ContractedNode is a node of a contracted tree: a split or a maximal leaf.
type ContractedNode struct {
	Label

	Parent      *ContractedNode
	Left, Right *ContractedNode
	IsLeftChild bool

	// Splitting is true while the node has two live children.
	Splitting bool

	// CharacterizingCuts agree between both subtrees and are handed to
	// ancestors. Empty for leaves.
	CharacterizingCuts map[int]cuts.Orientation
	// CharacterizingCutsLeft and CharacterizingCutsRight hold the ids the two
	// sides orient differently. Nil for leaves.
	CharacterizingCutsLeft  map[int]cuts.Orientation
	CharacterizingCutsRight map[int]cuts.Orientation

	// P is the per-point membership probability of this subtree.
	P []float64

	// Pruning bookkeeping.
	IsLeftChildDeleted  bool
	IsRightChildDeleted bool
}

// newContractedNode materializes a contracted node from the label and split
// state of a node being kept.
func newContractedNode(parent *ContractedNode, label Label, splitting, isLeftChild bool) *ContractedNode {
	return &ContractedNode{
		Label: Label{
			LastCutID:   label.LastCutID,
			Orientation: label.Orientation,
			Tangle:      label.Tangle,
		},
		Parent:                  parent,
		Left:                    nil,
		Right:                   nil,
		IsLeftChild:             isLeftChild,
		Splitting:               splitting,
		CharacterizingCuts:      nil,
		CharacterizingCutsLeft:  nil,
		CharacterizingCutsRight: nil,
		P:                       nil,
		IsLeftChildDeleted:      false,
		IsRightChildDeleted:     false,
	}
}

// IsLeaf reports whether the node has no live children.
func (n *ContractedNode) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// IsRoot reports whether the node has no parent.
func (n *ContractedNode) IsRoot() bool { return n.Parent == nil }

// branch is the shape contraction walks; both node kinds provide it.
type branch interface {
	branches() (left, right branch)
	label() Label
}

func (n *Node) branches() (branch, branch) { return nodeBranch(n.Left), nodeBranch(n.Right) }
func (n *Node) label() Label { return n.Label }

func nodeBranch(n *Node) branch {
	if n == nil {
		return nil
	}

	return n
}

func (n *ContractedNode) branches() (branch, branch) {
	return contractedBranch(n.Left), contractedBranch(n.Right)
}
func (n *ContractedNode) label() Label { return n.Label }

func contractedBranch(n *ContractedNode) branch {
	if n == nil {
		return nil
	}

	return n
}
