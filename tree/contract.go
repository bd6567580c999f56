// SPDX-License-Identifier: MIT

package tree

import "log/slog"

// ContractedTree is a tangle search tree reduced to its splits and maximal
// leaves.
//
// Maximals holds exactly the live leaves and Splitting exactly the nodes with
// two live children; Prune keeps both in sync.
type ContractedTree struct {
	Root      *ContractedNode
	Maximals  []*ContractedNode
	Splitting []*ContractedNode

	// IsEmpty is true when no tangle beyond the root exists.
	IsEmpty bool

	logger *slog.Logger
}

// contractFrame is one pending subtree of the contraction walk.
type contractFrame struct {
	src    branch
	parent *ContractedNode
	isLeft bool
}

// Contract builds the contracted tree of t. Chains of single-child nodes
// vanish: each kept node carries the label of the split or leaf at the bottom
// of its chain and hangs on the side its chain started from.
//
// Errors: ErrNilTree.
func Contract(t *Tree) (*ContractedTree, error) {
	if t == nil || t.Root == nil {
		return nil, ErrNilTree
	}

	ct := &ContractedTree{IsEmpty: t.IsEmpty, logger: t.logger}
	ct.Root = ct.contract(t.Root)

	return ct, nil
}

// Recontract contracts an already contracted tree into a fresh, isomorphic
// copy. Characterizing cuts and probabilities are not carried over.
func (ct *ContractedTree) Recontract() *ContractedTree {
	out := &ContractedTree{IsEmpty: ct.IsEmpty, logger: ct.logger}
	if ct.Root != nil {
		out.Root = out.contract(ct.Root)
	}

	return out
}

// contract walks from root with an explicit stack. Right subtrees are pushed
// first so leaves land in Maximals left to right.
func (ct *ContractedTree) contract(root branch) *ContractedNode {
	var top *ContractedNode
	stack := []contractFrame{{src: root}}

	var (
		f           contractFrame
		cur         branch
		left, right branch
		kept        *ContractedNode
	)
	for len(stack) > 0 {
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 1. Skip single-child chains
		cur = f.src
		for {
			left, right = cur.branches()
			if left != nil && right != nil || left == nil && right == nil {
				break
			}
			if left != nil {
				cur = left
			} else {
				cur = right
			}
		}

		// 2. Materialize the split or leaf at the bottom of the chain
		kept = newContractedNode(f.parent, cur.label(), left != nil, f.isLeft)
		switch {
		case f.parent == nil:
			top = kept
		case f.isLeft:
			f.parent.Left = kept
		default:
			f.parent.Right = kept
		}

		// 3. Register and descend
		if left == nil {
			ct.Maximals = append(ct.Maximals, kept)
			continue
		}
		ct.Splitting = append(ct.Splitting, kept)
		stack = append(stack,
			contractFrame{src: right, parent: kept, isLeft: false},
			contractFrame{src: left, parent: kept, isLeft: true},
		)
	}

	return top
}

// Leaves returns the live leaves in left-to-right order.
func (ct *ContractedTree) Leaves() []*ContractedNode {
	var out []*ContractedNode
	ct.walk(func(n *ContractedNode) {
		if n.IsLeaf() {
			out = append(out, n)
		}
	})

	return out
}

// Nodes returns every live node in pre-order, left before right.
func (ct *ContractedTree) Nodes() []*ContractedNode {
	var out []*ContractedNode
	ct.walk(func(n *ContractedNode) { out = append(out, n) })

	return out
}

// walk visits live nodes in pre-order with an explicit stack.
func (ct *ContractedTree) walk(visit func(*ContractedNode)) {
	if ct.Root == nil {
		return
	}
	stack := []*ContractedNode{ct.Root}
	var n *ContractedNode
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(n)
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
}

// Logger returns the tree's logger.
func (ct *ContractedTree) Logger() *slog.Logger { return ct.logger }
