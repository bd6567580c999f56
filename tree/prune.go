// SPDX-License-Identifier: MIT

package tree

// Prune removes noise leaves: a non-root leaf whose LastCutID is within depth
// of its parent's LastCutID. It returns the number of maximals left.
//
// The parent of a removed leaf gets its side-deleted flag set and stops
// splitting. A split that keeps one side collapses and its surviving child
// takes its place; a split that loses both sides becomes a leaf and is tested
// as noise itself. depth <= 0 leaves the tree unchanged. Pruning never adds
// maximals and is idempotent for a fixed depth.
//
// If the root ends up a leaf the tree is marked empty and "no clusters found"
// is logged; this is not an error.
func (ct *ContractedTree) Prune(depth int) int {
	if depth <= 0 || ct.Root == nil {
		return len(ct.Maximals)
	}

	// 1. Post-order removal; the root is never removed, only replaced
	replaced := make(map[*ContractedNode]*ContractedNode)
	for _, n := range ct.postOrder() {
		replaced[n] = prune(n, replaced, depth)
	}
	root := replaced[ct.Root]
	root.Parent = nil
	root.IsLeftChild = false
	ct.Root = root

	// 2. Rebuild registries from the live tree
	ct.Maximals = ct.Maximals[:0]
	ct.Splitting = ct.Splitting[:0]
	ct.walk(func(n *ContractedNode) {
		if n.IsLeaf() {
			ct.Maximals = append(ct.Maximals, n)
		} else {
			ct.Splitting = append(ct.Splitting, n)
		}
	})

	// 3. Report degenerate result
	if ct.Root.IsLeaf() {
		ct.IsEmpty = true
		if ct.logger != nil {
			ct.logger.Warn("no clusters found: root is a leaf after pruning")
		}
	}
	if ct.logger != nil {
		ct.logger.Info("clusters after cutting out short paths", "maximals", len(ct.Maximals), "prune_depth", depth)
	}

	return len(ct.Maximals)
}

// prune returns the node that replaces n under n's parent, or nil when n and
// its whole subtree are noise. replaced holds the result for every node below
// n; n's own links still point at the unpruned children.
func prune(n *ContractedNode, replaced map[*ContractedNode]*ContractedNode, depth int) *ContractedNode {
	if n.IsLeaf() {
		if isNoise(n, depth) {
			return nil
		}

		return n
	}

	var left, right *ContractedNode
	if n.Left != nil {
		left = replaced[n.Left]
	}
	if n.Right != nil {
		right = replaced[n.Right]
	}

	if left == nil {
		n.IsLeftChildDeleted = true
		n.Splitting = false
	}
	if right == nil {
		n.IsRightChildDeleted = true
		n.Splitting = false
	}

	switch {
	case left != nil && right != nil:
		attach(n, left, true)
		attach(n, right, false)
		return n

	case left != nil:
		return left

	case right != nil:
		return right
	}

	// Both sides were noise: n is a leaf now.
	n.Left, n.Right = nil, nil
	if isNoise(n, depth) {
		return nil
	}

	return n
}

// isNoise reports whether leaf n sits within depth cuts of its parent.
func isNoise(n *ContractedNode, depth int) bool {
	if n.Parent == nil {
		return false
	}

	return n.LastCutID-n.Parent.LastCutID <= depth
}

// attach hangs child on parent's given side.
func attach(parent, child *ContractedNode, isLeft bool) {
	child.Parent = parent
	child.IsLeftChild = isLeft
	if isLeft {
		parent.Left = child
	} else {
		parent.Right = child
	}
}
