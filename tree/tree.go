// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/tangles/cuts"
	"github.com/katalvlaran/tangles/tangle"
)

// Halt tells why growth stopped.
type Halt int

const (
	// HaltNone: growth has not finished.
	HaltNone Halt = iota
	// HaltExhausted: every cost group was added.
	HaltExhausted
	// HaltInconsistent: a cost group could not be added anywhere.
	HaltInconsistent
	// HaltCapacity: the active frontier reached MaxClusters.
	HaltCapacity
)

// String implements fmt.Stringer.
func (h Halt) String() string {
	switch h {
	case HaltExhausted:
		return "exhausted"
	case HaltInconsistent:
		return "inconsistent"
	case HaltCapacity:
		return "capacity"
	default:
		return "none"
	}
}

// Tree is a growing tangle search tree.
//
// Active and Maximals are disjoint; together they are exactly the leaves of
// the tree. WillSplit lists, in growth order, every node that split.
type Tree struct {
	Root      *Node
	Active    []*Node
	Maximals  []*Node
	WillSplit []*Node

	// Agreement is the minimum support passed to every Tangle.Add.
	Agreement int
	// MaxClusters caps len(Active); 0 means no cap.
	MaxClusters int
	// IsEmpty stays true until some cut extends some node.
	IsEmpty bool

	// Halt and HaltCost report how growth ended. HaltCost is the cost of the
	// last committed group, NaN when none was committed.
	Halt     Halt
	HaltCost float64

	logger *slog.Logger
}

// New returns a tree holding only a root with the given tangle.
//
// Errors: ErrNilTangle, ErrBadAgreement.
func New(root tangle.Tangle, agreement int, opts ...Option) (*Tree, error) {
	if root == nil {
		return nil, ErrNilTangle
	}
	if agreement < 1 {
		return nil, fmt.Errorf("tree: agreement %d: %w", agreement, ErrBadAgreement)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	r := &Node{Label: Label{LastCutID: RootCutID, Tangle: root}}

	return &Tree{
		Root:        r,
		Active:      []*Node{r},
		Agreement:   agreement,
		MaxClusters: o.MaxClusters,
		IsEmpty:     true,
		HaltCost:    math.NaN(),
		logger:      o.Logger,
	}, nil
}

// Logger returns the tree's logger.
func (t *Tree) Logger() *slog.Logger { return t.logger }

// AddCut offers cut (with id) in both orientations to every active node and
// reports whether at least one node could be extended.
//
// A node that accepts both orientations splits; one that accepts neither
// moves to Maximals. If the frontier already holds MaxClusters nodes the
// tree is left as is and ErrMaxClusters is returned.
func (t *Tree) AddCut(cut *bitset.BitSet, id int) (bool, error) {
	// 1. Capacity valve
	if t.MaxClusters > 0 && len(t.Active) >= t.MaxClusters {
		return false, ErrMaxClusters
	}

	// 2. Swap in a fresh frontier
	current := t.Active
	t.Active = make([]*Node, 0, 2*len(current))

	// 3. Extend every node of the old frontier
	couldAdd := false
	var n *Node
	for _, n = range current {
		extended, split := t.addChildren(n, cut, id)
		couldAdd = couldAdd || extended
		switch {
		case split:
			t.WillSplit = append(t.WillSplit, n)
		case !extended:
			t.Maximals = append(t.Maximals, n)
		}
	}

	if couldAdd {
		t.IsEmpty = false
	}

	return couldAdd, nil
}

// addChildren tries both orientations of cut on n, attaching a child per
// accepted orientation and appending it to the frontier.
func (t *Tree) addChildren(n *Node, cut *bitset.BitSet, id int) (extended, split bool) {
	left, okLeft := n.Tangle.Add(cut, id, cuts.Left, t.Agreement)
	right, okRight := n.Tangle.Add(cut, id, cuts.Right, t.Agreement)

	split = okLeft && okRight
	n.DidSplit = split

	if okLeft {
		n.Left = &Node{
			Label:       Label{LastCutID: id, Orientation: cuts.Left, Tangle: left},
			Parent:      n,
			IsLeftChild: true,
		}
		t.Active = append(t.Active, n.Left)
	}
	if okRight {
		n.Right = &Node{
			Label:       Label{LastCutID: id, Orientation: cuts.Right, Tangle: right},
			Parent:      n,
			IsLeftChild: false,
		}
		t.Active = append(t.Active, n.Right)
	}

	return okLeft || okRight, split
}

// checkpoint captures enough state to undo the AddCut calls of one group.
// Every node created after it descends from a node of its frontier.
type checkpoint struct {
	active    []*Node
	maximals  int
	willSplit int
	isEmpty   bool
}

func (t *Tree) checkpoint() checkpoint {
	return checkpoint{
		active:    append([]*Node(nil), t.Active...),
		maximals:  len(t.Maximals),
		willSplit: len(t.WillSplit),
		isEmpty:   t.IsEmpty,
	}
}

// rollback detaches everything grown since cp and restores the frontier.
func (t *Tree) rollback(cp checkpoint) {
	for _, n := range cp.active {
		n.Left, n.Right = nil, nil
		n.DidSplit = false
	}
	t.Active = cp.active
	t.Maximals = t.Maximals[:cp.maximals]
	t.WillSplit = t.WillSplit[:cp.willSplit]
	t.IsEmpty = cp.isEmpty
}

// finish moves the surviving frontier into Maximals.
func (t *Tree) finish(h Halt) {
	t.Maximals = append(t.Maximals, t.Active...)
	t.Active = t.Active[:0]
	t.Halt = h
}

// Leaves returns every leaf reachable from the root in left-to-right order.
func (t *Tree) Leaves() []*Node {
	var out []*Node
	stack := []*Node{t.Root}
	var n *Node
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.IsLeaf() {
			out = append(out, n)
			continue
		}
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}

	return out
}
