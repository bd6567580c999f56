// SPDX-License-Identifier: MIT

package tree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tangles/cuts"
	"github.com/katalvlaran/tangles/tangle"
)

// Grow builds the tangle search tree of c with the given agreement, starting
// from the root tangle.
//
// Cuts are added one cost group at a time, in ascending cost order. A group
// is committed as a whole: when one of its cuts extends no node, or the
// frontier cap is hit while it is being added, the group is rolled back and
// growth stops there. Every node still on the frontier then becomes maximal.
// The halt reason is stored on the tree, never returned as an error.
//
// Errors: ErrNilCuts, ErrNilTangle, ErrBadAgreement.
func Grow(c *cuts.Cuts, root tangle.Tangle, agreement int, opts ...Option) (*Tree, error) {
	// 1. Validate input
	if c == nil {
		return nil, ErrNilCuts
	}
	t, err := New(root, agreement, opts...)
	if err != nil {
		return nil, err
	}
	t.logger.Debug("tangle computation started", "agreement", agreement, "cuts", c.Len())

	// 2. One round per cost group
	halt := HaltExhausted
	var g cuts.Group
	for _, g = range c.Groups() {
		halt, err = t.addGroup(c, g)
		if err != nil {
			return nil, err
		}
		if halt != HaltNone {
			break
		}
		t.HaltCost = g.Cost
		t.logger.Debug("order committed", "cost", g.Cost, "new_cuts", len(g.IDs), "tangles", len(t.Active))
	}
	if halt == HaltNone {
		halt = HaltExhausted
	}

	// 3. Report early stops
	switch halt {
	case HaltInconsistent:
		t.logger.Warn("could not add any new cuts due to inconsistency",
			"stopped_at_cost", t.HaltCost, "failed_cost", g.Cost)
	case HaltCapacity:
		t.logger.Warn("stopped growth: too many active tangles",
			"max_clusters", t.MaxClusters, "stopped_at_cost", t.HaltCost)
	}

	t.finish(halt)
	t.logger.Info("tangle search tree grown", "maximals", len(t.Maximals), "halt", halt.String())

	return t, nil
}

// addGroup adds every cut of g, rolling the tree back to its state before
// the group when the group cannot be committed. HaltNone means committed.
func (t *Tree) addGroup(c *cuts.Cuts, g cuts.Group) (Halt, error) {
	cp := t.checkpoint()

	var id int
	for _, id = range g.IDs {
		cut, err := c.At(id)
		if err != nil {
			return HaltNone, fmt.Errorf("tree: group at cost %v: %w", g.Cost, err)
		}

		ok, err := t.AddCut(cut, id)
		if errors.Is(err, ErrMaxClusters) {
			t.rollback(cp)
			return HaltCapacity, nil
		}
		if !ok {
			t.rollback(cp)
			return HaltInconsistent, nil
		}
	}

	return HaltNone, nil
}
