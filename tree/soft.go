// SPDX-License-Identifier: MIT

package tree

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tangles/cuts"
)

// ZeroVoteShare is the share each side of a split receives for a point on
// which neither side's characterizing cuts vote.
const ZeroVoteShare = 0.5

// PropagateSoftPredictions fills P on every node top-down. The root gets all
// ones; at each split a point's mass is divided between the sides in
// proportion to the weighted votes of their characterizing cuts. A cut votes
// for a point when the point lies on the cut's oriented side, with weight
// weights[id]. Points with no vote on either side are split ZeroVoteShare
// each way.
//
// Nodes of one level are processed concurrently, bounded by WithParallelism;
// a level completes before the next one reads it. Leaf P values sum to the
// root's P for every point.
//
// Errors: ErrNilTree, ErrNilCuts, ErrWeightsLength, ErrNoCharacterizingCuts,
// ctx.Err().
func (ct *ContractedTree) PropagateSoftPredictions(ctx context.Context, c *cuts.Cuts, weights []float64, opts ...SoftOption) error {
	// 1. Validate input
	if ct == nil || ct.Root == nil {
		return ErrNilTree
	}
	if c == nil {
		return ErrNilCuts
	}
	if len(weights) != c.Len() {
		return fmt.Errorf("tree: %d weights for %d cuts: %w", len(weights), c.Len(), ErrWeightsLength)
	}
	for _, n := range ct.Splitting {
		if n.CharacterizingCutsLeft == nil || n.CharacterizingCutsRight == nil {
			return ErrNoCharacterizingCuts
		}
	}

	o := DefaultSoftOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Root holds every point
	ct.Root.P = make([]float64, c.Points())
	for i := range ct.Root.P {
		ct.Root.P[i] = 1
	}

	// 3. Level by level
	level := []*ContractedNode{ct.Root}
	for len(level) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.Parallelism)

		next := make([]*ContractedNode, 0, 2*len(level))
		for _, n := range level {
			if n.IsLeaf() {
				continue
			}
			next = append(next, n.Left, n.Right)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return splitMass(n, c, weights)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		level = next
	}

	return nil
}

// splitMass writes both children's P from n.P and the side votes.
func splitMass(n *ContractedNode, c *cuts.Cuts, weights []float64) error {
	votesLeft, err := sideVotes(n.CharacterizingCutsLeft, c, weights)
	if err != nil {
		return err
	}
	votesRight, err := sideVotes(n.CharacterizingCutsRight, c, weights)
	if err != nil {
		return err
	}

	pl := make([]float64, len(n.P))
	pr := make([]float64, len(n.P))
	var total, share float64
	for i := range n.P {
		total = votesLeft[i] + votesRight[i]
		if total == 0 {
			share = ZeroVoteShare
		} else {
			share = votesLeft[i] / total
		}
		pl[i] = n.P[i] * share
		pr[i] = n.P[i] * (1 - share)
	}
	n.Left.P = pl
	n.Right.P = pr

	return nil
}

// sideVotes sums weights[id] over the cuts of one side for every point the
// oriented cut contains. Ids are visited in ascending order so the float
// sums do not depend on map iteration.
func sideVotes(side map[int]cuts.Orientation, c *cuts.Cuts, weights []float64) ([]float64, error) {
	votes := make([]float64, c.Points())
	var p int
	for _, id := range slices.Sorted(maps.Keys(side)) {
		cut, err := c.At(id)
		if err != nil {
			return nil, err
		}
		want := bool(side[id])
		for p = range votes {
			if cut.Test(uint(p)) == want {
				votes[p] += weights[id]
			}
		}
	}

	return votes, nil
}
