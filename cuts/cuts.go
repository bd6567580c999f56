// SPDX-License-Identifier: MIT

package cuts

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Cuts is an immutable set of bipartitions over the same points, sorted by
// ascending cost. Ties keep the caller's relative order.
type Cuts struct {
	values   []*bitset.BitSet // values[id] for sorted id; len(values) == len(costs)
	costs    []float64        // ascending
	unsorted []int            // unsorted[id] = caller's index of sorted id
	points   int
}

// Group is a bucket of cut ids sharing one cost value.
type Group struct {
	Cost float64
	IDs  []int
}

// New builds a store from row-wise boolean vectors (one row per cut) and one
// cost per cut.
//
// Errors: ErrEmpty, ErrRaggedValues, ErrCostsLength, ErrNaNCost.
func New(values [][]bool, costs []float64) (*Cuts, error) {
	// 1. Shape validation
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmpty
	}
	points := len(values[0])

	// 2. Pack each row into a bitset
	sets := make([]*bitset.BitSet, len(values))
	var i, j int
	for i = range values {
		if len(values[i]) != points {
			return nil, fmt.Errorf("cuts: row %d has %d points, want %d: %w", i, len(values[i]), points, ErrRaggedValues)
		}
		b := bitset.New(uint(points))
		for j = 0; j < points; j++ {
			if values[i][j] {
				b.Set(uint(j))
			}
		}
		sets[i] = b
	}

	return FromBitSets(sets, points, costs)
}

// FromBitSets builds a store from packed vectors. Each set must have length
// points; the sets are cloned so later caller mutations do not leak in.
//
// Errors: ErrEmpty, ErrRaggedValues, ErrCostsLength, ErrNaNCost.
func FromBitSets(values []*bitset.BitSet, points int, costs []float64) (*Cuts, error) {
	if len(values) == 0 || points <= 0 {
		return nil, ErrEmpty
	}
	if len(costs) != len(values) {
		return nil, fmt.Errorf("cuts: %d costs for %d cuts: %w", len(costs), len(values), ErrCostsLength)
	}

	var i int
	for i = range values {
		if values[i] == nil || values[i].Len() != uint(points) {
			return nil, fmt.Errorf("cuts: cut %d: %w", i, ErrRaggedValues)
		}
		if math.IsNaN(costs[i]) {
			return nil, fmt.Errorf("cuts: cut %d: %w", i, ErrNaNCost)
		}
	}

	// Stable permutation by ascending cost.
	order := make([]int, len(values))
	for i = range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(costs[a], costs[b]) })

	c := &Cuts{
		values:   make([]*bitset.BitSet, len(values)),
		costs:    make([]float64, len(values)),
		unsorted: order,
		points:   points,
	}
	var src int
	for i, src = range order {
		c.values[i] = values[src].Clone()
		c.costs[i] = costs[src]
	}

	return c, nil
}

// Len returns the number of cuts.
func (c *Cuts) Len() int { return len(c.values) }

// Points returns the number of data points every cut partitions.
func (c *Cuts) Points() int { return c.points }

// At returns the cut with sorted id. The returned set must not be mutated.
func (c *Cuts) At(id int) (*bitset.BitSet, error) {
	if id < 0 || id >= len(c.values) {
		return nil, fmt.Errorf("cuts: At(%d): %w", id, ErrOutOfRange)
	}

	return c.values[id], nil
}

// Cost returns the cost of the cut with sorted id.
func (c *Cuts) Cost(id int) (float64, error) {
	if id < 0 || id >= len(c.costs) {
		return 0, fmt.Errorf("cuts: Cost(%d): %w", id, ErrOutOfRange)
	}

	return c.costs[id], nil
}

// Costs returns a copy of all costs in ascending order.
func (c *Cuts) Costs() []float64 { return slices.Clone(c.costs) }

// UnsortedID maps a sorted id back to the index the caller supplied.
func (c *Cuts) UnsortedID(id int) (int, error) {
	if id < 0 || id >= len(c.unsorted) {
		return 0, fmt.Errorf("cuts: UnsortedID(%d): %w", id, ErrOutOfRange)
	}

	return c.unsorted[id], nil
}

// Oriented returns the cut with sorted id oriented by o.
func (c *Cuts) Oriented(id int, o Orientation) (*bitset.BitSet, error) {
	cut, err := c.At(id)
	if err != nil {
		return nil, err
	}

	return o.OrientCut(cut), nil
}

// Groups buckets cut ids by unique cost in ascending order. Ids inside a
// group are ascending.
func (c *Cuts) Groups() []Group {
	groups := make([]Group, 0)
	var id int
	for id = range c.costs {
		last := len(groups) - 1
		if last >= 0 && groups[last].Cost == c.costs[id] {
			groups[last].IDs = append(groups[last].IDs, id)
			continue
		}
		groups = append(groups, Group{Cost: c.costs[id], IDs: []int{id}})
	}

	return groups
}
