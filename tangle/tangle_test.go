package tangle_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tangles/cuts"
	"github.com/katalvlaran/tangles/tangle"
)

// set builds a bitset of length n with the given members.
func set(n uint, members ...uint) *bitset.BitSet {
	b := bitset.New(n)
	for _, m := range members {
		b.Set(m)
	}

	return b
}

func TestAgreement_Empty(t *testing.T) {
	a := tangle.NewAgreement(5)
	assert.Equal(t, 0, a.Size())
	assert.Equal(t, 5, a.Points())
	assert.Equal(t, 5, a.Support())
	assert.Empty(t, a.Specification())
}

func TestAgreement_RejectsSmallSide(t *testing.T) {
	a := tangle.NewAgreement(6)
	cut := set(6, 0, 1, 2, 3)

	left, ok := a.Add(cut, 0, cuts.Left, 3)
	require.True(t, ok)
	assert.Equal(t, map[int]cuts.Orientation{0: cuts.Left}, left.Specification())

	_, ok = a.Add(cut, 0, cuts.Right, 3)
	assert.False(t, ok, "complement has 2 points < 3")
}

func TestAgreement_Immutable(t *testing.T) {
	a := tangle.NewAgreement(4)
	next, ok := a.Add(set(4, 0, 1), 0, cuts.Left, 1)
	require.True(t, ok)

	assert.Equal(t, 0, a.Size())
	assert.Equal(t, 1, next.Size())
}

func TestAgreement_PairIntersection(t *testing.T) {
	a := tangle.NewAgreement(6)
	t0, ok := a.Add(set(6, 0, 1, 2, 3), 0, cuts.Left, 3)
	require.True(t, ok)

	// {0,1,4,5} ∩ {0,1,2,3} = {0,1}: too small for agreement 3.
	_, ok = t0.Add(set(6, 0, 1, 4, 5), 1, cuts.Left, 3)
	assert.False(t, ok)
	// Complement {2,3} is itself too small.
	_, ok = t0.Add(set(6, 0, 1, 4, 5), 1, cuts.Right, 3)
	assert.False(t, ok)
}

func TestAgreement_RedundantCutKeepsCore(t *testing.T) {
	a := tangle.NewAgreement(4)
	t0, ok := a.Add(set(4, 0), 0, cuts.Left, 1)
	require.True(t, ok)
	t1, ok := t0.Add(set(4, 0, 1), 1, cuts.Left, 1)
	require.True(t, ok)

	ag := t1.(*tangle.Agreement)
	assert.Equal(t, 1, ag.CoreSize())
	assert.Equal(t, []int{0, 1}, ag.IDs())
	assert.Equal(t, 1, ag.Support())
}

func TestAgreement_SupersetCoreDropped(t *testing.T) {
	a := tangle.NewAgreement(5)
	t0, ok := a.Add(set(5, 0, 1, 2), 0, cuts.Left, 1)
	require.True(t, ok)
	t1, ok := t0.Add(set(5, 0, 1), 1, cuts.Left, 1)
	require.True(t, ok)

	ag := t1.(*tangle.Agreement)
	assert.Equal(t, 1, ag.CoreSize(), "{0,1,2} contains {0,1} and leaves the core")
	assert.Equal(t, 2, ag.Support())
}

func TestAgreement_TripleCheck(t *testing.T) {
	// Three pairwise-overlapping sets with empty triple intersection.
	a := tangle.NewAgreement(3)
	t0, ok := a.Add(set(3, 0, 1), 0, cuts.Left, 1)
	require.True(t, ok)
	t1, ok := t0.Add(set(3, 1, 2), 1, cuts.Left, 1)
	require.True(t, ok)
	_, ok = t1.Add(set(3, 0, 2), 2, cuts.Left, 1)
	assert.False(t, ok)
}
