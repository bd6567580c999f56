package tree_test

import (
	"fmt"
	"maps"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tangles/cuts"
	"github.com/katalvlaran/tangles/internal/logging"
	"github.com/katalvlaran/tangles/tangle"
	"github.com/katalvlaran/tangles/tree"
)

// quiet discards log output in tests.
var quiet = logging.Discard()

// rule decides whether a scripted tangle accepts cut id in orientation o.
type rule func(spec map[int]cuts.Orientation, id int, o cuts.Orientation) bool

// scripted is a Tangle whose consistency is dictated by a rule, so tests can
// shape the search tree without crafting point sets.
type scripted struct {
	spec map[int]cuts.Orientation
	rule rule
}

var _ tangle.Tangle = (*scripted)(nil)

func newScripted(r rule) *scripted {
	return &scripted{spec: map[int]cuts.Orientation{}, rule: r}
}

func (s *scripted) Add(_ *bitset.BitSet, id int, o cuts.Orientation, _ int) (tangle.Tangle, bool) {
	if !s.rule(s.spec, id, o) {
		return nil, false
	}
	spec := maps.Clone(s.spec)
	spec[id] = o

	return &scripted{spec: spec, rule: s.rule}, true
}

func (s *scripted) Specification() map[int]cuts.Orientation { return s.spec }
func (s *scripted) Size() int                               { return len(s.spec) }

// mustCuts builds a cut store from 0/1 rows.
func mustCuts(t testing.TB, rows [][]int, costs []float64) *cuts.Cuts {
	t.Helper()
	values := make([][]bool, len(rows))
	for i, r := range rows {
		values[i] = make([]bool, len(r))
		for j, v := range r {
			values[i][j] = v == 1
		}
	}
	c, err := cuts.New(values, costs)
	require.NoError(t, err)

	return c
}

// branchRule grows: cut 0 left only; cut 1 splits; cut 2 splits under 1T
// and stays left under 1F; cut 3 left only.
//
//	          Root
//	           |
//	           0T
//	         /    \
//	       1T      1F
//	      /  \      |
//	    2T    2F    2T
//	    |     |     |
//	    3T    3T    3T
func branchRule(spec map[int]cuts.Orientation, id int, o cuts.Orientation) bool {
	switch id {
	case 1:
		return true
	case 2:
		return spec[1] == cuts.Left || o == cuts.Left
	default:
		return o == cuts.Left
	}
}

// branchCuts are the point sets behind branchRule over four points.
func branchCuts(t testing.TB) *cuts.Cuts {
	return mustCuts(t, [][]int{
		{1, 1, 1, 1},
		{1, 1, 0, 0},
		{1, 0, 1, 0},
		{1, 1, 1, 1},
	}, []float64{1, 2, 3, 4})
}

// growBranch grows and contracts the branchRule tree.
func growBranch(t testing.TB) (*cuts.Cuts, *tree.Tree, *tree.ContractedTree) {
	t.Helper()
	c := branchCuts(t)
	tr, err := tree.Grow(c, newScripted(branchRule), 1, tree.WithLogger(quiet))
	require.NoError(t, err)
	ct, err := tree.Contract(tr)
	require.NoError(t, err)

	return c, tr, ct
}

// shape renders a contracted subtree as label(left,right).
func shape(n *tree.ContractedNode) string {
	if n == nil {
		return "-"
	}
	if n.IsLeaf() {
		return n.String()
	}

	return fmt.Sprintf("%s(%s,%s)", n.String(), shape(n.Left), shape(n.Right))
}

// cnode builds a hand-made contracted node; Recontract wires parents.
func cnode(id int, o cuts.Orientation, kids ...*tree.ContractedNode) *tree.ContractedNode {
	n := &tree.ContractedNode{Label: tree.Label{LastCutID: id, Orientation: o}}
	if len(kids) == 2 {
		n.Left, n.Right = kids[0], kids[1]
	}

	return n
}

// handTree wires parents, sides and registries of a hand-made tree.
func handTree(root *tree.ContractedNode) *tree.ContractedTree {
	return (&tree.ContractedTree{Root: root}).Recontract()
}

// assertLeafInvariant checks Active ∪ Maximals == leaves and Active ∩ Maximals == ∅.
func assertLeafInvariant(t *testing.T, tr *tree.Tree) {
	t.Helper()
	seen := make(map[*tree.Node]bool)
	for _, n := range tr.Active {
		seen[n] = true
	}
	for _, n := range tr.Maximals {
		require.False(t, seen[n], "node %s is both active and maximal", n)
		seen[n] = true
	}
	leaves := tr.Leaves()
	require.Len(t, seen, len(leaves))
	for _, l := range leaves {
		require.True(t, seen[l], "leaf %s is neither active nor maximal", l)
	}
}

// assertSplitCompleteness walks the whole tree.
func assertSplitCompleteness(t *testing.T, n *tree.Node) {
	t.Helper()
	if n == nil {
		return
	}
	if n.DidSplit {
		require.Equal(t, 2, n.Children(), "split node %s", n)
	} else {
		require.LessOrEqual(t, n.Children(), 1, "non-split node %s", n)
	}
	assertSplitCompleteness(t, n.Left)
	assertSplitCompleteness(t, n.Right)
}
