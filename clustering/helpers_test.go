// SPDX-License-Identifier: MIT

package clustering_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tangles/cuts"
	"github.com/katalvlaran/tangles/internal/logging"
)

var quiet = logging.Discard()

// twoBlobs separates points {0,1,2} from {3,4,5} with its cheapest cut; the
// other two cuts hold every point and only lengthen each branch.
func twoBlobs(t testing.TB) *cuts.Cuts {
	t.Helper()
	c, err := cuts.New([][]bool{
		{true, true, true, false, false, false},
		{true, true, true, true, true, true},
		{true, true, true, true, true, true},
	}, []float64{1, 2, 3})
	require.NoError(t, err)

	return c
}

// oneBlob never splits.
func oneBlob(t testing.TB) *cuts.Cuts {
	t.Helper()
	c, err := cuts.New([][]bool{{true, true, true, true}}, []float64{1})
	require.NoError(t, err)

	return c
}
