package tree_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/tangles/cuts"
	"github.com/katalvlaran/tangles/tangle"
	"github.com/katalvlaran/tangles/tree"
)

// ExampleGrow runs the whole tree pipeline on two blobs of three points.
//
//	points: 0 1 2 | 3 4 5
//	cut 0:  1 1 1 | 0 0 0   (cheap: separates the blobs)
//	cut 1:  1 1 0 | 0 0 0
//	cut 2:  0 0 0 | 0 1 1
func ExampleGrow() {
	// 1) Cuts with their costs; cost order is the growth order.
	c, err := cuts.New([][]bool{
		{true, true, true, false, false, false},
		{true, true, false, false, false, false},
		{false, false, false, false, true, true},
	}, []float64{1, 2, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// 2) Grow with the agreement oracle: every three cuts share >= 2 points.
	tr, err := tree.Grow(c, tangle.NewAgreement(c.Points()), 2, tree.WithLogger(logger))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Contract, annotate, propagate.
	ct, _ := tree.Contract(tr)
	ct.CalculateCharacterizingCuts()
	_ = ct.PropagateSoftPredictions(context.Background(), c, c.Weights())

	fmt.Println("halt:", tr.Halt)
	fmt.Println("root splits on cuts:", ct.Root.CharacterizingCutsLeft)
	for _, leaf := range ct.Leaves() {
		fmt.Printf("%s %.0f\n", leaf, leaf.P)
	}

	// Output:
	// halt: exhausted
	// root splits on cuts: map[0:left 1:left 2:right]
	// 2F [1 1 1 0 0 0]
	// 2T [0 0 0 1 1 1]
}
