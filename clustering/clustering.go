// SPDX-License-Identifier: MIT

package clustering

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/tangles/cuts"
	"github.com/katalvlaran/tangles/internal/logging"
	"github.com/katalvlaran/tangles/tangle"
	"github.com/katalvlaran/tangles/tree"
)

// ErrNilCuts indicates that Run was given no cut store.
var ErrNilCuts = errors.New("clustering: cuts are nil")

// Option configures Run.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics *Metrics
	weights []float64
	root    func(points int) tangle.Tangle
}

// WithLogger sets the logger for the pipeline and the tree.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records the run on m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithWeights replaces the default cut weights (Cuts.Weights) used for
// soft prediction. Weights are indexed by sorted cut id.
func WithWeights(w []float64) Option {
	return func(o *options) { o.weights = w }
}

// WithRootTangle replaces the agreement oracle with another Tangle
// implementation; newRoot receives the number of points.
func WithRootTangle(newRoot func(points int) tangle.Tangle) Option {
	return func(o *options) {
		if newRoot != nil {
			o.root = newRoot
		}
	}
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Tree is the grown search tree, before contraction.
	Tree *tree.Tree
	// Contracted is the pruned, annotated tree whose leaves are the clusters.
	Contracted *tree.ContractedTree
	// Clusters are the leaves of Contracted, in Membership row order.
	Clusters []*tree.ContractedNode
	// Membership holds one row per cluster; zero rows when Empty.
	Membership *Membership
	// Empty reports that no cluster was found.
	Empty bool
}

// Run executes grow → contract → prune → characterizing cuts → soft
// predictions on c with cfg. Early growth stops and empty results are
// reported through the logger and Result, not as errors.
//
// Errors: ErrNilCuts, ErrInvalidConfig, tree.ErrWeightsLength, ctx.Err().
func Run(ctx context.Context, c *cuts.Cuts, cfg Config, opts ...Option) (*Result, error) {
	// 1. Validate input
	if c == nil {
		return nil, ErrNilCuts
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{
		logger: logging.New("clustering"),
		root:   func(points int) tangle.Tangle { return tangle.NewAgreement(points) },
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.weights == nil {
		o.weights = c.Weights()
	}

	// 2. Grow
	o.logger.Debug("tangle computation", "agreement", cfg.Agreement, "cuts", c.Len(), "points", c.Points())
	t, err := tree.Grow(c, o.root(c.Points()), cfg.Agreement,
		tree.WithMaxClusters(cfg.MaxClusters), tree.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("clustering: grow: %w", err)
	}
	o.metrics.observeGrowth(t)
	o.logger.Info("leaves before cutting out short paths", "maximals", len(t.Maximals))

	// 3. Contract and prune
	ct, err := tree.Contract(t)
	if err != nil {
		return nil, fmt.Errorf("clustering: contract: %w", err)
	}
	ct.Prune(cfg.PruneDepth)

	res := &Result{Tree: t, Contracted: ct}
	if ct.IsEmpty || ct.Root.IsLeaf() {
		res.Empty = true
		res.Membership = newMembership(nil, c.Points())
		o.metrics.observeClusters(0)
		o.logger.Warn("no clusters found")
		return res, nil
	}

	// 4. Characterizing cuts and soft predictions
	ct.CalculateCharacterizingCuts()
	start := time.Now()
	if err = ct.PropagateSoftPredictions(ctx, c, o.weights, tree.WithParallelism(cfg.Parallelism)); err != nil {
		return nil, fmt.Errorf("clustering: soft predictions: %w", err)
	}
	o.metrics.observeSoft(time.Since(start))

	// 5. Collect leaf rows
	res.Clusters = ct.Leaves()
	rows := make([][]float64, len(res.Clusters))
	for i, leaf := range res.Clusters {
		rows[i] = leaf.P
	}
	res.Membership = newMembership(rows, c.Points())
	o.metrics.observeClusters(len(res.Clusters))

	return res, nil
}
