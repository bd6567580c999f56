// SPDX-License-Identifier: MIT

package tree

import (
	"log/slog"

	"github.com/katalvlaran/tangles/internal/logging"
)

// DefaultMaxClusters is the conventional frontier cap used by pipelines. The
// tree itself applies no cap unless WithMaxClusters is given.
const DefaultMaxClusters = 50

// Option configures tree growth.
type Option func(*Options)

// Options holds growth parameters.
type Options struct {
	// MaxClusters caps the active frontier; 0 disables the cap.
	MaxClusters int

	// Logger receives halt and empty-tree reports.
	Logger *slog.Logger
}

// DefaultOptions returns Options with no cluster cap and the "tree"
// component logger.
func DefaultOptions() Options {
	return Options{
		MaxClusters: 0,
		Logger:      logging.New("tree"),
	}
}

// WithMaxClusters caps the active frontier at n nodes. n <= 0 disables the cap.
func WithMaxClusters(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxClusters = n
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// SoftOption configures soft prediction propagation.
type SoftOption func(*SoftOptions)

// SoftOptions holds soft prediction parameters.
type SoftOptions struct {
	// Parallelism bounds how many split nodes of one tree level are
	// processed at once. 1 keeps the propagation sequential.
	Parallelism int
}

// DefaultSoftOptions returns sequential propagation.
func DefaultSoftOptions() SoftOptions {
	return SoftOptions{Parallelism: 1}
}

// WithParallelism bounds the per-level fan-out. Values below 1 are treated as 1.
func WithParallelism(n int) SoftOption {
	return func(o *SoftOptions) {
		if n < 1 {
			n = 1
		}
		o.Parallelism = n
	}
}
