// SPDX-License-Identifier: MIT

// Package clustering runs the tangle pipeline end to end: grow the search
// tree over a cut store, contract it, prune noise, derive characterizing
// cuts and propagate soft memberships. The result is a Membership matrix
// with one row per cluster (maximal tangle) and one column per point.
//
// Parameters come from Config, loadable from YAML and validated on load.
// Metrics are optional and registered on a caller-supplied Prometheus
// registerer.
//
// Picking one cluster per point from the membership is left to the caller.
package clustering
