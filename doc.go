// Package tangles is an explainable clustering library built on tangles:
// consistent orientations of a family of bipartitions ("cuts") of a dataset.
//
// 🚀 What is tangles?
//
//	Given cuts sorted by cost, the library:
//		• Grows a binary tangle search tree, one cost group at a time
//		• Contracts it to its splits and maximal tangles
//		• Prunes short noisy branches
//		• Finds the characterizing cuts that explain every split
//		• Propagates soft cluster memberships down to the leaves
//
// Under the hood, everything is organized under four subpackages:
//
//	cuts/       : bitset-backed cut store, orientations, cost groups, weights
//	tangle/     : Tangle interface + agreement oracle
//	tree/       : growth, contraction, pruning, characterizing cuts, soft predictions
//	clustering/ : end-to-end Run, YAML Config, Membership matrix, Prometheus metrics
//
// Quick ASCII example (two blobs, one cheap separating cut):
//
//	          Root
//	         /    \
//	       0T      0F
//	   {0,1,2}    {3,4,5}
//
// Computing cut costs, loading data and picking hard labels are left to the
// caller.
//
//	go get github.com/katalvlaran/tangles
package tangles
