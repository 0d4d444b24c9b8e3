// Package dsteiner computes the exact cost of a rectilinear Steiner
// minimum tree (RSMT) over a small set of integer points in 3-D space.
//
// Under the hood:
//
//	hanan/          — builds the Hanan grid containing an optimal RSMT
//	heuristic/       — a fast Prim-Steiner upper bound
//	futurecost/      — admissible A* lower-bound estimators (BB, OneTree, Max, Null)
//	subsetmap/       — dense maps keyed by terminal subset or (vertex, subset) label
//	dijkstrasteiner/ — the exact label-setting search itself
//
// ComputeOptimumCost wires these together; most callers need nothing else.
package dsteiner
