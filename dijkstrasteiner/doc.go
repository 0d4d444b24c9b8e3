// Package dijkstrasteiner implements the Dijkstra-Steiner label-setting
// dynamic program: an A* search over labels (vertex, terminal subset)
// whose priority is cost-so-far plus an admissible future-cost estimate,
// pruned by a global Prim-Steiner upper bound and a per-subset Lemma-15
// bound that upper-bounds the cost of an optimal tree spanning that subset plus
// one extra vertex.
//
// A Solver is single-use: construct one with NewSolver per search and call
// GetOptimumCost exactly once.
package dijkstrasteiner
