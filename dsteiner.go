package dsteiner

import (
	"github.com/katalvlaran/dsteiner/core"
	"github.com/katalvlaran/dsteiner/dijkstrasteiner"
	"github.com/katalvlaran/dsteiner/futurecost"
	"github.com/katalvlaran/dsteiner/hanan"
	"github.com/katalvlaran/dsteiner/heuristic"
	"github.com/katalvlaran/dsteiner/subsetmap"
)

// ComputeOptimumCost returns the exact RSMT cost for terminals: it builds
// the Hanan grid, runs the Prim-Steiner heuristic for a global upper
// bound, and runs the Dijkstra-Steiner label-setting search with a
// Max(OneTree, BB) future-cost estimator.
func ComputeOptimumCost(terminals []core.Point) (core.Cost, error) {
	grid, err := hanan.NewHananGrid(terminals)
	if err != nil {
		return 0, err
	}

	upperBound := heuristic.UpperBound(grid)

	indexer := subsetmap.NewSubsetIndexer()
	fc := futurecost.NewMax(futurecost.NewOneTree(grid, indexer), futurecost.NewBB(grid))

	solver := dijkstrasteiner.NewSolver(grid, fc, upperBound)
	return solver.GetOptimumCost(), nil
}
