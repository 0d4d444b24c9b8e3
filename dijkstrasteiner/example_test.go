package dijkstrasteiner_test

import (
	"fmt"

	"github.com/katalvlaran/dsteiner/core"
	"github.com/katalvlaran/dsteiner/dijkstrasteiner"
	"github.com/katalvlaran/dsteiner/futurecost"
	"github.com/katalvlaran/dsteiner/hanan"
	"github.com/katalvlaran/dsteiner/heuristic"
)

// ExampleNewSolver wires a Hanan grid, the Prim-Steiner upper bound, and
// the null future-cost estimator (degrading the search to plain Dijkstra)
// to find the exact RSMT cost for two terminals.
func ExampleNewSolver() {
	g, err := hanan.NewHananGrid([]core.Point{
		{0, 0, 0},
		{3, 4, 5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	upperBound := heuristic.UpperBound(g)
	solver := dijkstrasteiner.NewSolver(g, futurecost.Null{}, upperBound)
	fmt.Println(solver.GetOptimumCost())
	// Output: 12
}
