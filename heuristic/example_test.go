package heuristic_test

import (
	"fmt"

	"github.com/katalvlaran/dsteiner/core"
	"github.com/katalvlaran/dsteiner/hanan"
	"github.com/katalvlaran/dsteiner/heuristic"
)

// ExampleUpperBound computes the Prim-Steiner heuristic's upper bound for
// two terminals, for which the heuristic is exact: their direct L1
// distance.
func ExampleUpperBound() {
	g, err := hanan.NewHananGrid([]core.Point{
		{0, 0, 0},
		{3, 4, 5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(heuristic.UpperBound(g))
	// Output: 12
}
