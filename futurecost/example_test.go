package futurecost_test

import (
	"fmt"

	"github.com/katalvlaran/dsteiner/core"
	"github.com/katalvlaran/dsteiner/futurecost"
	"github.com/katalvlaran/dsteiner/hanan"
)

// ExampleBB computes the bounding-box lower bound for a label that has
// only connected its first terminal: the box must still reach the
// remaining terminal and the root.
func ExampleBB() {
	g, err := hanan.NewHananGrid([]core.Point{
		{0, 0, 0},
		{10, 0, 0},
		{0, 10, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	bb := futurecost.NewBB(g)
	label := core.Label{Vertex: g.Terminal(0), Subset: core.Bit(0)}
	fmt.Println(bb.Cost(label))
	// Output: 20
}

// ExampleNull shows that the null estimator never tightens the search: it
// always reports zero, regardless of label.
func ExampleNull() {
	var fc futurecost.Null
	label := core.Label{}
	fmt.Println(fc.Cost(label))
	// Output: 0
}
