package core_test

import (
	"fmt"

	"github.com/katalvlaran/dsteiner/core"
)

// ExampleForEachSetBit iterates the members of a terminal subset in
// ascending order.
func ExampleForEachSetBit() {
	var s core.TerminalSubset
	s = s.With(0).With(2).With(3)

	core.ForEachSetBit(s, 4, func(i core.TerminalIndex) {
		fmt.Println(i)
	})
	// Output:
	// 0
	// 2
	// 3
}

// ExampleMinHeap demonstrates the generic min-heap used by the heuristic
// and dijkstrasteiner packages, ordered here by a plain int priority.
func ExampleMinHeap() {
	h := core.NewMinHeap(func(a, b int) bool { return a < b })
	h.Push(5)
	h.Push(1)
	h.Push(3)

	for h.Len() > 0 {
		fmt.Println(h.Pop())
	}
	// Output:
	// 1
	// 3
	// 5
}
