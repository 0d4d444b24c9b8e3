package subsetmap_test

import (
	"fmt"

	"github.com/katalvlaran/dsteiner/core"
	"github.com/katalvlaran/dsteiner/subsetmap"
)

// ExampleSubsetIndexer_IndexOrInsert shows that positions are assigned in
// first-seen order and are stable across repeated queries.
func ExampleSubsetIndexer_IndexOrInsert() {
	idx := subsetmap.NewSubsetIndexer()

	var a, b core.TerminalSubset
	a = a.With(0).With(1)
	b = b.With(5)

	fmt.Println(idx.IndexOrInsert(a))
	fmt.Println(idx.IndexOrInsert(b))
	fmt.Println(idx.IndexOrInsert(a))
	// Output:
	// 0
	// 1
	// 0
}
