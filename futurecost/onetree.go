package futurecost

import (
	"github.com/katalvlaran/dsteiner/core"
	"github.com/katalvlaran/dsteiner/hanan"
	"github.com/katalvlaran/dsteiner/subsetmap"
)

// OneTree is the Held-Karp 1-tree estimator: half the cost (rounded up) of
// an MST on the terminals not yet in the label's subset plus the root,
// augmented with the two cheapest edges from the label's own vertex into
// that set. See Lemma 8 of the Steiner-tree A* literature this solver
// follows for admissibility.
type OneTree struct {
	grid      *hanan.HananGrid
	treeCosts *subsetmap.SubsetMap[core.Cost]
}

// NewOneTree returns a OneTree estimator over grid, memoizing MST costs on
// indexer (share one indexer across estimators built for the same search).
func NewOneTree(grid *hanan.HananGrid, indexer *subsetmap.SubsetIndexer) *OneTree {
	return &OneTree{
		grid:      grid,
		treeCosts: subsetmap.NewSubsetMap[core.Cost](indexer, core.InvalidCost),
	}
}

// Cost computes the 1-tree bound for label.
func (e *OneTree) Cost(label core.Label) core.Cost {
	minEdge, secondMinEdge := core.InvalidCost, core.InvalidCost
	core.ForEachSetBit(^label.Subset, e.grid.NumTerminals(), func(i core.TerminalIndex) {
		cost := e.grid.DistanceTo(label.Vertex.GlobalIndex, i)
		if cost < secondMinEdge {
			if cost <= minEdge {
				secondMinEdge = minEdge
				minEdge = cost
			} else {
				secondMinEdge = cost
			}
		}
	})

	treeCost := e.treeCost(label.Subset)

	if secondMinEdge != core.InvalidCost {
		return (treeCost + minEdge + secondMinEdge + 1) / 2
	}
	// Exactly one terminal remains in R: the bound is just the distance
	// to it, since a single-vertex "tree" costs nothing to augment.
	return minEdge
}

// treeCost returns the memoized MST cost on R = complement(subset), where
// subset never encodes the root.
func (e *OneTree) treeCost(subset core.TerminalSubset) core.Cost {
	slot := e.treeCosts.GetOrInsert(subset)
	if *slot != core.InvalidCost {
		return *slot
	}
	*slot = e.computeTreeCost(subset)
	return *slot
}

// computeTreeCost runs a heap-based Prim over R's terminal-to-terminal L1
// distances (already precomputed in the grid's distance table).
func (e *OneTree) computeTreeCost(subset core.TerminalSubset) core.Cost {
	var members []core.TerminalIndex
	core.ForEachSetBit(^subset, e.grid.NumTerminals(), func(i core.TerminalIndex) {
		members = append(members, i)
	})
	if len(members) <= 1 {
		return 0
	}

	type entry struct {
		cost core.Cost
		term core.TerminalIndex
	}
	h := core.NewMinHeap(func(a, b entry) bool { return a.cost < b.cost })
	h.Push(entry{cost: 0, term: members[0]})
	connected := make(map[core.TerminalIndex]bool, len(members))

	var total core.Cost
	for len(connected) < len(members) {
		top := h.Pop()
		if connected[top.term] {
			continue
		}
		connected[top.term] = true
		total += top.cost
		for _, other := range members {
			if !connected[other] {
				d := e.grid.DistanceTo(e.grid.Terminal(top.term).GlobalIndex, other)
				h.Push(entry{cost: d, term: other})
			}
		}
	}

	return total
}
