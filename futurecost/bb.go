package futurecost

import (
	"github.com/katalvlaran/dsteiner/core"
	"github.com/katalvlaran/dsteiner/hanan"
)

// BB is the bounding-box estimator: the half-perimeter of the axis-aligned
// bounding box spanned by the label's own vertex, every terminal not yet
// in the label's subset, and the root terminal.
type BB struct {
	grid *hanan.HananGrid
}

// NewBB returns a BB estimator over grid.
func NewBB(grid *hanan.HananGrid) *BB {
	return &BB{grid: grid}
}

// Cost computes the bounding-box half-perimeter for label.
func (e *BB) Cost(label core.Label) core.Cost {
	lo := label.Vertex.Indices
	hi := label.Vertex.Indices

	expand := func(p core.GridPoint) {
		for axis := 0; axis < core.NumDimensions; axis++ {
			if p.Indices[axis] < lo[axis] {
				lo[axis] = p.Indices[axis]
			}
			if p.Indices[axis] > hi[axis] {
				hi[axis] = p.Indices[axis]
			}
		}
	}

	// The complement of label.Subset, masked to every terminal (root
	// included), always has the root's bit set since a label's subset
	// never encodes the root — so this single pass covers exactly R.
	core.ForEachSetBit(^label.Subset, e.grid.NumTerminals(), func(i core.TerminalIndex) {
		expand(e.grid.Terminal(i))
	})

	var cost core.Cost
	for axis := 0; axis < core.NumDimensions; axis++ {
		min := e.grid.AxisPosition(axis, lo[axis])
		max := e.grid.AxisPosition(axis, hi[axis])
		cost += core.Cost(max - min)
	}

	return cost
}
