package futurecost

import "github.com/katalvlaran/dsteiner/core"

// Null is the trivial estimator: it always returns 0, reducing
// dijkstrasteiner's A* search to plain Dijkstra.
type Null struct{}

// Cost always returns 0.
func (Null) Cost(core.Label) core.Cost { return 0 }
