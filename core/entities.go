// Composite entities shared across packages: Point (raw input coordinates),
// GridPoint (a Hanan-grid vertex), Label (a partial-tree state), HeapEntry
// (a prioritized label), and DistanceToTerminal (a memoized nearest-terminal
// record). These are plain value types so that equality, hashing via map
// keys, and copying all behave the way the algorithm's proofs assume.
package core

// Point is a D-dimensional input coordinate, axes in declaration order.
type Point [NumDimensions]Coord

// GridPoint names one vertex of a Hanan grid: per-axis indices into that
// axis's sorted coordinate list, plus the densely-numbered GlobalIndex
// derived from them (GlobalIndex = Σ Indices[k]·axisFactor[k]).
type GridPoint struct {
	Indices     [NumDimensions]TerminalIndex
	GlobalIndex VertexIndex
}

// Label is a pair (vertex, subset): the optimum cost of a Steiner tree on
// subset ∪ {vertex}, rooted at vertex. Only bits 0..N-2 of Subset may be
// set; the root terminal is never encoded in a subset.
type Label struct {
	Vertex GridPoint
	Subset TerminalSubset
}

// HeapEntry pairs a priority (cost-so-far + future-cost) with the label it
// was computed for. Entries compare by Priority ascending.
type HeapEntry struct {
	Priority Cost
	Label    Label
}

// DistanceToTerminal records the nearest terminal outside some subset and
// its L1 distance. The value (InvalidCost, 0) returned by
// DefaultDistanceToTerminal means "none found yet".
type DistanceToTerminal struct {
	Distance Cost
	Terminal TerminalIndex
}

// DefaultDistanceToTerminal is the "no candidate yet" sentinel value.
func DefaultDistanceToTerminal() DistanceToTerminal {
	return DistanceToTerminal{Distance: InvalidCost, Terminal: 0}
}
