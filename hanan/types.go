package hanan

import "github.com/katalvlaran/dsteiner/core"

// AxisGrid holds the distinct coordinate values occurring among the
// terminals on one axis, sorted strictly ascending, along with the
// consecutive differences between them and the multiplier used to flatten
// a D-dimensional index tuple into a single VertexIndex.
//
// Invariants: Positions is sorted strictly ascending; len(Differences) ==
// len(Positions)-1 and Differences[i] == Positions[i+1]-Positions[i] > 0.
type AxisGrid struct {
	Positions   []core.Coord
	Differences []core.Cost
	axisFactor  core.VertexIndex
}

// Size returns the number of distinct coordinates on this axis.
func (a *AxisGrid) Size() int { return len(a.Positions) }

// HananGrid is the axis-aligned grid formed by every terminal's coordinate
// lines: core.NumDimensions AxisGrids, the terminals expressed as
// GridPoints (root terminal last, by convention), and a precomputed table
// of L1 distances from every grid vertex to every terminal.
//
// Invariants: the first len(Terminals)-1 entries are "sinks"; the last is
// the "root"; NumVertices equals the product of the per-axis sizes.
type HananGrid struct {
	axisGrids [core.NumDimensions]AxisGrid
	terminals []core.GridPoint
	numVertices core.VertexIndex

	// distances[v*NumTerminals+i] is the L1 distance from vertex v to
	// terminal i, precomputed once at construction so repeated reads are
	// cache-stable.
	distances []core.Cost
}

// NumTerminals returns the number of terminals (sinks plus the root).
func (g *HananGrid) NumTerminals() int { return len(g.terminals) }

// NumNonRootTerminals returns the number of "sink" terminals, excluding
// the root (the last terminal in input order).
func (g *HananGrid) NumNonRootTerminals() int { return len(g.terminals) - 1 }

// NumVertices returns the total number of vertices in the grid.
func (g *HananGrid) NumVertices() core.VertexIndex { return g.numVertices }

// Terminal returns the GridPoint for terminal index i. The terminal at
// NumTerminals()-1 is always the root.
func (g *HananGrid) Terminal(i core.TerminalIndex) core.GridPoint {
	return g.terminals[i]
}

// RootTerminal returns the grid point of the distinguished root terminal.
func (g *HananGrid) RootTerminal() core.GridPoint {
	return g.terminals[len(g.terminals)-1]
}
