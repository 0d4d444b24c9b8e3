package hanan

import (
	"sort"

	"github.com/katalvlaran/dsteiner/core"
)

// NewHananGrid builds the Hanan grid for the given terminals: the root
// terminal is, by convention, the last point in the slice. Each axis's
// distinct coordinates are sorted and deduplicated independently, so the
// grid dimensions need not agree across axes.
func NewHananGrid(points []core.Point) (*HananGrid, error) {
	if len(points) == 0 {
		return nil, ErrNoTerminals
	}
	if len(points) > core.MaxTerminals {
		return nil, ErrTooManyTerminals
	}

	var axisGrids [core.NumDimensions]AxisGrid
	for axis := 0; axis < core.NumDimensions; axis++ {
		axisGrids[axis] = buildAxisGrid(points, axis)
	}

	// axisFactor[k] is the mixed-radix multiplier for axis k: the product
	// of the sizes of all axes before it, so GlobalIndex = Σ idx[k]*factor[k]
	// enumerates every vertex exactly once.
	factor := core.VertexIndex(1)
	for axis := 0; axis < core.NumDimensions; axis++ {
		axisGrids[axis].axisFactor = factor
		factor *= core.VertexIndex(axisGrids[axis].Size())
	}
	numVertices := factor

	terminals := make([]core.GridPoint, len(points))
	for i, p := range points {
		terminals[i] = gridPointFor(axisGrids, p)
	}

	g := &HananGrid{
		axisGrids:   axisGrids,
		terminals:   terminals,
		numVertices: numVertices,
	}
	g.distances = buildDistanceTable(g)

	return g, nil
}

// buildAxisGrid collects the distinct coordinate values on one axis across
// all terminals, sorts them ascending, and records consecutive differences.
func buildAxisGrid(points []core.Point, axis int) AxisGrid {
	seen := make(map[core.Coord]struct{}, len(points))
	positions := make([]core.Coord, 0, len(points))
	for _, p := range points {
		c := p[axis]
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		positions = append(positions, c)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i] < positions[j] })

	diffs := make([]core.Cost, 0, len(positions)-1)
	for i := 1; i < len(positions); i++ {
		diffs = append(diffs, core.Cost(positions[i]-positions[i-1]))
	}

	return AxisGrid{Positions: positions, Differences: diffs}
}

// indexForCoord returns the index of c within the axis's sorted positions.
// c is guaranteed present, since every terminal contributed its own
// coordinate to the axis during construction; a miss is an invariant
// violation and panics.
func (a *AxisGrid) indexForCoord(c core.Coord) core.TerminalIndex {
	lo, hi := 0, len(a.Positions)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if a.Positions[mid] < c {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if a.Positions[lo] != c {
		panic("hanan: coordinate missing from its axis grid")
	}
	return core.TerminalIndex(lo)
}

// gridPointFor locates p's vertex within the grid defined by axisGrids.
func gridPointFor(axisGrids [core.NumDimensions]AxisGrid, p core.Point) core.GridPoint {
	var gp core.GridPoint
	var global core.VertexIndex
	for axis := 0; axis < core.NumDimensions; axis++ {
		idx := axisGrids[axis].indexForCoord(p[axis])
		gp.Indices[axis] = idx
		global += core.VertexIndex(idx) * axisGrids[axis].axisFactor
	}
	gp.GlobalIndex = global

	return gp
}

// vertexAt reconstructs the GridPoint for a densely-numbered global index,
// decoding each axis's digit via the mixed-radix factors.
func vertexAt(axisGrids [core.NumDimensions]AxisGrid, global core.VertexIndex) core.GridPoint {
	gp := core.GridPoint{GlobalIndex: global}
	for axis := 0; axis < core.NumDimensions; axis++ {
		size := core.VertexIndex(axisGrids[axis].Size())
		gp.Indices[axis] = core.TerminalIndex(global % size)
		global /= size
	}

	return gp
}

// ForEachNeighbor visits every grid vertex adjacent to p along a Hanan
// grid line, passing the neighbor and the L1 cost of the edge to it. Each
// axis contributes at most one predecessor and one successor neighbor.
func (g *HananGrid) ForEachNeighbor(p core.GridPoint, visit func(neighbor core.GridPoint, edgeCost core.Cost)) {
	for axis := 0; axis < core.NumDimensions; axis++ {
		ag := &g.axisGrids[axis]
		idx := p.Indices[axis]

		if idx > 0 {
			neighbor := p
			neighbor.Indices[axis] = idx - 1
			cost := ag.Differences[idx-1]
			neighbor.GlobalIndex = p.GlobalIndex - ag.axisFactor
			visit(neighbor, cost)
		}
		if int(idx) < ag.Size()-1 {
			neighbor := p
			neighbor.Indices[axis] = idx + 1
			cost := ag.Differences[idx]
			neighbor.GlobalIndex = p.GlobalIndex + ag.axisFactor
			visit(neighbor, cost)
		}
	}
}

// buildDistanceTable precomputes the L1 distance from every grid vertex to
// every terminal, so dijkstrasteiner and the futurecost estimators can
// look distances up instead of recomputing them on the search's hot path.
func buildDistanceTable(g *HananGrid) []core.Cost {
	n := int(g.numVertices)
	t := len(g.terminals)
	table := make([]core.Cost, n*t)

	for v := 0; v < n; v++ {
		vp := vertexAt(g.axisGrids, core.VertexIndex(v))
		for i, term := range g.terminals {
			var dist core.Cost
			for axis := 0; axis < core.NumDimensions; axis++ {
				a := g.axisGrids[axis].Positions[vp.Indices[axis]]
				b := g.axisGrids[axis].Positions[term.Indices[axis]]
				if a >= b {
					dist += core.Cost(a - b)
				} else {
					dist += core.Cost(b - a)
				}
			}
			table[v*t+i] = dist
		}
	}

	return table
}

// DistanceTo returns the precomputed L1 distance from vertex v to terminal i.
func (g *HananGrid) DistanceTo(v core.VertexIndex, i core.TerminalIndex) core.Cost {
	return g.distances[int(v)*len(g.terminals)+int(i)]
}

// VertexAt reconstructs the GridPoint for a densely-numbered global index.
func (g *HananGrid) VertexAt(global core.VertexIndex) core.GridPoint {
	return vertexAt(g.axisGrids, global)
}

// AxisPosition returns the raw coordinate value at index idx on the given
// axis, i.e. the inverse of an AxisGrid's indexForCoord.
func (g *HananGrid) AxisPosition(axis int, idx core.TerminalIndex) core.Coord {
	return g.axisGrids[axis].Positions[idx]
}
