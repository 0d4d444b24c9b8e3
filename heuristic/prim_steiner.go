package heuristic

import (
	"github.com/katalvlaran/dsteiner/core"
	"github.com/katalvlaran/dsteiner/hanan"
)

// UpperBound runs the grid-based Prim-Steiner heuristic over grid: the
// first terminal (in input order) starts the tree; each remaining
// terminal is connected by a Dijkstra search from that terminal to the
// nearest vertex already in the tree, after which every vertex on the
// connecting path joins the tree. The returned cost is the total length
// of the resulting tree, an admissible upper bound on the optimal RSMT.
func UpperBound(grid *hanan.HananGrid) core.Cost {
	n := int(grid.NumVertices())
	inTree := make([]bool, n)

	first := grid.Terminal(0)
	inTree[first.GlobalIndex] = true

	var total core.Cost
	for i := 1; i < grid.NumTerminals(); i++ {
		source := grid.Terminal(core.TerminalIndex(i))
		if inTree[source.GlobalIndex] {
			continue
		}
		cost, path := shortestPathToTree(grid, source, inTree)
		total += cost
		for _, v := range path {
			inTree[v] = true
		}
	}

	return total
}

// shortestPathToTree runs Dijkstra from source until it settles a vertex
// already marked in-tree, returning the distance to that vertex and every
// vertex on the path from source to it (source included, the in-tree
// vertex excluded).
func shortestPathToTree(grid *hanan.HananGrid, source core.GridPoint, inTree []bool) (core.Cost, []core.VertexIndex) {
	n := int(grid.NumVertices())
	dist := make([]core.Cost, n)
	prev := make([]core.VertexIndex, n)
	settled := make([]bool, n)
	for i := range dist {
		dist[i] = core.InvalidCost
		prev[i] = -1
	}
	dist[source.GlobalIndex] = 0

	h := core.NewMinHeap(func(a, b core.HeapEntry) bool { return a.Priority < b.Priority })
	h.Push(core.HeapEntry{Priority: 0, Label: core.Label{Vertex: source}})

	for h.Len() > 0 {
		entry := h.Pop()
		v := entry.Label.Vertex
		if settled[v.GlobalIndex] {
			continue
		}
		if entry.Priority > dist[v.GlobalIndex] {
			continue
		}
		settled[v.GlobalIndex] = true

		if inTree[v.GlobalIndex] {
			return dist[v.GlobalIndex], pathTo(prev, source.GlobalIndex, v.GlobalIndex)
		}

		grid.ForEachNeighbor(v, func(neighbor core.GridPoint, edgeCost core.Cost) {
			nd := dist[v.GlobalIndex] + edgeCost
			if nd < dist[neighbor.GlobalIndex] {
				dist[neighbor.GlobalIndex] = nd
				prev[neighbor.GlobalIndex] = v.GlobalIndex
				h.Push(core.HeapEntry{Priority: nd, Label: core.Label{Vertex: neighbor}})
			}
		})
	}

	// Unreachable: the Hanan grid is connected, so some in-tree vertex is
	// always eventually settled.
	return 0, nil
}

// pathTo walks prev back from dst to src, returning every vertex visited
// excluding dst (the already in-tree endpoint) but including src.
func pathTo(prev []core.VertexIndex, src, dst core.VertexIndex) []core.VertexIndex {
	var path []core.VertexIndex
	for v := prev[dst]; ; v = prev[v] {
		path = append(path, v)
		if v == src {
			break
		}
	}
	return path
}
