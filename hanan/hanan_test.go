package hanan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsteiner/core"
	"github.com/katalvlaran/dsteiner/hanan"
)

func samplePoints() []core.Point {
	return []core.Point{
		{0, 0, 0},
		{4, 2, 0},
		{2, 5, 1},
	}
}

func TestNewHananGrid_RejectsEmpty(t *testing.T) {
	_, err := hanan.NewHananGrid(nil)
	require.ErrorIs(t, err, hanan.ErrNoTerminals)
}

func TestNewHananGrid_RejectsTooMany(t *testing.T) {
	pts := make([]core.Point, core.MaxTerminals+1)
	_, err := hanan.NewHananGrid(pts)
	require.ErrorIs(t, err, hanan.ErrTooManyTerminals)
}

func TestNewHananGrid_TerminalsRoundTripCoordinates(t *testing.T) {
	pts := samplePoints()
	g, err := hanan.NewHananGrid(pts)
	require.NoError(t, err)

	for i := range pts {
		gp := g.Terminal(core.TerminalIndex(i))
		got := g.VertexAt(gp.GlobalIndex)
		require.Equal(t, gp.Indices, got.Indices, "terminal %d round trip", i)
	}
}

func TestNewHananGrid_GlobalIndexIsDense(t *testing.T) {
	g, err := hanan.NewHananGrid(samplePoints())
	require.NoError(t, err)

	seen := make(map[core.VertexIndex]bool)
	for v := core.VertexIndex(0); v < g.NumVertices(); v++ {
		gp := g.VertexAt(v)
		require.Equal(t, v, gp.GlobalIndex)
		seen[v] = true
	}
	require.Len(t, seen, int(g.NumVertices()))
}

func TestHananGrid_DistanceTableMatchesL1(t *testing.T) {
	pts := samplePoints()
	g, err := hanan.NewHananGrid(pts)
	require.NoError(t, err)

	for v := core.VertexIndex(0); v < g.NumVertices(); v++ {
		vp := g.VertexAt(v)
		for i, term := range pts {
			var want core.Cost
			for axis := 0; axis < core.NumDimensions; axis++ {
				vc := g.AxisPosition(axis, vp.Indices[axis])
				tc := term[axis]
				if vc >= tc {
					want += core.Cost(vc - tc)
				} else {
					want += core.Cost(tc - vc)
				}
			}
			require.Equal(t, want, g.DistanceTo(v, core.TerminalIndex(i)))
		}
	}
}

func TestHananGrid_ForEachNeighbor_SymmetricCost(t *testing.T) {
	g, err := hanan.NewHananGrid(samplePoints())
	require.NoError(t, err)

	root := g.Terminal(2)
	visited := map[core.VertexIndex]core.Cost{}
	g.ForEachNeighbor(root, func(n core.GridPoint, cost core.Cost) {
		visited[n.GlobalIndex] = cost
		require.Greater(t, int64(cost), int64(0))
	})
	for n, costOut := range visited {
		back := g.VertexAt(n)
		found := false
		g.ForEachNeighbor(back, func(m core.GridPoint, costIn core.Cost) {
			if m.GlobalIndex == root.GlobalIndex {
				found = true
				require.Equal(t, costOut, costIn, "asymmetric edge cost at vertex %d", n)
			}
		})
		require.True(t, found, "neighbor relation not symmetric for vertex %d", n)
	}
}
