package dijkstrasteiner

import (
	"github.com/katalvlaran/dsteiner/core"
	"github.com/katalvlaran/dsteiner/futurecost"
	"github.com/katalvlaran/dsteiner/hanan"
	"github.com/katalvlaran/dsteiner/subsetmap"
)

// fixedEntry records one settled (subset, cost) pair at a vertex, appended
// to fixedByVertex the moment that label is fixed.
type fixedEntry struct {
	subset core.TerminalSubset
	cost   core.Cost
}

// Solver owns all state of one Dijkstra-Steiner search: the priority
// queue, the per-label cost/fixed tables, the per-subset Lemma-15 bound
// and witness, and the memoized cheapest-edge-to-complement table.
type Solver struct {
	grid        *hanan.HananGrid
	futureCost  futurecost.FutureCost
	globalUpper core.Cost
	opts        Options

	heap *core.MinHeap[core.HeapEntry]

	bestCost *subsetmap.LabelMap[core.Cost]
	fixed    *subsetmap.LabelMap[bool]

	fixedByVertex [][]fixedEntry

	lemma15Bound       *subsetmap.SubsetMap[core.Cost]
	lemma15Witness     *subsetmap.SubsetMap[core.TerminalSubset]
	cheapestComplement *subsetmap.SubsetMap[core.DistanceToTerminal]

	stopLabel core.Label
}

// NewSolver builds a Solver over grid, using fc as its future-cost
// estimator and upperBound (typically heuristic.UpperBound's result) as
// the global pruning bound. It seeds the search with every non-root
// terminal as its own singleton-subset label, per §4.5's initialization.
func NewSolver(grid *hanan.HananGrid, fc futurecost.FutureCost, upperBound core.Cost, opts ...Option) *Solver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	indexer := subsetmap.NewSubsetIndexer()
	numVertices := int(grid.NumVertices())

	s := &Solver{
		grid:        grid,
		futureCost:  fc,
		globalUpper: upperBound,
		opts:        o,
		heap:        core.NewMinHeap(func(a, b core.HeapEntry) bool { return a.Priority < b.Priority }),

		bestCost:      subsetmap.NewLabelMap[core.Cost](indexer, numVertices, core.InvalidCost),
		fixed:         subsetmap.NewLabelMap[bool](indexer, numVertices, false),
		fixedByVertex: make([][]fixedEntry, numVertices),

		lemma15Bound:       subsetmap.NewSubsetMap[core.Cost](indexer, core.UnknownLemma15Bound),
		lemma15Witness:     subsetmap.NewSubsetMap[core.TerminalSubset](indexer, 0),
		cheapestComplement: subsetmap.NewSubsetMap[core.DistanceToTerminal](indexer, core.DefaultDistanceToTerminal()),
	}

	var fullSubset core.TerminalSubset
	for i := 0; i < grid.NumNonRootTerminals(); i++ {
		fullSubset = fullSubset.With(core.TerminalIndex(i))
	}
	s.stopLabel = core.Label{Vertex: grid.RootTerminal(), Subset: fullSubset}

	if grid.NumNonRootTerminals() == 0 {
		// A single terminal: the stop label is trivially reached at cost
		// 0, with no sinks to connect.
		s.heap.Push(core.HeapEntry{Priority: 0, Label: s.stopLabel})
		return s
	}

	for i := 0; i < grid.NumNonRootTerminals(); i++ {
		terminal := grid.Terminal(core.TerminalIndex(i))
		s.handleCandidate(core.Label{Vertex: terminal, Subset: core.Bit(core.TerminalIndex(i))}, 0)
	}

	return s
}

// GetOptimumCost runs the label-setting search to completion and returns
// the exact RSMT cost. It panics if the search heap empties before
// reaching the stop label, which would indicate a disconnected grid or a
// bug elsewhere in the solver — the Hanan grid is connected by
// construction, so this never happens for valid input.
func (s *Solver) GetOptimumCost() core.Cost {
	for s.heap.Len() > 0 {
		entry := s.heap.Pop()
		label := entry.Label

		if label == s.stopLabel {
			return entry.Priority
		}
		if *s.fixed.GetOrInsert(label) {
			continue
		}
		*s.fixed.GetOrInsert(label) = true
		c := *s.bestCost.GetOrInsert(label)

		if c > *s.lemma15Bound.GetOrInsert(label.Subset) {
			continue
		}

		s.updateLemma15For(label, c)

		v := label.Vertex.GlobalIndex
		s.fixedByVertex[v] = append(s.fixedByVertex[v], fixedEntry{subset: label.Subset, cost: c})

		s.grid.ForEachNeighbor(label.Vertex, func(neighbor core.GridPoint, edgeCost core.Cost) {
			s.handleCandidate(core.Label{Vertex: neighbor, Subset: label.Subset}, c+edgeCost)
		})

		s.mergeStep(label, c)
	}

	panic("dijkstrasteiner: heap exhausted before reaching the stop label")
}

// handleCandidate is §4.5.1: admit candidateCost for label if it beats
// both pruning bounds and the best cost known so far.
func (s *Solver) handleCandidate(label core.Label, candidateCost core.Cost) {
	if candidateCost > s.globalUpper {
		return
	}
	if candidateCost > *s.lemma15Bound.GetOrInsert(label.Subset) {
		return
	}

	best := s.bestCost.GetOrInsert(label)
	if candidateCost >= *best {
		return
	}

	if *s.fixed.GetOrInsert(label) {
		panic("dijkstrasteiner: handleCandidate tried to improve an already-fixed label")
	}
	*best = candidateCost

	prio := candidateCost + s.futureCost.Cost(label)
	if prio > s.globalUpper {
		return
	}
	s.heap.Push(core.HeapEntry{Priority: prio, Label: label})
}

// updateLemma15For is §4.5.2: tighten lemma15Bound[I] using the cost to
// reach label plus the cheapest way to leave it for a terminal outside I.
func (s *Solver) updateLemma15For(label core.Label, c core.Cost) {
	i := label.Subset
	v := label.Vertex

	cheapest := s.cheapestEdgeToComplement(i)
	core.ForEachSetBit(^i, s.grid.NumTerminals(), func(t core.TerminalIndex) {
		if d := s.grid.DistanceTo(v.GlobalIndex, t); d < cheapest.Distance {
			cheapest = core.DistanceToTerminal{Distance: d, Terminal: t}
		}
	})

	newBound := c + cheapest.Distance
	bound := s.lemma15Bound.GetOrInsert(i)
	if newBound < *bound {
		*bound = newBound
		*s.lemma15Witness.GetOrInsert(i) = core.Bit(cheapest.Terminal)
	}
}

// cheapestEdgeToComplement is §4.5.4, memoized per subset: the cheapest
// L1 distance between a terminal in i and a terminal not in i (the root
// always counts as "not in i", since i never encodes the root).
func (s *Solver) cheapestEdgeToComplement(i core.TerminalSubset) core.DistanceToTerminal {
	slot := s.cheapestComplement.GetOrInsert(i)
	if slot.Distance != core.InvalidCost {
		return *slot
	}
	if i == 0 {
		return *slot
	}

	best := core.DefaultDistanceToTerminal()
	core.ForEachSetBit(i, s.grid.NumNonRootTerminals(), func(a core.TerminalIndex) {
		va := s.grid.Terminal(a).GlobalIndex
		core.ForEachSetBit(^i, s.grid.NumTerminals(), func(b core.TerminalIndex) {
			if d := s.grid.DistanceTo(va, b); d < best.Distance {
				best = core.DistanceToTerminal{Distance: d, Terminal: b}
			}
		})
	})

	*slot = best
	return best
}

// mergeStep is step 9 of §4.5's main loop: for every already-fixed subset
// J disjoint from label's subset at the same vertex, offer the union as a
// new candidate and tighten the merged Lemma-15 bound.
func (s *Solver) mergeStep(label core.Label, c core.Cost) {
	v := label.Vertex
	i := label.Subset

	for _, je := range s.disjointFixedSubsets(v.GlobalIndex, i) {
		k := i | je.subset
		s.handleCandidate(core.Label{Vertex: v, Subset: k}, c+je.cost)
		s.mergeLemma15(i, je.subset, k)
	}
}

// mergeLemma15 applies the secondary Lemma-15 update described in §4.5:
// combine two disjoint subset bounds additively when their witnesses
// don't interfere.
func (s *Solver) mergeLemma15(i, j, k core.TerminalSubset) {
	boundI := *s.lemma15Bound.GetOrInsert(i)
	boundJ := *s.lemma15Bound.GetOrInsert(j)
	boundK := s.lemma15Bound.GetOrInsert(k)

	witnessI := *s.lemma15Witness.GetOrInsert(i)
	witnessJ := *s.lemma15Witness.GetOrInsert(j)

	combined := boundI + boundJ
	if combined < *boundK && (witnessI&j == 0 || witnessJ&i == 0) {
		*boundK = combined
		*s.lemma15Witness.GetOrInsert(k) = (witnessI | witnessJ) &^ k
	}
}

// disjointFixedSubsets implements §4.5.3's adaptive strategy: enumerate
// candidate subsets directly when that would touch fewer map slots than
// scanning the fixed list, otherwise scan the list and filter.
func (s *Solver) disjointFixedSubsets(v core.VertexIndex, i core.TerminalSubset) []fixedEntry {
	b := s.grid.NumNonRootTerminals()
	k := i.Count()
	numCandidate := (int64(1) << uint(b-k)) - 1
	numFixed := int64(len(s.fixedByVertex[v]))

	if int64(s.opts.enumerationFactor)*numCandidate <= numFixed {
		return s.enumerateSubmasks(v, i, b)
	}
	return s.filterFixedList(v, i)
}

// enumerateSubmasks walks every non-empty submask of the complement of i
// within b bits, looking each one up directly in the fixed/bestCost maps.
func (s *Solver) enumerateSubmasks(v core.VertexIndex, i core.TerminalSubset, b int) []fixedEntry {
	full := (core.TerminalSubset(1) << uint(b)) - 1
	complement := full &^ i
	if complement == 0 {
		return nil
	}

	vertex := core.GridPoint{GlobalIndex: v}
	var out []fixedEntry
	for sub := complement; ; sub = (sub - 1) & complement {
		if sub != 0 {
			label := core.Label{Vertex: vertex, Subset: sub}
			if s.fixed.GetOrDefault(label) {
				out = append(out, fixedEntry{subset: sub, cost: s.bestCost.GetOrDefault(label)})
			}
		}
		if sub == 0 {
			break
		}
	}
	return out
}

// filterFixedList scans fixedByVertex[v] for entries disjoint from i.
func (s *Solver) filterFixedList(v core.VertexIndex, i core.TerminalSubset) []fixedEntry {
	var out []fixedEntry
	for _, e := range s.fixedByVertex[v] {
		if e.subset&i == 0 {
			out = append(out, e)
		}
	}
	return out
}
