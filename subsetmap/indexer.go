package subsetmap

import "github.com/katalvlaran/dsteiner/core"

// noLastQuery is a subset value no real query ever presents, since Subset
// values are masked to at most core.MaxTerminals-1 bits by construction.
const noLastQuery core.TerminalSubset = ^core.TerminalSubset(0)

// SubsetIndexer assigns each distinct TerminalSubset a dense position in
// first-seen order. Positions are stable and never reassigned.
//
// Not safe for concurrent use; the solver owns one indexer per search.
type SubsetIndexer struct {
	indices    map[core.TerminalSubset]int
	lastQuery  core.TerminalSubset
	lastResult int
	lastFound  bool
}

// NewSubsetIndexer returns an empty indexer.
func NewSubsetIndexer() *SubsetIndexer {
	return &SubsetIndexer{
		indices:   make(map[core.TerminalSubset]int),
		lastQuery: noLastQuery,
	}
}

// IndexFor returns the position assigned to subset, if any.
func (idx *SubsetIndexer) IndexFor(subset core.TerminalSubset) (int, bool) {
	if subset != idx.lastQuery {
		pos, ok := idx.indices[subset]
		idx.lastQuery = subset
		idx.lastResult = pos
		idx.lastFound = ok
	}
	return idx.lastResult, idx.lastFound
}

// IndexOrInsert returns subset's position, assigning the next free position
// the first time subset is seen.
func (idx *SubsetIndexer) IndexOrInsert(subset core.TerminalSubset) int {
	if subset != idx.lastQuery || !idx.lastFound {
		pos, ok := idx.indices[subset]
		if !ok {
			pos = len(idx.indices)
			idx.indices[subset] = pos
		}
		idx.lastQuery = subset
		idx.lastResult = pos
		idx.lastFound = true
	}
	return idx.lastResult
}
