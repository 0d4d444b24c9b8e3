package subsetmap

import "github.com/katalvlaran/dsteiner/core"

// SubsetMap is a dense, grow-on-demand slice of T keyed by TerminalSubset
// via a shared SubsetIndexer. Positions not yet written read as the zero
// value passed to NewSubsetMap.
type SubsetMap[T any] struct {
	indexer *SubsetIndexer
	storage []T
	initial T
}

// NewSubsetMap returns an empty SubsetMap sharing indexer with any other
// map keyed by the same subsets (e.g. a LabelMap's per-subset vertex rows).
func NewSubsetMap[T any](indexer *SubsetIndexer, initial T) *SubsetMap[T] {
	return &SubsetMap[T]{indexer: indexer, initial: initial}
}

// GetOrInsert returns a pointer to subset's slot, growing the backing slice
// and assigning a fresh position if subset has not been seen before.
func (m *SubsetMap[T]) GetOrInsert(subset core.TerminalSubset) *T {
	pos := m.indexer.IndexOrInsert(subset)
	if pos >= len(m.storage) {
		grown := make([]T, pos+1)
		copy(grown, m.storage)
		for i := len(m.storage); i < len(grown); i++ {
			grown[i] = m.initial
		}
		m.storage = grown
	}
	return &m.storage[pos]
}

// GetOrDefault returns subset's value without creating a position for it,
// returning the initial value if subset has never been indexed.
func (m *SubsetMap[T]) GetOrDefault(subset core.TerminalSubset) T {
	pos, ok := m.indexer.IndexFor(subset)
	if !ok || pos >= len(m.storage) {
		return m.initial
	}
	return m.storage[pos]
}
