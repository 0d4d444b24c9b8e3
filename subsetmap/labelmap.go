package subsetmap

import "github.com/katalvlaran/dsteiner/core"

// LabelMap is a dense map from core.Label (vertex, subset) to T: one row
// of length numVertices per distinct subset, allocated lazily the first
// time that subset is touched.
type LabelMap[T any] struct {
	rows        *SubsetMap[[]T]
	numVertices int
	initial     T
}

// NewLabelMap returns an empty LabelMap over a grid with numVertices
// vertices, sharing indexer with any other map keyed by the same subsets.
func NewLabelMap[T any](indexer *SubsetIndexer, numVertices int, initial T) *LabelMap[T] {
	return &LabelMap[T]{
		rows:        NewSubsetMap[[]T](indexer, nil),
		numVertices: numVertices,
		initial:     initial,
	}
}

// GetOrInsert returns a pointer to label's slot, allocating that subset's
// row on first touch.
func (m *LabelMap[T]) GetOrInsert(label core.Label) *T {
	row := m.rows.GetOrInsert(label.Subset)
	if *row == nil {
		*row = make([]T, m.numVertices)
		for i := range *row {
			(*row)[i] = m.initial
		}
	}
	return &(*row)[label.Vertex.GlobalIndex]
}

// GetOrDefault returns label's value without allocating its subset's row.
func (m *LabelMap[T]) GetOrDefault(label core.Label) T {
	row := m.rows.GetOrDefault(label.Subset)
	if row == nil || int(label.Vertex.GlobalIndex) >= len(row) {
		return m.initial
	}
	return row[label.Vertex.GlobalIndex]
}
