// Package subsetmap provides grow-on-demand containers keyed by terminal
// subset or by (vertex, subset) label, backed by dense slices rather than
// hash maps once a subset has been assigned a position.
//
// A SubsetIndexer assigns each distinct TerminalSubset it sees a dense,
// increasing integer position the first time that subset is requested.
// SubsetMap and LabelMap use that position to index directly into a slice,
// falling back to growing the slice only when a new position is assigned.
// The SubsetIndexer caches its single most recent query; every map built on
// it shares that cache, since the dijkstrasteiner solver's hot loop
// repeatedly re-queries the same subset across several cooperating maps
// before moving to the next one.
package subsetmap
