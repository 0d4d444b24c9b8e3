// Package core defines the scalar types, composite entities, and bit-set
// primitives shared by every other package in this module: coordinates,
// costs, terminal subsets, grid labels, and the min-heap entry they are
// queued under.
//
// Nothing here is thread-safe and nothing needs to be: a HananGrid is built
// once and shared read-only, and a solver owns all of its own mutable state
// for the lifetime of a single search (see dijkstrasteiner).
package core
