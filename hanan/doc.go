// Package hanan builds the Hanan grid: the axis-aligned grid formed by the
// coordinate lines passing through every terminal, known to contain an
// optimal rectilinear Steiner minimum tree for that terminal set.
//
// A HananGrid is built once from the input terminals and is immutable and
// safe to share read-only afterwards — by the heuristic package, by every
// futurecost estimator, and by the dijkstrasteiner solver, all within a
// single search.
package hanan
