// Package heuristic computes the Prim-Steiner grid-based upper bound: a
// concrete, connected Steiner tree over a HananGrid's terminals, built by
// repeatedly running Dijkstra from the next unconnected terminal to the
// partial tree already grown. Its cost is an admissible (but not
// necessarily optimal) bound on the exact RSMT cost.
package heuristic
