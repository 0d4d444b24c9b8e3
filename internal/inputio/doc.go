// Package inputio reads a terminal list from an ASCII whitespace-separated
// integer stream: a count N, followed by N·core.NumDimensions coordinates,
// one terminal at a time with axes in declaration order.
package inputio
