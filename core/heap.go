// MinHeap is a small generic container/heap wrapper shared by the
// heuristic and dijkstrasteiner packages. It follows the same
// Len/Less/Swap/Push/Pop shape as dijkstra.nodePQ and prim_kruskal.edgePQ,
// generalized with a type parameter and an explicit less-than predicate so
// both packages can reuse one implementation instead of duplicating the
// five heap.Interface methods per element type.
package core

import "container/heap"

// MinHeap is a priority queue of T, ordered by a caller-supplied Less.
// Duplicates are expected and tolerated by callers using the lazy
// decrease-key pattern: push a new, better entry and let stale ones be
// skipped on pop via an out-of-band "settled" check.
type MinHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// NewMinHeap constructs an empty heap ordered by less.
func NewMinHeap[T any](less func(a, b T) bool) *MinHeap[T] {
	return &MinHeap[T]{less: less}
}

// Len reports the number of queued elements.
func (h *MinHeap[T]) Len() int { return len(h.items) }

// Push adds x to the heap, restoring the heap invariant.
func (h *MinHeap[T]) Push(x T) {
	heap.Push(heapAdapter[T]{h}, x)
}

// Pop removes and returns the minimal element.
func (h *MinHeap[T]) Pop() T {
	return heap.Pop(heapAdapter[T]{h}).(T)
}

// heapAdapter satisfies container/heap.Interface on behalf of MinHeap,
// since Go generics cannot implement an interface method set directly on
// a parameterized receiver in a way heap.Interface (non-generic) accepts.
type heapAdapter[T any] struct{ h *MinHeap[T] }

func (a heapAdapter[T]) Len() int           { return len(a.h.items) }
func (a heapAdapter[T]) Less(i, j int) bool { return a.h.less(a.h.items[i], a.h.items[j]) }
func (a heapAdapter[T]) Swap(i, j int) {
	a.h.items[i], a.h.items[j] = a.h.items[j], a.h.items[i]
}
func (a heapAdapter[T]) Push(x any) { a.h.items = append(a.h.items, x.(T)) }
func (a heapAdapter[T]) Pop() any {
	old := a.h.items
	n := len(old)
	item := old[n-1]
	a.h.items = old[:n-1]
	return item
}
