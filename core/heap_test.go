package core_test

import (
	"testing"

	"github.com/katalvlaran/dsteiner/core"
)

func TestMinHeap_PopsAscending(t *testing.T) {
	h := core.NewMinHeap(func(a, b int) bool { return a < b })
	for _, v := range []int{5, 1, 4, 2, 3} {
		h.Push(v)
	}
	var got []int
	for h.Len() > 0 {
		got = append(got, h.Pop())
	}
	want := []int{1, 2, 3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMinHeap_HeapEntriesByPriority(t *testing.T) {
	h := core.NewMinHeap(func(a, b core.HeapEntry) bool { return a.Priority < b.Priority })
	h.Push(core.HeapEntry{Priority: 7})
	h.Push(core.HeapEntry{Priority: 2})
	h.Push(core.HeapEntry{Priority: 4})
	first := h.Pop()
	if first.Priority != 2 {
		t.Fatalf("expected priority 2 first, got %d", first.Priority)
	}
}
