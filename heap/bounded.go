package heap

import (
	"fmt"
	"slices"
)

// @Author KHighness
// @Update 2026-10-19

// Bounded keeps at most K elements: the K greatest ones seen so far under cmp.
//
// The smallest retained element sits at the root so that it can be expelled
// in O(log K) when a greater element arrives.
type Bounded[T any] struct {
	Nodes []T
	K     int

	less Comparator[T] // reversed order, root is the minimum
	cmp  Comparator[T]
}

// NewBounded creates a Bounded heap holding up to k elements.
func NewBounded[T any](k int, cmp Comparator[T]) *Bounded[T] {
	if k < 0 {
		k = 0
	}
	return &Bounded[T]{
		Nodes: make([]T, 0, k),
		K:     k,
		less:  Reverse(cmp),
		cmp:   cmp,
	}
}

// Add adds x to the heap and returns the expelled element if the heap was
// full. The second return value reports whether something was expelled.
//
// When the heap is full and x is not greater than the current minimum, x
// itself is returned as expelled.
func (h *Bounded[T]) Add(x T) (T, bool) {
	var zero T
	if h.K == 0 {
		return x, true
	}
	if !h.IsFull() {
		PushBy(&h.Nodes, h.less, x)
		return zero, false
	}
	if h.cmp(x, h.Nodes[0]) <= 0 {
		return x, true
	}
	expelled := h.Nodes[0]
	h.Nodes[0] = x
	LowerBy(h.Nodes, h.less, 0)
	return expelled, true
}

// Pop removes and returns the minimum element from the heap.
func (h *Bounded[T]) Pop() T {
	x, ok := PopBy(&h.Nodes, h.less)
	if !ok {
		panic("Bounded: heap is empty")
	}
	return x
}

// Fix re-establishes the ordering after the element at index idx has been
// modified in place.
func (h *Bounded[T]) Fix(idx int) {
	if idx < 0 || idx >= h.Len() {
		panic(fmt.Errorf("Bounded: idx(%d) is out bound of [0, %d)", idx, h.Len()))
	}
	FixBy(h.Nodes, h.less, idx)
}

// Min returns the minimum retained element, or the zero value if empty.
func (h *Bounded[T]) Min() (T, bool) {
	if h.IsEmpty() {
		var zero T
		return zero, false
	}
	return h.Nodes[0], true
}

// Find returns the index of the first element matching pred.
func (h *Bounded[T]) Find(pred func(T) bool) (int, bool) {
	for i := range h.Nodes {
		if pred(h.Nodes[i]) {
			return i, true
		}
	}
	return 0, false
}

// Each calls fn on every retained element. Call Reinit afterwards if fn may
// have changed the relative order.
func (h *Bounded[T]) Each(fn func(*T)) {
	for i := range h.Nodes {
		fn(&h.Nodes[i])
	}
}

// Reinit rebuilds the heap ordering of all retained elements.
func (h *Bounded[T]) Reinit() {
	Heapify(h.Nodes, h.less)
}

// Sorted returns a copy of the retained elements in descending order.
func (h *Bounded[T]) Sorted() []T {
	nodes := slices.Clone(h.Nodes)
	slices.SortStableFunc(nodes, Reverse(h.cmp))
	return nodes
}

// Len returns the number of retained elements.
func (h *Bounded[T]) Len() int { return len(h.Nodes) }

// IsEmpty checks if the heap is empty.
func (h *Bounded[T]) IsEmpty() bool { return h.Len() == 0 }

// IsFull checks if the heap holds K elements.
func (h *Bounded[T]) IsFull() bool { return h.Len() >= h.K }
