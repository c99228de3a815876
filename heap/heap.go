package heap

import "cmp"

// @Author KHighness
// @Update 2026-10-19

// Comparator orders two elements: negative when a < b, zero when equal and
// positive when a > b.
type Comparator[T any] func(a, b T) int

// Heapify reorders s into a max-heap under cmp.
//
// Elements are raised one at a time from index 0 upward, the same way a heap
// grows through repeated Push calls.
func Heapify[T any](s []T, cmp Comparator[T]) {
	for i := range s {
		RaiseBy(s, cmp, i)
	}
}

// RaiseBy moves the element at index i up while its parent is less than it.
func RaiseBy[T any](s []T, cmp Comparator[T], i int) {
	for i > 0 {
		p := parent(i)
		if cmp(s[p], s[i]) >= 0 {
			return
		}
		s[p], s[i] = s[i], s[p]
		i = p
	}
}

// LowerBy moves the element at index i down while one of its children is
// strictly greater than it, always swapping with the greater child.
func LowerBy[T any](s []T, cmp Comparator[T], i int) bool {
	i0, n := i, len(s)
	for {
		l := leftChild(i)
		if l >= n || l < 0 { // l < 0 after int overflow
			break
		}

		j := i
		if cmp(s[j], s[l]) < 0 {
			j = l
		}
		if r := l + 1; r < n && cmp(s[j], s[r]) < 0 {
			j = r
		}
		if j == i {
			break
		}

		s[i], s[j] = s[j], s[i]
		i = j
	}

	return i > i0
}

// PushBy appends x to the heap and raises it into place.
func PushBy[T any](h *[]T, cmp Comparator[T], x T) {
	*h = append(*h, x)
	RaiseBy(*h, cmp, len(*h)-1)
}

// PopBy removes and returns the greatest element of the heap.
// The second return value is false if the heap is empty.
func PopBy[T any](h *[]T, cmp Comparator[T]) (T, bool) {
	var zero T
	n := len(*h) - 1
	if n < 0 {
		return zero, false
	}

	s := *h
	s[0], s[n] = s[n], s[0]
	x := s[n]
	s[n] = zero
	*h = s[:n]
	LowerBy(*h, cmp, 0)
	return x, true
}

// RemoveBy removes and returns the element at index i from the heap.
func RemoveBy[T any](h *[]T, cmp Comparator[T], i int) T {
	var zero T
	s := *h
	n := len(s) - 1
	if n != i {
		s[i], s[n] = s[n], s[i]
	}
	x := s[n]
	s[n] = zero
	*h = s[:n]
	if n != i {
		FixBy(*h, cmp, i)
	}
	return x
}

// FixBy re-establishes the heap ordering after the element at index i has
// changed its value.
func FixBy[T any](s []T, cmp Comparator[T], i int) {
	if !LowerBy(s, cmp, i) {
		RaiseBy(s, cmp, i)
	}
}

// Reverse returns a comparator with the opposite order, turning the max-heap
// primitives into min-heap ones.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// HeapifyOrdered is Heapify with the natural order of T.
func HeapifyOrdered[T cmp.Ordered](s []T) { Heapify(s, cmp.Compare[T]) }

// PushOrdered is PushBy with the natural order of T.
func PushOrdered[T cmp.Ordered](h *[]T, x T) { PushBy(h, cmp.Compare[T], x) }

// PopOrdered is PopBy with the natural order of T.
func PopOrdered[T cmp.Ordered](h *[]T) (T, bool) { return PopBy(h, cmp.Compare[T]) }

func parent(i int) int { return (i - 1) >> 1 }

func leftChild(i int) int { return (i << 1) + 1 }
