package topk

import (
	"cmp"
	"iter"
	"slices"

	"github.com/Khighness/advent/heap"
)

// @Author KHighness
// @Update 2026-10-19

// Top consumes seq and returns its k greatest elements under c, in
// descending order. It returns false if seq yielded fewer than k elements.
//
// Every element is kept on a heap until seq is exhausted and the result is
// popped off it afterwards, so memory grows with the length of seq.
func Top[T any](seq iter.Seq[T], k int, c heap.Comparator[T]) ([]T, bool) {
	var h []T
	for x := range seq {
		heap.PushBy(&h, c, x)
	}

	if len(h) < k {
		return nil, false
	}
	if k < 0 {
		k = 0
	}

	res := make([]T, k)
	for i := range res {
		x, ok := heap.PopBy(&h, c)
		if !ok {
			panic("topk: heap drained early")
		}
		res[i] = x
	}
	return res, true
}

// TopOrdered is Top with the natural order of T.
func TopOrdered[T cmp.Ordered](seq iter.Seq[T], k int) ([]T, bool) {
	return Top(seq, k, cmp.Compare[T])
}

// TopSlice is Top over the elements of s. s itself is not modified.
func TopSlice[T any](s []T, k int, c heap.Comparator[T]) ([]T, bool) {
	return Top(slices.Values(s), k, c)
}

// Item is a key counted by a TopK sketch.
type Item struct {
	Key   string
	Count uint32
}

// TopK algorithm interface.
type TopK interface {

	// Add adds an item to the list of top k.
	// It returns two values:
	//	- The first return value is the expelled item if any item was expelled.
	//	- The second return value represents if the item had been added successfully.
	Add(item string, incr uint32) (string, bool)

	// List returns all the items in the top k.
	List() []Item

	// Total returns the total count of the items.
	Total() uint64

	// Expelled watches at the expelled items.
	Expelled() <-chan Item

	// Fading halves all counters, letting recent traffic dominate.
	Fading()
}
