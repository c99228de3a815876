// Package ranges merges closed ranges of ordered values.
package ranges

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// @Author KHighness
// @Update 2026-10-19

// Range is the closed range [Start, End].
type Range[T any] struct {
	Start T
	End   T
}

// New returns the closed range [start, end].
func New[T any](start, end T) Range[T] {
	return Range[T]{Start: start, End: end}
}

// Contains reports whether v lies inside r.
func Contains[T cmp.Ordered](r Range[T], v T) bool {
	return r.Start <= v && v <= r.End
}

func (r Range[T]) String() string {
	return fmt.Sprintf("%v-%v", r.Start, r.End)
}

// StepsFunc measures how many discrete steps separate a and b.
type StepsFunc[T any] func(a, b T) uint64

// IntSteps is the StepsFunc of integer types: |a-b|.
func IntSteps[T constraints.Integer](a, b T) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}

// MergeIter lazily yields the merged ranges of a slice, lowest start first.
//
// Two ranges merge when they overlap or when the second starts one step
// after the running end of the first.
type MergeIter[T any] struct {
	src   []Range[T]
	n     int // ranges still pending live in src[:n]
	cmp   func(a, b T) int
	steps StepsFunc[T]
}

// MergeInclusive sorts src in place by descending start and returns an
// iterator over its merged ranges.
func MergeInclusive[T constraints.Integer](src []Range[T]) *MergeIter[T] {
	return MergeInclusiveFunc(src, cmp.Compare[T], IntSteps[T])
}

// MergeInclusiveFunc is MergeInclusive for any type with an order c and a
// step measure steps. src is sorted in place by descending start.
func MergeInclusiveFunc[T any](src []Range[T], c func(a, b T) int, steps StepsFunc[T]) *MergeIter[T] {
	// After sorting the lowest start is last:
	// src[0]:             ##### (23-27)
	// src[1]:             ### (23-25)
	// src[2]:        ### (18-20)
	// ...
	// src[7]: ### (1-3)
	slices.SortFunc(src, func(a, b Range[T]) int { return c(b.Start, a.Start) })

	return &MergeIter[T]{
		src:   src,
		n:     len(src),
		cmp:   c,
		steps: steps,
	}
}

// Next returns the next merged range. The second return value is false once
// every range has been consumed.
func (it *MergeIter[T]) Next() (Range[T], bool) {
	if it.n == 0 {
		return Range[T]{}, false
	}
	it.n--
	first := it.src[it.n]

	hi := first.End
	newLen := it.n
	for i := it.n - 1; i >= 0; i-- {
		r := it.src[i]
		if it.cmp(r.Start, hi) > 0 && it.steps(r.Start, hi) > 1 {
			break
		}
		if it.cmp(r.End, hi) > 0 {
			hi = r.End
		}
		newLen = i
	}
	it.n = newLen

	return Range[T]{Start: first.Start, End: hi}, true
}

// All returns the remaining merged ranges as a sequence.
func (it *MergeIter[T]) All() iter.Seq[Range[T]] {
	return func(yield func(Range[T]) bool) {
		for {
			r, ok := it.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// Merge sorts src in place and returns its merged ranges in ascending order.
func Merge[T constraints.Integer](src []Range[T]) []Range[T] {
	return slices.Collect(MergeInclusive(src).All())
}
