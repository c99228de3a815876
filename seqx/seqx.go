// Package seqx holds sequence combinators missing from the iter and slices
// packages.
package seqx

import "iter"

// @Author KHighness
// @Update 2026-10-19

// Reduces folds consecutive elements of seq into groups.
//
// Each group starts from initial. reducer folds an element into the
// current group and returns false to close the group after that element.
// A trailing group still open when seq ends is yielded too.
func Reduces[E, V any](seq iter.Seq[E], initial func() V, reducer func(acc *V, e E) bool) iter.Seq[V] {
	return func(yield func(V) bool) {
		var (
			cur  V
			open bool
		)
		for e := range seq {
			if !open {
				cur, open = initial(), true
			}
			if !reducer(&cur, e) {
				open = false
				if !yield(cur) {
					return
				}
			}
		}
		if open {
			yield(cur)
		}
	}
}

// Chunks splits seq on elements for which sep returns true. Separators are
// dropped; empty chunks are kept.
func Chunks[E any](seq iter.Seq[E], sep func(E) bool) iter.Seq[[]E] {
	return func(yield func([]E) bool) {
		var (
			cur  []E
			seen bool
		)
		for e := range seq {
			seen = true
			if sep(e) {
				if !yield(cur) {
					return
				}
				cur = nil
				continue
			}
			cur = append(cur, e)
		}
		if seen {
			yield(cur)
		}
	}
}
