// Package mathx provides small integer helpers shared by puzzle solutions.
package mathx

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// @Author KHighness
// @Update 2026-10-19

// Abs returns |a|.
func Abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
func GCD[T constraints.Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of |a| and |b|. LCM with 0 is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		l = -l
	}
	return l
}

// BinarySearch looks for a value in the open interval (left, right) for
// which f returns 0. f must be monotone: negative below the answer and
// positive above it.
//
// If no value makes f return 0, the second return value is false and the
// first one is the smallest probed value that compared greater (or right).
func BinarySearch[T constraints.Integer](left, right T, f func(T) int) (T, bool) {
	for left+1 < right {
		mid := left + (right-left)/2
		switch c := f(mid); {
		case c < 0:
			left = mid
		case c > 0:
			right = mid
		default:
			return mid, true
		}
	}
	return right, false
}

// FromDigits folds decimal digits, most significant first, into a number.
// The second return value is false if seq yielded nothing.
func FromDigits[T constraints.Integer](seq iter.Seq[uint8]) (T, bool) {
	var n T
	seen := false
	for d := range seq {
		n = n*10 + T(d)
		seen = true
	}
	return n, seen
}

// Progression is the arithmetic sequence Current, Current+Inc, ... limited
// to Remaining elements.
type Progression[T constraints.Integer] struct {
	Current   T
	Inc       T
	Remaining int
}

// NewProgression returns a progression of n elements starting at init.
func NewProgression[T constraints.Integer](init, inc T, n int) *Progression[T] {
	return &Progression[T]{Current: init, Inc: inc, Remaining: max(n, 0)}
}

// Len returns the number of elements left.
func (p *Progression[T]) Len() int { return p.Remaining }

// Next returns the next element.
func (p *Progression[T]) Next() (T, bool) {
	if p.Remaining <= 0 {
		var zero T
		return zero, false
	}
	v := p.Current
	p.Current += p.Inc
	p.Remaining--
	return v, true
}

// Nth skips n elements and returns the one after them, in O(1).
func (p *Progression[T]) Nth(n int) (T, bool) {
	if n < 0 || n >= p.Remaining {
		p.Remaining = 0
		var zero T
		return zero, false
	}
	v := p.Current + p.Inc*T(n)
	p.Current = v + p.Inc
	p.Remaining -= n + 1
	return v, true
}

// Last returns the final element, consuming the progression.
func (p *Progression[T]) Last() (T, bool) {
	return p.Nth(p.Remaining - 1)
}

// All yields the remaining elements.
func (p *Progression[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := p.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
