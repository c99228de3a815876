// Package disjointset provides a fixed-size disjoint-set forest over the
// indices [0, n).
//
// Unions are lazy: Join only rewrites the slots it touched, and the other
// members of the two sets keep pointing at their old representative until a
// lookup follows the chain to the new one.
package disjointset

import "iter"

// @Author KHighness
// @Update 2026-10-19

// Set describes a set by its representative member and its size.
// Size is only meaningful when read from a representative slot.
type Set struct {
	Member int
	Size   int
}

// Union returns the set formed by merging s and other. The representative
// is the smaller member. Merging a set with itself returns it unchanged.
func (s Set) Union(other Set) Set {
	if s.Member == other.Member {
		return s
	}
	return Set{
		Member: min(s.Member, other.Member),
		Size:   s.Size + other.Size,
	}
}

// Sets is a disjoint-set forest. The zero value holds no elements.
//
// Sets is not safe for concurrent use.
type Sets struct {
	sets []Set
}

// New creates n singleton sets, one per index.
func New(n int) *Sets {
	sets := make([]Set, n)
	for i := range sets {
		sets[i] = Set{Member: i, Size: 1}
	}
	return &Sets{sets: sets}
}

// Len returns the number of elements.
func (d *Sets) Len() int { return len(d.sets) }

// Join merges the sets containing from and to and returns the merged set.
//
// When the sets differ, the merged set is written to both old
// representatives and to from and to; nothing else is touched.
func (d *Sets) Join(from, to int) Set {
	fromSet := d.SetOf(from)
	toSet := d.SetOf(to)

	merged := fromSet.Union(toSet)
	if fromSet.Member != toSet.Member {
		for _, i := range [...]int{toSet.Member, fromSet.Member, from, to} {
			d.sets[i] = merged
		}
	}
	return merged
}

// SetOf resolves the set containing point without modifying the forest.
func (d *Sets) SetOf(point int) Set {
	for d.sets[point].Member != point {
		point = d.sets[point].Member
	}
	return d.sets[point]
}

// SetOfShortening resolves the set containing point and stores it in the
// slot of point, so the next lookup from point takes a single hop.
// Intermediate slots on the chain are left as they were.
func (d *Sets) SetOfShortening(point int) Set {
	set := d.SetOf(point)
	d.sets[point] = set
	return set
}

// Connected reports whether a and b belong to the same set.
func (d *Sets) Connected(a, b int) bool {
	return d.SetOf(a).Member == d.SetOf(b).Member
}

// All iterates over the slots that are their own representative.
func (d *Sets) All() iter.Seq[Set] {
	return func(yield func(Set) bool) {
		for i, s := range d.sets {
			if s.Member == i && !yield(s) {
				return
			}
		}
	}
}

// Sizes iterates over the sizes of the sets yielded by All.
func (d *Sets) Sizes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for s := range d.All() {
			if !yield(s.Size) {
				return
			}
		}
	}
}
