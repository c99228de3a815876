package heap

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// @Author KHighness
// @Update 2026-10-19

func assertHeap[T any](t *testing.T, s []T, c Comparator[T]) {
	t.Helper()
	for i := 1; i < len(s); i++ {
		p := parent(i)
		assert.GreaterOrEqual(t, c(s[p], s[i]), 0, "heap order broken at %d (parent %d)", i, p)
	}
}

func randInts(r *rand.Rand, n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = r.Intn(100) - 50
	}
	return s
}

func TestHeapify(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for n := 0; n < 64; n++ {
		s := randInts(r, n)
		Heapify(s, cmp.Compare[int])
		assertHeap(t, s, cmp.Compare[int])
	}
}

func TestHeapify_CustomComparator(t *testing.T) {
	type cost struct {
		node string
		dist int
	}
	// Reversed order gives a min-heap, as a shortest-path queue needs.
	byDist := func(a, b cost) int { return cmp.Compare(b.dist, a.dist) }
	s := []cost{{"a", 5}, {"b", 1}, {"c", 3}, {"d", 0}, {"e", 9}}

	Heapify(s, byDist)
	assertHeap(t, s, byDist)

	var order []string
	for {
		x, ok := PopBy(&s, byDist)
		if !ok {
			break
		}
		order = append(order, x.node)
	}
	assert.Equal(t, []string{"d", "b", "c", "a", "e"}, order)
}

func TestPopBy_Descending(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 50; n++ {
		s := randInts(r, n)
		want := slices.Clone(s)
		slices.Sort(want)
		slices.Reverse(want)

		Heapify(s, cmp.Compare[int])
		got := make([]int, 0, n)
		for {
			x, ok := PopBy(&s, cmp.Compare[int])
			if !ok {
				break
			}
			assertHeap(t, s, cmp.Compare[int])
			got = append(got, x)
		}
		assert.Equal(t, want, got)
		assert.Empty(t, s)
	}
}

func TestPopBy_Empty(t *testing.T) {
	var s []int
	x, ok := PopBy(&s, cmp.Compare[int])
	assert.False(t, ok)
	assert.Zero(t, x)
	assert.Nil(t, s)

	x, ok = PopOrdered(&s)
	assert.False(t, ok)
	assert.Zero(t, x)
}

func TestRaiseBy(t *testing.T) {
	s := []int{9, 5, 7, 1, 2}
	s = append(s, 8)
	RaiseBy(s, cmp.Compare[int], len(s)-1)
	assert.Equal(t, []int{9, 5, 8, 1, 2, 7}, s)

	s = append(s, 10)
	RaiseBy(s, cmp.Compare[int], len(s)-1)
	assert.Equal(t, 10, s[0])
	assertHeap(t, s, cmp.Compare[int])
}

func TestLowerBy(t *testing.T) {
	s := []int{1, 9, 7, 5, 2}
	moved := LowerBy(s, cmp.Compare[int], 0)
	assert.True(t, moved)
	assert.Equal(t, []int{9, 5, 7, 1, 2}, s)

	moved = LowerBy(s, cmp.Compare[int], 0)
	assert.False(t, moved)

	// single child
	s = []int{1, 4}
	LowerBy(s, cmp.Compare[int], 0)
	assert.Equal(t, []int{4, 1}, s)

	// equal child is not swapped
	s = []int{3, 3, 3}
	assert.False(t, LowerBy(s, cmp.Compare[int], 0))
}

func TestPushOrdered(t *testing.T) {
	var h []string
	for _, w := range []string{"pear", "apple", "zucchini", "fig"} {
		PushOrdered(&h, w)
		assertHeap(t, h, cmp.Compare[string])
	}
	top, ok := PopOrdered(&h)
	require.True(t, ok)
	assert.Equal(t, "zucchini", top)
}

func TestRemoveBy(t *testing.T) {
	h := []int{1, 8, 3, 6, 5, 4, 7, 2}
	HeapifyOrdered(h)

	idx := slices.Index(h, 6)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, 6, RemoveBy(&h, cmp.Compare[int], idx))
	assertHeap(t, h, cmp.Compare[int])
	assert.Len(t, h, 7)

	last := h[len(h)-1]
	assert.Equal(t, last, RemoveBy(&h, cmp.Compare[int], len(h)-1))
	assertHeap(t, h, cmp.Compare[int])
}

func TestFixBy(t *testing.T) {
	h := []int{1, 8, 3, 6, 5, 4, 7, 2}
	HeapifyOrdered(h)

	h[len(h)-1] = 100
	FixBy(h, cmp.Compare[int], len(h)-1)
	assert.Equal(t, 100, h[0])
	assertHeap(t, h, cmp.Compare[int])

	h[0] = -1
	FixBy(h, cmp.Compare[int], 0)
	assertHeap(t, h, cmp.Compare[int])
}

func BenchmarkHeapify(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	src := randInts(r, 1<<12)
	s := make([]int, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(s, src)
		Heapify(s, cmp.Compare[int])
	}
}
