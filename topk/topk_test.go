package topk

import (
	"cmp"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// @Author KHighness
// @Update 2026-10-19

func TestTop(t *testing.T) {
	res, ok := TopSlice([]int{4, 9, 1, 7, 3, 8}, 3, cmp.Compare[int])
	require.True(t, ok)
	assert.Equal(t, []int{9, 8, 7}, res)
}

func TestTop_NotEnough(t *testing.T) {
	res, ok := TopOrdered(slices.Values([]int{1, 2}), 3)
	assert.False(t, ok)
	assert.Nil(t, res)

	res, ok = TopOrdered(slices.Values([]int(nil)), 1)
	assert.False(t, ok)
	assert.Nil(t, res)
}

func TestTop_ZeroK(t *testing.T) {
	res, ok := TopOrdered(slices.Values([]int{5}), 0)
	assert.True(t, ok)
	assert.Empty(t, res)
	assert.NotNil(t, res)
}

func TestTop_DoesNotTouchInput(t *testing.T) {
	in := []int{3, 1, 2}
	_, ok := TopSlice(in, 2, cmp.Compare[int])
	require.True(t, ok)
	assert.Equal(t, []int{3, 1, 2}, in)
}

func TestTop_CustomOrder(t *testing.T) {
	words := []string{"go", "heap", "a", "select", "top"}
	byLen := func(a, b string) int { return cmp.Compare(len(a), len(b)) }

	res, ok := TopSlice(words, 2, byLen)
	require.True(t, ok)
	assert.Equal(t, []string{"select", "heap"}, res)
}

func TestTop_Random(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for round := 0; round < 100; round++ {
		n := r.Intn(40)
		perm := r.Perm(1000)[:n] // distinct values
		k := r.Intn(45)

		res, ok := TopOrdered(slices.Values(perm), k)
		if k > n {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok)

		want := slices.Clone(perm)
		slices.Sort(want)
		slices.Reverse(want)
		assert.Equal(t, want[:k], res)
	}
}

func ExampleTopOrdered() {
	calories := []int{6000, 4000, 11000, 24000, 10000}
	top, ok := TopOrdered(slices.Values(calories), 3)
	fmt.Println(top, ok)
	// Output: [24000 11000 10000] true
}
