package topk

import (
	"cmp"
	"math"
	"sync"

	"github.com/twmb/murmur3"
	"golang.org/x/exp/rand"

	"github.com/Khighness/advent/heap"
)

// @Author KHighness
// @Update 2026-10-19

const DecayTableLen = 1 << 8

// HeavyKeeper algorithm structure.
//
// See: https://www.usenix.org/system/files/conference/atc18/atc18-gong.pdf
type HeavyKeeper struct {
	mu sync.Mutex

	k           uint32
	width       uint32
	depth       uint32
	decay       float64
	lookupTable []float64
	minCount    uint32

	r        *rand.Rand
	buckets  [][]bucket
	minHeap  *heap.Bounded[*node]
	expelled chan Item
	total    uint64
}

// bucket structure.
type bucket struct {
	fingerprint uint32 // hash fingerprint
	count       uint32
}

// node is a tracked heavy hitter.
type node struct {
	key   string
	count uint32
}

// byCount orders nodes by count, lower keys winning ties.
func byCount(a, b *node) int {
	if c := cmp.Compare(a.count, b.count); c != 0 {
		return c
	}
	return cmp.Compare(b.key, a.key)
}

// NewHeavyKeeper creates a new HeavyKeeper instance.
func NewHeavyKeeper(k, width, depth uint32, decay float64, minCount uint32) TopK {
	lookupTable := make([]float64, DecayTableLen)
	for i := 0; i < DecayTableLen; i++ {
		lookupTable[i] = math.Pow(decay, float64(i))
	}

	buckets := make([][]bucket, depth)
	for i := range buckets {
		buckets[i] = make([]bucket, width)
	}

	return &HeavyKeeper{
		k:           k,
		width:       width,
		depth:       depth,
		decay:       decay,
		lookupTable: lookupTable,
		minCount:    minCount,

		r:        rand.New(rand.NewSource(0)),
		buckets:  buckets,
		minHeap:  heap.NewBounded(int(k), byCount),
		expelled: make(chan Item, 32),
	}
}

func (hk *HeavyKeeper) Add(item string, incr uint32) (string, bool) {
	hk.mu.Lock()
	defer hk.mu.Unlock()

	itemBytes := []byte(item)
	itemFingerprint := murmur3.Sum32(itemBytes)

	var maxCount uint32

	for i, row := range hk.buckets {
		bucketNo := murmur3.SeedSum32(uint32(i), itemBytes) % hk.width
		b := &row[bucketNo]

		if b.count == 0 { // The bucket is initial.
			b.fingerprint = itemFingerprint
			b.count = incr
			maxCount = max(maxCount, incr)

		} else if b.fingerprint == itemFingerprint { // Fingerprints match, do increment.
			b.count += incr
			maxCount = max(maxCount, b.count)

		} else { // Fingerprints do not match, handle hash conflict.
			for localIncr := incr; localIncr > 0; localIncr-- {
				decay := hk.lookupTable[min(b.count, DecayTableLen-1)]
				if hk.r.Float64() < decay {
					b.count--
					if b.count == 0 {
						b.fingerprint = itemFingerprint
						b.count = localIncr
						maxCount = max(maxCount, localIncr)
						break
					}
				}
			}
		}
	}

	hk.total += uint64(incr)

	if maxCount == 0 || maxCount < hk.minCount {
		return "", false
	}

	if least, ok := hk.minHeap.Min(); ok && hk.minHeap.IsFull() && maxCount < least.count {
		return "", false
	}

	itemHeapIdx, itemHeapExist := hk.minHeap.Find(func(n *node) bool { return n.key == item })
	if itemHeapExist {
		hk.minHeap.Nodes[itemHeapIdx].count = maxCount
		hk.minHeap.Fix(itemHeapIdx)
		return "", true
	}

	added := &node{key: item, count: maxCount}
	expelled, ok := hk.minHeap.Add(added)
	if !ok {
		return "", true
	}
	if expelled == added {
		return "", false
	}
	hk.expel(Item{Key: expelled.key, Count: expelled.count})
	return expelled.key, true
}

func (hk *HeavyKeeper) List() []Item {
	hk.mu.Lock()
	defer hk.mu.Unlock()

	nodes := hk.minHeap.Sorted()
	result := make([]Item, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, Item{Key: n.key, Count: n.count})
	}
	return result
}

func (hk *HeavyKeeper) Total() uint64 {
	hk.mu.Lock()
	defer hk.mu.Unlock()
	return hk.total
}

func (hk *HeavyKeeper) Expelled() <-chan Item {
	return hk.expelled
}

func (hk *HeavyKeeper) Fading() {
	hk.mu.Lock()
	defer hk.mu.Unlock()

	for _, row := range hk.buckets {
		for i := range row {
			row[i].count >>= 1
		}
	}
	hk.total >>= 1
	hk.minHeap.Each(func(n **node) { (*n).count >>= 1 })
	hk.minHeap.Reinit()
}

func (hk *HeavyKeeper) expel(item Item) {
	select {
	case hk.expelled <- item:
	default:
	}
}
