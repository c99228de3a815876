// Package bitfield packs small fields into a single uint64 state word.
//
// Search puzzles often hash or compare millions of states; keeping a state
// in one machine word makes it a cheap map key. Field and Array describe
// where values live inside the word, and their Set methods return a new
// word instead of modifying one.
package bitfield

import "fmt"

// @Author KHighness
// @Update 2026-10-19

// Field is a value stored at Offset and masked by Mask.
type Field struct {
	Offset uint
	Mask   uint64
}

// NewField returns a field of the given width in bits at offset.
func NewField(offset, bits uint) Field {
	return Field{Offset: offset, Mask: mask(bits)}
}

// Get extracts the field from w.
func (f Field) Get(w uint64) uint64 {
	return (w >> f.Offset) & f.Mask
}

// Set returns w with the field replaced by v. Bits of v outside Mask are
// dropped.
func (f Field) Set(w, v uint64) uint64 {
	return (w &^ (f.Mask << f.Offset)) | ((v & f.Mask) << f.Offset)
}

// Array is a run of equally sized elements starting at Offset.
type Array struct {
	Offset uint
	Bits   uint
	Mask   uint64
}

// NewArray returns an array of elements bits wide at offset.
func NewArray(offset, bits uint) Array {
	return Array{Offset: offset, Bits: bits, Mask: mask(bits)}
}

// At returns the Field of element i.
func (a Array) At(i int) Field {
	return Field{Offset: uint(i)*a.Bits + a.Offset, Mask: a.Mask}
}

// Get extracts element i from w.
func (a Array) Get(w uint64, i int) uint64 { return a.At(i).Get(w) }

// Set returns w with element i replaced by v.
func (a Array) Set(w uint64, i int, v uint64) uint64 { return a.At(i).Set(w, v) }

func mask(bits uint) uint64 {
	if bits > 64 {
		panic(fmt.Sprintf("bitfield: %d bits do not fit in a word", bits))
	}
	if bits == 64 {
		return ^uint64(0)
	}
	return 1<<bits - 1
}
