package genalloc

import "fmt"

// Integer is the capability set required of slot and generation types: zero
// value, increment by one, copy, equality and hashing. Every built-in integer
// type (and any type defined on one) qualifies.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Index is a generational index: a slot paired with the generation at which
// it was issued. The slot identifies a logical position; the generation
// disambiguates reuse of that position over time.
//
// Index values are immutable and comparable. Two indices are equal iff both
// slot and generation match, so an Index can key a map directly.
type Index[S, G Integer] struct {
	slot       S
	generation G
}

// NewIndex constructs an Index from raw parts. Most callers receive indices
// from Allocator.Allocate; NewIndex exists for rebuilding handles from
// externally stored parts and for tests.
func NewIndex[S, G Integer](slot S, generation G) Index[S, G] {
	return Index[S, G]{slot: slot, generation: generation}
}

// Slot returns the positional component of the index.
func (i Index[S, G]) Slot() S { return i.slot }

// Generation returns the reuse counter of the index.
func (i Index[S, G]) Generation() G { return i.generation }

func (i Index[S, G]) String() string {
	return fmt.Sprintf("Index(slot=%d, gen=%d)", uint64(i.slot), uint64(i.generation))
}
