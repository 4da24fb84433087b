// Package liveset tracks the live generation of issued slots.
//
// It backs strict retirement: membership is answered by a Roaring bitmap
// over slot values, and the generation table records which generation is
// currently live for each member slot. Not safe for concurrent use; the
// allocator serializes access under its own mutex.
package liveset

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// Set records, per live slot, the generation at which it was issued.
type Set struct {
	slots *roaring64.Bitmap
	gens  map[uint64]uint64
}

// New creates an empty Set.
func New() *Set {
	return &Set{
		slots: roaring64.New(),
		gens:  make(map[uint64]uint64),
	}
}

// Add marks slot as live at the given generation, replacing any previous
// record for the slot.
func (s *Set) Add(slot, gen uint64) {
	s.slots.Add(slot)
	s.gens[slot] = gen
}

// Contains reports whether slot currently has a live handle.
func (s *Set) Contains(slot uint64) bool {
	return s.slots.Contains(slot)
}

// Generation returns the live generation for slot. ok is false if the slot
// has no live handle.
func (s *Set) Generation(slot uint64) (gen uint64, ok bool) {
	if !s.slots.Contains(slot) {
		return 0, false
	}
	return s.gens[slot], true
}

// Remove clears the live record for slot. Removing an absent slot is a
// no-op.
func (s *Set) Remove(slot uint64) {
	s.slots.Remove(slot)
	delete(s.gens, slot)
}

// Len returns the number of live slots.
func (s *Set) Len() uint64 {
	return s.slots.GetCardinality()
}
