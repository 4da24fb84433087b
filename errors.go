package genalloc

import "fmt"

// ErrNotLive is returned by strict-mode Retire when the index's slot has no
// live handle: the slot was never issued, or was already retired and not yet
// reused.
type ErrNotLive struct {
	Slot       uint64
	Generation uint64
}

func (e *ErrNotLive) Error() string {
	return fmt.Sprintf("retire rejected: slot %d has no live handle (got generation %d)", e.Slot, e.Generation)
}

// ErrStaleGeneration is returned by strict-mode Retire when the index's
// generation does not match the generation the allocator currently considers
// live for that slot. The handle is stale: the slot has been reused since it
// was issued.
type ErrStaleGeneration struct {
	Slot       uint64
	Generation uint64
	Live       uint64
}

func (e *ErrStaleGeneration) Error() string {
	return fmt.Sprintf("retire rejected: stale generation %d for slot %d (live generation is %d)", e.Generation, e.Slot, e.Live)
}
