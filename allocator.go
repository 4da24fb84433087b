package genalloc

import (
	"sync"
	"time"

	"github.com/hupe1980/genalloc/internal/liveset"
)

// Allocator hands out unique generational indices and reuses retired ones
// without handle collision across the generation boundary.
//
// The zero value is not usable; construct with New. The pointer returned by
// New is the shared-ownership handle: pass it to every goroutine that needs
// the allocator. A single mutex serializes Allocate and Retire, so the
// combined call sequence across goroutines is linearizable.
type Allocator[S, G Integer] struct {
	mu      sync.Mutex
	next    S
	retired []Index[S, G]

	// live is non-nil only in strict mode (WithStrictRetire).
	live *liveset.Set

	freshCount  uint64
	reuseCount  uint64
	retireCount uint64

	logger  *Logger
	metrics MetricsCollector
}

// New creates a zero-initialized allocator ready for concurrent use.
func New[S, G Integer](optFns ...Option) *Allocator[S, G] {
	opts := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	a := &Allocator[S, G]{
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}

	if opts.freeListCapacity > 0 {
		a.retired = make([]Index[S, G], 0, opts.freeListCapacity)
	}

	if opts.strictRetire {
		a.live = liveset.New()
	}

	return a
}

// Allocate returns a generational index that is distinct from every index
// currently live. If a retired index is available, the most recently retired
// one is reused with its generation advanced by one; otherwise a fresh slot
// is issued at generation zero. Allocate never fails and blocks only to
// acquire the allocator's mutex.
//
// Reuse order (currently LIFO) is an implementation detail; callers may rely
// only on uniqueness.
func (a *Allocator[S, G]) Allocate() Index[S, G] {
	start := time.Now()

	idx, reused := a.allocate()

	a.metrics.RecordAllocate(reused, time.Since(start))
	a.logger.LogAllocate(uint64(idx.slot), uint64(idx.generation), reused)

	return idx
}

func (a *Allocator[S, G]) allocate() (Index[S, G], bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n := len(a.retired); n > 0 {
		idx := a.retired[n-1]
		a.retired = a.retired[:n-1]
		idx.generation++
		a.reuseCount++

		if a.live != nil {
			a.live.Add(uint64(idx.slot), uint64(idx.generation))
		}

		return idx, true
	}

	idx := Index[S, G]{slot: a.next}
	a.next++
	a.freshCount++

	if a.live != nil {
		a.live.Add(uint64(idx.slot), uint64(idx.generation))
	}

	return idx, false
}

// Retire releases an index back to the allocator, making its slot eligible
// for future reuse.
//
// In the default mode Retire appends unconditionally and always returns nil:
// the allocator trusts the caller to retire only indices it currently holds
// live, exactly once. Double retirement or retirement of a foreign index is
// not detected; it makes that exact (slot, generation) pair reusable and can
// alias two live handles onto one slot. The error return is the extension
// point for stricter validation.
//
// With WithStrictRetire enabled, Retire rejects misuse: ErrNotLive when the
// slot has no live handle, ErrStaleGeneration when the generation does not
// match the live one. A rejected index is not added to the free list.
func (a *Allocator[S, G]) Retire(idx Index[S, G]) error {
	start := time.Now()

	err := a.retire(idx)

	a.metrics.RecordRetire(time.Since(start), err)
	a.logger.LogRetire(uint64(idx.slot), uint64(idx.generation), err)

	return err
}

func (a *Allocator[S, G]) retire(idx Index[S, G]) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.live != nil {
		slot, gen := uint64(idx.slot), uint64(idx.generation)

		liveGen, ok := a.live.Generation(slot)
		if !ok {
			return &ErrNotLive{Slot: slot, Generation: gen}
		}

		if liveGen != gen {
			return &ErrStaleGeneration{Slot: slot, Generation: gen, Live: liveGen}
		}

		a.live.Remove(slot)
	}

	a.retired = append(a.retired, idx)
	a.retireCount++

	return nil
}

// Stats is a snapshot of allocator state.
type Stats struct {
	NextSlot    uint64 // next never-issued slot value
	FreeCount   int    // retired indices awaiting reuse
	LiveCount   uint64 // live handles; tracked only in strict mode, else 0
	FreshAllocs uint64 // cumulative fresh allocations
	Reuses      uint64 // cumulative reuse allocations
	Retires     uint64 // cumulative successful retires
}

// Stats returns a consistent snapshot of the allocator's counters.
func (a *Allocator[S, G]) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := Stats{
		NextSlot:    uint64(a.next),
		FreeCount:   len(a.retired),
		FreshAllocs: a.freshCount,
		Reuses:      a.reuseCount,
		Retires:     a.retireCount,
	}

	if a.live != nil {
		s.LiveCount = a.live.Len()
	}

	return s
}
