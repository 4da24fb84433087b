// Package genalloc provides a generational index allocator for Go.
//
// A generational index pairs a slot number with a generation counter. Slots
// are dense and reusable, which makes them ideal as handles into array-backed
// tables (entity-component systems, object pools, scene graphs). The
// generation disambiguates reuse: when a retired slot is handed out again its
// generation has advanced, so handles to the previous occupant no longer
// match.
//
// Features:
//
//   - Generic over slot and generation integer types: Allocator[uint64, uint64],
//     Allocator[uint32, uint16], ...
//   - Thread-safe: a single allocator pointer can be shared across goroutines
//   - LIFO reuse of retired slots for cache locality
//   - Opt-in strict retirement that rejects stale or double retires
//   - Pluggable structured logging (log/slog) and metrics collection
//
// # Quick Start
//
//	a := genalloc.New[uint64, uint64]()
//
//	first := a.Allocate()  // (slot=0, gen=0)
//	second := a.Allocate() // (slot=1, gen=0)
//
//	_ = a.Retire(first)
//
//	reused := a.Allocate() // (slot=0, gen=1)
//
// Index values are comparable and hashable, so they can key a map directly:
//
//	table := map[genalloc.Index[uint64, uint64]]Entity{}
//	table[first] = e
//
// # Caller Contract
//
// By default the allocator trusts callers to retire only indices they
// currently hold live, exactly once. Retiring twice, or retiring an index the
// allocator never issued, silently makes that exact pair eligible for reuse
// and can alias two live handles onto one slot. Enable WithStrictRetire to
// upgrade such misuse to typed errors.
package genalloc
