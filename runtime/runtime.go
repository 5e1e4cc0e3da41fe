// Package runtime defines the asynchronous, partitioned-map abstraction
// that every DCSC phase is written against: spec.md §6. The interfaces
// here carry no knowledge of vertices or SCCs -- they describe a generic
// key/value store sharded across a fixed set of processes, visited by
// one-sided handlers and synchronized by a BSP-style collective barrier.
//
// runtime/local implements this in-process, for tests and single-host
// runs.
package runtime

// VisitFunc is a handler dispatched against the owning process of a
// single key. The runtime guarantees val is non-nil and local to the
// process executing fn; fn may use rt to issue further visits, read
// collectives, or register a pre-barrier callback, all against its own
// process's view of the world.
type VisitFunc[K comparable, V any] func(key K, val V, rt Runtime[K, V], args ...any)

// Map is the partitioned key/value store. A key always belongs to
// exactly one process, decided by the runtime's partitioning scheme,
// never by the caller.
type Map[K comparable, V any] interface {
	// AsyncVisit dispatches fn against key's owning process. It never
	// blocks on delivery or execution; fn may run before or after
	// AsyncVisit returns, and is guaranteed to have run by the next
	// Barrier that follows it.
	AsyncVisit(key K, fn VisitFunc[K, V], args ...any)

	// LocalVisit invokes fn synchronously. key must be owned by the
	// calling process; calling it for a remote key is a programming
	// error.
	LocalVisit(key K, fn VisitFunc[K, V], args ...any)

	// LocalForAll invokes fn once for every key owned by the calling
	// process, without any collective synchronization.
	LocalForAll(fn func(K, V))

	// ForAll is the collective form of LocalForAll: it barriers first,
	// so every process sees the settled state of the map, then calls
	// LocalForAll on its own partition.
	ForAll(fn func(K, V))
}

// Collective groups the whole-cluster operations every process must
// call together, in the same order, for every iteration of the driver
// loop: spec.md §6.
type Collective interface {
	// Sum returns the sum of v across every process.
	Sum(v int64) int64
	// Min returns the minimum of v across every process.
	Min(v uint64) uint64
	// Max returns the maximum of v across every process.
	Max(v uint64) uint64

	// Barrier blocks until every process has called Barrier, every
	// in-flight AsyncVisit has been delivered and executed, and every
	// registered pre-barrier callback has been drained to a fixpoint.
	Barrier()

	// RegisterPreBarrierCallback queues cb to run, once, the next time
	// this process drains toward a barrier. cb may itself register a
	// further callback (e.g. to pop the next item off a local queue);
	// the runtime keeps draining until no process has a callback left
	// to run and no message is in flight anywhere.
	RegisterPreBarrierCallback(cb func())
}

// Runtime is the full handle a DCSC phase is given: a partitioned map
// plus the collectives needed to synchronize iterations.
type Runtime[K comparable, V any] interface {
	Map[K, V]
	Collective

	// Local returns a pointer to this process's private scratch slot:
	// a single value a phase may stash state in across a sequence of
	// handler invocations on this process (e.g. WccPivotDiffusion's
	// priority queue). It plays the role the reference implementation
	// gives a function-local static variable in a single-process-per-
	// address-space program; here it is one slot per simulated or real
	// process, touched only by handlers running on that process, so it
	// needs no synchronization. Callers must not assume any particular
	// value is already present.
	Local() *any
}
