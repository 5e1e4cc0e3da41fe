// Package local simulates a BSP cluster of processes as goroutines
// within a single Go process. It backs runtime.Runtime with in-memory
// shards and channel-free, mutex-guarded inboxes, and is the substrate
// the unit tests drive the DCSC phases against (spec.md §8.4's
// single-process and multi-process scenarios).
package local

import (
	"sync"

	"github.com/ailidani/dscc/lib"
	"github.com/ailidani/dscc/runtime"
)

// Cluster owns the shared state a fixed set of simulated processes
// rendezvous through: the partitioning ring, the in-flight message
// counter, and the pending-callback counter that together decide when
// a Barrier may release.
type Cluster[K comparable, V any] struct {
	procs    []*process[K, V]
	ring     *lib.HashRing[int]
	keyBytes func(K) []byte

	barrier *cyclicBarrier

	inFlight        int64
	pendingCallback int64

	reduceMu    sync.Mutex
	reduceI64   int64
	reduceU64   uint64
	reduceCount int
}

// NewCluster builds a Cluster of n simulated processes. keyBytes maps
// a key to the bytes the partitioning ring hashes on; it must be
// deterministic and must agree across every process (it always will,
// since every process runs the same Go code).
func NewCluster[K comparable, V any](n int, keyBytes func(K) []byte) *Cluster[K, V] {
	c := &Cluster[K, V]{
		ring:     new(lib.HashRing[int]),
		keyBytes: keyBytes,
		barrier:  newCyclicBarrier(n),
	}
	for i := 0; i < n; i++ {
		c.ring.Insert(i, []byte{byte(i), byte(i >> 8), byte(i >> 16), byte(i >> 24)})
	}
	c.procs = make([]*process[K, V], n)
	for i := 0; i < n; i++ {
		c.procs[i] = newProcess[K, V](c, i)
	}
	return c
}

// N returns the number of simulated processes.
func (c *Cluster[K, V]) N() int { return len(c.procs) }

// Runtime returns the Runtime handle owned by process rank. Callers
// typically launch one goroutine per rank, each driving the same code
// against its own Runtime(rank), so the whole cluster executes in
// lock-step SPMD fashion.
func (c *Cluster[K, V]) Runtime(rank int) runtime.Runtime[K, V] {
	return c.procs[rank]
}

// Put seeds key into the process that owns it, bypassing any visit
// machinery. Used by Ingest before the first Barrier, and by
// BuildReport to seed its size map.
func (c *Cluster[K, V]) Put(key K, val V) {
	owner := c.ownerOf(c.keyBytes(key))
	c.procs[owner].shard.Put(key, val)
}

// Owner returns the rank that owns key under the partitioning ring.
func (c *Cluster[K, V]) Owner(key K) int {
	return c.ownerOf(c.keyBytes(key))
}

func (c *Cluster[K, V]) ownerOf(keyBytes []byte) int {
	owner, ok := c.ring.Get(keyBytes)
	if !ok {
		panic("dscc: empty partitioning ring")
	}
	return owner
}
