package local

import (
	"sync"
	"sync/atomic"

	"github.com/ailidani/dscc/lib"
	"github.com/ailidani/dscc/runtime"
)

type visitMsg[K comparable, V any] struct {
	key  K
	fn   runtime.VisitFunc[K, V]
	args []any
}

// process is one simulated rank. It owns a shard of the partitioned
// map, a FIFO inbox guarded by a mutex (swap-under-lock, the same
// buffer-pooling shape as log.getBuffer in the teacher's log package),
// and a one-shot pre-barrier callback queue.
type process[K comparable, V any] struct {
	cluster *Cluster[K, V]
	rank    int

	shard *lib.CMap[K, V]

	inboxMu sync.Mutex
	inbox   []visitMsg[K, V]

	callbacks []func()

	local any
}

func (p *process[K, V]) Local() *any { return &p.local }

func newProcess[K comparable, V any](c *Cluster[K, V], rank int) *process[K, V] {
	return &process[K, V]{
		cluster: c,
		rank:    rank,
		shard:   lib.NewCMap[K, V](),
	}
}

func (p *process[K, V]) AsyncVisit(key K, fn runtime.VisitFunc[K, V], args ...any) {
	owner := p.cluster.ownerOf(p.cluster.keyBytes(key))
	atomic.AddInt64(&p.cluster.inFlight, 1)
	msg := visitMsg[K, V]{key: key, fn: fn, args: args}
	target := p.cluster.procs[owner]
	target.inboxMu.Lock()
	target.inbox = append(target.inbox, msg)
	target.inboxMu.Unlock()
}

func (p *process[K, V]) LocalVisit(key K, fn runtime.VisitFunc[K, V], args ...any) {
	val, ok := p.shard.Get(key)
	if !ok {
		panic("dscc: LocalVisit on a key not owned by this process")
	}
	fn(key, val, p, args...)
}

func (p *process[K, V]) LocalForAll(fn func(K, V)) {
	p.shard.ForEach(fn)
}

func (p *process[K, V]) ForAll(fn func(K, V)) {
	p.Barrier()
	p.LocalForAll(fn)
}

func (p *process[K, V]) Sum(v int64) int64 {
	return p.reduce(func(acc *int64) { *acc += v }, v, 0)
}

func (p *process[K, V]) Min(v uint64) uint64 {
	u := p.reduceU64(v, func(acc, v uint64) uint64 {
		if v < acc {
			return v
		}
		return acc
	})
	return u
}

func (p *process[K, V]) Max(v uint64) uint64 {
	return p.reduceU64(v, func(acc, v uint64) uint64 {
		if v > acc {
			return v
		}
		return acc
	})
}

// reduce implements the int64 collective (Sum) via a mutex-guarded
// accumulator plus two barrier rounds: the first gathers every
// process's contribution, the second lets every process read the
// settled result before any of them resets the accumulator for the
// next call.
func (p *process[K, V]) reduce(combine func(acc *int64), v int64, seed int64) int64 {
	c := p.cluster
	c.reduceMu.Lock()
	if c.reduceCount == 0 {
		c.reduceI64 = seed
	}
	combine(&c.reduceI64)
	c.reduceCount++
	c.reduceMu.Unlock()

	c.barrier.wait()

	c.reduceMu.Lock()
	out := c.reduceI64
	c.reduceCount--
	if c.reduceCount == 0 {
		c.reduceI64 = 0
	}
	c.reduceMu.Unlock()

	c.barrier.wait()
	return out
}

func (p *process[K, V]) reduceU64(v uint64, combine func(acc, v uint64) uint64) uint64 {
	c := p.cluster
	c.reduceMu.Lock()
	if c.reduceCount == 0 {
		c.reduceU64 = v
	} else {
		c.reduceU64 = combine(c.reduceU64, v)
	}
	c.reduceCount++
	c.reduceMu.Unlock()

	c.barrier.wait()

	c.reduceMu.Lock()
	out := c.reduceU64
	c.reduceCount--
	if c.reduceCount == 0 {
		c.reduceU64 = 0
	}
	c.reduceMu.Unlock()

	c.barrier.wait()
	return out
}

func (p *process[K, V]) RegisterPreBarrierCallback(cb func()) {
	p.callbacks = append(p.callbacks, cb)
	atomic.AddInt64(&p.cluster.pendingCallback, 1)
}

// Barrier drains this process's inbox and callback queue to local
// quiescence, rendezvous with every other process, then checks the
// cluster-wide in-flight and pending-callback counters. Both are
// stable at that instant: no process can be executing a handler while
// blocked in the barrier, so nothing can mutate them until the next
// round starts. If either counter is non-zero, every process loops
// for another round; spec.md §6's barrier semantics.
func (p *process[K, V]) Barrier() {
	for {
		p.drainToLocalQuiescence()

		p.cluster.barrier.wait()

		done := atomic.LoadInt64(&p.cluster.inFlight) == 0 &&
			atomic.LoadInt64(&p.cluster.pendingCallback) == 0

		p.cluster.barrier.wait()

		if done {
			return
		}
	}
}

func (p *process[K, V]) drainToLocalQuiescence() {
	for {
		processedInbox := p.drainInboxOnce()
		processedCallback := p.drainCallbacksOnce()
		if !processedInbox && !processedCallback {
			return
		}
	}
}

func (p *process[K, V]) drainInboxOnce() bool {
	p.inboxMu.Lock()
	batch := p.inbox
	p.inbox = nil
	p.inboxMu.Unlock()

	if len(batch) == 0 {
		return false
	}
	for _, msg := range batch {
		val, ok := p.shard.Get(msg.key)
		if ok {
			msg.fn(msg.key, val, p, msg.args...)
		}
		atomic.AddInt64(&p.cluster.inFlight, -1)
	}
	return true
}

func (p *process[K, V]) drainCallbacksOnce() bool {
	if len(p.callbacks) == 0 {
		return false
	}
	batch := p.callbacks
	p.callbacks = nil
	for _, cb := range batch {
		atomic.AddInt64(&p.cluster.pendingCallback, -1)
		cb()
	}
	return true
}
