package local

import "sync"

// cyclicBarrier is a reusable rendezvous point for a fixed set of n
// goroutines: the n-th arrival releases everyone, and the barrier is
// immediately ready for its next round. Grounded on the ack-counting
// shape of ailidani-paxi/quorum.go, generalized from "count a majority
// of acks" to "count all n arrivals" -- every process in a local
// cluster must agree before any of them may proceed.
type cyclicBarrier struct {
	mu       sync.Mutex
	cond     *sync.Cond
	n        int
	arrived  int
	gen      int
}

func newCyclicBarrier(n int) *cyclicBarrier {
	b := &cyclicBarrier{n: n}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// wait blocks the caller until n goroutines, across all callers, have
// called wait in the same round.
func (b *cyclicBarrier) wait() {
	b.mu.Lock()
	gen := b.gen
	b.arrived++
	if b.arrived == b.n {
		b.arrived = 0
		b.gen++
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
