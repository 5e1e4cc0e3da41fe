package dscc

import "container/heap"

// RunWccPivotDiffusion partitions the active subgraph into weakly
// connected components and gives each one a label equal to the
// minimum permuted identity among its vertices: spec.md §4.3. Grounded
// on original_source/include/scc_dcsc_regular.hpp's init_wcc_pivots,
// including its process-local priority queue and pre-barrier-callback
// drain-to-fixpoint shape; the priority queue itself is container/heap,
// the only priority-queue implementation available anywhere in the
// reference pack (justified in DESIGN.md).
//
// The queue lives in rt.Local(), not in a variable closed over by the
// handlers: a handler dispatched to a neighbor executes on that
// neighbor's own process, which must push onto its own queue, never
// the sender's. This mirrors the reference's function-local static
// queue, one instance per OS process; here it is one instance per
// simulated or real process, reached through Local() instead of
// address-space isolation.
func RunWccPivotDiffusion(rt Rt, perm *Permuter) {
	q := &pivotQueue{}
	heap.Init(q)
	*rt.Local() = q

	rt.LocalForAll(func(v VertexID, info *VertexInfo) {
		if !info.Active {
			return
		}
		info.MyPivot = Some(perm.Permute(v))
		info.WccPivot = info.MyPivot
		info.MyMarker = Some(v)
	})

	rt.Barrier()

	rt.LocalForAll(func(v VertexID, info *VertexInfo) {
		if !info.Active {
			return
		}

		for _, u := range info.In.Slice() {
			if pu := perm.Permute(u); pu < info.WccPivot.ID {
				return
			}
		}
		for _, u := range info.Out.Slice() {
			if pu := perm.Permute(u); pu < info.WccPivot.ID {
				return
			}
		}

		heap.Push(q, pivotQueueEntry{pivot: info.MyPivot.ID, vertex: v})
		registerPopAndSend(rt)
	})

	rt.Barrier()
}

// pivotQueueEntry is one pending (pivot label, vertex) pair, ordered
// ascending by pivot so the smallest label is drained first -- an
// efficiency device, not a correctness requirement (spec.md §4.3).
type pivotQueueEntry struct {
	pivot  VertexID
	vertex VertexID
}

type pivotQueue []pivotQueueEntry

func (q pivotQueue) Len() int           { return len(q) }
func (q pivotQueue) Less(i, j int) bool { return q[i].pivot < q[j].pivot }
func (q pivotQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *pivotQueue) Push(x any)        { *q = append(*q, x.(pivotQueueEntry)) }
func (q *pivotQueue) Pop() any {
	old := *q
	n := len(old)
	entry := old[n-1]
	*q = old[:n-1]
	return entry
}

// localQueue retrieves this process's own pivot queue from its
// scratch slot, set by RunWccPivotDiffusion before any cross-process
// message for this phase could possibly arrive.
func localQueue(rt Rt) *pivotQueue {
	return (*rt.Local()).(*pivotQueue)
}

// registerPopAndSend registers a one-shot pre-barrier callback that
// pops a single entry off this process's queue and broadcasts its
// label to the popped vertex's neighbors, re-registering itself
// whenever that broadcast causes further work.
func registerPopAndSend(rt Rt) {
	rt.RegisterPreBarrierCallback(func() {
		q := localQueue(rt)
		if q.Len() == 0 {
			return
		}
		entry := heap.Pop(q).(pivotQueueEntry)

		rt.LocalVisit(entry.vertex, func(v VertexID, info *VertexInfo, rt Rt, args ...any) {
			queuedPivot := args[0].(VertexID)
			if queuedPivot != info.WccPivot.ID {
				return
			}

			for _, u := range info.Out.Slice() {
				rt.AsyncVisit(u, wccRecvAndEnqueue, info.WccPivot.ID)
			}
			for _, u := range info.In.Slice() {
				rt.AsyncVisit(u, wccRecvAndEnqueue, info.WccPivot.ID)
			}
		}, entry.pivot)
	})
}

// wccRecvAndEnqueue is delivered to a neighbor of a vertex that just
// broadcast its wcc_pivot. If the incoming label improves on the
// recipient's current label, it adopts it, enqueues itself onto its
// own process's queue, and re-registers the pop-and-send callback.
func wccRecvAndEnqueue(w VertexID, info *VertexInfo, rt Rt, args ...any) {
	if !info.Active {
		return
	}
	pivot := args[0].(VertexID)

	if pivot < info.WccPivot.ID {
		info.WccPivot = Some(pivot)
		heap.Push(localQueue(rt), pivotQueueEntry{pivot: pivot, vertex: w})
		registerPopAndSend(rt)
	}
}
