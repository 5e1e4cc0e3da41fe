package dscc

// RunFreezeAndReset retires every active vertex that was reached both
// forward and backward from its WCC's pivot (it lies in the pivot's
// SCC), and clears the per-iteration scratch fields of every other
// active vertex. It returns the number of vertices that were active on
// entry, summed across every process -- the driver's termination
// signal.
func RunFreezeAndReset(rt Rt) uint64 {
	var numActive int64

	rt.LocalForAll(func(v VertexID, info *VertexInfo) {
		if !info.Active {
			return
		}
		numActive++

		if info.MarkPred && info.MarkDesc {
			info.Active = false
			info.CompID = info.MyMarker
			return
		}

		info.ResetIterationFields()
	})

	total := rt.Sum(numActive)
	rt.Barrier()

	return uint64(total)
}
