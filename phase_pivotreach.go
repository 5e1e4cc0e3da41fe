package dscc

// RunPivotReach marks, for every vertex that is the pivot of its WCC,
// the set of descendants reachable through out-edges and ancestors
// reachable through in-edges, both confined to the pivot's own WCC:
// spec.md §4.4. Grounded on original_source/include/scc_dcsc_regular.hpp's
// prop_pivots, comp_pivot_fwd and comp_pivot_bwd.
func RunPivotReach(rt Rt) {
	rt.LocalForAll(func(v VertexID, info *VertexInfo) {
		if !info.Active {
			return
		}
		if !info.IsSccPivot() {
			return
		}

		info.MarkDesc = true
		info.MarkPred = true
		info.MyMarker = Some(v)

		for _, u := range info.In.Slice() {
			rt.AsyncVisit(u, pivotReachBwd, info.WccPivot.ID, v)
		}
		for _, u := range info.Out.Slice() {
			rt.AsyncVisit(u, pivotReachFwd, info.WccPivot.ID, v)
		}
	})

	rt.Barrier()
}

// pivotReachFwd propagates a forward (descendant) mark from pivot
// along out-edges, confined to vertices sharing pivot's WCC label.
func pivotReachFwd(w VertexID, info *VertexInfo, rt Rt, args ...any) {
	if !info.Active || info.MarkDesc {
		return
	}
	pivot := args[0].(VertexID)
	marker := args[1].(VertexID)

	if info.WccPivot.ID != pivot {
		return
	}

	info.MarkDesc = true
	info.MyMarker = Some(marker)

	for _, u := range info.Out.Slice() {
		rt.AsyncVisit(u, pivotReachFwd, pivot, marker)
	}
}

// pivotReachBwd is the symmetric backward (ancestor) propagation along
// in-edges.
func pivotReachBwd(w VertexID, info *VertexInfo, rt Rt, args ...any) {
	if !info.Active || info.MarkPred {
		return
	}
	pivot := args[0].(VertexID)
	marker := args[1].(VertexID)

	if info.WccPivot.ID != pivot {
		return
	}

	info.MarkPred = true
	info.MyMarker = Some(marker)

	for _, u := range info.In.Slice() {
		rt.AsyncVisit(u, pivotReachBwd, pivot, marker)
	}
}
