package dscc

// RunEdgeShear removes every edge whose endpoints fall in different
// (mark_pred, mark_desc) quadrants of their WCC, since such an edge
// cannot lie in an SCC of the residual graph.
//
// Called after PivotReach and before FreezeAndReset, per the ordering
// resolved in DESIGN.md: Freeze clears MarkPred/MarkDesc on every
// vertex it does not retire, so Shear must read those fields while
// they are still live. The (T,T) quadrant -- the pivot's own SCC --
// is still active at this point, but its internal edges survive
// anyway since both endpoints share the same quadrant; Freeze retires
// those vertices in the same iteration regardless.
func RunEdgeShear(rt Rt) {
	rt.LocalForAll(func(v VertexID, info *VertexInfo) {
		if !info.Active {
			return
		}
		for _, w := range info.Out.Slice() {
			rt.AsyncVisit(w, edgeShearCheck, v, info.MarkPred, info.MarkDesc)
		}
	})

	rt.Barrier()
}

// edgeShearCheck runs at w, the head of an edge sent by its tail
// sender. If the two endpoints' quadrants differ, the edge cannot
// survive: w drops sender from its in-set, and asks sender to drop w
// from its out-set in turn, preserving the mirrored-adjacency
// invariant.
func edgeShearCheck(w VertexID, info *VertexInfo, rt Rt, args ...any) {
	if !info.Active {
		return
	}

	sender := args[0].(VertexID)
	sPred := args[1].(bool)
	sDesc := args[2].(bool)

	if info.MarkPred != sPred || info.MarkDesc != sDesc {
		info.In.Remove(sender)
		rt.AsyncVisit(sender, edgeShearRemoveOut, w)
	}
}

// edgeShearRemoveOut drops edge from sender's out-set: the reply half
// of a sheared edge.
func edgeShearRemoveOut(sender VertexID, info *VertexInfo, rt Rt, args ...any) {
	edge := args[0].(VertexID)
	info.Out.Remove(edge)
}
