package dscc

// RunTrim peels every active vertex that has no in-edge or no out-edge
// among other active vertices, cascading through retirements until the
// active subgraph is free of trivial SCCs.
func RunTrim(rt Rt) {
	rt.LocalForAll(func(v VertexID, info *VertexInfo) {
		trimIfTrivial(v, info, rt)
	})
	rt.Barrier()
}

// trimIfTrivial retires v if it currently has zero in- or out-degree,
// cascading the retirement to its remaining neighbors. A vertex may
// satisfy both conditions at once; retiring on the first and clearing
// both adjacency sets is sufficient, matching the reference's
// fallthrough (an emptied side from a completed retirement never
// issues a second round of visits, since both sides are cleared
// before return).
func trimIfTrivial(v VertexID, info *VertexInfo, rt Rt) {
	if !info.Active {
		return
	}

	if info.In.Len() == 0 {
		retireTrim(v, info, rt, true)
		return
	}

	if info.Out.Len() == 0 {
		retireTrim(v, info, rt, false)
	}
}

func retireTrim(v VertexID, info *VertexInfo, rt Rt, forward bool) {
	info.CompID = Some(v)
	info.Active = false

	if forward {
		for _, w := range info.Out.Slice() {
			rt.AsyncVisit(w, trimVisit, v, true)
		}
		info.Out = NewVertexSet()
	} else {
		for _, w := range info.In.Slice() {
			rt.AsyncVisit(w, trimVisit, v, false)
		}
		info.In = NewVertexSet()
	}
}

// trimVisit is the handler delivered to a neighbor of a just-retired
// vertex: it drops the retired vertex from the appropriate adjacency
// set, then re-checks whether that removal makes the recipient itself
// trivial, cascading further.
func trimVisit(w VertexID, info *VertexInfo, rt Rt, args ...any) {
	if !info.Active {
		return
	}

	sender := args[0].(VertexID)
	forward := args[1].(bool)

	if forward {
		info.In.Remove(sender)
	} else {
		info.Out.Remove(sender)
	}

	if info.In.Len() == 0 {
		retireTrim(w, info, rt, true)
		return
	}
	if info.Out.Len() == 0 {
		retireTrim(w, info, rt, false)
	}
}
