package dscc

import "github.com/ailidani/dscc/lib"

// VertexSet is the typed adjacency set used for VertexInfo.in/.out,
// specialized from lib.Set to VertexID.
type VertexSet = lib.Set[VertexID]

// NewVertexSet returns an empty VertexSet.
func NewVertexSet() VertexSet {
	return lib.NewSet[VertexID]()
}

// VertexInfo is the sole distributed record. Every DCSC phase is a
// pattern of asynchronous visits that read and mutate one VertexInfo at
// a time; no field here is ever touched by more than one process.
type VertexInfo struct {
	// Out holds distinct out-neighbors.
	Out VertexSet
	// In holds distinct in-neighbors.
	In VertexSet

	// CompID is the final SCC label, valid iff Active is false.
	CompID OptionalID
	// Active reports whether this vertex still participates in future
	// phases.
	Active bool

	// MyPivot is this vertex's pivot-permuted identity for the current
	// iteration.
	MyPivot OptionalID
	// WccPivot is the smallest MyPivot seen so far by diffusion --
	// the subproblem this vertex belongs to.
	WccPivot OptionalID
	// MyMarker is the identity of the pivot that reached this vertex
	// (in either direction) during the current iteration.
	MyMarker OptionalID

	// MarkPred is true once this vertex has been reached backward from
	// the pivot (it is an ancestor of the pivot).
	MarkPred bool
	// MarkDesc is true once this vertex has been reached forward from
	// the pivot (it is a descendant of the pivot).
	MarkDesc bool
}

// NewVertexInfo returns a freshly ingested, active vertex with empty
// adjacency and every per-iteration field at its sentinel value.
func NewVertexInfo() *VertexInfo {
	return &VertexInfo{
		Out:    NewVertexSet(),
		In:     NewVertexSet(),
		Active: true,
	}
}

// ResetIterationFields clears every per-iteration scratch field back to
// its sentinel value. It does not touch Active/CompID/In/Out.
func (v *VertexInfo) ResetIterationFields() {
	v.MyPivot = None
	v.WccPivot = None
	v.MyMarker = None
	v.MarkPred = false
	v.MarkDesc = false
}

// IsSccPivot reports whether v is the pivot of its WCC for the current
// iteration: its own permuted identity is the minimum seen in its
// weakly connected component.
func (v *VertexInfo) IsSccPivot() bool {
	return v.Active && v.MyPivot.Valid && v.MyPivot.Equal(v.WccPivot)
}
