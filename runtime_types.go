package dscc

import (
	"github.com/ailidani/dscc/runtime"
	"github.com/ailidani/dscc/runtime/local"
	"github.com/ailidani/dscc/store"
)

// Rt is the handle every DCSC phase receives: an asynchronous,
// partitioned VertexID -> *VertexInfo map plus the BSP collectives,
// instantiated from the generic runtime.Runtime.
type Rt = runtime.Runtime[VertexID, *VertexInfo]

// VisitFn is a handler dispatched against a single vertex's owning
// process.
type VisitFn = runtime.VisitFunc[VertexID, *VertexInfo]

// Cluster is the concrete local simulation of a DCSC process group.
type Cluster = local.Cluster[VertexID, *VertexInfo]

// NewCluster builds an n-process local vertex store.
func NewCluster(n int) *Cluster {
	return store.New[VertexID, *VertexInfo](n)
}

// SizeRt is the handle BuildReport uses for its secondary, partitioned
// comp_id -> count map. It shares the main store's partitioning scheme
// (the same VertexID keys, the same ring construction for a given
// process count), so a comp_id always routes to the same owner in both
// maps.
type SizeRt = runtime.Runtime[VertexID, *int64]

// SizeCluster is the concrete local simulation backing SizeRt.
type SizeCluster = local.Cluster[VertexID, *int64]

// NewSizeCluster builds an n-process local comp_id -> count store.
func NewSizeCluster(n int) *SizeCluster {
	return store.New[VertexID, *int64](n)
}
