package dscc

import (
	"github.com/google/uuid"

	"github.com/ailidani/dscc/metrics"
)

// Report summarizes a converged DCSC run: the number of strongly
// connected components found and the size of the largest one, tagged
// with a run id for correlating logs and metrics across a distributed
// run.
type Report struct {
	RunID      uuid.UUID
	Iterations int
	SCCCount   uint64
	LargestSCC uint64
}

// BuildReport aggregates the converged vertex store into a Report, run
// once per process with that process's rank. A vertex counts as its
// SCC's representative exactly when comp_id equals its own id (true for
// every Trim-retired singleton, and for exactly the pivot of every
// Freeze-retired multi-vertex SCC), so summing that indicator gives the
// SCC count.
//
// Since an SCC's members are scattered across processes by the
// unrelated VertexID partitioning, the largest-SCC size needs its own
// distributed comp_id -> count map (sizes): seeded once per process,
// directly, for every vertex that process owns in the main store
// (mirroring Ingest's direct seeding, since neither map supports
// visit-created keys), then incremented by an AsyncVisit keyed on each
// vertex's comp_id.
//
// runID is generated once by the caller and passed in rather than
// minted here, so every process's Report carries the same id for a
// given run instead of each rolling its own.
func BuildReport(rt Rt, sizesCluster *SizeCluster, rank int, iterations int, runID uuid.UUID, m *metrics.Metrics) Report {
	sizes := sizesCluster.Runtime(rank)

	rt.LocalForAll(func(v VertexID, info *VertexInfo) {
		var zero int64
		sizesCluster.Put(v, &zero)
	})
	sizes.Barrier()

	var localCount int64
	rt.LocalForAll(func(v VertexID, info *VertexInfo) {
		if !info.CompID.Valid {
			return
		}
		if info.CompID.ID == v {
			localCount++
		}
		sizes.AsyncVisit(info.CompID.ID, sizeIncrement)
	})
	sizes.Barrier()

	var localMax int64
	sizes.LocalForAll(func(id VertexID, cnt *int64) {
		if *cnt > localMax {
			localMax = *cnt
		}
	})

	sccCount := rt.Sum(localCount)
	largest := sizes.Max(uint64(localMax))
	rt.Barrier()

	if m != nil {
		m.SCCCount.Set(float64(sccCount))
		m.LargestSCC.Set(float64(largest))
	}

	return Report{
		RunID:      runID,
		Iterations: iterations,
		SCCCount:   uint64(sccCount),
		LargestSCC: largest,
	}
}

// sizeIncrement is delivered once per vertex that belongs to SCC id.
func sizeIncrement(id VertexID, cnt *int64, rt SizeRt, args ...any) {
	*cnt++
}
