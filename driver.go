package dscc

import (
	"github.com/ailidani/dscc/log"
	"github.com/ailidani/dscc/metrics"
)

const goldenRatio64 = 0x9E3779B97F4A7C15

// RunDCSC drives the DCSC iteration to completion on one process.
// minID and maxID bound the permuter's domain and must be identical --
// already collectively agreed -- on every process. m may be nil, in
// which case no metrics are recorded. It returns the number of
// iterations run and the final barrier-reduced active-vertex count
// (always zero on convergence).
//
// Shear runs before Freeze so it reads PivotReach's live MarkPred/
// MarkDesc quadrants while they still distinguish survivors; Freeze
// clears those fields on every vertex it does not retire, which would
// leave Shear with nothing to compare against if it ran afterward. See
// DESIGN.md for the full resolution of this ordering decision.
func RunDCSC(rt Rt, minID, maxID VertexID, m *metrics.Metrics) (iterations int, unterminated uint64) {
	unterminated = 1

	for unterminated != 0 {
		observe(m, "trim", func() { RunTrim(rt) })

		seed := uint64(goldenRatio64) + uint64(iterations)
		perm := NewPermuter(minID, maxID, seed)

		observe(m, "wcc_pivot_diffusion", func() { RunWccPivotDiffusion(rt, perm) })
		observe(m, "pivot_reach", func() { RunPivotReach(rt) })
		observe(m, "edge_shear", func() { RunEdgeShear(rt) })
		observe(m, "freeze_and_reset", func() { unterminated = RunFreezeAndReset(rt) })

		if m != nil {
			m.Iterations.Inc()
			m.ActiveVertices.Set(float64(unterminated))
		}

		log.Infof("dcsc: iteration %d left %d unterminated", iterations, unterminated)
		iterations++
	}

	rt.Barrier()
	return iterations, unterminated
}

func observe(m *metrics.Metrics, phase string, fn func()) {
	if m == nil {
		fn()
		return
	}
	m.ObservePhase(phase, fn)
}
