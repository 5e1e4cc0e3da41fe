package dscc

import "testing"

// wccPivotsOf returns the WccPivot recorded for each of the given
// active vertices.
func wccPivotsOf(cluster *Cluster, nprocs int, vs ...VertexID) map[VertexID]OptionalID {
	want := make(map[VertexID]bool, len(vs))
	for _, v := range vs {
		want[v] = true
	}
	out := make(map[VertexID]OptionalID, len(vs))
	for rank := 0; rank < nprocs; rank++ {
		cluster.Runtime(rank).LocalForAll(func(v VertexID, info *VertexInfo) {
			if want[v] {
				out[v] = info.WccPivot
			}
		})
	}
	return out
}

func TestRunWccPivotDiffusionAgreesWithinComponent(t *testing.T) {
	for _, nprocs := range []int{1, 2, 4} {
		// Two disjoint 2-cycles: {1,2} and {3,4}.
		cluster, minID, maxID := buildCluster(t, "0 1\n1 0\n2 3\n3 2\n", nprocs)

		runOnAllRanks(cluster, nprocs, func(rt Rt) {
			perm := NewPermuter(minID, maxID, 1)
			RunWccPivotDiffusion(rt, perm)
		})

		pivots := wccPivotsOf(cluster, nprocs, 1, 2, 3, 4)
		for _, id := range pivots {
			if !id.Valid {
				t.Fatalf("nprocs=%d: every active vertex should carry a valid WccPivot, got %+v", nprocs, pivots)
			}
		}

		if !pivots[1].Equal(pivots[2]) {
			t.Errorf("nprocs=%d: {1,2} should share a WccPivot, got %v vs %v", nprocs, pivots[1], pivots[2])
		}
		if !pivots[3].Equal(pivots[4]) {
			t.Errorf("nprocs=%d: {3,4} should share a WccPivot, got %v vs %v", nprocs, pivots[3], pivots[4])
		}
	}
}

func TestRunWccPivotDiffusionPropagatesAcrossChain(t *testing.T) {
	// A single weakly connected path 1-2-3-4-5 (directed as a chain, but
	// diffusion spreads along both in- and out-edges so it is one WCC).
	cluster, minID, maxID := buildCluster(t, "0 1\n1 2\n2 3\n3 4\n", 3)

	runOnAllRanks(cluster, 3, func(rt Rt) {
		perm := NewPermuter(minID, maxID, 42)
		RunWccPivotDiffusion(rt, perm)
	})

	pivots := wccPivotsOf(cluster, 3, 1, 2, 3, 4, 5)
	first := pivots[1]
	for v, p := range pivots {
		if !p.Equal(first) {
			t.Errorf("vertex %v: expected shared WccPivot %v, got %v", v, first, p)
		}
	}
}
