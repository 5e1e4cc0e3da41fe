package dscc

import "testing"

// sccSizes groups the given vertices by their converged comp_id,
// returning the size of each group. Every vertex must have retired.
func sccSizes(t *testing.T, cluster *Cluster, nprocs int, vs ...VertexID) map[VertexID]int {
	t.Helper()
	sizes := make(map[VertexID]int)
	for _, v := range vs {
		comp := compIDOf(cluster, nprocs, v)
		if !comp.Valid {
			t.Fatalf("vertex %v never converged (still active)", v)
		}
		sizes[comp.ID]++
	}
	return sizes
}

func solveToCluster(t *testing.T, edgeList string, nprocs int) (*Cluster, int) {
	t.Helper()
	cluster, minID, maxID := buildCluster(t, edgeList, nprocs)

	results := runOnAllRanksCollect(cluster, nprocs, func(rt Rt) int {
		iterations, unterminated := RunDCSC(rt, minID, maxID, nil)
		if unterminated != 0 {
			t.Errorf("RunDCSC returned non-zero unterminated count %d", unterminated)
		}
		return iterations
	})
	return cluster, results[0]
}

func TestDCSCSingleEdge(t *testing.T) {
	for _, nprocs := range []int{1, 2, 4} {
		cluster, _ := solveToCluster(t, "0 1\n", nprocs)
		sizes := sccSizes(t, cluster, nprocs, 1, 2)
		if len(sizes) != 2 {
			t.Errorf("nprocs=%d: expected two singleton SCCs for a single edge, got %v", nprocs, sizes)
		}
		for comp, size := range sizes {
			if size != 1 {
				t.Errorf("nprocs=%d: comp %v expected size 1, got %d", nprocs, comp, size)
			}
		}
	}
}

func TestDCSCTriangleCycle(t *testing.T) {
	for _, nprocs := range []int{1, 2, 4} {
		cluster, _ := solveToCluster(t, "0 1\n1 2\n2 0\n", nprocs)
		sizes := sccSizes(t, cluster, nprocs, 1, 2, 3)
		if len(sizes) != 1 {
			t.Errorf("nprocs=%d: expected one SCC for a 3-cycle, got %v", nprocs, sizes)
		}
		for _, size := range sizes {
			if size != 3 {
				t.Errorf("nprocs=%d: expected the single SCC to have size 3, got %d", nprocs, size)
			}
		}
	}
}

func TestDCSCTwoDisjointCycles(t *testing.T) {
	for _, nprocs := range []int{1, 2, 4} {
		cluster, _ := solveToCluster(t, "0 1\n1 0\n2 3\n3 2\n", nprocs)

		comp12 := sccSizes(t, cluster, nprocs, 1, 2)
		comp34 := sccSizes(t, cluster, nprocs, 3, 4)

		if len(comp12) != 1 || comp12[firstKey(comp12)] != 2 {
			t.Errorf("nprocs=%d: expected {1,2} to be one SCC of size 2, got %v", nprocs, comp12)
		}
		if len(comp34) != 1 || comp34[firstKey(comp34)] != 2 {
			t.Errorf("nprocs=%d: expected {3,4} to be one SCC of size 2, got %v", nprocs, comp34)
		}

		id12 := compIDOf(cluster, nprocs, 1)
		id34 := compIDOf(cluster, nprocs, 3)
		if id12.Equal(id34) {
			t.Errorf("nprocs=%d: the two disjoint cycles should not share a comp_id, both got %v", nprocs, id12)
		}
	}
}

func TestDCSCChainWithCycle(t *testing.T) {
	for _, nprocs := range []int{1, 2, 4} {
		cluster, _ := solveToCluster(t, "0 1\n1 2\n2 3\n3 1\n", nprocs)

		comp1 := compIDOf(cluster, nprocs, 1)
		if !comp1.Valid || comp1.ID != 1 {
			t.Errorf("nprocs=%d: vertex 1 should form its own singleton SCC, got %v", nprocs, comp1)
		}

		group := sccSizes(t, cluster, nprocs, 2, 3, 4)
		if len(group) != 1 || group[firstKey(group)] != 3 {
			t.Errorf("nprocs=%d: {2,3,4} should form one SCC of size 3, got %v", nprocs, group)
		}
	}
}

func TestDCSCSelfLoopOnly(t *testing.T) {
	for _, nprocs := range []int{1, 2, 4} {
		cluster, _ := solveToCluster(t, "0 0\n", nprocs)
		comp := compIDOf(cluster, nprocs, 1)
		if !comp.Valid || comp.ID != 1 {
			t.Errorf("nprocs=%d: self-loop vertex should converge to its own singleton SCC, got %v", nprocs, comp)
		}
	}
}

func TestDCSCDag(t *testing.T) {
	for _, nprocs := range []int{1, 2, 4} {
		cluster, _ := solveToCluster(t, "0 1\n0 2\n1 3\n2 3\n", nprocs)
		sizes := sccSizes(t, cluster, nprocs, 1, 2, 3, 4)
		if len(sizes) != 4 {
			t.Errorf("nprocs=%d: expected four singleton SCCs in a DAG, got %v", nprocs, sizes)
		}
		for _, size := range sizes {
			if size != 1 {
				t.Errorf("nprocs=%d: every SCC in a DAG should be a singleton, got size %d", nprocs, size)
			}
		}
	}
}

func firstKey(m map[VertexID]int) VertexID {
	for k := range m {
		return k
	}
	return 0
}
