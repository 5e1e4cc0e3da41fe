package refscc

import (
	"sort"
	"testing"
)

func sccSetOf(t *testing.T, sccs [][]int, v int) []int {
	for _, c := range sccs {
		for _, u := range c {
			if u == v {
				sorted := append([]int{}, c...)
				sort.Ints(sorted)
				return sorted
			}
		}
	}
	t.Fatalf("vertex %d not found in any SCC", v)
	return nil
}

func TestSCCTriangle(t *testing.T) {
	g := NewGraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 1)

	sccs := SCC(g)
	got := sccSetOf(t, sccs, 1)
	if len(got) != 3 {
		t.Fatalf("expected one SCC of size 3, got %v", got)
	}
}

func TestSCCChainWithCycle(t *testing.T) {
	g := NewGraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 2)

	sccs := SCC(g)
	if len(sccs) != 2 {
		t.Fatalf("expected 2 SCCs, got %d: %v", len(sccs), sccs)
	}
	cycle := sccSetOf(t, sccs, 2)
	if len(cycle) != 3 {
		t.Fatalf("expected cycle SCC of size 3, got %v", cycle)
	}
}

func TestSCCDag(t *testing.T) {
	g := NewGraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 4)
	g.AddEdge(3, 4)

	sccs := SCC(g)
	if len(sccs) != 4 {
		t.Fatalf("expected 4 singleton SCCs, got %d: %v", len(sccs), sccs)
	}
}
