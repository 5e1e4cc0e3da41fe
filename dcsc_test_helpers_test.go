package dscc

import (
	"context"
	"strings"
	"sync"
	"testing"
)

// buildCluster ingests an edge list into a fresh nprocs-process
// cluster, returning the cluster and its discovered [min, max] range.
func buildCluster(t *testing.T, edgeList string, nprocs int) (*Cluster, VertexID, VertexID) {
	t.Helper()

	cluster := NewCluster(nprocs)
	_, err := Ingest(strings.NewReader(edgeList), cluster)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	minID, maxID := ^VertexID(0), VertexID(0)
	for rank := 0; rank < nprocs; rank++ {
		cluster.Runtime(rank).LocalForAll(func(v VertexID, info *VertexInfo) {
			if v < minID {
				minID = v
			}
			if v > maxID {
				maxID = v
			}
		})
	}
	return cluster, minID, maxID
}

// runOnAllRanks runs fn once per process, on its own goroutine, and
// waits for every rank to finish. Phases and the driver assume they
// are being driven this way -- one goroutine per simulated process,
// all calling the same sequence of collective operations.
func runOnAllRanks(cluster *Cluster, nprocs int, fn func(rt Rt)) {
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for rank := 0; rank < nprocs; rank++ {
		rank := rank
		go func() {
			defer wg.Done()
			fn(cluster.Runtime(rank))
		}()
	}
	wg.Wait()
}

// compIDOf returns the CompID assigned to vertex v, or None if it is
// still active.
func compIDOf(cluster *Cluster, nprocs int, v VertexID) OptionalID {
	var out OptionalID
	for rank := 0; rank < nprocs; rank++ {
		cluster.Runtime(rank).LocalForAll(func(id VertexID, info *VertexInfo) {
			if id == v {
				out = info.CompID
			}
		})
	}
	return out
}

// runOnAllRanksCollect is runOnAllRanks for phases that return a
// per-rank value (every BSP collective yields the same value on every
// rank, but writing results into a shared variable from concurrent
// goroutines is still a data race; a per-rank slice isn't).
func runOnAllRanksCollect[T any](cluster *Cluster, nprocs int, fn func(rt Rt) T) []T {
	out := make([]T, nprocs)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for rank := 0; rank < nprocs; rank++ {
		rank := rank
		go func() {
			defer wg.Done()
			out[rank] = fn(cluster.Runtime(rank))
		}()
	}
	wg.Wait()
	return out
}

func mustSolve(t *testing.T, edgeList string, nprocs int) Result {
	t.Helper()
	result, err := Solve(context.Background(), strings.NewReader(edgeList), nprocs, nil)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	return result
}
