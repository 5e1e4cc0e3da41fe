package dscc

import (
	"context"
	"io"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ailidani/dscc/metrics"
)

// Result is the outcome of a complete Solve run.
type Result struct {
	Ingest IngestResult
	Report Report
}

// Solve ingests an edge list, runs DCSC to convergence, and builds a
// report, simulating nprocs processes as goroutines. Ingest runs once
// up front and seeds every process's shard directly; then every process
// runs the identical sequence (discover the permuter's domain via a
// Min/Max collective, drive DCSC, report), synchronized only
// through the shared Cluster's barriers and collectives -- true SPMD,
// no leader process. m may be nil to skip metrics recording entirely.
func Solve(ctx context.Context, r io.Reader, nprocs int, m *metrics.Metrics) (Result, error) {
	cluster := NewCluster(nprocs)

	ingestResult, err := Ingest(r, cluster)
	if err != nil {
		return Result{}, err
	}

	sizes := NewSizeCluster(nprocs)
	runID := uuid.New()

	var reports []Report
	reportCh := make(chan Report, nprocs)

	g, _ := errgroup.WithContext(ctx)
	for rank := 0; rank < nprocs; rank++ {
		rank := rank
		g.Go(func() error {
			rt := cluster.Runtime(rank)

			// Sentinels so a process owning no local vertices cannot
			// skew the collective min/max.
			minID, maxID := ^VertexID(0), VertexID(0)
			rt.LocalForAll(func(v VertexID, info *VertexInfo) {
				if v < minID {
					minID = v
				}
				if v > maxID {
					maxID = v
				}
			})
			minID = VertexID(rt.Min(uint64(minID)))
			maxID = VertexID(rt.Max(uint64(maxID)))
			rt.Barrier()

			// Only rank 0 records driver metrics, so the iteration
			// counter advances once per iteration, not once per process.
			driverMetrics := m
			if rank != 0 {
				driverMetrics = nil
			}
			iterations, _ := RunDCSC(rt, minID, maxID, driverMetrics)

			report := BuildReport(rt, sizes, rank, iterations, runID, m)
			reportCh <- report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	close(reportCh)
	for r := range reportCh {
		reports = append(reports, r)
	}

	// Every process computes the same collectively-reduced report; any
	// one of them is the answer.
	return Result{Ingest: ingestResult, Report: reports[0]}, nil
}
