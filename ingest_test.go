package dscc

import (
	"strings"
	"testing"
)

func TestIngestSkipsBlankAndCommentLines(t *testing.T) {
	cluster := NewCluster(1)
	result, err := Ingest(strings.NewReader("# header\n\n0 1\n\n# trailing comment\n1 2\n"), cluster)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if result.Edges != 2 {
		t.Errorf("expected 2 edges, got %d", result.Edges)
	}
	if result.MinID != 1 || result.MaxID != 3 {
		t.Errorf("expected range [1,3], got [%v,%v]", result.MinID, result.MaxID)
	}
}

func TestIngestShiftsIdsByOne(t *testing.T) {
	cluster := NewCluster(1)
	if _, err := Ingest(strings.NewReader("0 0\n"), cluster); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	var found bool
	cluster.Runtime(0).LocalForAll(func(v VertexID, info *VertexInfo) {
		if v == 1 {
			found = true
			if info.Out.Len() != 1 || info.In.Len() != 1 {
				t.Errorf("expected self-loop vertex to have in/out degree 1, got in=%d out=%d", info.In.Len(), info.Out.Len())
			}
		} else {
			t.Errorf("unexpected vertex id %v: raw id 0 should shift to 1", v)
		}
	})
	if !found {
		t.Fatal("expected shifted vertex id 1 to be present")
	}
}

func TestIngestRejectsMalformedIds(t *testing.T) {
	cluster := NewCluster(1)
	if _, err := Ingest(strings.NewReader("a b\n"), cluster); err == nil {
		t.Fatal("expected a parse error for non-numeric vertex ids")
	}
}

func TestIngestDeduplicatesParallelEdges(t *testing.T) {
	cluster := NewCluster(1)
	result, err := Ingest(strings.NewReader("0 1\n0 1\n"), cluster)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if result.Edges != 2 {
		t.Errorf("Ingest counts every line, expected 2, got %d", result.Edges)
	}

	cluster.Runtime(0).LocalForAll(func(v VertexID, info *VertexInfo) {
		if v == 1 && info.Out.Len() != 1 {
			t.Errorf("adjacency is a set: expected out-degree 1 for a duplicated edge, got %d", info.Out.Len())
		}
	})
}
