package dscc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// IngestResult summarizes one ingested edge-list: spec.md §6's external
// input contract and the min/max vertex discovery
// original_source/src/run_dcsc.cpp performs before the first Trim.
type IngestResult struct {
	Edges int
	MinID VertexID
	MaxID VertexID
}

// Ingest reads whitespace-separated `src dst` edge lines from r --
// `#`-prefixed and empty lines skipped, identifiers incremented by one
// on read to reserve 0 for sentinel use -- and seeds every vertex the
// edges mention into cluster. Grounded on
// original_source/include/graph_util.hpp's create_vertex_map, adapted
// from a streaming async-visit ingest (meaningless for a single
// in-memory local cluster) to a direct Put, since the local simulation
// has no real network boundary to cross during load.
func Ingest(r io.Reader, cluster *Cluster) (IngestResult, error) {
	infos := make(map[VertexID]*VertexInfo)
	get := func(id VertexID) *VertexInfo {
		if info, ok := infos[id]; ok {
			return info
		}
		info := NewVertexInfo()
		infos[id] = info
		return info
	}

	var edges int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		src, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return IngestResult{}, fmt.Errorf("dscc: parsing src vertex id %q: %w", fields[0], err)
		}
		dst, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return IngestResult{}, fmt.Errorf("dscc: parsing dst vertex id %q: %w", fields[1], err)
		}

		s := VertexID(src + 1)
		d := VertexID(dst + 1)

		get(s).Out.Add(d)
		get(d).In.Add(s)
		edges++
	}
	if err := scanner.Err(); err != nil {
		return IngestResult{}, fmt.Errorf("dscc: reading edge list: %w", err)
	}

	result := IngestResult{Edges: edges}
	first := true
	for id, info := range infos {
		cluster.Put(id, info)
		if first || id < result.MinID {
			result.MinID = id
		}
		if first || id > result.MaxID {
			result.MaxID = id
		}
		first = false
	}

	return result, nil
}
