// Package store is the thin domain adapter between the vertex-valued
// distributed map spec.md §3 describes and the generic partitioned
// engine in runtime/local: it supplies the byte encoding the
// partitioning ring hashes VertexIDs on.
package store

import (
	"encoding/binary"

	"github.com/ailidani/dscc/runtime/local"
)

// keyBytes is the partitioning key encoding shared by every process;
// it must match bit-for-bit across the whole cluster, which it always
// does since it is a pure function of the key.
func keyBytes[K ~uint32](k K) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(k))
	return b[:]
}

// New builds an n-process vertex store keyed by any uint32-based id
// type (VertexID for both the vertex store and the report's size map).
func New[K ~uint32, V any](n int) *local.Cluster[K, V] {
	return local.NewCluster[K, V](n, keyBytes[K])
}
