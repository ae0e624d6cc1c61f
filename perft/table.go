package perft

import "unsafe"

const clusterSize = 4

// Table caches subtree node counts by position key and depth. Entries live
// in clusters of four; a full cluster evicts its shallowest entry.
type Table struct {
	entries      []entry
	clusterCount uint64
	hits         uint64
	probes       uint64
}

type entry struct {
	hash  uint64
	nodes uint64
	depth int32 // 0 marks an empty slot
}

// NewTable allocates a table of roughly mb megabytes.
func NewTable(mb int) *Table {
	entrySize := uint64(unsafe.Sizeof(entry{}))
	totalBytes := uint64(mb) * 1024 * 1024
	clusterCount := totalBytes / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	return &Table{
		entries:      make([]entry, clusterCount*clusterSize),
		clusterCount: clusterCount,
	}
}

// Probe returns the stored count for hash at exactly depth.
func (t *Table) Probe(hash uint64, depth int) (nodes uint64, ok bool) {
	t.probes++
	base := int(hash%t.clusterCount) * clusterSize
	for i := 0; i < clusterSize; i++ {
		e := &t.entries[base+i]
		if e.depth == int32(depth) && e.hash == hash {
			t.hits++
			return e.nodes, true
		}
	}
	return 0, false
}

// Store records a count, preferring an existing entry for the same key, then
// an empty slot, then the shallowest entry in the cluster.
func (t *Table) Store(hash uint64, depth int, nodes uint64) {
	base := int(hash%t.clusterCount) * clusterSize
	targetIdx := -1

	for i := 0; i < clusterSize; i++ {
		e := &t.entries[base+i]
		if e.depth == int32(depth) && e.hash == hash {
			targetIdx = base + i
			break
		}
	}
	if targetIdx == -1 {
		for i := 0; i < clusterSize; i++ {
			if t.entries[base+i].depth == 0 {
				targetIdx = base + i
				break
			}
		}
	}
	if targetIdx == -1 {
		targetIdx = base
		for i := 1; i < clusterSize; i++ {
			if t.entries[base+i].depth < t.entries[targetIdx].depth {
				targetIdx = base + i
			}
		}
	}

	t.entries[targetIdx] = entry{hash: hash, nodes: nodes, depth: int32(depth)}
}

// Stats reports probes and hits since the table was created.
func (t *Table) Stats() (probes, hits uint64) { return t.probes, t.hits }
