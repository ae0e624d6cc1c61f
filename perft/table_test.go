package perft

import "testing"

func TestTableProbeStore(t *testing.T) {
	tt := NewTable(1)
	if _, ok := tt.Probe(42, 3); ok {
		t.Fatalf("empty table reported a hit")
	}
	tt.Store(42, 3, 8902)
	if n, ok := tt.Probe(42, 3); !ok || n != 8902 {
		t.Fatalf("probe: got %d, %v want 8902, true", n, ok)
	}
	if _, ok := tt.Probe(42, 2); ok {
		t.Fatalf("hit at the wrong depth")
	}
	tt.Store(42, 3, 1)
	if n, _ := tt.Probe(42, 3); n != 1 {
		t.Fatalf("overwrite: got %d want 1", n)
	}
}

func TestTableEvictsShallowest(t *testing.T) {
	tt := NewTable(0) // a single cluster
	if tt.clusterCount != 1 {
		t.Fatalf("clusterCount: got %d want 1", tt.clusterCount)
	}
	for i := uint64(0); i < clusterSize; i++ {
		tt.Store(100+i, int(i)+2, i)
	}
	tt.Store(999, 9, 7)
	if _, ok := tt.Probe(100, 2); ok {
		t.Fatalf("shallowest entry survived eviction")
	}
	if n, ok := tt.Probe(999, 9); !ok || n != 7 {
		t.Fatalf("new entry: got %d, %v want 7, true", n, ok)
	}
	for i := uint64(1); i < clusterSize; i++ {
		if _, ok := tt.Probe(100+i, int(i)+2); !ok {
			t.Fatalf("entry %d evicted instead of the shallowest", i)
		}
	}
}
