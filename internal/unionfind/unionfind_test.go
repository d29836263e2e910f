package unionfind

import "testing"

func TestNewIsAllSingletons(t *testing.T) {
	uf := New(10)
	if uf.N() != 10 {
		t.Fatalf("N() = %d, want 10", uf.N())
	}
	if uf.NumClusters() != 10 {
		t.Fatalf("NumClusters() = %d, want 10", uf.NumClusters())
	}
	for i := uint32(0); i < 10; i++ {
		if uf.Find(i) != i {
			t.Errorf("Find(%d) = %d, want %d", i, uf.Find(i), i)
		}
		if uf.Size(i) != 1 {
			t.Errorf("Size(%d) = %d, want 1", i, uf.Size(i))
		}
	}
}

func TestUnionWeightedByClusterSize(t *testing.T) {
	uf := New(10)
	uf.Union(0, 7) // both size 1 -> tie broken by lower root: 7 joins 0
	uf.Union(3, 2) // both size 1 -> 3 joins 2
	uf.Union(8, 7) // 8 (size 1) joins the larger 0-cluster
	uf.Union(1, 2) // 1 (size 1) joins the larger 2-cluster

	wantRoot := map[uint32]uint32{
		0: 0, 7: 0, 8: 0,
		2: 2, 3: 2, 1: 2,
		4: 4, 5: 5, 6: 6, 9: 9,
	}
	for elem, want := range wantRoot {
		if got := uf.Find(elem); got != want {
			t.Errorf("Find(%d) = %d, want %d", elem, got, want)
		}
	}
	if uf.NumClusters() != 6 {
		t.Errorf("NumClusters() = %d, want 6", uf.NumClusters())
	}
	if got := uf.Size(0); got != 3 {
		t.Errorf("Size(0) = %d, want 3", got)
	}
	if got := uf.Size(2); got != 3 {
		t.Errorf("Size(2) = %d, want 3", got)
	}
}

func TestUnionSameClusterIsNoop(t *testing.T) {
	uf := New(4)
	uf.Union(0, 1)
	before := uf.NumClusters()
	uf.Union(1, 0)
	if uf.NumClusters() != before {
		t.Errorf("re-unioning the same cluster changed NumClusters: %d -> %d", before, uf.NumClusters())
	}
}

func TestOrderedByClusterGroupsContiguously(t *testing.T) {
	uf := New(10)
	uf.Union(0, 7)
	uf.Union(3, 2)
	uf.Union(8, 7)
	uf.Union(1, 2)
	uf.Union(9, 2)

	ordered := uf.OrderedByCluster()
	if len(ordered) != 10 {
		t.Fatalf("len(ordered) = %d, want 10", len(ordered))
	}
	seen := map[uint32]bool{}
	for i, elem := range ordered {
		root := uf.Find(elem)
		if i > 0 {
			prevRoot := uf.Find(ordered[i-1])
			if prevRoot != root && seen[root] {
				t.Fatalf("cluster %d is not contiguous in ordered output", root)
			}
		}
		seen[root] = true
	}
}

func TestGetCollapsedClusterIDsDense(t *testing.T) {
	uf := New(6)
	uf.Union(0, 1)
	uf.Union(2, 3)
	// element 4 and 5 stay singletons

	ids := uf.GetCollapsedClusterIDs(nil)
	if ids[0] != ids[1] {
		t.Errorf("elements 0 and 1 should share a collapsed id: %d vs %d", ids[0], ids[1])
	}
	if ids[2] != ids[3] {
		t.Errorf("elements 2 and 3 should share a collapsed id: %d vs %d", ids[2], ids[3])
	}
	distinct := map[uint32]bool{}
	for _, id := range ids {
		distinct[id] = true
	}
	if len(distinct) != 4 {
		t.Errorf("expected 4 distinct collapsed ids, got %d", len(distinct))
	}
}

func TestGetCollapsedClusterIDsFiltersInclude(t *testing.T) {
	uf := New(4)
	uf.Union(0, 1)
	include := []bool{true, true, false, true}
	ids := uf.GetCollapsedClusterIDs(include)
	if ids[0] != ids[1] {
		t.Errorf("elements 0 and 1 should share a collapsed id")
	}
	if ids[0] == ids[3] {
		t.Errorf("element 3 is a singleton and should not share 0's id")
	}
}
