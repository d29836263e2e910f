// Package unionfind implements the weighted, path-compressing disjoint-set
// structure (C4) that backs cluster assembly: elements start each in their
// own singleton cluster, merge pairwise, and can be read back out grouped
// by final cluster membership.
package unionfind

import "sort"

// UnionFind tracks cluster membership for N elements addressed 0..N-1.
type UnionFind struct {
	parent       []uint32
	clusterSizes []uint32
	numClusters  int
}

// New returns a UnionFind over n elements, each its own singleton cluster.
func New(n int) *UnionFind {
	uf := &UnionFind{
		parent:       make([]uint32, n),
		clusterSizes: make([]uint32, n),
		numClusters:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = uint32(i)
		uf.clusterSizes[i] = 1
	}
	return uf
}

// N returns the number of elements.
func (uf *UnionFind) N() int { return len(uf.parent) }

// NumClusters returns the current number of distinct clusters.
func (uf *UnionFind) NumClusters() int { return uf.numClusters }

// Find returns the root element identifying i's cluster, path-compressing
// every node visited along the way.
func (uf *UnionFind) Find(i uint32) uint32 {
	base := i
	for uf.parent[base] != base {
		base = uf.parent[base]
	}
	for i != base {
		next := uf.parent[i]
		uf.parent[i] = base
		i = next
	}
	return base
}

// Size returns the number of elements in i's cluster.
func (uf *UnionFind) Size(i uint32) uint32 {
	return uf.clusterSizes[uf.Find(i)]
}

// Union merges the clusters containing i and j. The smaller cluster is
// grafted onto the larger; ties favor the lower root id as the surviving
// root, matching the union-find used to build clusters deterministically
// regardless of merge order.
func (uf *UnionFind) Union(i, j uint32) {
	a, b := uf.Find(i), uf.Find(j)
	if a == b {
		return
	}
	if uf.clusterSizes[a] < uf.clusterSizes[b] || (uf.clusterSizes[a] == uf.clusterSizes[b] && a > b) {
		uf.parent[a] = uf.parent[b]
		uf.clusterSizes[b] += uf.clusterSizes[a]
		uf.clusterSizes[a] = 0
	} else {
		uf.parent[b] = uf.parent[a]
		uf.clusterSizes[a] += uf.clusterSizes[b]
		uf.clusterSizes[b] = 0
	}
	uf.numClusters--
}

// OrderedByCluster returns every element id, grouped so that elements
// sharing a cluster are contiguous; group order and within-group order are
// both by ascending root id, then by element id.
func (uf *UnionFind) OrderedByCluster() []uint32 {
	n := uf.N()
	roots := make([]uint32, n)
	for i := 0; i < n; i++ {
		roots[i] = uf.Find(uint32(i))
	}
	ordered := make([]uint32, n)
	for i := range ordered {
		ordered[i] = uint32(i)
	}
	sort.SliceStable(ordered, func(x, y int) bool {
		rx, ry := roots[ordered[x]], roots[ordered[y]]
		if rx != ry {
			return rx < ry
		}
		return ordered[x] < ordered[y]
	})
	return ordered
}

// GetCollapsedClusterIDs returns, for every element, a dense 0-based cluster
// id consistent with OrderedByCluster's grouping. When include is non-nil,
// only elements with include[i] true are assigned; all others are left at
// the zero value in the returned slice and should be ignored by the caller.
func (uf *UnionFind) GetCollapsedClusterIDs(include []bool) []uint32 {
	ordered := uf.OrderedByCluster()
	newIDs := make([]uint32, uf.N())

	currentNewID := uint32(0)
	var lastRoot uint32
	seen := false
	for _, j := range ordered {
		if include != nil && !include[j] {
			continue
		}
		root := uf.Find(j)
		if !seen {
			seen = true
			lastRoot = root
		}
		if root != lastRoot {
			currentNewID++
		}
		newIDs[j] = currentNewID
		lastRoot = root
	}
	return newIDs
}
