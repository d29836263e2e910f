// Package cluster implements the R-tree-accelerated clustering engine
// (C5): the intersecting clusterer and the DBSCAN clusterer, both built on
// top of internal/unionfind and an Engine adapter for the geometry
// predicates neither the R-tree nor the union-find can answer on their own.
package cluster

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/postgis/lwgeom/internal/engine"
	"github.com/postgis/lwgeom/internal/geom"
	"github.com/postgis/lwgeom/internal/ptarray"
	"github.com/postgis/lwgeom/internal/unionfind"
)

// Engine is the narrow surface this package needs from the external
// 2D engine adapter (spec §6.3), kept as an interface — exactly as
// pkg/s57.Parser decouples the facade from one concrete implementation —
// so a future non-reference engine can be swapped in without touching
// this package.
type Engine interface {
	Intersects(a, b geom.Geometry) (bool, error)
	Prepare(g geom.Geometry) (*engine.PreparedGeometry, error)
	PreparedIntersects(p *engine.PreparedGeometry, other geom.Geometry) (bool, error)
	Distance2D(a, b geom.Geometry, tolerance float64) (float64, error)
	EnvelopeOf(g geom.Geometry) (ptarray.Box2D, bool)
}

// Options carries the clustering engine's runtime configuration: the
// DBSCAN epsilon/min-points pair, and an optional cooperative cancellation
// check threaded the way pkg/v1.LoadOptions threads Progress/SkipErrors
// through a long-running loop, since §5 gives the core no threads of its
// own to cancel from the outside.
type Options struct {
	Eps       float64
	MinPoints int
	// Cancel, if non-nil, is polled between outer-loop iterations; a true
	// result aborts the operation with a ResourceError.
	Cancel func() bool
}

// DefaultOptions returns single-point (MinPoints=1) DBSCAN-shaped defaults.
func DefaultOptions() Options {
	return Options{Eps: 0, MinPoints: 1}
}

// ResourceError reports that the caller's cancellation hook fired mid-run.
type ResourceError struct{ Reason string }

func (e *ResourceError) Error() string { return "cluster: " + e.Reason }

type rtreeEntry struct {
	idx   int
	bbox  ptarray.Box2D
	point bool
}

func (e rtreeEntry) Bounds() rtreego.Rect {
	xmin, ymin, xmax, ymax := e.bbox.XMin, e.bbox.YMin, e.bbox.XMax, e.bbox.YMax
	if xmax < xmin {
		xmax = xmin
	}
	if ymax < ymin {
		ymax = ymin
	}
	const minSpan = 1e-10
	if xmax-xmin < minSpan {
		xmax = xmin + minSpan
	}
	if ymax-ymin < minSpan {
		ymax = ymin + minSpan
	}
	rect, _ := rtreego.NewRect(rtreego.Point{xmin, ymin}, []float64{xmax - xmin, ymax - ymin})
	return rect
}

const rtreeNodeCapacity = 25

func buildIndex(eng Engine, geoms []geom.Geometry, expand float64) (*rtreego.Rtree, []bool) {
	tree := rtreego.NewTree(2, rtreeNodeCapacity, 2*rtreeNodeCapacity)
	present := make([]bool, len(geoms))
	for i, g := range geoms {
		if geom.IsEmpty(g) {
			continue
		}
		box, ok := eng.EnvelopeOf(g)
		if !ok {
			continue
		}
		if expand != 0 {
			box.XMin -= expand
			box.YMin -= expand
			box.XMax += expand
			box.YMax += expand
		}
		tree.Insert(rtreeEntry{idx: i, bbox: box, point: g.GeomType() == geom.TypePoint})
		present[i] = true
	}
	return tree, present
}

func queryCandidates(tree *rtreego.Rtree, box ptarray.Box2D) []int {
	rect, err := rtreego.NewRect(rtreego.Point{box.XMin, box.YMin}, []float64{
		math.Max(box.XMax-box.XMin, 1e-10), math.Max(box.YMax-box.YMin, 1e-10),
	})
	if err != nil {
		return nil
	}
	hits := tree.SearchIntersect(rect)
	ids := make([]int, len(hits))
	for i, h := range hits {
		ids[i] = h.(rtreeEntry).idx
	}
	return ids
}

func isPointLike(t geom.Type) bool {
	return t == geom.TypePoint || t == geom.TypeMultiPoint
}

// ClusterIntersecting partitions geoms into the minimum number of groups
// such that any two geometries in the same group are connected by a chain
// of pairwise intersections (spec §4.5.1).
func ClusterIntersecting(eng Engine, geoms []geom.Geometry, opts Options) ([]geom.Geometry, error) {
	n := len(geoms)
	uf := unionfind.New(n)
	if n > 1 {
		tree, present := buildIndex(eng, geoms, 0)
		for p := 0; p < n; p++ {
			if !present[p] {
				continue
			}
			if opts.Cancel != nil && opts.Cancel() {
				return nil, &ResourceError{Reason: "cancelled during cluster_intersecting"}
			}
			box, _ := eng.EnvelopeOf(geoms[p])
			candidates := queryCandidates(tree, box)

			var prepared *engine.PreparedGeometry
			pointLike := isPointLike(geoms[p].GeomType())
			for _, q := range candidates {
				if p == q || uf.Find(uint32(p)) == uf.Find(uint32(q)) {
					continue
				}
				var hit bool
				var err error
				if pointLike {
					hit, err = eng.Intersects(geoms[p], geoms[q])
				} else {
					if prepared == nil {
						prepared, err = eng.Prepare(geoms[p])
						if err != nil {
							return nil, err
						}
					}
					hit, err = eng.PreparedIntersects(prepared, geoms[q])
				}
				if err != nil {
					return nil, err
				}
				if hit {
					uf.Union(uint32(p), uint32(q))
				}
			}
		}
	}
	return assembleCollections(uf, geoms), nil
}

// UnionDBSCAN runs DBSCAN over geoms and returns the resulting union-find
// plus, for each element, whether it was classified in-cluster (core or
// border) as opposed to noise (spec §4.5.2).
func UnionDBSCAN(eng Engine, geoms []geom.Geometry, eps float64, minPoints int, cancel func() bool) (*unionfind.UnionFind, []bool, error) {
	n := len(geoms)
	uf := unionfind.New(n)
	inCluster := make([]bool, n)

	if minPoints <= 1 {
		if err := unionDBSCANMinPoints1(eng, geoms, uf, eps, inCluster, cancel); err != nil {
			return nil, nil, err
		}
		return uf, inCluster, nil
	}
	if err := unionDBSCANGeneral(eng, geoms, uf, eps, minPoints, inCluster, cancel); err != nil {
		return nil, nil, err
	}
	return uf, inCluster, nil
}

func unionDBSCANMinPoints1(eng Engine, geoms []geom.Geometry, uf *unionfind.UnionFind, eps float64, inCluster []bool, cancel func() bool) error {
	n := len(geoms)
	for i := range inCluster {
		inCluster[i] = true
	}
	if n <= 1 {
		return nil
	}
	tree, present := buildIndex(eng, geoms, 0)
	for p := 0; p < n; p++ {
		if !present[p] {
			continue
		}
		if cancel != nil && cancel() {
			return &ResourceError{Reason: "cancelled during union_dbscan"}
		}
		box, _ := eng.EnvelopeOf(geoms[p])
		box.XMin -= eps
		box.YMin -= eps
		box.XMax += eps
		box.YMax += eps
		for _, q := range queryCandidates(tree, box) {
			if uf.Find(uint32(p)) == uf.Find(uint32(q)) {
				continue
			}
			dist, err := eng.Distance2D(geoms[p], geoms[q], eps)
			if err != nil {
				return err
			}
			if dist == engine.DistanceFailed {
				return &ResourceError{Reason: "distance computation failed"}
			}
			if dist <= eps {
				uf.Union(uint32(p), uint32(q))
			}
		}
	}
	return nil
}

func unionIfAvailable(uf *unionfind.UnionFind, p, q int, isCore, inCluster []bool) {
	if inCluster[q] {
		if isCore[q] {
			uf.Union(uint32(p), uint32(q))
		}
		return
	}
	uf.Union(uint32(p), uint32(q))
	inCluster[q] = true
}

func unionDBSCANGeneral(eng Engine, geoms []geom.Geometry, uf *unionfind.UnionFind, eps float64, minPoints int, inCluster []bool, cancel func() bool) error {
	n := len(geoms)
	if n < minPoints {
		return nil
	}
	tree, present := buildIndex(eng, geoms, 0)
	isCore := make([]bool, n)
	neighbors := make([]int, 0, minPoints)

	for p := 0; p < n; p++ {
		if !present[p] {
			continue
		}
		if cancel != nil && cancel() {
			return &ResourceError{Reason: "cancelled during union_dbscan"}
		}
		box, _ := eng.EnvelopeOf(geoms[p])
		box.XMin -= eps
		box.YMin -= eps
		box.XMax += eps
		box.YMax += eps
		candidates := queryCandidates(tree, box)
		if len(candidates) < minPoints {
			continue
		}

		neighbors = neighbors[:0]
		for _, q := range candidates {
			if len(neighbors) >= minPoints {
				if uf.Find(uint32(p)) == uf.Find(uint32(q)) {
					continue
				}
				if inCluster[q] && !isCore[q] {
					continue
				}
			}

			dist, err := eng.Distance2D(geoms[p], geoms[q], eps)
			if err != nil {
				return err
			}
			if dist == engine.DistanceFailed {
				return &ResourceError{Reason: "distance computation failed"}
			}
			if dist > eps {
				continue
			}

			if len(neighbors) < minPoints {
				neighbors = append(neighbors, q)
				if len(neighbors) == minPoints {
					isCore[p] = true
					inCluster[p] = true
					for _, nb := range neighbors {
						unionIfAvailable(uf, p, nb, isCore, inCluster)
					}
				}
			} else {
				unionIfAvailable(uf, p, q, isCore, inCluster)
			}
		}
	}
	return nil
}

// ClusterWithinDistance groups geoms by a transitive tolerance: two
// geometries in the same result collection are connected by a chain of
// pairwise distances each ≤ tolerance (spec §4.5.2, delegates to DBSCAN
// with min_points=1).
func ClusterWithinDistance(eng Engine, geoms []geom.Geometry, tolerance float64, cancel func() bool) ([]geom.Geometry, error) {
	uf, _, err := UnionDBSCAN(eng, geoms, tolerance, 1, cancel)
	if err != nil {
		return nil, err
	}
	return assembleCollections(uf, geoms), nil
}

// assembleCollections walks ordered_by_cluster's permutation and groups
// contiguous runs of identical root into Collections (spec §4.5.3).
func assembleCollections(uf *unionfind.UnionFind, geoms []geom.Geometry) []geom.Geometry {
	n := len(geoms)
	if n == 0 {
		return nil
	}
	ordered := uf.OrderedByCluster()
	out := make([]geom.Geometry, 0, uf.NumClusters())

	var buf []geom.Geometry
	for i, idx := range ordered {
		buf = append(buf, geoms[idx])
		last := i == n-1
		if last || uf.Find(ordered[i]) != uf.Find(ordered[i+1]) {
			hasZ, hasM := buf[0].Base().HasZ(), buf[0].Base().HasM()
			out = append(out, geom.NewCollection(hasZ, hasM, buf...))
			buf = nil
		}
	}
	return out
}
