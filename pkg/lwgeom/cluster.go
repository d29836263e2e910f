package lwgeom

import (
	"github.com/postgis/lwgeom/internal/cluster"
	"github.com/postgis/lwgeom/internal/geom"
)

// ClusterIntersecting groups geoms into collections of mutually intersecting
// members (spec §4.5.1), using the engine wired into this Context for the
// underlying predicate tests.
func (c *Context) ClusterIntersecting(geoms []geom.Geometry) ([]geom.Geometry, error) {
	out, err := cluster.ClusterIntersecting(c.engine, geoms, cluster.DefaultOptions())
	if err != nil {
		c.reportFatal(err)
		return nil, err
	}
	return out, nil
}

// ClusterWithinDistance groups geoms transitively by tolerance (spec
// §4.5.2): two geometries land in the same output collection if connected
// by a chain of pairwise distances each no greater than tol.
func (c *Context) ClusterWithinDistance(geoms []geom.Geometry, tol float64) ([]geom.Geometry, error) {
	out, err := cluster.ClusterWithinDistance(c.engine, geoms, tol, nil)
	if err != nil {
		c.reportFatal(err)
		return nil, err
	}
	return out, nil
}

// ClusterDBSCAN exposes the full DBSCAN clusterer (spec §4.5.2) with an
// explicit min_points, for callers that need core/border/noise semantics
// beyond the min_points=1 shorthand ClusterWithinDistance provides. Noise
// geometries (not reachable from any dense neighborhood) are returned
// individually in noise, not folded into a cluster collection.
func (c *Context) ClusterDBSCAN(geoms []geom.Geometry, eps float64, minPoints int) (clusters []geom.Geometry, noise []geom.Geometry, err error) {
	uf, inCluster, err := cluster.UnionDBSCAN(c.engine, geoms, eps, minPoints, nil)
	if err != nil {
		c.reportFatal(err)
		return nil, nil, err
	}

	byRoot := make(map[uint32][]geom.Geometry)
	var roots []uint32
	for i, g := range geoms {
		if !inCluster[i] {
			noise = append(noise, g)
			continue
		}
		root := uf.Find(uint32(i))
		if _, seen := byRoot[root]; !seen {
			roots = append(roots, root)
		}
		byRoot[root] = append(byRoot[root], g)
	}
	for _, root := range roots {
		members := byRoot[root]
		hasZ, hasM := members[0].Base().HasZ(), members[0].Base().HasM()
		clusters = append(clusters, geom.NewCollection(hasZ, hasM, members...))
	}
	return clusters, noise, nil
}
