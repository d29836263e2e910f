package geom

import "github.com/postgis/lwgeom/internal/ptarray"

// outcode bits, Cohen-Sutherland style, relative to a view bbox.
const (
	ocLeft   = 1
	ocRight  = 2
	ocBottom = 4
	ocTop    = 8
)

func outcode(p ptarray.Point2D, bbox ptarray.Box2D) int {
	code := 0
	if p.X < bbox.XMin {
		code |= ocLeft
	} else if p.X > bbox.XMax {
		code |= ocRight
	}
	if p.Y < bbox.YMin {
		code |= ocBottom
	} else if p.Y > bbox.YMax {
		code |= ocTop
	}
	return code
}

// isProperSubset reports whether sub is a nonzero, strictly smaller bit
// set than of, i.e. every bit of sub is set in of, and of has at least
// one bit sub doesn't.
func isProperSubset(sub, of int) bool {
	return sub != 0 && sub&of == sub && sub != of
}

// removableCyclic reports whether the vertex at index i in a cyclic
// point list is irrelevant to the view: it lies outside bbox, and at
// least one of its ring neighbors is outside bbox in a strictly simpler
// way (a nonzero proper subset of its own outcode). Such a neighbor
// already establishes the "this chain is off in direction X" fact, so
// the vertex's extra, more-extreme corner position adds nothing a
// renderer clipped to bbox could show.
func removableCyclic(codes []int, i int) bool {
	n := len(codes)
	if codes[i] == 0 {
		return false
	}
	prev := codes[(i-1+n)%n]
	next := codes[(i+1)%n]
	return isProperSubset(prev, codes[i]) || isProperSubset(next, codes[i])
}

// decimateCyclic repeatedly drops irrelevant vertices from a closed
// (first != last, ring implied) 2D point list until no more can be
// dropped or the minimum ring size (3 distinct points) is reached.
func decimateCyclic(pts []ptarray.Point4D, bbox ptarray.Box2D) []ptarray.Point4D {
	for len(pts) > 3 {
		codes := make([]int, len(pts))
		for i, p := range pts {
			codes[i] = outcode(ptarray.Point2D{X: p.X, Y: p.Y}, bbox)
		}
		remaining := len(pts)
		out := make([]ptarray.Point4D, 0, len(pts))
		dropped := false
		for i, p := range pts {
			if remaining > 3 && removableCyclic(codes, i) {
				dropped = true
				remaining--
				continue
			}
			out = append(out, p)
		}
		if !dropped {
			return pts
		}
		pts = out
	}
	return pts
}

// decimateOpen applies the same irrelevance test to an open (line)
// vertex list; the first and last points are termini and are never
// removed. Stops once only 2 points remain.
func decimateOpen(pts []ptarray.Point4D, bbox ptarray.Box2D) []ptarray.Point4D {
	for len(pts) > 2 {
		codes := make([]int, len(pts))
		for i, p := range pts {
			codes[i] = outcode(ptarray.Point2D{X: p.X, Y: p.Y}, bbox)
		}
		dropped := false
		out := make([]ptarray.Point4D, 0, len(pts))
		for i, p := range pts {
			if i > 0 && i < len(pts)-1 && codes[i] != 0 &&
				(isProperSubset(codes[i-1], codes[i]) || isProperSubset(codes[i+1], codes[i])) {
				dropped = true
				continue
			}
			out = append(out, p)
		}
		if !dropped || len(out) < 2 {
			return pts
		}
		pts = out
	}
	return pts
}

func paToOpenPoints(pa *ptarray.PointArray) []ptarray.Point4D {
	n := pa.NPoints()
	out := make([]ptarray.Point4D, n)
	for i := 0; i < n; i++ {
		out[i] = pa.GetPoint4D(i)
	}
	return out
}

func openPointsToPA(pts []ptarray.Point4D, hasZ, hasM bool) *ptarray.PointArray {
	pa := ptarray.Construct(hasZ, hasM, 0)
	for _, p := range pts {
		pa.Append(p, true)
	}
	return pa
}

// decimateRing decimates a closed ring's point-array (first point equals
// last) in place semantics: returns a new closed point-array.
func decimateRing(pa *ptarray.PointArray, bbox ptarray.Box2D) *ptarray.PointArray {
	n := pa.NPoints()
	if n < 5 { // fewer than 4 distinct points + closure: nothing to simplify
		return pa
	}
	open := paToOpenPoints(pa)
	open = open[:n-1] // drop the duplicated closing point
	open = decimateCyclic(open, bbox)
	closed := append(append([]ptarray.Point4D(nil), open...), open[0])
	return openPointsToPA(closed, pa.HasZ, pa.HasM)
}

func decimateLine(pa *ptarray.PointArray, bbox ptarray.Box2D) *ptarray.PointArray {
	n := pa.NPoints()
	if n < 3 {
		return pa
	}
	open := paToOpenPoints(pa)
	open = decimateOpen(open, bbox)
	return openPointsToPA(open, pa.HasZ, pa.HasM)
}

// RemoveIrrelevantPointsForView destructively simplifies 2D polygons and
// lines reachable from g by dropping vertices that are provably outside
// viewBbox and provably cannot affect the rendered silhouette within it.
// 3D geometries and non-line/polygon variants are left unchanged.
//
// cartesianHint signals that the caller's downstream renderer is planar
// (no antimeridian wraparound); when false, decimation is skipped, since
// the bbox-outcode test this function uses is only valid for a
// non-wrapping Cartesian plane.
func RemoveIrrelevantPointsForView(g Geometry, viewBbox ptarray.Box2D, cartesianHint bool) {
	if !cartesianHint {
		return
	}
	switch v := g.(type) {
	case *LineString:
		if !v.hasZ {
			v.PA = decimateLine(v.PA, viewBbox)
			Changed(g)
		}
	case *Polygon:
		if !v.hasZ {
			for i, r := range v.Rings {
				v.Rings[i] = decimateRing(r, viewBbox)
			}
			Changed(g)
		}
	default:
		for _, sub := range subGeoms(g) {
			RemoveIrrelevantPointsForView(sub, viewBbox, cartesianHint)
		}
	}
}
