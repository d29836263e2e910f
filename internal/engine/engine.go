// Package engine implements the narrow adapter to an external
// computational-geometry engine described in spec §6.3: split/union for
// wrapX, and intersects/prepared-intersects/distance for the clustering
// engine. No importable GEOS-equivalent surface exists in the retrieved
// corpus, so Planar ships a plain-Go reference implementation covering the
// straight-edge variants (Point, LineString, Polygon and their multi-
// variants); curved variants are rejected with an EngineError, matching
// spec.md's explicit exclusion of curve tessellation from this core.
package engine

import (
	"math"

	"github.com/postgis/lwgeom/internal/geom"
	"github.com/postgis/lwgeom/internal/ptarray"
)

// EngineError reports that the reference engine could not service a
// request: an unsupported (curved) variant, a distance query with an
// empty operand, or a split that leaves no piece of at least two points.
type EngineError struct {
	Op     string
	Reason string
}

func (e *EngineError) Error() string {
	return "engine: " + e.Op + ": " + e.Reason
}

// Planar is a plain-Go reference implementation of the adapter interface,
// operating on straight-edge geometries in the 2D plane.
type Planar struct{}

// NewPlanar returns a ready-to-use reference engine. There is no
// process-wide init step to mirror (§6.3's engine_2d_init exists to set
// up the real engine's notice/error callbacks, which Planar has no use
// for, since it reports every failure as a returned EngineError).
func NewPlanar() *Planar { return &Planar{} }

type segment struct {
	a, b ptarray.Point2D
}

// flattenSegments decomposes g into its constituent 2D edges. A Point
// contributes a degenerate zero-length segment so point/point and
// point/segment tests fall out of the same code path as line and
// polygon predicates.
func flattenSegments(g geom.Geometry) ([]segment, error) {
	switch v := g.(type) {
	case *geom.Point:
		if v.PA.IsEmpty() {
			return nil, nil
		}
		p := v.PA.GetPoint4D(0)
		pt := ptarray.Point2D{X: p.X, Y: p.Y}
		return []segment{{pt, pt}}, nil
	case *geom.LineString:
		return paSegments(v.PA), nil
	case *geom.Triangle:
		return paSegments(v.PA), nil
	case *geom.Polygon:
		var segs []segment
		for _, r := range v.Rings {
			segs = append(segs, paSegments(r)...)
		}
		return segs, nil
	case *geom.CircularString, *geom.CompoundCurve, *geom.CurvePolygon:
		return nil, &EngineError{Op: "flatten", Reason: "curved variant " + g.GeomType().String() + " is not supported by the reference planar engine"}
	default:
		var segs []segment
		for _, sub := range geom.SubGeometries(g) {
			s, err := flattenSegments(sub)
			if err != nil {
				return nil, err
			}
			segs = append(segs, s...)
		}
		return segs, nil
	}
}

func paSegments(pa *ptarray.PointArray) []segment {
	n := pa.NPoints()
	if n == 0 {
		return nil
	}
	if n == 1 {
		p := pa.GetPoint2D(0)
		return []segment{{p, p}}
	}
	segs := make([]segment, 0, n-1)
	prev := pa.GetPoint2D(0)
	for i := 1; i < n; i++ {
		cur := pa.GetPoint2D(i)
		segs = append(segs, segment{prev, cur})
		prev = cur
	}
	return segs
}

// rings returns every polygon ring reachable from g, for point-in-ring
// containment tests.
func rings(g geom.Geometry) []*ptarray.PointArray {
	switch v := g.(type) {
	case *geom.Polygon:
		return v.Rings
	default:
		var out []*ptarray.PointArray
		for _, sub := range geom.SubGeometries(g) {
			out = append(out, rings(sub)...)
		}
		return out
	}
}

func points(g geom.Geometry) []ptarray.Point2D {
	switch v := g.(type) {
	case *geom.Point:
		if v.PA.IsEmpty() {
			return nil
		}
		return []ptarray.Point2D{v.PA.GetPoint2D(0)}
	default:
		var out []ptarray.Point2D
		for _, sub := range geom.SubGeometries(g) {
			out = append(out, points(sub)...)
		}
		return out
	}
}

const epsilon = 1e-12

func sign(v float64) int {
	if v > epsilon {
		return 1
	}
	if v < -epsilon {
		return -1
	}
	return 0
}

func cross(o, a, b ptarray.Point2D) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func onSegment(p, a, b ptarray.Point2D) bool {
	if sign(cross(a, b, p)) != 0 {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-epsilon && p.X <= math.Max(a.X, b.X)+epsilon &&
		p.Y >= math.Min(a.Y, b.Y)-epsilon && p.Y <= math.Max(a.Y, b.Y)+epsilon
}

// segmentsIntersect reports whether two segments touch or cross anywhere,
// including shared endpoints and collinear overlap.
func segmentsIntersect(s1, s2 segment) bool {
	d1 := sign(cross(s2.a, s2.b, s1.a))
	d2 := sign(cross(s2.a, s2.b, s1.b))
	d3 := sign(cross(s1.a, s1.b, s2.a))
	d4 := sign(cross(s1.a, s1.b, s2.b))

	if d1 != d2 && d3 != d4 {
		return true
	}
	if d1 == 0 && onSegment(s1.a, s2.a, s2.b) {
		return true
	}
	if d2 == 0 && onSegment(s1.b, s2.a, s2.b) {
		return true
	}
	if d3 == 0 && onSegment(s2.a, s1.a, s1.b) {
		return true
	}
	if d4 == 0 && onSegment(s2.b, s1.a, s1.b) {
		return true
	}
	return false
}

func distPointSegment(p, a, b ptarray.Point2D) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx, cy := a.X+t*dx, a.Y+t*dy
	return math.Hypot(p.X-cx, p.Y-cy)
}

func distSegments(s1, s2 segment) float64 {
	if segmentsIntersect(s1, s2) {
		return 0
	}
	d := distPointSegment(s1.a, s2.a, s2.b)
	d = math.Min(d, distPointSegment(s1.b, s2.a, s2.b))
	d = math.Min(d, distPointSegment(s2.a, s1.a, s1.b))
	d = math.Min(d, distPointSegment(s2.b, s1.a, s1.b))
	return d
}

// pointInRing applies the even-odd ray-casting rule; used only to detect
// full containment (one geometry's vertex inside another's polygon) when
// no edges cross.
func pointInRing(p ptarray.Point2D, ring *ptarray.PointArray) bool {
	n := ring.NPoints()
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := ring.GetPoint2D(i), ring.GetPoint2D(j)
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xInt := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xInt {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

func pointInAnyRing(p ptarray.Point2D, g geom.Geometry) bool {
	for _, r := range rings(g) {
		if pointInRing(p, r) {
			return true
		}
	}
	return false
}

// Intersects reports whether a and b share any point in the plane:
// touching/crossing edges, or one being wholly contained in the other's
// polygon interior with no boundary crossing.
func (e *Planar) Intersects(a, b geom.Geometry) (bool, error) {
	if geom.IsEmpty(a) || geom.IsEmpty(b) {
		return false, nil
	}
	segsA, err := flattenSegments(a)
	if err != nil {
		return false, err
	}
	segsB, err := flattenSegments(b)
	if err != nil {
		return false, err
	}
	for _, s1 := range segsA {
		for _, s2 := range segsB {
			if segmentsIntersect(s1, s2) {
				return true, nil
			}
		}
	}
	for _, p := range points(a) {
		if pointInAnyRing(p, b) {
			return true, nil
		}
	}
	for _, p := range points(b) {
		if pointInAnyRing(p, a) {
			return true, nil
		}
	}
	if pa := firstVertex(a); pa != nil && pointInAnyRing(*pa, b) {
		return true, nil
	}
	if pb := firstVertex(b); pb != nil && pointInAnyRing(*pb, a) {
		return true, nil
	}
	return false, nil
}

// firstVertex returns g's first vertex, or nil when g has none.
func firstVertex(g geom.Geometry) *ptarray.Point2D {
	segs, err := flattenSegments(g)
	if err != nil || len(segs) == 0 {
		return nil
	}
	p := segs[0].a
	return &p
}

// PreparedGeometry is Planar's "optimized representation" for repeated
// predicate evaluation: the segment decomposition, computed once.
type PreparedGeometry struct {
	src  geom.Geometry
	segs []segment
}

// Prepare builds a PreparedGeometry around g, amortizing the segment
// decomposition across many PreparedIntersects calls against it (spec
// §4.5.1's per-p prepared-geometry cache).
func (e *Planar) Prepare(g geom.Geometry) (*PreparedGeometry, error) {
	segs, err := flattenSegments(g)
	if err != nil {
		return nil, err
	}
	return &PreparedGeometry{src: g, segs: segs}, nil
}

// PreparedIntersects evaluates the same predicate as Intersects, reusing
// prepared's precomputed segments for the left-hand operand.
func (e *Planar) PreparedIntersects(prepared *PreparedGeometry, other geom.Geometry) (bool, error) {
	if geom.IsEmpty(other) {
		return false, nil
	}
	segsOther, err := flattenSegments(other)
	if err != nil {
		return false, err
	}
	for _, s1 := range prepared.segs {
		for _, s2 := range segsOther {
			if segmentsIntersect(s1, s2) {
				return true, nil
			}
		}
	}
	for _, p := range points(other) {
		if pointInAnyRing(p, prepared.src) {
			return true, nil
		}
	}
	for _, p := range points(prepared.src) {
		if pointInAnyRing(p, other) {
			return true, nil
		}
	}
	if pv := firstVertex(prepared.src); pv != nil && pointInAnyRing(*pv, other) {
		return true, nil
	}
	if ov := firstVertex(other); ov != nil && pointInAnyRing(*ov, prepared.src) {
		return true, nil
	}
	return false, nil
}

// DistanceFailed is the FLT_MAX sentinel spec §4.5.2 uses to signal a
// distance computation the engine could not complete.
const DistanceFailed = math.MaxFloat32

// Distance2D returns the minimum 2D distance between a and b, stopping
// early once a distance within tolerance has been found (mirroring
// lwgeom_mindistance2d_tolerance's early exit). Unsupported (curved)
// variants return DistanceFailed with an error, per spec's FLT_MAX
// failure sentinel.
func (e *Planar) Distance2D(a, b geom.Geometry, tolerance float64) (float64, error) {
	segsA, err := flattenSegments(a)
	if err != nil {
		return DistanceFailed, err
	}
	segsB, err := flattenSegments(b)
	if err != nil {
		return DistanceFailed, err
	}
	if len(segsA) == 0 || len(segsB) == 0 {
		return DistanceFailed, &EngineError{Op: "distance2d", Reason: "empty geometry has no distance"}
	}
	best := math.Inf(1)
	for _, s1 := range segsA {
		for _, s2 := range segsB {
			d := distSegments(s1, s2)
			if d < best {
				best = d
			}
			if best <= tolerance {
				return best, nil
			}
		}
	}
	return best, nil
}

// EnvelopeOf returns g's 2D bounding box, computing it if not cached.
func (e *Planar) EnvelopeOf(g geom.Geometry) (ptarray.Box2D, bool) {
	if box := g.Base().Bbox(); box != nil {
		return ptarray.Box2D{XMin: box.XMin, YMin: box.YMin, XMax: box.XMax, YMax: box.YMax}, true
	}
	geom.AddBbox(g)
	box := g.Base().Bbox()
	if box == nil {
		return ptarray.Box2D{}, false
	}
	return ptarray.Box2D{XMin: box.XMin, YMin: box.YMin, XMax: box.XMax, YMax: box.YMax}, true
}

// Split cuts g along the line segment (bladeX1,bladeY1)-(bladeX2,bladeY2),
// returning the pieces on each side of the blade. Straight-edge-only: ring
// and line geometries are clipped against the blade with a Sutherland-
// Hodgman-style pass per ring/line, producing one piece per side that has
// any material on it.
func (e *Planar) Split(g geom.Geometry, bladeX1, bladeY1, bladeX2, bladeY2 float64) ([]geom.Geometry, error) {
	blade := segment{ptarray.Point2D{X: bladeX1, Y: bladeY1}, ptarray.Point2D{X: bladeX2, Y: bladeY2}}
	side := func(p ptarray.Point2D) float64 { return cross(blade.a, blade.b, p) }

	switch v := g.(type) {
	case *geom.LineString:
		left, right := splitLine(v.PA, side)
		return packPieces(v.HasZ(), v.HasM(), left, right, geom.NewLineString)
	case *geom.Polygon:
		if len(v.Rings) == 0 {
			return []geom.Geometry{geom.Clone(g)}, nil
		}
		leftShell, rightShell := splitRing(v.Rings[0], side)
		var out []geom.Geometry
		if leftShell != nil {
			out = append(out, geom.NewPolygon(leftShell))
		}
		if rightShell != nil {
			out = append(out, geom.NewPolygon(rightShell))
		}
		if len(out) == 0 {
			return []geom.Geometry{geom.Clone(g)}, nil
		}
		return out, nil
	default:
		var out []geom.Geometry
		for _, sub := range geom.SubGeometries(g) {
			pieces, err := e.Split(sub, bladeX1, bladeY1, bladeX2, bladeY2)
			if err != nil {
				return nil, err
			}
			out = append(out, pieces...)
		}
		if out == nil {
			return []geom.Geometry{geom.Clone(g)}, nil
		}
		return out, nil
	}
}

func packPieces(hasZ, hasM bool, left, right []ptarray.Point4D, build func(*ptarray.PointArray) *geom.LineString) ([]geom.Geometry, error) {
	var out []geom.Geometry
	if len(left) >= 2 {
		pa := ptarray.Construct(hasZ, hasM, 0)
		for _, p := range left {
			pa.Append(p, true)
		}
		out = append(out, build(pa))
	}
	if len(right) >= 2 {
		pa := ptarray.Construct(hasZ, hasM, 0)
		for _, p := range right {
			pa.Append(p, true)
		}
		out = append(out, build(pa))
	}
	if out == nil {
		return nil, &EngineError{Op: "split", Reason: "blade does not cross the geometry"}
	}
	return out, nil
}

// splitLine partitions an open polyline's vertices onto each side of the
// blade, inserting the blade-crossing point into both output chains so
// each resulting piece stays individually connected.
func splitLine(pa *ptarray.PointArray, side func(ptarray.Point2D) float64) (left, right []ptarray.Point4D) {
	n := pa.NPoints()
	if n == 0 {
		return nil, nil
	}
	prev := pa.GetPoint4D(0)
	prevD := side(ptarray.Point2D{X: prev.X, Y: prev.Y})
	prevSide := sign(prevD)
	appendTo(&left, &right, prevSide, prev)
	for i := 1; i < n; i++ {
		cur := pa.GetPoint4D(i)
		curD := side(ptarray.Point2D{X: cur.X, Y: cur.Y})
		curSide := sign(curD)
		if curSide != 0 && prevSide != 0 && curSide != prevSide {
			mid := lerp4D(prev, cur, prevD/(prevD-curD))
			left = append(left, mid)
			right = append(right, mid)
		}
		appendTo(&left, &right, curSide, cur)
		prev, prevD, prevSide = cur, curD, curSide
	}
	return left, right
}

// splitRing behaves like splitLine but for a closed ring: it produces at
// most one shell per side (this reference engine does not reconstruct
// multiple disjoint shells from a single blade cut).
func splitRing(pa *ptarray.PointArray, side func(ptarray.Point2D) float64) (left, right *ptarray.PointArray) {
	l, r := splitLine(pa, side)
	mk := func(pts []ptarray.Point4D) *ptarray.PointArray {
		if len(pts) < 3 {
			return nil
		}
		out := ptarray.Construct(pa.HasZ, pa.HasM, 0)
		for _, p := range pts {
			out.Append(p, true)
		}
		if !pointsEqual(pts[0], pts[len(pts)-1]) {
			out.Append(pts[0], true)
		}
		return out
	}
	return mk(l), mk(r)
}

func pointsEqual(a, b ptarray.Point4D) bool {
	return a.X == b.X && a.Y == b.Y
}

func appendTo(left, right *[]ptarray.Point4D, side int, p ptarray.Point4D) {
	if side <= 0 {
		*left = append(*left, p)
	}
	if side >= 0 {
		*right = append(*right, p)
	}
}

func lerp4D(a, b ptarray.Point4D, t float64) ptarray.Point4D {
	return ptarray.Point4D{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		M: a.M + (b.M-a.M)*t,
	}
}

// UnaryUnion merges parts into one geometry: a single part passes through
// unchanged; multiple parts are wrapped in a homogenized collection, since
// this reference engine does not dissolve shared boundaries.
func (e *Planar) UnaryUnion(parts []geom.Geometry) (geom.Geometry, error) {
	if len(parts) == 0 {
		return geom.EmptyCollection(false, false), nil
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	hasZ, hasM := parts[0].Base().HasZ(), parts[0].Base().HasM()
	col := geom.NewCollection(hasZ, hasM, parts...)
	return geom.Homogenize(col), nil
}
