// Package ptarray implements the typed coordinate-sequence primitive (C1):
// a contiguous run of 2D/3D/4D points sharing one dimensionality.
package ptarray

import "math"

// Point4D is the canonical coordinate tuple. Z and M are 0 when the
// owning PointArray doesn't carry that ordinate.
type Point4D struct {
	X, Y, Z, M float64
}

// Point2D is the planar projection of a Point4D, used by every routine
// that only cares about x/y (bounding boxes, distance, segmentation).
type Point2D struct {
	X, Y float64
}

// Box2D is an axis-aligned bounding rectangle in the X/Y plane.
type Box2D struct {
	XMin, YMin, XMax, YMax float64
}

// Box3D extends Box2D with a Z range.
type Box3D struct {
	Box2D
	ZMin, ZMax float64
}

// PointArray is an ordered sequence of coordinates with a fixed width
// (2, 3 or 4 f64 values per point) determined by HasZ/HasM.
//
// Storage is a flat slice of float64 rather than a slice of structs so
// Append/Get/Set stay allocation-free after the initial grow, matching the
// "contiguous block of npoints*width doubles" contract.
type PointArray struct {
	HasZ, HasM bool
	coords     []float64
}

// Width returns the number of f64 values per point (2, 3, or 4).
func (pa *PointArray) Width() int {
	w := 2
	if pa.HasZ {
		w++
	}
	if pa.HasM {
		w++
	}
	return w
}

// Construct returns a zero-initialized point-array with npoints points.
func Construct(hasZ, hasM bool, npoints int) *PointArray {
	pa := &PointArray{HasZ: hasZ, HasM: hasM}
	if npoints > 0 {
		w := pa.Width()
		pa.coords = make([]float64, npoints*w)
	}
	return pa
}

// NPoints returns the number of logical points currently stored.
func (pa *PointArray) NPoints() int {
	w := pa.Width()
	if w == 0 {
		return 0
	}
	return len(pa.coords) / w
}

// IsEmpty reports whether the array has zero points.
func (pa *PointArray) IsEmpty() bool {
	return pa.NPoints() == 0
}

func (pa *PointArray) last() (Point4D, bool) {
	n := pa.NPoints()
	if n == 0 {
		return Point4D{}, false
	}
	return pa.GetPoint4D(n - 1), true
}

// Append grows the array by one point. If allowDuplicates is false and p
// equals (in all four ordinates, missing ordinates compared as zero) the
// last stored point, the array is left unchanged.
func (pa *PointArray) Append(p Point4D, allowDuplicates bool) {
	if !allowDuplicates {
		if last, ok := pa.last(); ok && same4D(last, p) {
			return
		}
	}
	pa.appendRaw(p)
}

func (pa *PointArray) appendRaw(p Point4D) {
	pa.coords = append(pa.coords, p.X, p.Y)
	if pa.HasZ {
		pa.coords = append(pa.coords, p.Z)
	}
	if pa.HasM {
		pa.coords = append(pa.coords, p.M)
	}
}

func same4D(a, b Point4D) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z && a.M == b.M
}

// GetPoint4D returns the canonical 4-tuple at index i. Z and M are 0.0
// when the array doesn't carry that ordinate.
func (pa *PointArray) GetPoint4D(i int) Point4D {
	w := pa.Width()
	off := i * w
	p := Point4D{X: pa.coords[off], Y: pa.coords[off+1]}
	idx := off + 2
	if pa.HasZ {
		p.Z = pa.coords[idx]
		idx++
	}
	if pa.HasM {
		p.M = pa.coords[idx]
	}
	return p
}

// GetPoint2D is a convenience accessor returning only x/y.
func (pa *PointArray) GetPoint2D(i int) Point2D {
	p := pa.GetPoint4D(i)
	return Point2D{X: p.X, Y: p.Y}
}

// SetPoint4D overwrites the point at an existing index in place.
func (pa *PointArray) SetPoint4D(i int, p Point4D) {
	w := pa.Width()
	off := i * w
	pa.coords[off] = p.X
	pa.coords[off+1] = p.Y
	idx := off + 2
	if pa.HasZ {
		pa.coords[idx] = p.Z
		idx++
	}
	if pa.HasM {
		pa.coords[idx] = p.M
	}
}

// Reverse reverses point order in place.
func (pa *PointArray) Reverse() {
	n := pa.NPoints()
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		pi, pj := pa.GetPoint4D(i), pa.GetPoint4D(j)
		pa.SetPoint4D(i, pj)
		pa.SetPoint4D(j, pi)
	}
}

// LongitudeShift shifts points with x < 0 by +360 and points with x > 180
// by -360; points with x in [0, 180] are left as they are.
func (pa *PointArray) LongitudeShift() {
	n := pa.NPoints()
	for i := 0; i < n; i++ {
		p := pa.GetPoint4D(i)
		if p.X < 0 {
			p.X += 360
			pa.SetPoint4D(i, p)
		} else if p.X > 180 {
			p.X -= 360
			pa.SetPoint4D(i, p)
		}
	}
}

// Same reports byte-exact equality: same dimension flags, same point
// count, and identical ordinates at every index.
func Same(a, b *PointArray) bool {
	if a.HasZ != b.HasZ || a.HasM != b.HasM {
		return false
	}
	if a.NPoints() != b.NPoints() {
		return false
	}
	for i := range a.coords {
		if a.coords[i] != b.coords[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (pa *PointArray) Clone() *PointArray {
	out := &PointArray{HasZ: pa.HasZ, HasM: pa.HasM}
	out.coords = append([]float64(nil), pa.coords...)
	return out
}

func dist2D(a, b Point2D) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func lerpPoint(a, b Point4D, t float64) Point4D {
	return Point4D{
		X: lerp(a.X, b.X, t),
		Y: lerp(a.Y, b.Y, t),
		Z: lerp(a.Z, b.Z, t),
		M: lerp(a.M, b.M, t),
	}
}

// Segmentize2D returns a new PointArray where every consecutive pair's 2D
// distance is at most d, inserting interpolated points on the segment.
// d <= 0 returns a clone.
func (pa *PointArray) Segmentize2D(d float64) *PointArray {
	n := pa.NPoints()
	out := Construct(pa.HasZ, pa.HasM, 0)
	if n == 0 {
		return out
	}
	if d <= 0 {
		return pa.Clone()
	}
	prev := pa.GetPoint4D(0)
	out.Append(prev, true)
	for i := 1; i < n; i++ {
		cur := pa.GetPoint4D(i)
		segLen := dist2D(Point2D{prev.X, prev.Y}, Point2D{cur.X, cur.Y})
		if segLen > d {
			steps := int(math.Ceil(segLen / d))
			for s := 1; s < steps; s++ {
				t := float64(s) / float64(steps)
				out.Append(lerpPoint(prev, cur, t), true)
			}
		}
		out.Append(cur, true)
		prev = cur
	}
	return out
}

// segmentLengths2D returns the 2D length of each segment of the array, or
// nil when it has fewer than 2 points.
func (pa *PointArray) segmentLengths2D() []float64 {
	n := pa.NPoints()
	if n < 2 {
		return nil
	}
	lens := make([]float64, n-1)
	prev := pa.GetPoint2D(0)
	for i := 1; i < n; i++ {
		cur := pa.GetPoint2D(i)
		lens[i-1] = dist2D(prev, cur)
		prev = cur
	}
	return lens
}

// Substring returns the portion of pa between from and to, expressed as a
// fraction in [0,1] of total 2D length, interpolating endpoints as needed.
func (pa *PointArray) Substring(from, to float64) *PointArray {
	out := Construct(pa.HasZ, pa.HasM, 0)
	n := pa.NPoints()
	if n == 0 {
		return out
	}
	if n == 1 || from >= to {
		out.Append(pa.GetPoint4D(0), true)
		return out
	}
	lens := pa.segmentLengths2D()
	total := 0.0
	for _, l := range lens {
		total += l
	}
	if total == 0 {
		out.Append(pa.GetPoint4D(0), true)
		return out
	}

	fromDist := from * total
	toDist := to * total

	cum := 0.0
	started := false
	for i := 0; i < n-1; i++ {
		segStart := cum
		segEnd := cum + lens[i]
		p0, p1 := pa.GetPoint4D(i), pa.GetPoint4D(i+1)

		if !started {
			if fromDist >= segStart && fromDist <= segEnd {
				t := 0.0
				if lens[i] > 0 {
					t = (fromDist - segStart) / lens[i]
				}
				out.Append(lerpPoint(p0, p1, t), true)
				started = true
			}
		}
		if started {
			if toDist <= segEnd {
				t := 0.0
				if lens[i] > 0 {
					t = (toDist - segStart) / lens[i]
				}
				out.Append(lerpPoint(p0, p1, t), true)
				return out
			}
			out.Append(p1, true)
		}
		cum = segEnd
	}
	return out
}

// LocatePoint returns the 2D fractional location in [0,1] along pa
// nearest to p, and the perpendicular distance to that nearest point.
func (pa *PointArray) LocatePoint(p Point2D) (location, distance float64) {
	n := pa.NPoints()
	if n == 0 {
		return 0, 0
	}
	if n == 1 {
		return 0, dist2D(pa.GetPoint2D(0), p)
	}
	lens := pa.segmentLengths2D()
	total := 0.0
	for _, l := range lens {
		total += l
	}

	bestDist := math.Inf(1)
	bestLoc := 0.0
	cum := 0.0
	for i := 0; i < n-1; i++ {
		a, b := pa.GetPoint2D(i), pa.GetPoint2D(i+1)
		t, d := closestOnSegment(a, b, p)
		if d < bestDist {
			bestDist = d
			segLen := lens[i]
			segFrac := cum
			if total > 0 {
				bestLoc = (segFrac + t*segLen) / total
			}
		}
		cum += lens[i]
	}
	return bestLoc, bestDist
}

// closestOnSegment returns the parametric position t in [0,1] of the
// closest point on segment a-b to p, and the distance to it.
func closestOnSegment(a, b, p Point2D) (t, dist float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0, dist2D(a, p)
	}
	t = ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := Point2D{X: a.X + t*dx, Y: a.Y + t*dy}
	return t, dist2D(closest, p)
}

// ComputeBox2D computes the 2D bounding box. The second return is false when
// the array is empty.
func (pa *PointArray) ComputeBox2D() (Box2D, bool) {
	n := pa.NPoints()
	if n == 0 {
		return Box2D{}, false
	}
	p0 := pa.GetPoint2D(0)
	box := Box2D{XMin: p0.X, YMin: p0.Y, XMax: p0.X, YMax: p0.Y}
	for i := 1; i < n; i++ {
		p := pa.GetPoint2D(i)
		if p.X < box.XMin {
			box.XMin = p.X
		}
		if p.X > box.XMax {
			box.XMax = p.X
		}
		if p.Y < box.YMin {
			box.YMin = p.Y
		}
		if p.Y > box.YMax {
			box.YMax = p.Y
		}
	}
	return box, true
}

// ComputeBox3D computes the box over x, y and z (z is 0 when !HasZ).
func (pa *PointArray) ComputeBox3D() (Box3D, bool) {
	box2d, ok := pa.ComputeBox2D()
	if !ok {
		return Box3D{}, false
	}
	n := pa.NPoints()
	p0 := pa.GetPoint4D(0)
	box := Box3D{Box2D: box2d, ZMin: p0.Z, ZMax: p0.Z}
	for i := 1; i < n; i++ {
		p := pa.GetPoint4D(i)
		if p.Z < box.ZMin {
			box.ZMin = p.Z
		}
		if p.Z > box.ZMax {
			box.ZMax = p.Z
		}
	}
	return box, true
}

// IsClosed2D reports whether the first and last points match in x, y.
func (pa *PointArray) IsClosed2D() bool {
	n := pa.NPoints()
	if n < 2 {
		return false
	}
	a, b := pa.GetPoint2D(0), pa.GetPoint2D(n-1)
	return a.X == b.X && a.Y == b.Y
}

// IsRingValid reports the ring-valid invariant: npoints >= 4 and the
// first/last points equal in x, y.
func (pa *PointArray) IsRingValid() bool {
	return pa.NPoints() >= 4 && pa.IsClosed2D()
}

// IsLineValid reports the line-valid invariant: npoints >= 2.
func (pa *PointArray) IsLineValid() bool {
	return pa.NPoints() >= 2
}

// Union returns the 2D union of two boxes.
func (b Box2D) Union(o Box2D) Box2D {
	return Box2D{
		XMin: math.Min(b.XMin, o.XMin),
		YMin: math.Min(b.YMin, o.YMin),
		XMax: math.Max(b.XMax, o.XMax),
		YMax: math.Max(b.YMax, o.YMax),
	}
}

// Expand grows the box by d on every side.
func (b Box2D) Expand(d float64) Box2D {
	return Box2D{XMin: b.XMin - d, YMin: b.YMin - d, XMax: b.XMax + d, YMax: b.YMax + d}
}

// Intersects reports whether two boxes overlap (touching counts as
// intersecting, matching the "false positives permitted" R-tree prefilter
// contract).
func (b Box2D) Intersects(o Box2D) bool {
	return b.XMin <= o.XMax && b.XMax >= o.XMin && b.YMin <= o.YMax && b.YMax >= o.YMin
}
