package geom

import "github.com/postgis/lwgeom/internal/ptarray"

// GetType returns g's variant tag.
func GetType(g Geometry) Type { return g.GeomType() }

// NDims returns the per-point width (2, 3 or 4) implied by g's flags.
func NDims(g Geometry) int {
	b := g.Base()
	n := 2
	if b.hasZ {
		n++
	}
	if b.hasM {
		n++
	}
	return n
}

// IsEmpty reports whether g has no coordinates: a zero-length point-array
// for leaves, zero rings for a Polygon, and no non-empty sub-geometry for
// collection-like variants.
func IsEmpty(g Geometry) bool {
	switch v := g.(type) {
	case *Point:
		return v.PA.IsEmpty()
	case *LineString:
		return v.PA.IsEmpty()
	case *CircularString:
		return v.PA.IsEmpty()
	case *Triangle:
		return v.PA.IsEmpty()
	case *Polygon:
		return len(v.Rings) == 0
	default:
		for _, sub := range subGeoms(g) {
			if !IsEmpty(sub) {
				return false
			}
		}
		return true
	}
}

// IsCollection reports whether g is one of the collection-like variants
// (owns sub-geometries rather than a single point-array or ring set).
func IsCollection(g Geometry) bool {
	switch g.GeomType() {
	case TypeMultiPoint, TypeMultiLineString, TypeMultiPolygon, TypeMultiCurve,
		TypeMultiSurface, TypeCompoundCurve, TypeCurvePolygon, TypePolyhedralSurface,
		TypeTIN, TypeCollection:
		return true
	default:
		return false
	}
}

// CountVertices returns the total number of coordinate tuples in g.
func CountVertices(g Geometry) int {
	switch v := g.(type) {
	case *Point:
		return v.PA.NPoints()
	case *LineString:
		return v.PA.NPoints()
	case *CircularString:
		return v.PA.NPoints()
	case *Triangle:
		return v.PA.NPoints()
	case *Polygon:
		n := 0
		for _, r := range v.Rings {
			n += r.NPoints()
		}
		return n
	default:
		n := 0
		for _, sub := range subGeoms(g) {
			n += CountVertices(sub)
		}
		return n
	}
}

// Dimension returns the topological dimension: 0 for point-like, 1 for
// line-like, 2 for polygon-like, and the max of children for collections.
func Dimension(g Geometry) int {
	switch g.GeomType() {
	case TypePoint, TypeMultiPoint:
		return 0
	case TypeLineString, TypeCircularString, TypeCompoundCurve, TypeMultiLineString, TypeMultiCurve:
		return 1
	case TypePolygon, TypeTriangle, TypeCurvePolygon, TypeMultiPolygon, TypeMultiSurface,
		TypePolyhedralSurface, TypeTIN:
		return 2
	case TypeCollection:
		d := 0
		for _, sub := range subGeoms(g) {
			if sd := Dimension(sub); sd > d {
				d = sd
			}
		}
		return d
	default:
		return 0
	}
}

// Clone performs a deep copy: point-arrays and sub-geometries are
// copied; the bbox is copied if present.
func Clone(g Geometry) Geometry {
	var out Geometry
	switch v := g.(type) {
	case *Point:
		out = &Point{Base: v.Base, PA: v.PA.Clone()}
	case *LineString:
		out = &LineString{Base: v.Base, PA: v.PA.Clone()}
	case *CircularString:
		out = &CircularString{Base: v.Base, PA: v.PA.Clone()}
	case *Triangle:
		out = &Triangle{Base: v.Base, PA: v.PA.Clone()}
	case *Polygon:
		rings := make([]*ptarray.PointArray, len(v.Rings))
		for i, r := range v.Rings {
			rings[i] = r.Clone()
		}
		out = &Polygon{Base: v.Base, Rings: rings}
	case *MultiPoint:
		sub := make([]*Point, len(v.Geoms))
		for i, s := range v.Geoms {
			sub[i] = Clone(s).(*Point)
		}
		out = &MultiPoint{Base: v.Base, Geoms: sub}
	case *MultiLineString:
		sub := make([]*LineString, len(v.Geoms))
		for i, s := range v.Geoms {
			sub[i] = Clone(s).(*LineString)
		}
		out = &MultiLineString{Base: v.Base, Geoms: sub}
	case *MultiPolygon:
		sub := make([]*Polygon, len(v.Geoms))
		for i, s := range v.Geoms {
			sub[i] = Clone(s).(*Polygon)
		}
		out = &MultiPolygon{Base: v.Base, Geoms: sub}
	case *CompoundCurve:
		out = &CompoundCurve{Base: v.Base, Geoms: cloneSlice(v.Geoms)}
	case *CurvePolygon:
		out = &CurvePolygon{Base: v.Base, Geoms: cloneSlice(v.Geoms)}
	case *MultiCurve:
		out = &MultiCurve{Base: v.Base, Geoms: cloneSlice(v.Geoms)}
	case *MultiSurface:
		out = &MultiSurface{Base: v.Base, Geoms: cloneSlice(v.Geoms)}
	case *PolyhedralSurface:
		sub := make([]*Polygon, len(v.Geoms))
		for i, s := range v.Geoms {
			sub[i] = Clone(s).(*Polygon)
		}
		out = &PolyhedralSurface{Base: v.Base, Geoms: sub}
	case *TIN:
		sub := make([]*Triangle, len(v.Geoms))
		for i, s := range v.Geoms {
			sub[i] = Clone(s).(*Triangle)
		}
		out = &TIN{Base: v.Base, Geoms: sub}
	case *Collection:
		out = &Collection{Base: v.Base, Geoms: cloneSlice(v.Geoms)}
	default:
		panic("geom: Clone: unhandled variant")
	}
	if b := g.Base().Bbox(); b != nil {
		box := *b
		out.Base().setBbox(box)
	}
	return out
}

func cloneSlice(in []Geometry) []Geometry {
	out := make([]Geometry, len(in))
	for i, g := range in {
		out[i] = Clone(g)
	}
	return out
}

// AddBbox computes and caches g's bounding box. A no-op if g already has
// one.
func AddBbox(g Geometry) {
	if g.Base().Bbox() != nil {
		return
	}
	box, ok := computeBbox(g)
	if ok {
		g.Base().setBbox(box)
	}
}

// Changed invalidates g's cached bbox.
func Changed(g Geometry) {
	g.Base().bbox = nil
	g.Base().hasBBox = false
}

func computeBbox(g Geometry) (Box, bool) {
	switch v := g.(type) {
	case *Point:
		return ptarrayBox(v.PA, v.hasZ)
	case *LineString:
		return ptarrayBox(v.PA, v.hasZ)
	case *CircularString:
		return ptarrayBox(v.PA, v.hasZ)
	case *Triangle:
		return ptarrayBox(v.PA, v.hasZ)
	case *Polygon:
		if len(v.Rings) == 0 {
			return Box{}, false
		}
		box, ok := ptarrayBox(v.Rings[0], v.hasZ)
		if !ok {
			return Box{}, false
		}
		for _, r := range v.Rings[1:] {
			if b2, ok2 := ptarrayBox(r, v.hasZ); ok2 {
				box = box.Union(b2)
			}
		}
		return box, true
	default:
		var box Box
		found := false
		for _, sub := range subGeoms(g) {
			if b2, ok := computeBbox(sub); ok {
				if !found {
					box = b2
					found = true
				} else {
					box = box.Union(b2)
				}
			}
		}
		return box, found
	}
}

func ptarrayBox(pa *ptarray.PointArray, hasZ bool) (Box, bool) {
	if hasZ {
		b3, ok := pa.ComputeBox3D()
		if !ok {
			return Box{}, false
		}
		return boxFrom3D(b3), true
	}
	b2, ok := pa.ComputeBox2D()
	if !ok {
		return Box{}, false
	}
	return boxFrom2D(b2), true
}

// Same reports deep structural equality: same variant, same z/m flags,
// equal cached bboxes if both present, and equal payload.
func Same(a, b Geometry) bool {
	if a.GeomType() != b.GeomType() {
		return false
	}
	if a.Base().hasZ != b.Base().hasZ || a.Base().hasM != b.Base().hasM {
		return false
	}
	ba, bb := a.Base().Bbox(), b.Base().Bbox()
	if ba != nil && bb != nil && *ba != *bb {
		return false
	}

	switch av := a.(type) {
	case *Point:
		return ptarray.Same(av.PA, b.(*Point).PA)
	case *LineString:
		return ptarray.Same(av.PA, b.(*LineString).PA)
	case *CircularString:
		return ptarray.Same(av.PA, b.(*CircularString).PA)
	case *Triangle:
		return ptarray.Same(av.PA, b.(*Triangle).PA)
	case *Polygon:
		bv := b.(*Polygon)
		if len(av.Rings) != len(bv.Rings) {
			return false
		}
		for i := range av.Rings {
			if !ptarray.Same(av.Rings[i], bv.Rings[i]) {
				return false
			}
		}
		return true
	default:
		return sameUnordered(subGeoms(a), subGeoms(b))
	}
}

// sameUnordered matches each element of xs to exactly one unused element
// of ys under Same, order-independent (the collection equality contract).
func sameUnordered(xs, ys []Geometry) bool {
	if len(xs) != len(ys) {
		return false
	}
	used := make([]bool, len(ys))
	for _, x := range xs {
		matched := false
		for j, y := range ys {
			if used[j] {
				continue
			}
			if Same(x, y) {
				used[j] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
