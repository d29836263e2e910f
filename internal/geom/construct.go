package geom

import "github.com/postgis/lwgeom/internal/ptarray"

// NewPoint wraps a point-array (0 or 1 points) as a Point, taking
// ownership of pa.
func NewPoint(pa *ptarray.PointArray) *Point {
	return &Point{Base: Base{hasZ: pa.HasZ, hasM: pa.HasM}, PA: pa}
}

// NewPointFromCoords builds a single-point Point from x, y and optional z/m.
func NewPointFromCoords(hasZ, hasM bool, p ptarray.Point4D) *Point {
	pa := ptarray.Construct(hasZ, hasM, 0)
	pa.Append(p, true)
	return NewPoint(pa)
}

// EmptyPoint returns a Point with zero points.
func EmptyPoint(hasZ, hasM bool) *Point {
	return NewPoint(ptarray.Construct(hasZ, hasM, 0))
}

// NewLineString wraps a point-array as a LineString, taking ownership.
func NewLineString(pa *ptarray.PointArray) *LineString {
	return &LineString{Base: Base{hasZ: pa.HasZ, hasM: pa.HasM}, PA: pa}
}

// EmptyLineString returns a LineString with zero points.
func EmptyLineString(hasZ, hasM bool) *LineString {
	return NewLineString(ptarray.Construct(hasZ, hasM, 0))
}

// NewCircularString wraps a point-array as a CircularString.
func NewCircularString(pa *ptarray.PointArray) *CircularString {
	return &CircularString{Base: Base{hasZ: pa.HasZ, hasM: pa.HasM}, PA: pa}
}

// NewTriangle wraps a closed 4-point ring as a Triangle.
func NewTriangle(pa *ptarray.PointArray) *Triangle {
	return &Triangle{Base: Base{hasZ: pa.HasZ, hasM: pa.HasM}, PA: pa}
}

// NewPolygon builds a Polygon from an exterior ring and zero or more
// interior rings (holes), taking ownership of every ring.
func NewPolygon(rings ...*ptarray.PointArray) *Polygon {
	var hasZ, hasM bool
	if len(rings) > 0 {
		hasZ, hasM = rings[0].HasZ, rings[0].HasM
	}
	return &Polygon{Base: Base{hasZ: hasZ, hasM: hasM}, Rings: rings}
}

// EmptyPolygon returns a Polygon with zero rings.
func EmptyPolygon(hasZ, hasM bool) *Polygon {
	return &Polygon{Base: Base{hasZ: hasZ, hasM: hasM}}
}

// NewMultiPoint builds a MultiPoint from sub-points, taking ownership.
func NewMultiPoint(hasZ, hasM bool, pts ...*Point) *MultiPoint {
	return &MultiPoint{Base: Base{hasZ: hasZ, hasM: hasM}, Geoms: pts}
}

// NewMultiLineString builds a MultiLineString from sub-linestrings.
func NewMultiLineString(hasZ, hasM bool, lines ...*LineString) *MultiLineString {
	return &MultiLineString{Base: Base{hasZ: hasZ, hasM: hasM}, Geoms: lines}
}

// NewMultiPolygon builds a MultiPolygon from sub-polygons.
func NewMultiPolygon(hasZ, hasM bool, polys ...*Polygon) *MultiPolygon {
	return &MultiPolygon{Base: Base{hasZ: hasZ, hasM: hasM}, Geoms: polys}
}

// NewCompoundCurve builds a CompoundCurve from LineString/CircularString parts.
func NewCompoundCurve(hasZ, hasM bool, parts ...Geometry) *CompoundCurve {
	return &CompoundCurve{Base: Base{hasZ: hasZ, hasM: hasM}, Geoms: parts}
}

// NewCurvePolygon builds a CurvePolygon from ring geometries.
func NewCurvePolygon(hasZ, hasM bool, rings ...Geometry) *CurvePolygon {
	return &CurvePolygon{Base: Base{hasZ: hasZ, hasM: hasM}, Geoms: rings}
}

// NewMultiCurve builds a MultiCurve.
func NewMultiCurve(hasZ, hasM bool, parts ...Geometry) *MultiCurve {
	return &MultiCurve{Base: Base{hasZ: hasZ, hasM: hasM}, Geoms: parts}
}

// NewMultiSurface builds a MultiSurface.
func NewMultiSurface(hasZ, hasM bool, parts ...Geometry) *MultiSurface {
	return &MultiSurface{Base: Base{hasZ: hasZ, hasM: hasM}, Geoms: parts}
}

// NewPolyhedralSurface builds a PolyhedralSurface from polygon faces.
func NewPolyhedralSurface(hasZ, hasM bool, faces ...*Polygon) *PolyhedralSurface {
	return &PolyhedralSurface{Base: Base{hasZ: hasZ, hasM: hasM}, Geoms: faces}
}

// NewTIN builds a TIN from triangle faces.
func NewTIN(hasZ, hasM bool, faces ...*Triangle) *TIN {
	return &TIN{Base: Base{hasZ: hasZ, hasM: hasM}, Geoms: faces}
}

// NewCollection builds a Collection from arbitrary sub-geometries.
func NewCollection(hasZ, hasM bool, parts ...Geometry) *Collection {
	return &Collection{Base: Base{hasZ: hasZ, hasM: hasM}, Geoms: parts}
}

// EmptyCollection returns a Collection with zero sub-geometries.
func EmptyCollection(hasZ, hasM bool) *Collection {
	return &Collection{Base: Base{hasZ: hasZ, hasM: hasM}}
}

// subGeoms returns the sub-geometry slice of any collection-like variant,
// or nil for leaf variants and Polygon (which owns rings, not geometries).
func subGeoms(g Geometry) []Geometry {
	switch v := g.(type) {
	case *MultiPoint:
		out := make([]Geometry, len(v.Geoms))
		for i, p := range v.Geoms {
			out[i] = p
		}
		return out
	case *MultiLineString:
		out := make([]Geometry, len(v.Geoms))
		for i, p := range v.Geoms {
			out[i] = p
		}
		return out
	case *MultiPolygon:
		out := make([]Geometry, len(v.Geoms))
		for i, p := range v.Geoms {
			out[i] = p
		}
		return out
	case *CompoundCurve:
		return v.Geoms
	case *CurvePolygon:
		return v.Geoms
	case *MultiCurve:
		return v.Geoms
	case *MultiSurface:
		return v.Geoms
	case *PolyhedralSurface:
		out := make([]Geometry, len(v.Geoms))
		for i, p := range v.Geoms {
			out[i] = p
		}
		return out
	case *TIN:
		out := make([]Geometry, len(v.Geoms))
		for i, p := range v.Geoms {
			out[i] = p
		}
		return out
	case *Collection:
		return v.Geoms
	default:
		return nil
	}
}

// isLeaf reports whether g owns a point-array directly rather than
// sub-geometries or rings.
func isLeaf(g Geometry) bool {
	switch g.(type) {
	case *Point, *LineString, *CircularString, *Triangle:
		return true
	default:
		return false
	}
}
