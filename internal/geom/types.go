// Package geom implements the typed geometry object model (C2): tagged
// variants over ptarray.PointArray for every PostGIS geometry type, with
// uniform dimensionality and SRID tagging.
package geom

import "github.com/postgis/lwgeom/internal/ptarray"

// Type tags every geometry variant. The zero value is never used by a
// constructed geometry.
type Type uint8

const (
	TypePoint Type = iota + 1
	TypeLineString
	TypeCircularString
	TypeCompoundCurve
	TypeTriangle
	TypePolygon
	TypeCurvePolygon
	TypeMultiPoint
	TypeMultiLineString
	TypeMultiCurve
	TypeMultiPolygon
	TypeMultiSurface
	TypePolyhedralSurface
	TypeTIN
	TypeCollection
)

func (t Type) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypeCircularString:
		return "CircularString"
	case TypeCompoundCurve:
		return "CompoundCurve"
	case TypeTriangle:
		return "Triangle"
	case TypePolygon:
		return "Polygon"
	case TypeCurvePolygon:
		return "CurvePolygon"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeMultiLineString:
		return "MultiLineString"
	case TypeMultiCurve:
		return "MultiCurve"
	case TypeMultiPolygon:
		return "MultiPolygon"
	case TypeMultiSurface:
		return "MultiSurface"
	case TypePolyhedralSurface:
		return "PolyhedralSurface"
	case TypeTIN:
		return "TIN"
	case TypeCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// SRIDUnknown is the canonical "no spatial reference" sentinel. Internal
// format and WKB/EWKB interchange both use 0; this resolves spec.md's
// open question about reconciling the two by picking one sentinel and
// translating at the boundary (there is no boundary translation needed
// since both forms already agree on 0).
const SRIDUnknown int32 = 0

// Box is the bounding box cached on a geometry. It carries a Z range only
// when the owning geometry HasZ.
type Box struct {
	XMin, YMin, XMax, YMax float64
	HasZ                   bool
	ZMin, ZMax             float64
}

func boxFrom2D(b ptarray.Box2D) Box {
	return Box{XMin: b.XMin, YMin: b.YMin, XMax: b.XMax, YMax: b.YMax}
}

func boxFrom3D(b ptarray.Box3D) Box {
	return Box{XMin: b.XMin, YMin: b.YMin, XMax: b.XMax, YMax: b.YMax, HasZ: true, ZMin: b.ZMin, ZMax: b.ZMax}
}

// Union returns the box spanning both inputs.
func (b Box) Union(o Box) Box {
	out := Box{
		XMin: min(b.XMin, o.XMin), YMin: min(b.YMin, o.YMin),
		XMax: max(b.XMax, o.XMax), YMax: max(b.YMax, o.YMax),
	}
	if b.HasZ || o.HasZ {
		out.HasZ = true
		out.ZMin = min(zminOr(b), zminOr(o))
		out.ZMax = max(zmaxOr(b), zmaxOr(o))
	}
	return out
}

func zminOr(b Box) float64 {
	if b.HasZ {
		return b.ZMin
	}
	return 0
}
func zmaxOr(b Box) float64 {
	if b.HasZ {
		return b.ZMax
	}
	return 0
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Base holds the attributes common to every geometry variant: srid, the
// has_z/has_m/has_bbox/solid flags, and the cached bounding box.
type Base struct {
	srid    int32
	hasZ    bool
	hasM    bool
	hasBBox bool
	solid   bool
	bbox    *Box
}

// SRID returns the spatial reference identifier, or SRIDUnknown.
func (b *Base) SRID() int32 { return b.srid }

// SetSRID sets the spatial reference identifier.
func (b *Base) SetSRID(srid int32) { b.srid = srid }

// HasZ reports whether this geometry carries a Z ordinate.
func (b *Base) HasZ() bool { return b.hasZ }

// HasM reports whether this geometry carries an M ordinate.
func (b *Base) HasM() bool { return b.hasM }

// Solid is only meaningful for PolyhedralSurface.
func (b *Base) Solid() bool { return b.solid }

// Bbox returns the cached bounding box, or nil if none has been computed.
func (b *Base) Bbox() *Box {
	if !b.hasBBox {
		return nil
	}
	return b.bbox
}

func (b *Base) setBbox(box Box) {
	b.bbox = &box
	b.hasBBox = true
}

// Base returns the receiver itself; it lets package-level functions reach
// the common fields of any concrete variant through the Geometry
// interface without a type switch.
func (b *Base) Base() *Base { return b }

// Geometry is the sum type over every PostGIS geometry variant. Concrete
// types are *Point, *LineString, *CircularString, *Triangle, *Polygon,
// *MultiPoint, *MultiLineString, *MultiPolygon, *CompoundCurve,
// *CurvePolygon, *MultiCurve, *MultiSurface, *PolyhedralSurface, *TIN and
// *Collection. Dispatch on the concrete variant is done with exhaustive
// type switches in this package's functions, not with tag inspection.
type Geometry interface {
	Base() *Base
	GeomType() Type
}

// leaf variants: exactly one owned point-array.

type Point struct {
	Base
	PA *ptarray.PointArray
}

func (g *Point) GeomType() Type { return TypePoint }

type LineString struct {
	Base
	PA *ptarray.PointArray
}

func (g *LineString) GeomType() Type { return TypeLineString }

type CircularString struct {
	Base
	PA *ptarray.PointArray
}

func (g *CircularString) GeomType() Type { return TypeCircularString }

// Triangle always has exactly 0 or 4 points (closed ring of 3 vertices).
type Triangle struct {
	Base
	PA *ptarray.PointArray
}

func (g *Triangle) GeomType() Type { return TypeTriangle }

// Polygon owns a sequence of rings; Rings[0] is exterior, the rest holes.
type Polygon struct {
	Base
	Rings []*ptarray.PointArray
}

func (g *Polygon) GeomType() Type { return TypePolygon }

// collection-like variants: a sequence of sub-geometries. MultiPoint,
// MultiLineString, MultiPolygon, PolyhedralSurface and TIN hold typed
// slices, which fix their allowed sub-variants (BuildCollectionLike in
// exports.go checks them when decoders assemble one); CompoundCurve,
// CurvePolygon, MultiCurve, MultiSurface and Collection hold []Geometry
// and accept any sub-variant.

type MultiPoint struct {
	Base
	Geoms []*Point
}

func (g *MultiPoint) GeomType() Type { return TypeMultiPoint }

type MultiLineString struct {
	Base
	Geoms []*LineString
}

func (g *MultiLineString) GeomType() Type { return TypeMultiLineString }

type MultiPolygon struct {
	Base
	Geoms []*Polygon
}

func (g *MultiPolygon) GeomType() Type { return TypeMultiPolygon }

// CompoundCurve sub-geometries are *LineString or *CircularString.
type CompoundCurve struct {
	Base
	Geoms []Geometry
}

func (g *CompoundCurve) GeomType() Type { return TypeCompoundCurve }

// CurvePolygon rings are *LineString, *CircularString or *CompoundCurve.
type CurvePolygon struct {
	Base
	Geoms []Geometry
}

func (g *CurvePolygon) GeomType() Type { return TypeCurvePolygon }

// MultiCurve members are *LineString, *CircularString or *CompoundCurve.
type MultiCurve struct {
	Base
	Geoms []Geometry
}

func (g *MultiCurve) GeomType() Type { return TypeMultiCurve }

// MultiSurface members are *Polygon or *CurvePolygon.
type MultiSurface struct {
	Base
	Geoms []Geometry
}

func (g *MultiSurface) GeomType() Type { return TypeMultiSurface }

type PolyhedralSurface struct {
	Base
	Geoms []*Polygon
}

func (g *PolyhedralSurface) GeomType() Type { return TypePolyhedralSurface }

type TIN struct {
	Base
	Geoms []*Triangle
}

func (g *TIN) GeomType() Type { return TypeTIN }

// Collection holds arbitrary sub-geometries; any variant is allowed.
type Collection struct {
	Base
	Geoms []Geometry
}

func (g *Collection) GeomType() Type { return TypeCollection }
