// Package wkb implements the binary serialization codec (C3): the
// internal variable-width TLV format of spec §4.3.1, and the OGC
// WKB/EWKB interchange format of spec §4.3.2, plus hex-WKB.
package wkb

import "github.com/postgis/lwgeom/internal/geom"

// Internal format type codes (spec §4.3.1). Triangle, PolyhedralSurface
// and TIN have no codes in the table spec.md gives (it only enumerates
// 12 of the 15 values a 4-bit type nibble can hold); this fills the
// three unused slots (10, 11, 12) that fall before CurvePolygon(13).
const (
	TypePoint             = 1
	TypeLineString        = 2
	TypePolygon           = 3
	TypeMultiPoint        = 4
	TypeMultiLineString   = 5
	TypeMultiPolygon      = 6
	TypeCollection        = 7
	TypeCircularString    = 8
	TypeCompoundCurve     = 9
	TypeTriangle          = 10
	TypePolyhedralSurface = 11
	TypeTIN               = 12
	TypeCurvePolygon      = 13
	TypeMultiCurve        = 14
	TypeMultiSurface      = 15
)

// Internal format type_byte flag bits (spec §4.3.1).
const (
	flagHasZ    = 0x20
	flagHasM    = 0x10
	flagHasBBox = 0x80
	flagHasSRID = 0x40
	typeMask    = 0x0F
)

// OGC WKB/EWKB high-bit flags on the 32-bit type word (spec §4.3.2).
const (
	WKBZOffset   = 0x80000000
	WKBMOffset   = 0x40000000
	WKBSRIDFlag  = 0x20000000
	wkbTypeMask  = 0x000000FF
)

func typeCodeOf(t geom.Type) (byte, error) {
	switch t {
	case geom.TypePoint:
		return TypePoint, nil
	case geom.TypeLineString:
		return TypeLineString, nil
	case geom.TypePolygon:
		return TypePolygon, nil
	case geom.TypeMultiPoint:
		return TypeMultiPoint, nil
	case geom.TypeMultiLineString:
		return TypeMultiLineString, nil
	case geom.TypeMultiPolygon:
		return TypeMultiPolygon, nil
	case geom.TypeCollection:
		return TypeCollection, nil
	case geom.TypeCircularString:
		return TypeCircularString, nil
	case geom.TypeCompoundCurve:
		return TypeCompoundCurve, nil
	case geom.TypeTriangle:
		return TypeTriangle, nil
	case geom.TypePolyhedralSurface:
		return TypePolyhedralSurface, nil
	case geom.TypeTIN:
		return TypeTIN, nil
	case geom.TypeCurvePolygon:
		return TypeCurvePolygon, nil
	case geom.TypeMultiCurve:
		return TypeMultiCurve, nil
	case geom.TypeMultiSurface:
		return TypeMultiSurface, nil
	default:
		return 0, &InvariantError{Reason: "unknown geometry variant"}
	}
}

func geomTypeOf(code byte) (geom.Type, error) {
	switch code {
	case TypePoint:
		return geom.TypePoint, nil
	case TypeLineString:
		return geom.TypeLineString, nil
	case TypePolygon:
		return geom.TypePolygon, nil
	case TypeMultiPoint:
		return geom.TypeMultiPoint, nil
	case TypeMultiLineString:
		return geom.TypeMultiLineString, nil
	case TypeMultiPolygon:
		return geom.TypeMultiPolygon, nil
	case TypeCollection:
		return geom.TypeCollection, nil
	case TypeCircularString:
		return geom.TypeCircularString, nil
	case TypeCompoundCurve:
		return geom.TypeCompoundCurve, nil
	case TypeTriangle:
		return geom.TypeTriangle, nil
	case TypePolyhedralSurface:
		return geom.TypePolyhedralSurface, nil
	case TypeTIN:
		return geom.TypeTIN, nil
	case TypeCurvePolygon:
		return geom.TypeCurvePolygon, nil
	case TypeMultiCurve:
		return geom.TypeMultiCurve, nil
	case TypeMultiSurface:
		return geom.TypeMultiSurface, nil
	default:
		return 0, &InvalidWkbTypeError{Code: int(code)}
	}
}
