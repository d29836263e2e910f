package geom

import "fmt"

// SubGeometries returns g's sub-geometry slice for collection-like
// variants (nil for leaves and Polygon). Exported for the codec
// packages, which need to walk the tree without duplicating the
// type-switch dispatch that lives in this package.
func SubGeometries(g Geometry) []Geometry { return subGeoms(g) }

// SetBbox installs a bounding box on g without recomputing it, used by
// codecs restoring a cached bbox carried in the serialized form.
func SetBbox(g Geometry, box Box) { g.Base().setBbox(box) }

// BuildCollectionLike constructs an empty-payload collection-like
// geometry of the given type from already-decoded sub-geometries. Used
// by the binary and WKT decoders, which read sub-geometries generically
// before knowing how to specialize the slice type.
func BuildCollectionLike(t Type, hasZ, hasM bool, subs []Geometry) (Geometry, error) {
	base := Base{hasZ: hasZ, hasM: hasM}
	switch t {
	case TypeMultiPoint:
		pts := make([]*Point, len(subs))
		for i, s := range subs {
			p, ok := s.(*Point)
			if !ok {
				return nil, fmt.Errorf("geom: MultiPoint sub-geometry %d is not a Point", i)
			}
			pts[i] = p
		}
		return &MultiPoint{Base: base, Geoms: pts}, nil
	case TypeMultiLineString:
		lines := make([]*LineString, len(subs))
		for i, s := range subs {
			l, ok := s.(*LineString)
			if !ok {
				return nil, fmt.Errorf("geom: MultiLineString sub-geometry %d is not a LineString", i)
			}
			lines[i] = l
		}
		return &MultiLineString{Base: base, Geoms: lines}, nil
	case TypeMultiPolygon:
		polys := make([]*Polygon, len(subs))
		for i, s := range subs {
			p, ok := s.(*Polygon)
			if !ok {
				return nil, fmt.Errorf("geom: MultiPolygon sub-geometry %d is not a Polygon", i)
			}
			polys[i] = p
		}
		return &MultiPolygon{Base: base, Geoms: polys}, nil
	case TypeCompoundCurve:
		return &CompoundCurve{Base: base, Geoms: subs}, nil
	case TypeCurvePolygon:
		return &CurvePolygon{Base: base, Geoms: subs}, nil
	case TypeMultiCurve:
		return &MultiCurve{Base: base, Geoms: subs}, nil
	case TypeMultiSurface:
		return &MultiSurface{Base: base, Geoms: subs}, nil
	case TypePolyhedralSurface:
		faces := make([]*Polygon, len(subs))
		for i, s := range subs {
			p, ok := s.(*Polygon)
			if !ok {
				return nil, fmt.Errorf("geom: PolyhedralSurface face %d is not a Polygon", i)
			}
			faces[i] = p
		}
		return &PolyhedralSurface{Base: base, Geoms: faces}, nil
	case TypeTIN:
		faces := make([]*Triangle, len(subs))
		for i, s := range subs {
			tr, ok := s.(*Triangle)
			if !ok {
				return nil, fmt.Errorf("geom: TIN face %d is not a Triangle", i)
			}
			faces[i] = tr
		}
		return &TIN{Base: base, Geoms: faces}, nil
	case TypeCollection:
		return &Collection{Base: base, Geoms: subs}, nil
	default:
		return nil, fmt.Errorf("geom: %s is not a collection-like variant", t)
	}
}
