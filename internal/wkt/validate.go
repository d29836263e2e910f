package wkt

import (
	"github.com/postgis/lwgeom/internal/geom"
	"github.com/postgis/lwgeom/internal/ptarray"
)

// Validate applies the same structural checks Parse honors (spec §4.3.3)
// to an already-decoded geometry, for callers that build geometries from
// a source other than WKT text (the WKB/EWKB decoder, per §6.2's shared
// parse_wkb(bytes, checks) contract). Since there is no source text here,
// ParseError.Offset carries a vertex index instead of a byte offset.
// One Parse check is not made here: the closure of CurvePolygon rings.
func Validate(g geom.Geometry, checks CheckFlags) error {
	switch v := g.(type) {
	case *geom.LineString:
		return validateLine(v.PA, checks)
	case *geom.CircularString:
		return validateCircular(v.PA, checks)
	case *geom.Triangle:
		return validateRing(v.PA, checks)
	case *geom.Polygon:
		for _, ring := range v.Rings {
			if err := validateRing(ring, checks); err != nil {
				return err
			}
		}
		return nil
	case *geom.CompoundCurve:
		if err := validateEach(v.Geoms, checks); err != nil {
			return err
		}
		return checkContinuity(v.Geoms, 0)
	default:
		return validateEach(geom.SubGeometries(g), checks)
	}
}

func validateEach(subs []geom.Geometry, checks CheckFlags) error {
	for _, sub := range subs {
		if err := Validate(sub, checks); err != nil {
			return err
		}
	}
	return nil
}

func validateLine(pa *ptarray.PointArray, checks CheckFlags) error {
	if checks.has(CheckMinPoints) && !pa.IsLineValid() {
		return parseErr(MorePoints, 0, "linestring requires at least 2 points, got %d", pa.NPoints())
	}
	return nil
}

func validateRing(pa *ptarray.PointArray, checks CheckFlags) error {
	if checks.has(CheckMinPoints) && pa.NPoints() < 4 {
		return parseErr(MorePoints, 0, "ring requires at least 4 points, got %d", pa.NPoints())
	}
	if checks.has(CheckClosure) && pa.NPoints() > 0 && !pa.IsClosed2D() {
		return parseErr(Unclosed, 0, "ring is not closed")
	}
	return nil
}

func validateCircular(pa *ptarray.PointArray, checks CheckFlags) error {
	if checks.has(CheckMinPoints) && pa.NPoints() < 3 {
		return parseErr(MorePoints, 0, "circular string requires at least 3 points, got %d", pa.NPoints())
	}
	if checks.has(CheckOdd) && pa.NPoints()%2 == 0 {
		return parseErr(OddPoints, 0, "circular string requires an odd point count, got %d", pa.NPoints())
	}
	return nil
}
