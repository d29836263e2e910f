package wkt

import "github.com/postgis/lwgeom/internal/geom"

// CheckFlags is a bitmap of optional structural validators applied during
// Parse (spec §4.3.3).
type CheckFlags uint8

const (
	// CheckMinPoints requires lines to have >=2 points, rings >=4 and
	// circular strings >=3.
	CheckMinPoints CheckFlags = 1 << iota
	// CheckOdd requires circular strings to have an odd point count.
	CheckOdd
	// CheckClosure requires polygon rings and closed compound curves to
	// be closed in 2D.
	CheckClosure
)

// DefaultCheckFlags enables every structural validator. Open question
// resolution (DESIGN.md): the spec leaves the default unstated, so a
// fresh parse is strict by default; callers that need to accept malformed
// legacy text pass 0 explicitly.
func DefaultCheckFlags() CheckFlags {
	return CheckMinPoints | CheckOdd | CheckClosure
}

func (c CheckFlags) has(f CheckFlags) bool { return c&f != 0 }

// typeKeyword maps an uppercased WKT type keyword to its geom.Type.
var typeKeyword = map[string]geom.Type{
	"POINT":              geom.TypePoint,
	"LINESTRING":         geom.TypeLineString,
	"CIRCULARSTRING":     geom.TypeCircularString,
	"COMPOUNDCURVE":      geom.TypeCompoundCurve,
	"TRIANGLE":           geom.TypeTriangle,
	"POLYGON":            geom.TypePolygon,
	"CURVEPOLYGON":       geom.TypeCurvePolygon,
	"MULTIPOINT":         geom.TypeMultiPoint,
	"MULTILINESTRING":    geom.TypeMultiLineString,
	"MULTICURVE":         geom.TypeMultiCurve,
	"MULTIPOLYGON":       geom.TypeMultiPolygon,
	"MULTISURFACE":       geom.TypeMultiSurface,
	"POLYHEDRALSURFACE":  geom.TypePolyhedralSurface,
	"TIN":                geom.TypeTIN,
	"GEOMETRYCOLLECTION": geom.TypeCollection,
}

// keywordForType is the inverse of typeKeyword, used by the emitter.
var keywordForType = func() map[geom.Type]string {
	out := make(map[geom.Type]string, len(typeKeyword))
	for kw, t := range typeKeyword {
		out[t] = kw
	}
	return out
}()
