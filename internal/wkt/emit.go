package wkt

import (
	"strconv"
	"strings"

	"github.com/postgis/lwgeom/internal/geom"
	"github.com/postgis/lwgeom/internal/ptarray"
)

// Emit renders g as EWKT at the given decimal precision, with trailing
// zeros trimmed (spec §4.3.4). A non-zero SRID is written as an
// "SRID=<n>;" prefix.
func Emit(g geom.Geometry, precision int) string {
	var b strings.Builder
	if srid := g.Base().SRID(); srid != geom.SRIDUnknown {
		b.WriteString("SRID=")
		b.WriteString(strconv.Itoa(int(srid)))
		b.WriteString(";")
	}
	writeGeom(&b, g, precision, true)
	return b.String()
}

func typeSuffix(g geom.Geometry) string {
	base := g.Base()
	switch {
	case base.HasZ() && base.HasM():
		return " ZM"
	case base.HasZ():
		return " Z"
	case base.HasM():
		return " M"
	default:
		return ""
	}
}

func writeGeom(b *strings.Builder, g geom.Geometry, precision int, withType bool) {
	if withType {
		b.WriteString(keywordForType[g.GeomType()])
		b.WriteString(typeSuffix(g))
		b.WriteString(" ")
	}
	if geom.IsEmpty(g) {
		b.WriteString("EMPTY")
		return
	}

	switch v := g.(type) {
	case *geom.Point:
		b.WriteString("(")
		writeTuple(b, v.PA.GetPoint4D(0), v.PA.HasZ, v.PA.HasM, precision)
		b.WriteString(")")
	case *geom.LineString:
		writeCoordList(b, v.PA, precision)
	case *geom.CircularString:
		writeCoordList(b, v.PA, precision)
	case *geom.Triangle:
		b.WriteString("(")
		writeCoordList(b, v.PA, precision)
		b.WriteString(")")
	case *geom.Polygon:
		writeRings(b, v.Rings, precision)
	case *geom.MultiPoint:
		b.WriteString("(")
		for i, p := range v.Geoms {
			if i > 0 {
				b.WriteString(", ")
			}
			if geom.IsEmpty(p) {
				b.WriteString("EMPTY")
				continue
			}
			b.WriteString("(")
			writeTuple(b, p.PA.GetPoint4D(0), p.PA.HasZ, p.PA.HasM, precision)
			b.WriteString(")")
		}
		b.WriteString(")")
	case *geom.MultiLineString:
		writeMemberList(b, toGeoms(v.Geoms), precision, false)
	case *geom.MultiPolygon:
		writeMemberList(b, toGeoms(v.Geoms), precision, false)
	case *geom.PolyhedralSurface:
		writeMemberList(b, toGeoms(v.Geoms), precision, false)
	case *geom.TIN:
		writeMemberList(b, toGeoms(v.Geoms), precision, false)
	case *geom.CompoundCurve:
		writeMemberList(b, v.Geoms, precision, true)
	case *geom.CurvePolygon:
		writeMemberList(b, v.Geoms, precision, true)
	case *geom.MultiCurve:
		writeMemberList(b, v.Geoms, precision, true)
	case *geom.MultiSurface:
		writeMemberList(b, v.Geoms, precision, true)
	case *geom.Collection:
		writeMemberList(b, v.Geoms, precision, true)
	}
}

func toGeoms[T geom.Geometry](in []T) []geom.Geometry {
	out := make([]geom.Geometry, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

// writeMemberList emits "(member, member, ...)". typedMembers controls
// whether each member carries its own type keyword: GeometryCollection
// and the curve containers mix shapes so every member is fully typed;
// MultiLineString/MultiPolygon/PolyhedralSurface/TIN members are
// homogeneous and written as bare bodies.
func writeMemberList(b *strings.Builder, members []geom.Geometry, precision int, typedMembers bool) {
	b.WriteString("(")
	for i, m := range members {
		if i > 0 {
			b.WriteString(", ")
		}
		writeGeom(b, m, precision, typedMembers)
	}
	b.WriteString(")")
}

func writeRings(b *strings.Builder, rings []*ptarray.PointArray, precision int) {
	b.WriteString("(")
	for i, ring := range rings {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		writeCoordList(b, ring, precision)
		b.WriteString(")")
	}
	b.WriteString(")")
}

func writeCoordList(b *strings.Builder, pa *ptarray.PointArray, precision int) {
	b.WriteString("(")
	n := pa.NPoints()
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		writeTuple(b, pa.GetPoint4D(i), pa.HasZ, pa.HasM, precision)
	}
	b.WriteString(")")
}

func writeTuple(b *strings.Builder, p ptarray.Point4D, hasZ, hasM bool, precision int) {
	b.WriteString(formatFloat(p.X, precision))
	b.WriteString(" ")
	b.WriteString(formatFloat(p.Y, precision))
	if hasZ {
		b.WriteString(" ")
		b.WriteString(formatFloat(p.Z, precision))
	}
	if hasM {
		b.WriteString(" ")
		b.WriteString(formatFloat(p.M, precision))
	}
}

// formatFloat renders f at precision decimal digits with trailing zeros
// (and a trailing decimal point) trimmed, per spec §4.3.4.
func formatFloat(f float64, precision int) string {
	s := strconv.FormatFloat(f, 'f', precision, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
