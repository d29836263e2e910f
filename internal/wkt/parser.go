package wkt

import (
	"strings"

	"github.com/postgis/lwgeom/internal/geom"
	"github.com/postgis/lwgeom/internal/ptarray"
)

// dimState tracks the Z/M dimensionality established for one geometry
// (and, per the CHECK_LWGEOM_ZM invariant, every sub-geometry beneath it).
// known becomes true either immediately, from an explicit "Z"/"M"/"ZM"
// type suffix, or lazily, the moment the first coordinate tuple is read.
type dimState struct {
	hasZ, hasM bool
	known      bool
}

// observe records the ordinate count of a just-read coordinate tuple
// (beyond x, y) against the established dimensionality, inferring it on
// the first call and validating it on every later one.
func (d *dimState) observe(extra int, offset int) error {
	if !d.known {
		d.hasZ = extra >= 1
		d.hasM = extra >= 2
		d.known = true
		return nil
	}
	want := 0
	if d.hasZ {
		want++
	}
	if d.hasM {
		want++
	}
	if want != extra {
		return parseErr(MixedDimensions, offset, "coordinate has %d extra ordinates, geometry established %d", extra, want)
	}
	return nil
}

// Parser parses WKT/EWKT text into a decoded geometry, with its own lexer
// and dimension state threaded explicitly rather than through globals.
type Parser struct {
	lex    *lexer
	cur    token
	checks CheckFlags
}

// Parse decodes WKT or EWKT text under the given structural checks.
func Parse(text string, checks CheckFlags) (geom.Geometry, error) {
	p := &Parser{lex: newLexer(text), checks: checks}
	if err := p.advance(); err != nil {
		return nil, err
	}

	srid := geom.SRIDUnknown
	if p.cur.kind == tokIdent && strings.EqualFold(p.cur.text, "SRID") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.kind != tokEquals {
			return nil, parseErr(InvalidGeom, p.cur.offset, "expected '=' after SRID")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.kind != tokNumber {
			return nil, parseErr(InvalidGeom, p.cur.offset, "expected integer SRID value")
		}
		srid = int32(p.cur.num)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.kind != tokSemicolon {
			return nil, parseErr(InvalidGeom, p.cur.offset, "expected ';' after SRID=<int>")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	ds := &dimState{}
	g, err := p.parseGeometryWithDim(ds)
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, parseErr(InvalidGeom, p.cur.offset, "unexpected trailing input")
	}
	if srid != geom.SRIDUnknown {
		g.Base().SetSRID(srid)
	}
	return g, nil
}

func (p *Parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *Parser) expect(kind tokenKind, what string) error {
	if p.cur.kind != kind {
		return parseErr(InvalidGeom, p.cur.offset, "expected %s", what)
	}
	return p.advance()
}

func (p *Parser) isEmptyKeyword() bool {
	return p.cur.kind == tokIdent && strings.EqualFold(p.cur.text, "EMPTY")
}

// parseTypeKeyword reads a type identifier, accounting for both the
// attached ("POINTZ") and space-separated ("POINT Z") suffix forms, and
// reports the type plus whatever Z/M it carried explicitly.
func (p *Parser) parseTypeKeyword() (geom.Type, bool, bool, error) {
	if p.cur.kind != tokIdent {
		return 0, false, false, parseErr(InvalidGeom, p.cur.offset, "expected geometry type keyword")
	}
	offset := p.cur.offset
	upper := strings.ToUpper(p.cur.text)

	var hasZ, hasM bool
	t, ok := typeKeyword[upper]
	if !ok {
		switch {
		case strings.HasSuffix(upper, "ZM"):
			if base, found := typeKeyword[upper[:len(upper)-2]]; found {
				t, ok, hasZ, hasM = base, true, true, true
			}
		case strings.HasSuffix(upper, "Z"):
			if base, found := typeKeyword[upper[:len(upper)-1]]; found {
				t, ok, hasZ = base, true, true
			}
		case strings.HasSuffix(upper, "M"):
			if base, found := typeKeyword[upper[:len(upper)-1]]; found {
				t, ok, hasM = base, true, true
			}
		}
	}
	if !ok {
		return 0, false, false, parseErr(InvalidGeom, offset, "unknown geometry type %q", p.cur.text)
	}
	if err := p.advance(); err != nil {
		return 0, false, false, err
	}

	if p.cur.kind == tokIdent {
		switch strings.ToUpper(p.cur.text) {
		case "ZM":
			hasZ, hasM = true, true
			if err := p.advance(); err != nil {
				return 0, false, false, err
			}
		case "Z":
			hasZ = true
			if err := p.advance(); err != nil {
				return 0, false, false, err
			}
		case "M":
			hasM = true
			if err := p.advance(); err != nil {
				return 0, false, false, err
			}
		}
	}
	return t, hasZ, hasM, nil
}

// parseGeometryWithDim parses one full geometry value ("TYPE[ Z|M|ZM]
// (EMPTY|body)"), seeding or validating ds against the type's own suffix.
func (p *Parser) parseGeometryWithDim(ds *dimState) (geom.Geometry, error) {
	offset := p.cur.offset
	t, hasZ, hasM, err := p.parseTypeKeyword()
	if err != nil {
		return nil, err
	}
	if hasZ || hasM {
		if !ds.known {
			ds.hasZ, ds.hasM, ds.known = hasZ, hasM, true
		} else if ds.hasZ != hasZ || ds.hasM != hasM {
			return nil, parseErr(MixedDimensions, offset, "%s's Z/M suffix disagrees with the enclosing geometry", t)
		}
	}
	return p.parseBody(t, ds)
}

func (p *Parser) parseBody(t geom.Type, ds *dimState) (geom.Geometry, error) {
	if p.isEmptyKeyword() {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.buildEmpty(t, ds)
	}
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}

	var g geom.Geometry
	var err error
	switch t {
	case geom.TypePoint:
		g, err = p.parsePointValue(ds)
	case geom.TypeLineString, geom.TypeCircularString:
		g, err = p.parseLineValue(t, ds)
	case geom.TypeTriangle:
		g, err = p.parseTriangleValue(ds)
	case geom.TypePolygon:
		g, err = p.parsePolygonValue(ds)
	case geom.TypeMultiPoint:
		g, err = p.parseMultiPointValue(ds)
	case geom.TypeMultiLineString:
		g, err = p.parseMultiLineStringValue(ds)
	case geom.TypeMultiPolygon:
		g, err = p.parseMultiPolygonValue(ds)
	case geom.TypePolyhedralSurface, geom.TypeTIN:
		g, err = p.parseFaceCollectionValue(t, ds)
	case geom.TypeCompoundCurve:
		g, err = p.parseCompoundCurveValue(ds)
	case geom.TypeCurvePolygon:
		g, err = p.parseCurvePolygonValue(ds)
	case geom.TypeMultiCurve:
		g, err = p.parseMultiCurveValue(ds)
	case geom.TypeMultiSurface:
		g, err = p.parseMultiSurfaceValue(ds)
	case geom.TypeCollection:
		g, err = p.parseCollectionValue(ds)
	default:
		return nil, parseErr(InvalidGeom, p.cur.offset, "unsupported geometry type %s", t)
	}
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return g, nil
}

func (p *Parser) buildEmpty(t geom.Type, ds *dimState) (geom.Geometry, error) {
	hasZ, hasM := ds.hasZ, ds.hasM
	switch t {
	case geom.TypePoint:
		return geom.EmptyPoint(hasZ, hasM), nil
	case geom.TypeLineString:
		return geom.EmptyLineString(hasZ, hasM), nil
	case geom.TypeCircularString:
		return geom.NewCircularString(ptarray.Construct(hasZ, hasM, 0)), nil
	case geom.TypeTriangle:
		return geom.NewTriangle(ptarray.Construct(hasZ, hasM, 0)), nil
	case geom.TypePolygon:
		return geom.EmptyPolygon(hasZ, hasM), nil
	default:
		return geom.BuildCollectionLike(t, hasZ, hasM, nil)
	}
}

// readTuple reads one "x y [z] [m]" coordinate value, validating its
// ordinate count against ds.
func (p *Parser) readTuple(ds *dimState) (ptarray.Point4D, error) {
	offset := p.cur.offset
	if p.cur.kind != tokNumber {
		return ptarray.Point4D{}, parseErr(InvalidGeom, offset, "expected a coordinate")
	}
	x := p.cur.num
	if err := p.advance(); err != nil {
		return ptarray.Point4D{}, err
	}
	if p.cur.kind != tokNumber {
		return ptarray.Point4D{}, parseErr(InvalidGeom, p.cur.offset, "expected a second coordinate ordinate")
	}
	y := p.cur.num
	if err := p.advance(); err != nil {
		return ptarray.Point4D{}, err
	}

	var extra []float64
	for p.cur.kind == tokNumber && len(extra) < 2 {
		extra = append(extra, p.cur.num)
		if err := p.advance(); err != nil {
			return ptarray.Point4D{}, err
		}
	}
	if err := ds.observe(len(extra), offset); err != nil {
		return ptarray.Point4D{}, err
	}
	pt := ptarray.Point4D{X: x, Y: y}
	if ds.hasZ && len(extra) > 0 {
		pt.Z = extra[0]
	}
	if ds.hasM {
		if ds.hasZ && len(extra) > 1 {
			pt.M = extra[1]
		} else if !ds.hasZ && len(extra) > 0 {
			pt.M = extra[0]
		}
	}
	return pt, nil
}

// readCoordList reads a comma-separated run of tuples, caller has already
// consumed the opening '('; stops before the closing ')'.
func (p *Parser) readCoordList(ds *dimState) (*ptarray.PointArray, error) {
	pa := ptarray.Construct(false, false, 0)
	for {
		pt, err := p.readTuple(ds)
		if err != nil {
			return nil, err
		}
		pa.HasZ, pa.HasM = ds.hasZ, ds.hasM
		pa.Append(pt, true)
		if p.cur.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return pa, nil
}

func (p *Parser) checkLine(pa *ptarray.PointArray, offset int) error {
	if p.checks.has(CheckMinPoints) && !pa.IsLineValid() {
		return parseErr(MorePoints, offset, "linestring requires at least 2 points, got %d", pa.NPoints())
	}
	return nil
}

func (p *Parser) checkRing(pa *ptarray.PointArray, offset int) error {
	if p.checks.has(CheckMinPoints) && pa.NPoints() < 4 {
		return parseErr(MorePoints, offset, "ring requires at least 4 points, got %d", pa.NPoints())
	}
	if p.checks.has(CheckClosure) && pa.NPoints() > 0 && !pa.IsClosed2D() {
		return parseErr(Unclosed, offset, "ring is not closed")
	}
	return nil
}

func (p *Parser) checkCircular(pa *ptarray.PointArray, offset int) error {
	if p.checks.has(CheckMinPoints) && pa.NPoints() < 3 {
		return parseErr(MorePoints, offset, "circular string requires at least 3 points, got %d", pa.NPoints())
	}
	if p.checks.has(CheckOdd) && pa.NPoints()%2 == 0 {
		return parseErr(OddPoints, offset, "circular string requires an odd point count, got %d", pa.NPoints())
	}
	return nil
}

func (p *Parser) parsePointValue(ds *dimState) (geom.Geometry, error) {
	pt, err := p.readTuple(ds)
	if err != nil {
		return nil, err
	}
	return geom.NewPointFromCoords(ds.hasZ, ds.hasM, pt), nil
}

func (p *Parser) parseLineValue(t geom.Type, ds *dimState) (geom.Geometry, error) {
	offset := p.cur.offset
	pa, err := p.readCoordList(ds)
	if err != nil {
		return nil, err
	}
	if t == geom.TypeCircularString {
		if err := p.checkCircular(pa, offset); err != nil {
			return nil, err
		}
		return geom.NewCircularString(pa), nil
	}
	if err := p.checkLine(pa, offset); err != nil {
		return nil, err
	}
	return geom.NewLineString(pa), nil
}

func (p *Parser) parseTriangleValue(ds *dimState) (geom.Geometry, error) {
	offset := p.cur.offset
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	pa, err := p.readCoordList(ds)
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	if err := p.checkRing(pa, offset); err != nil {
		return nil, err
	}
	return geom.NewTriangle(pa), nil
}

func (p *Parser) parseRing(ds *dimState) (*ptarray.PointArray, error) {
	offset := p.cur.offset
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	pa, err := p.readCoordList(ds)
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	if err := p.checkRing(pa, offset); err != nil {
		return nil, err
	}
	return pa, nil
}

func (p *Parser) parsePolygonValue(ds *dimState) (geom.Geometry, error) {
	var rings []*ptarray.PointArray
	for {
		ring, err := p.parseRing(ds)
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
		if p.cur.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return geom.NewPolygon(rings...), nil
}

// parseMultiPointValue accepts both the bracketed "((x y),(x y))" and flat
// "(x y, x y)" syntaxes (spec §4.3.3).
func (p *Parser) parseMultiPointValue(ds *dimState) (geom.Geometry, error) {
	var pts []*geom.Point
	for {
		var pt *geom.Point
		if p.cur.kind == tokLParen {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.isEmptyKeyword() {
				if err := p.advance(); err != nil {
					return nil, err
				}
				pt = geom.EmptyPoint(ds.hasZ, ds.hasM)
			} else {
				v, err := p.readTuple(ds)
				if err != nil {
					return nil, err
				}
				pt = geom.NewPointFromCoords(ds.hasZ, ds.hasM, v)
			}
			if err := p.expect(tokRParen, "')'"); err != nil {
				return nil, err
			}
		} else {
			v, err := p.readTuple(ds)
			if err != nil {
				return nil, err
			}
			pt = geom.NewPointFromCoords(ds.hasZ, ds.hasM, v)
		}
		pts = append(pts, pt)
		if p.cur.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return geom.NewMultiPoint(ds.hasZ, ds.hasM, pts...), nil
}

func (p *Parser) parseMultiLineStringValue(ds *dimState) (geom.Geometry, error) {
	var lines []*geom.LineString
	for {
		sub, err := p.parseMemberOrEmpty(geom.TypeLineString, ds)
		if err != nil {
			return nil, err
		}
		ls, ok := sub.(*geom.LineString)
		if !ok {
			return nil, parseErr(InvalidGeom, p.cur.offset, "multilinestring member is not a linestring")
		}
		lines = append(lines, ls)
		if p.cur.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return geom.NewMultiLineString(ds.hasZ, ds.hasM, lines...), nil
}

func (p *Parser) parseMultiPolygonValue(ds *dimState) (geom.Geometry, error) {
	var polys []*geom.Polygon
	for {
		sub, err := p.parseMemberOrEmpty(geom.TypePolygon, ds)
		if err != nil {
			return nil, err
		}
		poly, ok := sub.(*geom.Polygon)
		if !ok {
			return nil, parseErr(InvalidGeom, p.cur.offset, "multipolygon member is not a polygon")
		}
		polys = append(polys, poly)
		if p.cur.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return geom.NewMultiPolygon(ds.hasZ, ds.hasM, polys...), nil
}

func (p *Parser) parseFaceCollectionValue(t geom.Type, ds *dimState) (geom.Geometry, error) {
	memberType := geom.TypePolygon
	if t == geom.TypeTIN {
		memberType = geom.TypeTriangle
	}
	var subs []geom.Geometry
	for {
		sub, err := p.parseMemberOrEmpty(memberType, ds)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
		if p.cur.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return geom.BuildCollectionLike(t, ds.hasZ, ds.hasM, subs)
}

// parseMemberOrEmpty reads one bracketed member body of memberType
// (LineString/Polygon/Triangle), or EMPTY, without its own type keyword.
func (p *Parser) parseMemberOrEmpty(memberType geom.Type, ds *dimState) (geom.Geometry, error) {
	if p.isEmptyKeyword() {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.buildEmpty(memberType, ds)
	}
	switch memberType {
	case geom.TypeLineString:
		offset := p.cur.offset
		if err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		pa, err := p.readCoordList(ds)
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		if err := p.checkLine(pa, offset); err != nil {
			return nil, err
		}
		return geom.NewLineString(pa), nil
	case geom.TypePolygon:
		if err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		g, err := p.parsePolygonValue(ds)
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return g, nil
	case geom.TypeTriangle:
		return p.parseTriangleValue(ds)
	default:
		return nil, parseErr(InvalidGeom, p.cur.offset, "unsupported member type %s", memberType)
	}
}

// curveMember reads one curve-chain element: either a bare "(coords)"
// LineString segment, or an explicitly typed CIRCULARSTRING/COMPOUNDCURVE.
func (p *Parser) curveMember(ds *dimState) (geom.Geometry, error) {
	if p.cur.kind == tokIdent && !p.isEmptyKeyword() {
		return p.parseGeometryWithDim(ds)
	}
	offset := p.cur.offset
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	pa, err := p.readCoordList(ds)
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	if err := p.checkLine(pa, offset); err != nil {
		return nil, err
	}
	return geom.NewLineString(pa), nil
}

// checkContinuity enforces the compound-curve structural rule (spec
// §4.3.3): each segment's end point must equal the next segment's start
// point, in full dimensionality, regardless of CheckFlags (a compound
// curve with a gap isn't a curve).
func checkContinuity(parts []geom.Geometry, offset int) error {
	for i := 0; i+1 < len(parts); i++ {
		end, ok1 := lastPoint(parts[i])
		start, ok2 := firstPoint(parts[i+1])
		if !ok1 || !ok2 {
			continue
		}
		if end != start {
			return parseErr(Incontinuous, offset, "segment %d does not end where segment %d begins", i, i+1)
		}
	}
	return nil
}

func firstPoint(g geom.Geometry) (ptarray.Point4D, bool) {
	switch v := g.(type) {
	case *geom.LineString:
		if v.PA.IsEmpty() {
			return ptarray.Point4D{}, false
		}
		return v.PA.GetPoint4D(0), true
	case *geom.CircularString:
		if v.PA.IsEmpty() {
			return ptarray.Point4D{}, false
		}
		return v.PA.GetPoint4D(0), true
	}
	return ptarray.Point4D{}, false
}

func lastPoint(g geom.Geometry) (ptarray.Point4D, bool) {
	switch v := g.(type) {
	case *geom.LineString:
		n := v.PA.NPoints()
		if n == 0 {
			return ptarray.Point4D{}, false
		}
		return v.PA.GetPoint4D(n - 1), true
	case *geom.CircularString:
		n := v.PA.NPoints()
		if n == 0 {
			return ptarray.Point4D{}, false
		}
		return v.PA.GetPoint4D(n - 1), true
	}
	return ptarray.Point4D{}, false
}

func (p *Parser) parseCompoundCurveValue(ds *dimState) (geom.Geometry, error) {
	offset := p.cur.offset
	var parts []geom.Geometry
	for {
		part, err := p.curveMember(ds)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		if p.cur.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if err := checkContinuity(parts, offset); err != nil {
		return nil, err
	}
	// A standalone CompoundCurve need not be closed; closure is only
	// required when one is used as a CurvePolygon ring, checked there.
	return geom.NewCompoundCurve(ds.hasZ, ds.hasM, parts...), nil
}

// curvePolygonRing reads one ring of a CurvePolygon: a bare LineString,
// or an explicitly-typed CircularString/CompoundCurve.
func (p *Parser) curvePolygonRing(ds *dimState) (geom.Geometry, error) {
	ring, err := p.curveMember(ds)
	if err != nil {
		return nil, err
	}
	offset := p.cur.offset
	if p.checks.has(CheckClosure) {
		start, ok1 := firstPoint(ring)
		end, ok2 := lastPoint(ring)
		if cc, isCC := ring.(*geom.CompoundCurve); isCC && len(cc.Geoms) > 0 {
			start, ok1 = firstPoint(cc.Geoms[0])
			end, ok2 = lastPoint(cc.Geoms[len(cc.Geoms)-1])
		}
		if ok1 && ok2 && (start.X != end.X || start.Y != end.Y) {
			return nil, parseErr(Unclosed, offset, "curve polygon ring is not closed")
		}
	}
	return ring, nil
}

func (p *Parser) parseCurvePolygonValue(ds *dimState) (geom.Geometry, error) {
	var rings []geom.Geometry
	for {
		ring, err := p.curvePolygonRing(ds)
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
		if p.cur.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return geom.NewCurvePolygon(ds.hasZ, ds.hasM, rings...), nil
}

func (p *Parser) parseMultiCurveValue(ds *dimState) (geom.Geometry, error) {
	var parts []geom.Geometry
	for {
		part, err := p.curveMember(ds)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		if p.cur.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return geom.NewMultiCurve(ds.hasZ, ds.hasM, parts...), nil
}

// surfaceMember reads one MultiSurface element: a bare Polygon body, or
// an explicitly-typed CurvePolygon.
func (p *Parser) surfaceMember(ds *dimState) (geom.Geometry, error) {
	if p.cur.kind == tokIdent && !p.isEmptyKeyword() {
		return p.parseGeometryWithDim(ds)
	}
	if p.isEmptyKeyword() {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.buildEmpty(geom.TypePolygon, ds)
	}
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	g, err := p.parsePolygonValue(ds)
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return g, nil
}

func (p *Parser) parseMultiSurfaceValue(ds *dimState) (geom.Geometry, error) {
	var parts []geom.Geometry
	for {
		part, err := p.surfaceMember(ds)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		if p.cur.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return geom.NewMultiSurface(ds.hasZ, ds.hasM, parts...), nil
}

func (p *Parser) parseCollectionValue(ds *dimState) (geom.Geometry, error) {
	var subs []geom.Geometry
	for {
		sub, err := p.parseGeometryWithDim(ds)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
		if p.cur.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return geom.NewCollection(ds.hasZ, ds.hasM, subs...), nil
}
