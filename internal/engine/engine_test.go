package engine

import (
	"testing"

	"github.com/postgis/lwgeom/internal/geom"
	"github.com/postgis/lwgeom/internal/ptarray"
)

func pt(x, y float64) *geom.Point {
	return geom.NewPointFromCoords(false, false, ptarray.Point4D{X: x, Y: y})
}

func line(coords ...float64) *geom.LineString {
	pa := ptarray.Construct(false, false, 0)
	for i := 0; i < len(coords); i += 2 {
		pa.Append(ptarray.Point4D{X: coords[i], Y: coords[i+1]}, true)
	}
	return geom.NewLineString(pa)
}

func ring(coords ...float64) *ptarray.PointArray {
	pa := ptarray.Construct(false, false, 0)
	for i := 0; i < len(coords); i += 2 {
		pa.Append(ptarray.Point4D{X: coords[i], Y: coords[i+1]}, true)
	}
	return pa
}

func TestIntersectsCrossingLines(t *testing.T) {
	e := NewPlanar()
	a := line(0, 0, 2, 2)
	b := line(0, 2, 2, 0)
	hit, err := e.Intersects(a, b)
	if err != nil {
		t.Fatalf("Intersects: %v", err)
	}
	if !hit {
		t.Fatalf("expected crossing diagonals to intersect")
	}
}

func TestIntersectsDisjointLines(t *testing.T) {
	e := NewPlanar()
	a := line(0, 0, 1, 0)
	b := line(10, 10, 11, 10)
	hit, err := e.Intersects(a, b)
	if err != nil {
		t.Fatalf("Intersects: %v", err)
	}
	if hit {
		t.Fatalf("expected disjoint lines not to intersect")
	}
}

func TestIntersectsPointInsidePolygon(t *testing.T) {
	e := NewPlanar()
	poly := geom.NewPolygon(ring(0, 0, 10, 0, 10, 10, 0, 10, 0, 0))
	p := pt(5, 5)
	hit, err := e.Intersects(poly, p)
	if err != nil {
		t.Fatalf("Intersects: %v", err)
	}
	if !hit {
		t.Fatalf("expected a point inside the polygon to intersect it")
	}
}

func TestIntersectsEmptyGeometryNeverHits(t *testing.T) {
	e := NewPlanar()
	empty := geom.EmptyLineString(false, false)
	other := line(0, 0, 1, 1)
	hit, err := e.Intersects(empty, other)
	if err != nil {
		t.Fatalf("Intersects: %v", err)
	}
	if hit {
		t.Fatalf("an empty geometry should never intersect anything")
	}
}

func TestIntersectsRejectsCurvedVariant(t *testing.T) {
	e := NewPlanar()
	pa := ring(0, 0, 1, 1, 2, 0)
	curved := geom.NewCircularString(pa)
	_, err := e.Intersects(curved, line(0, 0, 1, 1))
	if err == nil {
		t.Fatalf("expected an EngineError for a curved variant")
	}
	if _, ok := err.(*EngineError); !ok {
		t.Fatalf("got %T, want *EngineError", err)
	}
}

func TestPrepareThenPreparedIntersectsMatchesIntersects(t *testing.T) {
	e := NewPlanar()
	a := line(0, 0, 2, 2)
	b := line(0, 2, 2, 0)
	prepared, err := e.Prepare(a)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	hit, err := e.PreparedIntersects(prepared, b)
	if err != nil {
		t.Fatalf("PreparedIntersects: %v", err)
	}
	if !hit {
		t.Fatalf("PreparedIntersects disagreed with Intersects")
	}
}

func TestDistance2DZeroForIntersecting(t *testing.T) {
	e := NewPlanar()
	a := line(0, 0, 2, 2)
	b := line(0, 2, 2, 0)
	d, err := e.Distance2D(a, b, 0)
	if err != nil {
		t.Fatalf("Distance2D: %v", err)
	}
	if d != 0 {
		t.Fatalf("got %v, want 0 for crossing lines", d)
	}
}

func TestDistance2DMeasuresGap(t *testing.T) {
	e := NewPlanar()
	a := line(0, 0, 1, 0)
	b := line(0, 5, 1, 5)
	d, err := e.Distance2D(a, b, 0)
	if err != nil {
		t.Fatalf("Distance2D: %v", err)
	}
	if d != 5 {
		t.Fatalf("got %v, want 5", d)
	}
}

func TestDistance2DEmptyGeometryFails(t *testing.T) {
	e := NewPlanar()
	_, err := e.Distance2D(geom.EmptyLineString(false, false), line(0, 0, 1, 1), 0)
	if err == nil {
		t.Fatalf("expected an error measuring distance to an empty geometry")
	}
}

func TestEnvelopeOfComputesAndCaches(t *testing.T) {
	e := NewPlanar()
	ls := line(0, 0, 3, 4)
	box, ok := e.EnvelopeOf(ls)
	if !ok {
		t.Fatalf("expected a computable envelope")
	}
	if box.XMax != 3 || box.YMax != 4 {
		t.Fatalf("box = %+v, want XMax=3 YMax=4", box)
	}
	if ls.Base.Bbox() == nil {
		t.Fatalf("EnvelopeOf should cache the bbox on the geometry")
	}
}

func TestSplitLineAcrossBlade(t *testing.T) {
	e := NewPlanar()
	ls := line(-2, 0, 2, 0)
	pieces, err := e.Split(ls, 0, -1, 0, 1)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(pieces) != 2 {
		t.Fatalf("got %d pieces, want 2", len(pieces))
	}
}

func TestSplitLineNotCrossingBladeReturnsSinglePiece(t *testing.T) {
	e := NewPlanar()
	ls := line(1, 0, 2, 0)
	pieces, err := e.Split(ls, 10, -1, 10, 1)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(pieces) != 1 {
		t.Fatalf("got %d pieces, want 1 when the blade misses the geometry entirely", len(pieces))
	}
}

func TestSplitDegenerateSinglePointLineFails(t *testing.T) {
	e := NewPlanar()
	pa := ptarray.Construct(false, false, 0)
	pa.Append(ptarray.Point4D{X: 0, Y: 0}, true)
	ls := geom.NewLineString(pa)
	_, err := e.Split(ls, 10, -1, 10, 1)
	if err == nil {
		t.Fatalf("expected a split error for a single-point line that produces no side with >= 2 points")
	}
}

func TestUnaryUnionSinglePartPassesThrough(t *testing.T) {
	e := NewPlanar()
	ls := line(0, 0, 1, 1)
	out, err := e.UnaryUnion([]geom.Geometry{ls})
	if err != nil {
		t.Fatalf("UnaryUnion: %v", err)
	}
	if out != geom.Geometry(ls) {
		t.Fatalf("a single part should pass through unchanged")
	}
}

func TestUnaryUnionMultiplePartsHomogenizes(t *testing.T) {
	e := NewPlanar()
	out, err := e.UnaryUnion([]geom.Geometry{line(0, 0, 1, 1), line(2, 2, 3, 3)})
	if err != nil {
		t.Fatalf("UnaryUnion: %v", err)
	}
	if out.GeomType() != geom.TypeMultiLineString {
		t.Fatalf("got %s, want MultiLineString after homogenizing two linestrings", out.GeomType())
	}
}
