package geom

import (
	"testing"

	"github.com/postgis/lwgeom/internal/ptarray"
)

func TestNewPointFromCoordsCarriesDimFlags(t *testing.T) {
	p := NewPointFromCoords(true, true, ptarray.Point4D{X: 1, Y: 2, Z: 3, M: 4})
	if !p.Base.HasZ() || !p.Base.HasM() {
		t.Fatalf("expected HasZ and HasM to be set")
	}
	got := p.PA.GetPoint4D(0)
	if got.X != 1 || got.Y != 2 || got.Z != 3 || got.M != 4 {
		t.Fatalf("got %+v, want (1,2,3,4)", got)
	}
}

func TestEmptyConstructorsReportEmpty(t *testing.T) {
	if !IsEmpty(EmptyPoint(false, false)) {
		t.Fatalf("EmptyPoint should report empty")
	}
	if !IsEmpty(EmptyLineString(false, false)) {
		t.Fatalf("EmptyLineString should report empty")
	}
	if !IsEmpty(EmptyPolygon(false, false)) {
		t.Fatalf("EmptyPolygon should report empty")
	}
	if !IsEmpty(EmptyCollection(false, false)) {
		t.Fatalf("EmptyCollection should report empty")
	}
}

func TestNewPolygonExteriorAndHoles(t *testing.T) {
	poly := NewPolygon(
		ringXY(0, 0, 10, 0, 10, 10, 0, 10, 0, 0),
		ringXY(2, 2, 4, 2, 4, 4, 2, 4, 2, 2),
	)
	if len(poly.Rings) != 2 {
		t.Fatalf("got %d rings, want 2", len(poly.Rings))
	}
	if poly.GeomType() != TypePolygon {
		t.Fatalf("GeomType = %v, want TypePolygon", poly.GeomType())
	}
}

func TestBuildCollectionLikeDispatchesByType(t *testing.T) {
	g, err := BuildCollectionLike(TypeMultiPoint, false, false, nil)
	if err != nil {
		t.Fatalf("BuildCollectionLike: %v", err)
	}
	if _, ok := g.(*MultiPoint); !ok {
		t.Fatalf("got %T, want *MultiPoint", g)
	}

	g2, err := BuildCollectionLike(TypeCollection, false, false, []Geometry{pointXY(0, 0)})
	if err != nil {
		t.Fatalf("BuildCollectionLike: %v", err)
	}
	col, ok := g2.(*Collection)
	if !ok || len(col.Geoms) != 1 {
		t.Fatalf("got %T, want *Collection with 1 member", g2)
	}
}
