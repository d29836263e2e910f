package geom

import "testing"

func TestAsMultiWrapsLeaves(t *testing.T) {
	m := AsMulti(pointXY(1, 2))
	mp, ok := m.(*MultiPoint)
	if !ok || len(mp.Geoms) != 1 {
		t.Fatalf("AsMulti(Point) = %T, want *MultiPoint with 1 member", m)
	}
}

func TestAsMultiPassesThroughCollections(t *testing.T) {
	orig := NewMultiPoint(false, false, pointXY(0, 0))
	if AsMulti(orig) != Geometry(orig) {
		t.Fatalf("AsMulti on an existing collection should pass through unchanged")
	}
}

func TestHomogenizeSingleMemberCollapses(t *testing.T) {
	col := NewCollection(false, false, pointXY(1, 1))
	out := Homogenize(col)
	if out.GeomType() != TypePoint {
		t.Fatalf("got %s, want Point", out.GeomType())
	}
}

func TestHomogenizeUniformLeavesGroupIntoMulti(t *testing.T) {
	col := NewCollection(false, false, pointXY(0, 0), pointXY(1, 1), pointXY(2, 2))
	out := Homogenize(col)
	mp, ok := out.(*MultiPoint)
	if !ok || len(mp.Geoms) != 3 {
		t.Fatalf("got %T, want *MultiPoint with 3 members", out)
	}
}

func TestHomogenizeMixedRegroupsByKind(t *testing.T) {
	col := NewCollection(false, false,
		pointXY(0, 0), pointXY(1, 1),
		lineStringXY(0, 0, 1, 1),
	)
	out := Homogenize(col)
	outer, ok := out.(*Collection)
	if !ok {
		t.Fatalf("got %T, want *Collection", out)
	}
	if len(outer.Geoms) != 2 {
		t.Fatalf("got %d groups, want 2 (points, lines)", len(outer.Geoms))
	}
	if outer.Geoms[0].GeomType() != TypeMultiPoint {
		t.Fatalf("first group = %s, want MultiPoint", outer.Geoms[0].GeomType())
	}
	if outer.Geoms[1].GeomType() != TypeLineString {
		t.Fatalf("second group = %s, want LineString", outer.Geoms[1].GeomType())
	}
}

func TestHomogenizeFlattensNestedCollections(t *testing.T) {
	inner := NewCollection(false, false, pointXY(0, 0), pointXY(1, 1))
	outer := NewCollection(false, false, inner, pointXY(2, 2))
	out := Homogenize(outer)
	mp, ok := out.(*MultiPoint)
	if !ok || len(mp.Geoms) != 3 {
		t.Fatalf("got %T, want *MultiPoint with 3 flattened members", out)
	}
}

func TestExtractFindsNestedMatches(t *testing.T) {
	inner := NewCollection(false, false, pointXY(0, 0), lineStringXY(0, 0, 1, 1))
	outer := NewCollection(false, false, inner, pointXY(5, 5))
	got := Extract(outer, TypePoint)
	if len(got.Geoms) != 2 {
		t.Fatalf("Extract(Point) found %d, want 2", len(got.Geoms))
	}
}

func TestExtractNoMatches(t *testing.T) {
	outer := NewCollection(false, false, pointXY(0, 0))
	got := Extract(outer, TypePolygon)
	if len(got.Geoms) != 0 {
		t.Fatalf("Extract(Polygon) found %d, want 0", len(got.Geoms))
	}
}
