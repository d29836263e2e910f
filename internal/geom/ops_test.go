package geom

import (
	"testing"

	"github.com/postgis/lwgeom/internal/ptarray"
)

func lineStringXY(coords ...float64) *LineString {
	pa := ptarray.Construct(false, false, 0)
	for i := 0; i < len(coords); i += 2 {
		pa.Append(ptarray.Point4D{X: coords[i], Y: coords[i+1]}, true)
	}
	return NewLineString(pa)
}

func pointXY(x, y float64) *Point {
	return NewPointFromCoords(false, false, ptarray.Point4D{X: x, Y: y})
}

func TestIsEmptyLeafAndCollection(t *testing.T) {
	if !IsEmpty(EmptyLineString(false, false)) {
		t.Fatalf("expected empty linestring")
	}
	if IsEmpty(lineStringXY(0, 0, 1, 1)) {
		t.Fatalf("non-empty linestring reported empty")
	}
	mp := NewMultiPoint(false, false)
	if !IsEmpty(mp) {
		t.Fatalf("expected empty multipoint with no members")
	}
	mp2 := NewMultiPoint(false, false, pointXY(0, 0))
	if IsEmpty(mp2) {
		t.Fatalf("multipoint with a member reported empty")
	}
}

func TestDimensionByType(t *testing.T) {
	cases := []struct {
		g    Geometry
		want int
	}{
		{pointXY(0, 0), 0},
		{NewMultiPoint(false, false, pointXY(0, 0)), 0},
		{lineStringXY(0, 0, 1, 1), 1},
		{NewPolygon(ringXY(0, 0, 4, 0, 4, 4, 0, 0)), 2},
		{NewCollection(false, false, pointXY(0, 0), lineStringXY(0, 0, 1, 1)), 1},
	}
	for _, c := range cases {
		if got := Dimension(c.g); got != c.want {
			t.Fatalf("Dimension(%s) = %d, want %d", c.g.GeomType(), got, c.want)
		}
	}
}

func ringXY(coords ...float64) *ptarray.PointArray {
	pa := ptarray.Construct(false, false, 0)
	for i := 0; i < len(coords); i += 2 {
		pa.Append(ptarray.Point4D{X: coords[i], Y: coords[i+1]}, true)
	}
	return pa
}

func TestCountVertices(t *testing.T) {
	poly := NewPolygon(ringXY(0, 0, 4, 0, 4, 4, 0, 0), ringXY(1, 1, 2, 1, 2, 2, 1, 1))
	if got := CountVertices(poly); got != 8 {
		t.Fatalf("CountVertices = %d, want 8", got)
	}
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	orig := lineStringXY(0, 0, 1, 1)
	clone := Clone(orig).(*LineString)
	if clone.PA == orig.PA {
		t.Fatalf("Clone shares the same point-array")
	}
	if !Same(orig, clone) {
		t.Fatalf("clone should be structurally equal to original")
	}
}

func TestAddBboxAndChanged(t *testing.T) {
	ls := lineStringXY(0, 0, 3, 4)
	AddBbox(ls)
	box := ls.Base.Bbox()
	if box == nil {
		t.Fatalf("expected a cached bbox")
	}
	if box.XMax != 3 || box.YMax != 4 {
		t.Fatalf("bbox = %+v, want XMax=3 YMax=4", *box)
	}
	Changed(ls)
	if ls.Base.Bbox() != nil {
		t.Fatalf("Changed should invalidate the cached bbox")
	}
}

func TestSameIgnoresCollectionMemberOrder(t *testing.T) {
	a := NewCollection(false, false, pointXY(0, 0), pointXY(1, 1))
	b := NewCollection(false, false, pointXY(1, 1), pointXY(0, 0))
	if !Same(a, b) {
		t.Fatalf("collections with the same members in different order should be Same")
	}
}

func TestSameDiffersOnDimensionFlags(t *testing.T) {
	a := lineStringXY(0, 0, 1, 1)
	b := NewLineString(ptarray.Construct(true, false, 0))
	b.PA.Append(ptarray.Point4D{X: 0, Y: 0, Z: 0}, true)
	b.PA.Append(ptarray.Point4D{X: 1, Y: 1, Z: 0}, true)
	if Same(a, b) {
		t.Fatalf("geometries differing in HasZ should not be Same")
	}
}

func TestGetTypeAndNDimsOfPoint(t *testing.T) {
	if got := GetType(pointXY(0, 0)); got != TypePoint {
		t.Fatalf("GetType mismatch: %v", got)
	}
	if NDims(pointXY(0, 0)) != 2 {
		t.Fatalf("expected 2D point")
	}
}

func TestIsCollectionByType(t *testing.T) {
	if IsCollection(pointXY(0, 0)) {
		t.Fatalf("Point should not report as a collection")
	}
	if !IsCollection(NewMultiPoint(false, false)) {
		t.Fatalf("MultiPoint should report as a collection")
	}
}
