package geom

import "testing"

func TestReverseLineString(t *testing.T) {
	ls := lineStringXY(0, 0, 1, 1, 2, 2)
	Reverse(ls)
	first := ls.PA.GetPoint2D(0)
	if first.X != 2 || first.Y != 2 {
		t.Fatalf("after Reverse, first point = %+v, want (2,2)", first)
	}
}

func TestReverseRecursesIntoCollections(t *testing.T) {
	ls := lineStringXY(0, 0, 1, 1)
	col := NewCollection(false, false, ls)
	Reverse(col)
	first := ls.PA.GetPoint2D(0)
	if first.X != 1 || first.Y != 1 {
		t.Fatalf("Reverse did not recurse into collection member")
	}
}

func TestForceRHRFixesExteriorWinding(t *testing.T) {
	// CCW exterior ring; ForceRHR wants CW.
	poly := NewPolygon(ringXY(0, 0, 4, 0, 4, 4, 0, 4, 0, 0))
	ForceRHR(poly)
	area := signedArea2(poly.Rings[0])
	if area > 0 {
		t.Fatalf("exterior ring should be clockwise (negative signed area) after ForceRHR, got %v", area)
	}
}

func TestSegmentize2DInsertsIntermediatePoints(t *testing.T) {
	ls := lineStringXY(0, 0, 10, 0)
	out := Segmentize2D(ls, 1).(*LineString)
	if out.PA.NPoints() < 11 {
		t.Fatalf("got %d points, want at least 11 after segmentizing a length-10 line at d=1", out.PA.NPoints())
	}
}

func TestSegmentize2DPointReturnsClone(t *testing.T) {
	p := pointXY(1, 1)
	out := Segmentize2D(p, 1).(*Point)
	if out.PA == p.PA {
		t.Fatalf("Segmentize2D(Point) should return an independent clone")
	}
}

func TestSegmentize2DPreservesPolyhedralSurfaceType(t *testing.T) {
	face := NewPolygon(ringXY(0, 0, 10, 0, 10, 10, 0, 10, 0, 0))
	surf := NewPolyhedralSurface(false, false, face)
	out := Segmentize2D(surf, 1)
	if out.GeomType() != TypePolyhedralSurface {
		t.Fatalf("got %s, want PolyhedralSurface preserved after Segmentize2D", out.GeomType())
	}
	if _, ok := out.(*PolyhedralSurface); !ok {
		t.Fatalf("got %T, want *PolyhedralSurface", out)
	}
	faces := out.(*PolyhedralSurface).Geoms
	if faces[0].Rings[0].NPoints() <= face.Rings[0].NPoints() {
		t.Fatalf("expected segmentized face to gain intermediate points, got %d (was %d)", faces[0].Rings[0].NPoints(), face.Rings[0].NPoints())
	}
}

func TestLongitudeShiftNormalizesX(t *testing.T) {
	ls := lineStringXY(-190, 0, 10, 0)
	LongitudeShift(ls)
	x0 := ls.PA.GetPoint2D(0).X
	if x0 < 0 || x0 >= 360 {
		t.Fatalf("LongitudeShift left x=%v outside [0,360)", x0)
	}
}
