package ptarray

import "testing"

func TestAppendGet(t *testing.T) {
	pa := Construct(true, false, 0)
	pa.Append(Point4D{X: 0, Y: 0, Z: 1}, true)
	pa.Append(Point4D{X: 1, Y: 1, Z: 2}, true)
	if pa.NPoints() != 2 {
		t.Fatalf("NPoints() = %d, want 2", pa.NPoints())
	}
	p := pa.GetPoint4D(1)
	if p.X != 1 || p.Y != 1 || p.Z != 2 || p.M != 0 {
		t.Fatalf("GetPoint4D(1) = %+v", p)
	}
}

func TestAppendRejectsDuplicate(t *testing.T) {
	pa := Construct(false, false, 0)
	pa.Append(Point4D{X: 0, Y: 0}, false)
	pa.Append(Point4D{X: 0, Y: 0}, false)
	if pa.NPoints() != 1 {
		t.Fatalf("NPoints() = %d, want 1 (duplicate should be rejected)", pa.NPoints())
	}
	pa.Append(Point4D{X: 0, Y: 0}, true)
	if pa.NPoints() != 2 {
		t.Fatalf("NPoints() = %d, want 2 (duplicate allowed)", pa.NPoints())
	}
}

func TestReverseIsInvolution(t *testing.T) {
	pa := Construct(false, false, 0)
	for i := 0; i < 5; i++ {
		pa.Append(Point4D{X: float64(i), Y: float64(i)}, true)
	}
	clone := pa.Clone()
	pa.Reverse()
	pa.Reverse()
	if !Same(pa, clone) {
		t.Fatalf("reverse(reverse(pa)) != pa")
	}
}

func TestLongitudeShift(t *testing.T) {
	pa := Construct(false, false, 0)
	pa.Append(Point4D{X: -10, Y: 0}, true)
	pa.Append(Point4D{X: 190, Y: 0}, true)
	pa.Append(Point4D{X: 90, Y: 0}, true)
	pa.LongitudeShift()
	if got := pa.GetPoint4D(0).X; got != 350 {
		t.Errorf("point 0 x = %v, want 350", got)
	}
	if got := pa.GetPoint4D(1).X; got != -170 {
		t.Errorf("point 1 x = %v, want -170", got)
	}
	if got := pa.GetPoint4D(2).X; got != 90 {
		t.Errorf("point 2 x = %v, want 90", got)
	}
}

func TestComputeBox2D(t *testing.T) {
	pa := Construct(false, false, 0)
	if _, ok := pa.ComputeBox2D(); ok {
		t.Fatalf("empty array should have no box")
	}
	pa.Append(Point4D{X: 0, Y: 0}, true)
	pa.Append(Point4D{X: 5, Y: -3}, true)
	box, ok := pa.ComputeBox2D()
	if !ok {
		t.Fatal("expected a box")
	}
	want := Box2D{XMin: 0, YMin: -3, XMax: 5, YMax: 0}
	if box != want {
		t.Errorf("box = %+v, want %+v", box, want)
	}
}

func TestIsClosed2D(t *testing.T) {
	pa := Construct(false, false, 0)
	pts := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 0}}
	for _, p := range pts {
		pa.Append(Point4D{X: p[0], Y: p[1]}, true)
	}
	if !pa.IsClosed2D() {
		t.Error("expected closed ring")
	}
	if !pa.IsRingValid() {
		t.Error("expected valid ring (npoints>=4, closed)")
	}
}

func TestSegmentize2D(t *testing.T) {
	pa := Construct(false, false, 0)
	pa.Append(Point4D{X: 0, Y: 0}, true)
	pa.Append(Point4D{X: 10, Y: 0}, true)
	out := pa.Segmentize2D(3)
	if out.NPoints() < 4 {
		t.Fatalf("expected segmentized array with >=4 points, got %d", out.NPoints())
	}
	for i := 0; i < out.NPoints()-1; i++ {
		a, b := out.GetPoint2D(i), out.GetPoint2D(i+1)
		d := dist2D(a, b)
		if d > 3+1e-9 {
			t.Errorf("segment %d length %v exceeds max 3", i, d)
		}
	}
}

func TestSubstringWholeRange(t *testing.T) {
	pa := Construct(false, false, 0)
	pa.Append(Point4D{X: 0, Y: 0}, true)
	pa.Append(Point4D{X: 10, Y: 0}, true)
	sub := pa.Substring(0, 1)
	if sub.NPoints() != 2 {
		t.Fatalf("substring(0,1) NPoints = %d, want 2", sub.NPoints())
	}
	if sub.GetPoint2D(1).X != 10 {
		t.Errorf("substring end x = %v, want 10", sub.GetPoint2D(1).X)
	}
}

func TestLocatePoint(t *testing.T) {
	pa := Construct(false, false, 0)
	pa.Append(Point4D{X: 0, Y: 0}, true)
	pa.Append(Point4D{X: 10, Y: 0}, true)
	loc, dist := pa.LocatePoint(Point2D{X: 5, Y: 1})
	if loc < 0.49 || loc > 0.51 {
		t.Errorf("loc = %v, want ~0.5", loc)
	}
	if dist != 1 {
		t.Errorf("dist = %v, want 1", dist)
	}
}
