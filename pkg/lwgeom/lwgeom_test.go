package lwgeom

import (
	"encoding/binary"
	"testing"

	"github.com/postgis/lwgeom/internal/geom"
	"github.com/postgis/lwgeom/internal/wkt"
)

func TestParseWKTEmitWKTRoundTrip(t *testing.T) {
	c := NewContext()
	serialized, err := c.ParseWKT("POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))", wkt.DefaultCheckFlags())
	if err != nil {
		t.Fatalf("ParseWKT: %v", err)
	}
	out, err := c.EmitWKT(serialized, 6)
	if err != nil {
		t.Fatalf("EmitWKT: %v", err)
	}
	serialized2, err := c.ParseWKT(out, wkt.DefaultCheckFlags())
	if err != nil {
		t.Fatalf("re-parsing emitted WKT %q: %v", out, err)
	}
	g1, _ := c.GeomFromBytes(serialized)
	g2, _ := c.GeomFromBytes(serialized2)
	if g1.GeomType() != g2.GeomType() {
		t.Fatalf("round trip changed type: %s vs %s", g1.GeomType(), g2.GeomType())
	}
}

func TestParseWKTRejectsUnclosedRing(t *testing.T) {
	c := NewContext()
	_, err := c.ParseWKT("POLYGON ((0 0, 1 0, 1 1, 0 1))", wkt.DefaultCheckFlags())
	if err == nil {
		t.Fatalf("expected an unclosed-ring error")
	}
}

func TestWKTToWKBToWKT(t *testing.T) {
	c := NewContext()
	serialized, err := c.ParseWKT("POINT Z (1 2 3)", wkt.DefaultCheckFlags())
	if err != nil {
		t.Fatalf("ParseWKT: %v", err)
	}
	wkb, err := c.EmitWKB(serialized, binary.LittleEndian)
	if err != nil {
		t.Fatalf("EmitWKB: %v", err)
	}
	back, err := c.ParseWKB(wkb, wkt.DefaultCheckFlags())
	if err != nil {
		t.Fatalf("ParseWKB: %v", err)
	}
	out, err := c.EmitWKT(back, 2)
	if err != nil {
		t.Fatalf("EmitWKT: %v", err)
	}
	if out != "POINT Z (1 2 3)" {
		t.Fatalf("got %q, want POINT Z (1 2 3)", out)
	}
}

func TestErrorCallbackSilentOnTruncatedWKB(t *testing.T) {
	c := NewContext()
	var reported string
	c.Error = func(msg string) { reported = msg }

	// A truncated WKB triggers a *wkb.TruncatedError from DecodeWKB, which
	// is a recoverable parse-boundary failure, not a fatal one.
	_, err := c.ParseWKB([]byte{0x01}, wkt.DefaultCheckFlags())
	if err == nil {
		t.Fatalf("expected an error decoding a 1-byte WKB blob")
	}
	if reported != "" {
		t.Fatalf("Error callback should not fire for a truncated-input error, got %q", reported)
	}
}

func TestClusterIntersectingGroupsTouchingLines(t *testing.T) {
	c := NewContext()
	a, err := c.ParseWKT("LINESTRING (0 0, 1 1)", wkt.DefaultCheckFlags())
	if err != nil {
		t.Fatalf("ParseWKT a: %v", err)
	}
	b, err := c.ParseWKT("LINESTRING (1 1, 2 2)", wkt.DefaultCheckFlags())
	if err != nil {
		t.Fatalf("ParseWKT b: %v", err)
	}
	isolated, err := c.ParseWKT("LINESTRING (10 10, 11 11)", wkt.DefaultCheckFlags())
	if err != nil {
		t.Fatalf("ParseWKT isolated: %v", err)
	}

	ga, _ := c.GeomFromBytes(a)
	gb, _ := c.GeomFromBytes(b)
	gIsolated, _ := c.GeomFromBytes(isolated)

	out, err := c.ClusterIntersecting([]geom.Geometry{ga, gb, gIsolated})
	if err != nil {
		t.Fatalf("ClusterIntersecting: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d clusters, want 2 (one merged pair, one singleton)", len(out))
	}
}

func TestClusterWithinDistanceMergesNearbyPoints(t *testing.T) {
	c := NewContext()
	a, _ := c.ParseWKT("POINT (0 0)", wkt.DefaultCheckFlags())
	b, _ := c.ParseWKT("POINT (0.5 0)", wkt.DefaultCheckFlags())
	far, _ := c.ParseWKT("POINT (100 100)", wkt.DefaultCheckFlags())

	ga, _ := c.GeomFromBytes(a)
	gb, _ := c.GeomFromBytes(b)
	gfar, _ := c.GeomFromBytes(far)

	out, err := c.ClusterWithinDistance([]geom.Geometry{ga, gb, gfar}, 1.0)
	if err != nil {
		t.Fatalf("ClusterWithinDistance: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d clusters, want 2", len(out))
	}
}
