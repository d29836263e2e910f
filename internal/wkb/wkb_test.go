package wkb

import (
	"encoding/binary"
	"testing"

	"github.com/postgis/lwgeom/internal/geom"
	"github.com/postgis/lwgeom/internal/ptarray"
)

func samplePolygon() *geom.Polygon {
	shell := ptarray.Construct(false, false, 0)
	shell.Append(ptarray.Point4D{X: 0, Y: 0}, true)
	shell.Append(ptarray.Point4D{X: 10, Y: 0}, true)
	shell.Append(ptarray.Point4D{X: 10, Y: 10}, true)
	shell.Append(ptarray.Point4D{X: 0, Y: 10}, true)
	shell.Append(ptarray.Point4D{X: 0, Y: 0}, true)
	return geom.NewPolygon(shell)
}

func sampleMultiPoint() *geom.MultiPoint {
	a := geom.NewPointFromCoords(false, false, ptarray.Point4D{X: 1, Y: 2})
	b := geom.NewPointFromCoords(false, false, ptarray.Point4D{X: 3, Y: 4})
	return geom.NewMultiPoint(false, false, a, b)
}

func TestInternalFormatRoundTripPolygon(t *testing.T) {
	p := samplePolygon()
	p.SetSRID(4326)
	buf, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	gp, ok := got.(*geom.Polygon)
	if !ok {
		t.Fatalf("Decode returned %T, want *geom.Polygon", got)
	}
	if gp.SRID() != 4326 {
		t.Errorf("SRID = %d, want 4326", gp.SRID())
	}
	if !geom.Same(p, gp) {
		t.Errorf("round-tripped polygon differs from original")
	}
}

func TestInternalFormatRoundTripMultiPoint(t *testing.T) {
	mp := sampleMultiPoint()
	buf, err := Encode(mp)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !geom.Same(mp, got) {
		t.Errorf("round-tripped multipoint differs from original")
	}
}

func TestInternalFormatRoundTripEmptyPoint(t *testing.T) {
	pt := geom.EmptyPoint(false, false)
	buf, err := Encode(pt)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	gp := got.(*geom.Point)
	if !gp.PA.IsEmpty() {
		t.Errorf("decoded point should be empty")
	}
}

func TestWKBRoundTripLittleEndian(t *testing.T) {
	p := samplePolygon()
	p.SetSRID(3857)
	buf, err := EncodeWKB(p, binary.LittleEndian)
	if err != nil {
		t.Fatalf("EncodeWKB: %v", err)
	}
	got, err := DecodeWKB(buf)
	if err != nil {
		t.Fatalf("DecodeWKB: %v", err)
	}
	if got.Base().SRID() != 3857 {
		t.Errorf("SRID = %d, want 3857", got.Base().SRID())
	}
	if !geom.Same(p, got) {
		t.Errorf("round-tripped WKB polygon differs from original")
	}
}

func TestWKBRoundTripBigEndian(t *testing.T) {
	mp := sampleMultiPoint()
	buf, err := EncodeWKB(mp, binary.BigEndian)
	if err != nil {
		t.Fatalf("EncodeWKB: %v", err)
	}
	got, err := DecodeWKB(buf)
	if err != nil {
		t.Fatalf("DecodeWKB: %v", err)
	}
	if !geom.Same(mp, got) {
		t.Errorf("round-tripped WKB multipoint differs from original")
	}
}

func TestHexRoundTrip(t *testing.T) {
	p := samplePolygon()
	text, err := EncodeHex(p, binary.LittleEndian)
	if err != nil {
		t.Fatalf("EncodeHex: %v", err)
	}
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			t.Fatalf("EncodeHex produced lower-case output: %q", text)
		}
	}
	got, err := DecodeHex(text)
	if err != nil {
		t.Fatalf("DecodeHex: %v", err)
	}
	if !geom.Same(p, got) {
		t.Errorf("round-tripped hex-WKB polygon differs from original")
	}
}

func TestDecodeInvalidTypeCode(t *testing.T) {
	_, err := Decode([]byte{0x00})
	if err == nil {
		t.Fatalf("expected an error for an unrecognized type code")
	}
}

func TestDecodeTruncated(t *testing.T) {
	p := samplePolygon()
	buf, _ := Encode(p)
	_, err := Decode(buf[:len(buf)-2])
	if err == nil {
		t.Fatalf("expected an error for a truncated buffer")
	}
}
