package wkb

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/postgis/lwgeom/internal/geom"
	"github.com/postgis/lwgeom/internal/ptarray"
)

// nativeOrder is the codec's wire endianness: the running machine's own
// byte order, with no explicit marker in the payload (spec §4.3.1).
var nativeOrder = binary.NativeEndian

// Encode serializes g into the internal binary format (spec §4.3.1).
// The geometry's own SRID (if not geom.SRIDUnknown) is written at the
// top level only; nested sub-geometries never carry their own SRID
// field, since per spec §3.2 a sub-geometry's SRID is always either the
// parent's or unknown.
func Encode(g geom.Geometry) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeGeom(&buf, g, true); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeGeom(buf *bytes.Buffer, g geom.Geometry, topLevel bool) error {
	code, err := typeCodeOf(g.GeomType())
	if err != nil {
		return err
	}
	b := g.Base()
	typeByte := code
	if b.HasZ() {
		typeByte |= flagHasZ
	}
	if b.HasM() {
		typeByte |= flagHasM
	}
	box := b.Bbox()
	if box != nil {
		typeByte |= flagHasBBox
	}
	writeSRID := topLevel && b.SRID() != geom.SRIDUnknown
	if writeSRID {
		typeByte |= flagHasSRID
	}
	buf.WriteByte(typeByte)

	if box != nil {
		binary.Write(buf, nativeOrder, float32(box.XMin))
		binary.Write(buf, nativeOrder, float32(box.YMin))
		binary.Write(buf, nativeOrder, float32(box.XMax))
		binary.Write(buf, nativeOrder, float32(box.YMax))
	}
	if writeSRID {
		binary.Write(buf, nativeOrder, b.SRID())
	}

	return encodeBody(buf, g)
}

func ndims(b *geom.Base) int {
	n := 2
	if b.HasZ() {
		n++
	}
	if b.HasM() {
		n++
	}
	return n
}

func writePointArray(buf *bytes.Buffer, pa *ptarray.PointArray, n int) {
	np := pa.NPoints()
	binary.Write(buf, nativeOrder, uint32(np))
	for i := 0; i < np; i++ {
		p := pa.GetPoint4D(i)
		binary.Write(buf, nativeOrder, p.X)
		binary.Write(buf, nativeOrder, p.Y)
		if pa.HasZ {
			binary.Write(buf, nativeOrder, p.Z)
		}
		if pa.HasM {
			binary.Write(buf, nativeOrder, p.M)
		}
	}
}

func encodeBody(buf *bytes.Buffer, g geom.Geometry) error {
	n := ndims(g.Base())
	switch v := g.(type) {
	case *geom.Point:
		if v.PA.IsEmpty() {
			buf.WriteByte(0)
			return nil
		}
		buf.WriteByte(1)
		p := v.PA.GetPoint4D(0)
		binary.Write(buf, nativeOrder, p.X)
		binary.Write(buf, nativeOrder, p.Y)
		if v.HasZ() {
			binary.Write(buf, nativeOrder, p.Z)
		}
		if v.HasM() {
			binary.Write(buf, nativeOrder, p.M)
		}
		return nil
	case *geom.LineString:
		writePointArray(buf, v.PA, n)
		return nil
	case *geom.CircularString:
		writePointArray(buf, v.PA, n)
		return nil
	case *geom.Triangle:
		writePointArray(buf, v.PA, n)
		return nil
	case *geom.Polygon:
		binary.Write(buf, nativeOrder, uint32(len(v.Rings)))
		for _, r := range v.Rings {
			writePointArray(buf, r, n)
		}
		return nil
	default:
		return encodeCollectionBody(buf, g)
	}
}

// encodeCollectionBody writes the sub-geometry count followed by every
// sub-geometry returned by geom.SubGeometries.
func encodeCollectionBody(buf *bytes.Buffer, g geom.Geometry) error {
	subs := geom.SubGeometries(g)
	binary.Write(buf, nativeOrder, uint32(len(subs)))
	for _, s := range subs {
		if err := encodeGeom(buf, s, false); err != nil {
			return err
		}
	}
	return nil
}

// Decode parses the internal binary format back into a Geometry.
func Decode(data []byte) (geom.Geometry, error) {
	r := &reader{data: data}
	g, err := r.readGeom()
	if err != nil {
		return nil, err
	}
	return g, nil
}

type reader struct {
	data []byte
	pos  int
}

func (r *reader) need(n int) error {
	if r.pos+n > len(r.data) {
		return &TruncatedError{Offset: r.pos, Need: n, Have: len(r.data) - r.pos}
	}
	return nil
}

func (r *reader) byte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := nativeOrder.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

func (r *reader) f32() (float32, error) {
	v, err := r.u32()
	return math.Float32frombits(v), err
}

func (r *reader) f64() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	bits := nativeOrder.Uint64(r.data[r.pos:])
	r.pos += 8
	return math.Float64frombits(bits), nil
}

func (r *reader) readPointArray(hasZ, hasM bool) (*ptarray.PointArray, error) {
	np, err := r.u32()
	if err != nil {
		return nil, err
	}
	pa := ptarray.Construct(hasZ, hasM, 0)
	for i := uint32(0); i < np; i++ {
		var p ptarray.Point4D
		if p.X, err = r.f64(); err != nil {
			return nil, err
		}
		if p.Y, err = r.f64(); err != nil {
			return nil, err
		}
		if hasZ {
			if p.Z, err = r.f64(); err != nil {
				return nil, err
			}
		}
		if hasM {
			if p.M, err = r.f64(); err != nil {
				return nil, err
			}
		}
		pa.Append(p, true)
	}
	return pa, nil
}

func (r *reader) readGeom() (geom.Geometry, error) {
	typeByte, err := r.byte()
	if err != nil {
		return nil, err
	}
	code := typeByte & typeMask
	hasZ := typeByte&flagHasZ != 0
	hasM := typeByte&flagHasM != 0
	hasBBox := typeByte&flagHasBBox != 0
	hasSRID := typeByte&flagHasSRID != 0

	gt, err := geomTypeOf(code)
	if err != nil {
		return nil, err
	}

	var box *geom.Box
	if hasBBox {
		xmin, e1 := r.f32()
		ymin, e2 := r.f32()
		xmax, e3 := r.f32()
		ymax, e4 := r.f32()
		if e1 != nil || e2 != nil || e3 != nil || e4 != nil {
			return nil, &TruncatedError{Offset: r.pos, Need: 16}
		}
		box = &geom.Box{XMin: float64(xmin), YMin: float64(ymin), XMax: float64(xmax), YMax: float64(ymax)}
	}
	var srid int32 = geom.SRIDUnknown
	if hasSRID {
		srid, err = r.i32()
		if err != nil {
			return nil, err
		}
	}

	g, err := r.readBody(gt, hasZ, hasM)
	if err != nil {
		return nil, err
	}
	g.Base().SetSRID(srid)
	if box != nil {
		geom.SetBbox(g, *box)
	}
	return g, nil
}

func (r *reader) readBody(gt geom.Type, hasZ, hasM bool) (geom.Geometry, error) {
	switch gt {
	case geom.TypePoint:
		present, err := r.byte()
		if err != nil {
			return nil, err
		}
		if present == 0 {
			return geom.EmptyPoint(hasZ, hasM), nil
		}
		var p ptarray.Point4D
		if p.X, err = r.f64(); err != nil {
			return nil, err
		}
		if p.Y, err = r.f64(); err != nil {
			return nil, err
		}
		if hasZ {
			if p.Z, err = r.f64(); err != nil {
				return nil, err
			}
		}
		if hasM {
			if p.M, err = r.f64(); err != nil {
				return nil, err
			}
		}
		return geom.NewPointFromCoords(hasZ, hasM, p), nil
	case geom.TypeLineString:
		pa, err := r.readPointArray(hasZ, hasM)
		if err != nil {
			return nil, err
		}
		return geom.NewLineString(pa), nil
	case geom.TypeCircularString:
		pa, err := r.readPointArray(hasZ, hasM)
		if err != nil {
			return nil, err
		}
		return geom.NewCircularString(pa), nil
	case geom.TypeTriangle:
		pa, err := r.readPointArray(hasZ, hasM)
		if err != nil {
			return nil, err
		}
		return geom.NewTriangle(pa), nil
	case geom.TypePolygon:
		nrings, err := r.u32()
		if err != nil {
			return nil, err
		}
		rings := make([]*ptarray.PointArray, nrings)
		for i := range rings {
			rings[i], err = r.readPointArray(hasZ, hasM)
			if err != nil {
				return nil, err
			}
		}
		return geom.NewPolygon(rings...), nil
	default:
		return r.readCollectionBody(gt, hasZ, hasM)
	}
}

func (r *reader) readCollectionBody(gt geom.Type, hasZ, hasM bool) (geom.Geometry, error) {
	ngeoms, err := r.u32()
	if err != nil {
		return nil, err
	}
	subs := make([]geom.Geometry, ngeoms)
	for i := range subs {
		subs[i], err = r.readGeom()
		if err != nil {
			return nil, err
		}
	}
	return geom.BuildCollectionLike(gt, hasZ, hasM, subs)
}
