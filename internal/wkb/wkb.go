package wkb

import (
	"encoding/binary"
	"math"

	"github.com/postgis/lwgeom/internal/geom"
	"github.com/postgis/lwgeom/internal/ptarray"
)

// EncodeWKB serializes g as OGC EWKB (spec §4.3.2): a one-byte endianness
// marker per geometry, a 32-bit type word with the Z/M/SRID high bits set
// PostGIS-EWKB style, an optional SRID on the top-level geometry only, then
// the coordinate/sub-geometry payload in that geometry's own byte order.
func EncodeWKB(g geom.Geometry, order binary.ByteOrder) ([]byte, error) {
	w := &wkbWriter{order: order}
	if err := w.writeGeom(g, true); err != nil {
		return nil, err
	}
	return w.buf, nil
}

type wkbWriter struct {
	buf   []byte
	order binary.ByteOrder
}

func (w *wkbWriter) byte(b byte) { w.buf = append(w.buf, b) }

func (w *wkbWriter) u32(v uint32) {
	var b [4]byte
	w.order.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *wkbWriter) i32(v int32) { w.u32(uint32(v)) }

func (w *wkbWriter) f64(v float64) {
	var b [8]byte
	w.order.PutUint64(b[:], math.Float64bits(v))
	w.buf = append(w.buf, b[:]...)
}

func wkbEndiannessByte(order binary.ByteOrder) byte {
	if order == binary.LittleEndian {
		return 1
	}
	return 0
}

func (w *wkbWriter) writeGeom(g geom.Geometry, topLevel bool) error {
	code, err := typeCodeOf(g.GeomType())
	if err != nil {
		return err
	}
	b := g.Base()
	typeWord := uint32(code)
	if b.HasZ() {
		typeWord |= WKBZOffset
	}
	if b.HasM() {
		typeWord |= WKBMOffset
	}
	writeSRID := topLevel && b.SRID() != geom.SRIDUnknown
	if writeSRID {
		typeWord |= WKBSRIDFlag
	}

	w.byte(wkbEndiannessByte(w.order))
	w.u32(typeWord)
	if writeSRID {
		w.i32(b.SRID())
	}
	return w.writeBody(g)
}

func (w *wkbWriter) writePoint4D(p ptarray.Point4D, hasZ, hasM bool) {
	w.f64(p.X)
	w.f64(p.Y)
	if hasZ {
		w.f64(p.Z)
	}
	if hasM {
		w.f64(p.M)
	}
}

func (w *wkbWriter) writePointArray(pa *ptarray.PointArray) {
	np := pa.NPoints()
	w.u32(uint32(np))
	for i := 0; i < np; i++ {
		w.writePoint4D(pa.GetPoint4D(i), pa.HasZ, pa.HasM)
	}
}

func (w *wkbWriter) writeBody(g geom.Geometry) error {
	switch v := g.(type) {
	case *geom.Point:
		if v.PA.IsEmpty() {
			// WKB has no empty-point literal; PostGIS convention is NaN
			// ordinates, which this follows for interchange compatibility.
			w.f64(math.NaN())
			w.f64(math.NaN())
			if v.HasZ() {
				w.f64(math.NaN())
			}
			if v.HasM() {
				w.f64(math.NaN())
			}
			return nil
		}
		w.writePoint4D(v.PA.GetPoint4D(0), v.HasZ(), v.HasM())
		return nil
	case *geom.LineString:
		w.writePointArray(v.PA)
		return nil
	case *geom.CircularString:
		w.writePointArray(v.PA)
		return nil
	case *geom.Triangle:
		w.writePointArray(v.PA)
		return nil
	case *geom.Polygon:
		w.u32(uint32(len(v.Rings)))
		for _, r := range v.Rings {
			w.writePointArray(r)
		}
		return nil
	default:
		subs := geom.SubGeometries(g)
		w.u32(uint32(len(subs)))
		for _, s := range subs {
			if err := w.writeGeom(s, false); err != nil {
				return err
			}
		}
		return nil
	}
}

// DecodeWKB parses an OGC EWKB buffer, honoring each geometry's own
// endianness byte (which may differ between nested sub-geometries, though
// no known producer actually mixes them within one buffer).
func DecodeWKB(data []byte) (geom.Geometry, error) {
	r := &wkbReader{data: data}
	return r.readGeom()
}

type wkbReader struct {
	data []byte
	pos  int
}

func (r *wkbReader) need(n int) error {
	if r.pos+n > len(r.data) {
		return &TruncatedError{Offset: r.pos, Need: n, Have: len(r.data) - r.pos}
	}
	return nil
}

func (r *wkbReader) byte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *wkbReader) u32(order binary.ByteOrder) (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := order.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *wkbReader) i32(order binary.ByteOrder) (int32, error) {
	v, err := r.u32(order)
	return int32(v), err
}

func (r *wkbReader) f64(order binary.ByteOrder) (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	bits := order.Uint64(r.data[r.pos:])
	r.pos += 8
	return math.Float64frombits(bits), nil
}

func orderOf(b byte) binary.ByteOrder {
	if b == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func (r *wkbReader) readPoint4D(order binary.ByteOrder, hasZ, hasM bool) (ptarray.Point4D, error) {
	var p ptarray.Point4D
	var err error
	if p.X, err = r.f64(order); err != nil {
		return p, err
	}
	if p.Y, err = r.f64(order); err != nil {
		return p, err
	}
	if hasZ {
		if p.Z, err = r.f64(order); err != nil {
			return p, err
		}
	}
	if hasM {
		if p.M, err = r.f64(order); err != nil {
			return p, err
		}
	}
	return p, nil
}

func (r *wkbReader) readPointArray(order binary.ByteOrder, hasZ, hasM bool) (*ptarray.PointArray, error) {
	np, err := r.u32(order)
	if err != nil {
		return nil, err
	}
	pa := ptarray.Construct(hasZ, hasM, 0)
	for i := uint32(0); i < np; i++ {
		p, err := r.readPoint4D(order, hasZ, hasM)
		if err != nil {
			return nil, err
		}
		pa.Append(p, true)
	}
	return pa, nil
}

func (r *wkbReader) readGeom() (geom.Geometry, error) {
	eb, err := r.byte()
	if err != nil {
		return nil, err
	}
	order := orderOf(eb)

	typeWord, err := r.u32(order)
	if err != nil {
		return nil, err
	}
	hasZ := typeWord&WKBZOffset != 0
	hasM := typeWord&WKBMOffset != 0
	hasSRID := typeWord&WKBSRIDFlag != 0
	code := byte(typeWord & wkbTypeMask)

	gt, err := geomTypeOf(code)
	if err != nil {
		return nil, &InvalidWkbTypeError{Code: int(code), Offset: r.pos}
	}

	srid := geom.SRIDUnknown
	if hasSRID {
		srid, err = r.i32(order)
		if err != nil {
			return nil, err
		}
	}

	g, err := r.readBody(order, gt, hasZ, hasM)
	if err != nil {
		return nil, err
	}
	g.Base().SetSRID(srid)
	return g, nil
}

func (r *wkbReader) readBody(order binary.ByteOrder, gt geom.Type, hasZ, hasM bool) (geom.Geometry, error) {
	switch gt {
	case geom.TypePoint:
		p, err := r.readPoint4D(order, hasZ, hasM)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(p.X) && math.IsNaN(p.Y) {
			return geom.EmptyPoint(hasZ, hasM), nil
		}
		return geom.NewPointFromCoords(hasZ, hasM, p), nil
	case geom.TypeLineString:
		pa, err := r.readPointArray(order, hasZ, hasM)
		if err != nil {
			return nil, err
		}
		return geom.NewLineString(pa), nil
	case geom.TypeCircularString:
		pa, err := r.readPointArray(order, hasZ, hasM)
		if err != nil {
			return nil, err
		}
		return geom.NewCircularString(pa), nil
	case geom.TypeTriangle:
		pa, err := r.readPointArray(order, hasZ, hasM)
		if err != nil {
			return nil, err
		}
		return geom.NewTriangle(pa), nil
	case geom.TypePolygon:
		nrings, err := r.u32(order)
		if err != nil {
			return nil, err
		}
		rings := make([]*ptarray.PointArray, nrings)
		for i := range rings {
			rings[i], err = r.readPointArray(order, hasZ, hasM)
			if err != nil {
				return nil, err
			}
		}
		return geom.NewPolygon(rings...), nil
	default:
		ngeoms, err := r.u32(order)
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
}
