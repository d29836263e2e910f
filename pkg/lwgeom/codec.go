package lwgeom

import (
	"encoding/binary"

	"github.com/postgis/lwgeom/internal/geom"
	"github.com/postgis/lwgeom/internal/wkb"
	"github.com/postgis/lwgeom/internal/wkt"
)

// ParseWKT parses EWKT/WKT text (spec §4.3.3) and returns it encoded in the
// internal serialized form, the same shape GeomFromBytes/GeomToBytes trade
// in. checks controls which structural validations Parse applies.
func (c *Context) ParseWKT(text string, checks wkt.CheckFlags) ([]byte, error) {
	g, err := wkt.Parse(text, checks)
	if err != nil {
		return nil, err
	}
	out, err := wkb.Encode(g)
	if err != nil {
		c.reportFatal(err)
		return nil, err
	}
	return out, nil
}

// ParseWKB decodes OGC WKB, applies the same structural checks Parse honors
// for WKT (spec §6.2's shared parse_wkb(bytes, checks) contract), and
// returns the internal serialized form.
func (c *Context) ParseWKB(data []byte, checks wkt.CheckFlags) ([]byte, error) {
	g, err := wkb.DecodeWKB(data)
	if err != nil {
		c.reportFatal(err)
		return nil, err
	}
	if err := wkt.Validate(g, checks); err != nil {
		return nil, err
	}
	out, err := wkb.Encode(g)
	if err != nil {
		c.reportFatal(err)
		return nil, err
	}
	return out, nil
}

// EmitWKT decodes the internal serialized form and renders it as EWKT at
// the given decimal precision (spec §4.3.4).
func (c *Context) EmitWKT(serialized []byte, precision int) (string, error) {
	g, err := wkb.Decode(serialized)
	if err != nil {
		c.reportFatal(err)
		return "", err
	}
	return wkt.Emit(g, precision), nil
}

// EmitWKB decodes the internal serialized form and re-encodes it as OGC
// WKB in the given byte order.
func (c *Context) EmitWKB(serialized []byte, order binary.ByteOrder) ([]byte, error) {
	g, err := wkb.Decode(serialized)
	if err != nil {
		c.reportFatal(err)
		return nil, err
	}
	out, err := wkb.EncodeWKB(g, order)
	if err != nil {
		c.reportFatal(err)
		return nil, err
	}
	return out, nil
}

// GeomFromBytes decodes the internal serialized form into a geometry value.
func (c *Context) GeomFromBytes(serialized []byte) (geom.Geometry, error) {
	g, err := wkb.Decode(serialized)
	if err != nil {
		c.reportFatal(err)
		return nil, err
	}
	return g, nil
}

// GeomToBytes encodes a geometry value into the internal serialized form.
func (c *Context) GeomToBytes(g geom.Geometry) ([]byte, error) {
	out, err := wkb.Encode(g)
	if err != nil {
		c.reportFatal(err)
		return nil, err
	}
	return out, nil
}
