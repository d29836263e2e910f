package wkb

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/postgis/lwgeom/internal/geom"
)

// EncodeHex renders g as upper-case hex-encoded EWKB, the text form used
// when binary geometries travel through a text-only channel (spec
// §4.3.2). Design Notes call for preferring the uncompressed wire form
// over a shrink-encoded variant unless an interchange partner demands it;
// no such partner is in scope here, so no shrink-encoding is implemented.
func EncodeHex(g geom.Geometry, order binary.ByteOrder) (string, error) {
	raw, err := EncodeWKB(g, order)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(raw)), nil
}

// DecodeHex parses hex-WKB text (case-insensitive) back into a Geometry.
func DecodeHex(text string) (geom.Geometry, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, &InvariantError{Reason: "malformed hex-WKB: " + err.Error()}
	}
	return DecodeWKB(raw)
}
