package lwgeom

import (
	"github.com/postgis/lwgeom/internal/geom"
	"github.com/postgis/lwgeom/internal/ptarray"
)

// WrapX cuts g at cutX and translates the pieces past the cut by amount,
// for antimeridian-wrapping display (spec §6.3's split/union adapter usage).
func (c *Context) WrapX(g geom.Geometry, cutX, amount float64) (geom.Geometry, error) {
	out, err := geom.WrapX(c.engine, g, cutX, amount)
	if err != nil {
		c.reportFatal(err)
		return nil, err
	}
	return out, nil
}

// RemoveIrrelevantPointsForView destructively simplifies g's rings against
// viewBbox, dropping vertices a renderer at this viewport could not
// distinguish from their neighbors.
func (c *Context) RemoveIrrelevantPointsForView(g geom.Geometry, viewBbox ptarray.Box2D, cartesianHint bool) {
	geom.RemoveIrrelevantPointsForView(g, viewBbox, cartesianHint)
}
