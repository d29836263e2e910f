package geom

import (
	"fmt"

	"github.com/postgis/lwgeom/internal/ptarray"
)

// SplitEngine is the narrow slice of the §6.3 external-engine adapter that
// WrapX needs: splitting a geometry along a vertical blade, and
// reassembling split pieces with a unary union. The concrete
// implementation lives in internal/engine; it is injected here rather
// than imported, so this package has no dependency on the engine.
type SplitEngine interface {
	Split(g Geometry, bladeX1, bladeY1, bladeX2, bladeY2 float64) ([]Geometry, error)
	UnaryUnion(parts []Geometry) (Geometry, error)
}

// EngineFailure wraps a §6.3 adapter error surfaced during WrapX.
type EngineFailure struct {
	Op  string
	Err error
}

func (e *EngineFailure) Error() string { return fmt.Sprintf("lwgeom: engine failure in %s: %v", e.Op, e.Err) }
func (e *EngineFailure) Unwrap() error { return e.Err }

// WrapX splits g along the vertical line x=cutX and translates every
// resulting piece on one side by (amount, 0). If amount < 0, the part
// with x > cutX is translated; if amount > 0, the part with x < cutX is
// translated.
func WrapX(eng SplitEngine, g Geometry, cutX, amount float64) (Geometry, error) {
	if IsEmpty(g) || amount == 0 {
		return Clone(g), nil
	}

	box, ok := computeBbox(g)
	if !ok {
		return Clone(g), nil
	}

	targetIsRight := amount < 0

	if targetIsRight {
		if box.XMin >= cutX { // entirely on target (right) side
			return translateX(g, amount), nil
		}
		if box.XMax <= cutX { // entirely on non-target (left) side
			return Clone(g), nil
		}
	} else {
		if box.XMax <= cutX { // entirely on target (left) side
			return translateX(g, amount), nil
		}
		if box.XMin >= cutX { // entirely on non-target (right) side
			return Clone(g), nil
		}
	}

	pieces, err := eng.Split(g, cutX, box.YMin-1, cutX, box.YMax+1)
	if err != nil {
		return nil, &EngineFailure{Op: "split", Err: err}
	}

	processed := make([]Geometry, 0, len(pieces))
	for _, p := range pieces {
		out, err := WrapX(eng, p, cutX, amount)
		if err != nil {
			return nil, err
		}
		processed = append(processed, out)
	}

	merged, err := eng.UnaryUnion(processed)
	if err != nil {
		return nil, &EngineFailure{Op: "unary_union", Err: err}
	}
	return merged, nil
}

// translateX returns a deep copy of g with amount added to every x
// ordinate.
func translateX(g Geometry, amount float64) Geometry {
	out := Clone(g)
	shiftX(out, amount)
	return out
}

func shiftX(g Geometry, amount float64) {
	switch v := g.(type) {
	case *Point:
		shiftPA(v.PA, amount)
	case *LineString:
		shiftPA(v.PA, amount)
	case *CircularString:
		shiftPA(v.PA, amount)
	case *Triangle:
		shiftPA(v.PA, amount)
	case *Polygon:
		for _, r := range v.Rings {
			shiftPA(r, amount)
		}
	default:
		for _, sub := range subGeoms(g) {
			shiftX(sub, amount)
		}
	}
	Changed(g)
}

func shiftPA(pa *ptarray.PointArray, amount float64) {
	n := pa.NPoints()
	for i := 0; i < n; i++ {
		p := pa.GetPoint4D(i)
		p.X += amount
		pa.SetPoint4D(i, p)
	}
}
