package geom

import "github.com/postgis/lwgeom/internal/ptarray"

// Reverse reverses point order in every line/ring owned by g (directly
// or via sub-geometries). Point is untouched.
func Reverse(g Geometry) {
	switch v := g.(type) {
	case *Point:
		// untouched
	case *LineString:
		v.PA.Reverse()
	case *CircularString:
		v.PA.Reverse()
	case *Triangle:
		v.PA.Reverse()
	case *Polygon:
		for _, r := range v.Rings {
			r.Reverse()
		}
	default:
		for _, sub := range subGeoms(g) {
			Reverse(sub)
		}
	}
}

// signedArea2 returns twice the signed area of a closed 2D ring
// (positive = CCW, negative = CW), via the shoelace formula.
func signedArea2(pa *ptarray.PointArray) float64 {
	n := pa.NPoints()
	if n < 3 {
		return 0
	}
	area := 0.0
	prev := pa.GetPoint2D(n - 1)
	for i := 0; i < n; i++ {
		cur := pa.GetPoint2D(i)
		area += prev.X*cur.Y - cur.X*prev.Y
		prev = cur
	}
	return area
}

// ForceRHR makes every polygon ring obey the right-hand rule: exterior
// rings clockwise, interior rings counter-clockwise, in 2D.
func ForceRHR(g Geometry) {
	switch v := g.(type) {
	case *Polygon:
		for i, r := range v.Rings {
			area := signedArea2(r)
			if i == 0 {
				if area > 0 { // CCW, want CW
					r.Reverse()
				}
			} else {
				if area < 0 { // CW, want CCW
					r.Reverse()
				}
			}
		}
	default:
		for _, sub := range subGeoms(g) {
			ForceRHR(sub)
		}
	}
}

// Segmentize2D recursively rebuilds g so every consecutive pair of
// vertices is at most d apart in 2D. Point returns a clone.
func Segmentize2D(g Geometry, d float64) Geometry {
	switch v := g.(type) {
	case *Point:
		return &Point{Base: v.Base, PA: v.PA.Clone()}
	case *LineString:
		return &LineString{Base: v.Base, PA: v.PA.Segmentize2D(d)}
	case *CircularString:
		return &CircularString{Base: v.Base, PA: v.PA.Segmentize2D(d)}
	case *Triangle:
		return &Triangle{Base: v.Base, PA: v.PA.Segmentize2D(d)}
	case *Polygon:
		rings := make([]*ptarray.PointArray, len(v.Rings))
		for i, r := range v.Rings {
			rings[i] = r.Segmentize2D(d)
		}
		return &Polygon{Base: v.Base, Rings: rings}
	case *MultiPoint:
		sub := make([]*Point, len(v.Geoms))
		for i, s := range v.Geoms {
			sub[i] = Segmentize2D(s, d).(*Point)
		}
		return &MultiPoint{Base: v.Base, Geoms: sub}
	case *MultiLineString:
		sub := make([]*LineString, len(v.Geoms))
		for i, s := range v.Geoms {
			sub[i] = Segmentize2D(s, d).(*LineString)
		}
		return &MultiLineString{Base: v.Base, Geoms: sub}
	case *MultiPolygon:
		sub := make([]*Polygon, len(v.Geoms))
		for i, s := range v.Geoms {
			sub[i] = Segmentize2D(s, d).(*Polygon)
		}
		return &MultiPolygon{Base: v.Base, Geoms: sub}
	default:
		in := subGeoms(g)
		out := make([]Geometry, len(in))
		for i, s := range in {
			out[i] = Segmentize2D(s, d)
		}
		rebuilt, err := BuildCollectionLike(g.GeomType(), v.Base().HasZ(), v.Base().HasM(), out)
		if err != nil {
			// Segmentize2D never changes a sub-geometry's concrete type,
			// so BuildCollectionLike can only fail here if subGeoms(g)
			// itself returned the wrong shape for g's type.
			panic(err)
		}
		return rebuilt
	}
}

// LongitudeShift recursively applies PointArray.LongitudeShift (x < 0
// gets +360, x > 180 gets -360) to every point-array reachable from g.
func LongitudeShift(g Geometry) {
	switch v := g.(type) {
	case *Point:
		v.PA.LongitudeShift()
	case *LineString:
		v.PA.LongitudeShift()
	case *CircularString:
		v.PA.LongitudeShift()
	case *Triangle:
		v.PA.LongitudeShift()
	case *Polygon:
		for _, r := range v.Rings {
			r.LongitudeShift()
		}
	default:
		for _, sub := range subGeoms(g) {
			LongitudeShift(sub)
		}
	}
}
