package geom

// AsMulti wraps a leaf geometry in its matching multi-variant collection.
// Collections (including existing multi-variants) pass through unchanged.
func AsMulti(g Geometry) Geometry {
	switch v := g.(type) {
	case *Point:
		return &MultiPoint{Base: v.Base, Geoms: []*Point{v}}
	case *LineString:
		return &MultiLineString{Base: v.Base, Geoms: []*LineString{v}}
	case *Polygon:
		return &MultiPolygon{Base: v.Base, Geoms: []*Polygon{v}}
	case *CircularString, *CompoundCurve:
		return &MultiCurve{Base: *g.Base(), Geoms: []Geometry{g}}
	case *CurvePolygon:
		return &MultiSurface{Base: v.Base, Geoms: []Geometry{g}}
	default:
		return g
	}
}

// Homogenize recursively simplifies a collection: a collection containing
// exactly one geometry becomes that geometry, a collection of uniform
// leaf variants becomes the matching multi-variant, and mixed collections
// are flattened (sub-collections surface their leaves to the top level)
// then regrouped by kind into sub-multi-variants.
func Homogenize(g Geometry) Geometry {
	if !IsCollection(g) {
		return g
	}

	leaves := flattenLeaves(g)
	if len(leaves) == 0 {
		return g
	}
	if len(leaves) == 1 {
		return leaves[0]
	}

	kind := leaves[0].GeomType()
	uniform := true
	for _, l := range leaves[1:] {
		if l.GeomType() != kind {
			uniform = false
			break
		}
	}
	if uniform {
		return groupByKind(kind, leaves, g.Base())
	}

	// Mixed: regroup by kind into sub-multi-variants, in first-seen order.
	var order []Type
	byKind := map[Type][]Geometry{}
	for _, l := range leaves {
		if _, ok := byKind[l.GeomType()]; !ok {
			order = append(order, l.GeomType())
		}
		byKind[l.GeomType()] = append(byKind[l.GeomType()], l)
	}
	out := &Collection{Base: *g.Base()}
	for _, k := range order {
		members := byKind[k]
		out.Geoms = append(out.Geoms, groupByKind(k, members, g.Base()))
	}
	return out
}

// flattenLeaves recursively surfaces every leaf (non-collection)
// geometry reachable from g, in depth-first order. Non-collection g is
// returned as its single leaf.
func flattenLeaves(g Geometry) []Geometry {
	if !IsCollection(g) {
		return []Geometry{g}
	}
	var out []Geometry
	for _, sub := range subGeoms(g) {
		out = append(out, flattenLeaves(sub)...)
	}
	return out
}

func groupByKind(kind Type, leaves []Geometry, base *Base) Geometry {
	switch kind {
	case TypePoint:
		pts := make([]*Point, len(leaves))
		for i, l := range leaves {
			pts[i] = l.(*Point)
		}
		if len(pts) == 1 {
			return pts[0]
		}
		return &MultiPoint{Base: *base, Geoms: pts}
	case TypeLineString:
		lines := make([]*LineString, len(leaves))
		for i, l := range leaves {
			lines[i] = l.(*LineString)
		}
		if len(lines) == 1 {
			return lines[0]
		}
		return &MultiLineString{Base: *base, Geoms: lines}
	case TypePolygon:
		polys := make([]*Polygon, len(leaves))
		for i, l := range leaves {
			polys[i] = l.(*Polygon)
		}
		if len(polys) == 1 {
			return polys[0]
		}
		return &MultiPolygon{Base: *base, Geoms: polys}
	default:
		if len(leaves) == 1 {
			return leaves[0]
		}
		return &Collection{Base: *base, Geoms: leaves}
	}
}

// Extract returns a Collection containing only the sub-geometries of col
// whose leaf variant matches target, recursing through nested
// collections.
func Extract(col Geometry, target Type) *Collection {
	out := &Collection{Base: *col.Base()}
	var walk func(Geometry)
	walk = func(g Geometry) {
		if g.GeomType() == target {
			out.Geoms = append(out.Geoms, g)
			return
		}
		if IsCollection(g) {
			for _, sub := range subGeoms(g) {
				walk(sub)
			}
		}
	}
	walk(col)
	return out
}
