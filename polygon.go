package wedge

import "sort"

// Polygon is an ordered set of rings with an associated spatial reference and
// a flat attribute schema. The first ring of a single-part shape is the outer
// boundary; additional rings are holes or further parts. Ring orientation
// encodes the role: counter-clockwise rings are outer boundaries, clockwise
// rings are holes, so the signed ring areas sum to the net area.
//
// All shapes produced by this package are non-self-intersecting.
type Polygon struct {
	Rings []Ring
	Ref   SpatialRef

	attrs map[string]float64
}

// NewPolygon creates a polygon from rings in the given spatial reference.
func NewPolygon(ref SpatialRef, rings ...Ring) Polygon {
	return Polygon{Rings: rings, Ref: ref}
}

// Empty reports whether the polygon has no rings.
func (p Polygon) Empty() bool {
	return len(p.Rings) == 0
}

// Area returns the net enclosed area: the absolute value of the summed
// signed ring areas, so holes subtract from their enclosing boundaries.
func (p Polygon) Area() float64 {
	var area float64
	for _, r := range p.Rings {
		area += r.Area()
	}
	if area < 0 {
		area = -area
	}
	return area
}

// SetAttr sets a named numeric attribute on the polygon's schema.
func (p *Polygon) SetAttr(name string, v float64) {
	if p.attrs == nil {
		p.attrs = make(map[string]float64)
	}
	p.attrs[name] = v
}

// Attr returns a named attribute and whether it is present in the schema.
func (p Polygon) Attr(name string) (float64, bool) {
	v, ok := p.attrs[name]
	return v, ok
}

// AttrNames returns the schema's attribute names in sorted order.
func (p Polygon) AttrNames() []string {
	if len(p.attrs) == 0 {
		return nil
	}
	names := make([]string, 0, len(p.attrs))
	for name := range p.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DropAttr removes a named attribute from the schema. Removing an absent
// attribute is a no-op.
func (p *Polygon) DropAttr(name string) {
	delete(p.attrs, name)
}

// CloneAttrsFrom replaces the polygon's schema with a copy of src's schema,
// skipping any names listed in exclude.
func (p *Polygon) CloneAttrsFrom(src Polygon, exclude ...string) {
	p.attrs = nil
	for name, v := range src.attrs {
		if !contains(exclude, name) {
			p.SetAttr(name, v)
		}
	}
}

// Clone returns a deep copy of the polygon, rings and schema included.
func (p Polygon) Clone() Polygon {
	out := Polygon{Ref: p.Ref}
	out.Rings = make([]Ring, len(p.Rings))
	for i, r := range p.Rings {
		out.Rings[i] = r.Clone()
	}
	out.CloneAttrsFrom(p)
	return out
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
