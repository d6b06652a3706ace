package wedge

import (
	"math"
	"testing"
)

// TestPolygonArea checks net area with an opposite-orientation hole.
func TestPolygonArea(t *testing.T) {
	outer := Ring{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}         // ccw, +100
	hole := Ring{Pt(2, 2), Pt(2, 6), Pt(6, 6), Pt(6, 2)}              // cw, -16
	p := Polygon{Rings: []Ring{outer, hole}}

	if got := p.Area(); math.Abs(got-84) > 1e-12 {
		t.Errorf("Area() = %v, want 84", got)
	}
}

// TestPolygonAttrs exercises the schema: set, introspect, drop, clone with
// exclusions.
func TestPolygonAttrs(t *testing.T) {
	var p Polygon
	if names := p.AttrNames(); names != nil {
		t.Errorf("empty schema AttrNames() = %v, want nil", names)
	}

	p.SetAttr("b", 2)
	p.SetAttr("a", 1)
	p.SetAttr("c", 3)

	names := p.AttrNames()
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("AttrNames() = %v, want [a b c]", names)
	}

	p.DropAttr("b")
	if _, ok := p.Attr("b"); ok {
		t.Error("attribute b survived DropAttr")
	}
	p.DropAttr("missing") // no-op

	var q Polygon
	q.CloneAttrsFrom(p, "c")
	if _, ok := q.Attr("c"); ok {
		t.Error("excluded attribute c was cloned")
	}
	if v, ok := q.Attr("a"); !ok || v != 1 {
		t.Errorf("cloned attribute a = %v (present %v), want 1", v, ok)
	}

	// Clones must not share schema storage.
	q.SetAttr("a", 99)
	if v, _ := p.Attr("a"); v != 1 {
		t.Errorf("mutating a clone changed the source: a = %v", v)
	}
}

// TestPolygonClone checks ring storage is deep-copied.
func TestPolygonClone(t *testing.T) {
	p := NewPolygon(SpatialRef{}, Ring{Pt(0, 0), Pt(1, 0), Pt(0, 1)})
	c := p.Clone()
	c.Rings[0][0] = Pt(9, 9)

	if p.Rings[0][0] != Pt(0, 0) {
		t.Errorf("mutating a clone changed the source ring: %v", p.Rings[0][0])
	}
}
