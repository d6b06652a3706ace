package clip

import (
	"math"
	"testing"

	wedge "github.com/sf-apex/wedge-maker-4-gis"
)

func meterRef(t *testing.T) wedge.SpatialRef {
	t.Helper()
	ref, err := wedge.NewSpatialRef("Meter")
	if err != nil {
		t.Fatalf("NewSpatialRef: %v", err)
	}
	return ref
}

func square(x, y, side float64) wedge.Polygon {
	return wedge.NewPolygon(wedge.SpatialRef{}, wedge.Ring{
		wedge.Pt(x, y), wedge.Pt(x+side, y), wedge.Pt(x+side, y+side), wedge.Pt(x, y+side),
	})
}

// TestDiskOf checks the disk approximation's area, unit conversion and
// housekeeping attributes.
func TestDiskOf(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		radius   float64
		segments int
		wantArea float64
		relTol   float64
	}{
		{"meter default resolution", "Meter", 10, 0, math.Pi * 100, 1e-3},
		{"meter coarse", "Meter", 10, 32, math.Pi * 100, 1e-2},
		{"survey feet", "Foot_US", 10, 0, math.Pi * 100 * wedge.FeetPerMeter * wedge.FeetPerMeter, 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := wedge.NewSpatialRef(tt.unit)
			if err != nil {
				t.Fatalf("NewSpatialRef: %v", err)
			}

			var opts []Option
			if tt.segments > 0 {
				opts = append(opts, WithSegments(tt.segments))
			}
			disk, err := NewEngine(opts...).DiskOf(wedge.Pt(3, -7), tt.radius, ref)
			if err != nil {
				t.Fatalf("DiskOf: %v", err)
			}

			if got := disk.Area(); math.Abs(got-tt.wantArea) > tt.wantArea*tt.relTol {
				t.Errorf("area = %.4f, want %.4f", got, tt.wantArea)
			}
			if v, ok := disk.Attr(wedge.BuffDistField); !ok || v != tt.radius {
				t.Errorf("%s = %v (present %v), want %v", wedge.BuffDistField, v, ok, tt.radius)
			}
			if _, ok := disk.Attr(wedge.OrigFIDField); !ok {
				t.Errorf("disk is missing %s", wedge.OrigFIDField)
			}
		})
	}

	if _, err := NewEngine().DiskOf(wedge.Pt(0, 0), 0, meterRef(t)); err == nil {
		t.Error("zero radius accepted")
	}
}

// TestIntersect checks the clip keeps the input's schema and computes the
// shared region.
func TestIntersect(t *testing.T) {
	eng := NewEngine()

	a := square(0, 0, 10)
	a.SetAttr("from_a", 1)
	b := square(5, 5, 10)
	b.SetAttr("from_b", 2)

	out, err := eng.Intersect(a, b)
	if err != nil {
		t.Fatalf("Intersect: %v", err)
	}

	if got := out.Area(); math.Abs(got-25) > 1e-9 {
		t.Errorf("area = %v, want 25", got)
	}
	if _, ok := out.Attr("from_a"); !ok {
		t.Error("result lost the input's schema")
	}
	if _, ok := out.Attr("from_b"); ok {
		t.Error("result gained the clip operand's schema")
	}
}

// TestUnionProvenance checks the overlay partition: fragment areas must sum
// to the union area, and the flags must identify each side.
func TestUnionProvenance(t *testing.T) {
	eng := NewEngine()

	a := square(0, 0, 10)  // 100
	b := square(5, 0, 10)  // 100, overlap 50
	frags, err := eng.Union(a, b)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if len(frags) != 3 {
		t.Fatalf("fragments = %d, want 3", len(frags))
	}

	var inputOnly, shared, eraseOnly float64
	for _, f := range frags {
		switch {
		case f.FromInput && f.FromErase:
			shared += f.Polygon.Area()
		case f.FromInput:
			inputOnly += f.Polygon.Area()
		case f.FromErase:
			eraseOnly += f.Polygon.Area()
		default:
			t.Error("fragment with no provenance at all")
		}
	}

	if math.Abs(inputOnly-50) > 1e-9 || math.Abs(shared-50) > 1e-9 || math.Abs(eraseOnly-50) > 1e-9 {
		t.Errorf("partition = (%v, %v, %v), want (50, 50, 50)", inputOnly, shared, eraseOnly)
	}
}

// TestUnionDisjoint checks no shared fragment is emitted for disjoint
// operands.
func TestUnionDisjoint(t *testing.T) {
	frags, err := NewEngine().Union(square(0, 0, 10), square(100, 0, 10))
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if len(frags) != 2 {
		t.Fatalf("fragments = %d, want 2", len(frags))
	}
	for _, f := range frags {
		if f.FromInput && f.FromErase {
			t.Error("disjoint operands produced a shared fragment")
		}
	}
}

// TestMergePartsAndDissolve checks the merge keeps parts apart and the
// dissolve fuses touching ones.
func TestMergePartsAndDissolve(t *testing.T) {
	eng := NewEngine()

	left := square(0, 0, 10)
	right := square(10, 0, 10) // shares an edge with left

	merged, err := eng.MergeParts([]wedge.Polygon{left, right})
	if err != nil {
		t.Fatalf("MergeParts: %v", err)
	}
	if len(merged.Rings) != 2 {
		t.Errorf("merged rings = %d, want 2 (no dissolving on merge)", len(merged.Rings))
	}
	if _, ok := merged.Attr(wedge.OrigFIDField); !ok {
		t.Errorf("merge did not record %s", wedge.OrigFIDField)
	}

	dissolved, err := eng.Dissolve(merged)
	if err != nil {
		t.Fatalf("Dissolve: %v", err)
	}
	if len(dissolved.Rings) != 1 {
		t.Errorf("dissolved rings = %d, want 1", len(dissolved.Rings))
	}
	if got := dissolved.Area(); math.Abs(got-200) > 1e-9 {
		t.Errorf("dissolved area = %v, want 200", got)
	}
	if names := dissolved.AttrNames(); names != nil {
		t.Errorf("dissolve kept attributes %v", names)
	}

	if _, err := eng.MergeParts(nil); err == nil {
		t.Error("merge of zero parts accepted")
	}
}

// TestOrientationNormalization checks boolean results come back with
// counter-clockwise outers and clockwise holes, so net areas are correct.
func TestOrientationNormalization(t *testing.T) {
	eng := NewEngine()
	ref := meterRef(t)

	outer, err := eng.DiskOf(wedge.Pt(0, 0), 10, ref)
	if err != nil {
		t.Fatalf("DiskOf: %v", err)
	}
	inner, err := eng.DiskOf(wedge.Pt(0, 0), 5, ref)
	if err != nil {
		t.Fatalf("DiskOf: %v", err)
	}

	// Build an annulus through the provenance overlay.
	frags, err := eng.Union(outer, inner)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}

	var annulus wedge.Polygon
	for _, f := range frags {
		if f.FromInput && !f.FromErase {
			annulus = f.Polygon
		}
	}
	if len(annulus.Rings) != 2 {
		t.Fatalf("annulus rings = %d, want 2", len(annulus.Rings))
	}

	var positive, negative int
	for _, r := range annulus.Rings {
		if r.Area() > 0 {
			positive++
		} else {
			negative++
		}
	}
	if positive != 1 || negative != 1 {
		t.Errorf("orientations = %d ccw, %d cw, want 1 and 1", positive, negative)
	}

	want := math.Pi * (100 - 25)
	if got := annulus.Area(); math.Abs(got-want) > want*1e-3 {
		t.Errorf("annulus area = %.4f, want %.4f", got, want)
	}
}
