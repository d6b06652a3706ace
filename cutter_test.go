package wedge_test

import (
	"testing"

	wedge "github.com/sf-apex/wedge-maker-4-gis"
	"github.com/sf-apex/wedge-maker-4-gis/clip"
)

// TestCutInnerHoleMonotonic checks the arcband area strictly decreases as
// the inner radius grows, and that a zero inner radius leaves the wedge
// untouched.
func TestCutInnerHoleMonotonic(t *testing.T) {
	ref := meterRef(t)
	eng := clip.NewEngine()
	b := wedge.NewSectorBuilder(eng)

	outer, err := b.BuildSector(0, 0, 0, 90, 10, ref)
	if err != nil {
		t.Fatalf("BuildSector: %v", err)
	}

	prev := outer.Area() + 1
	for _, r2 := range []float64{0, 2, 4, 6, 8} {
		cut, err := wedge.CutInnerHole(eng, 0, 0, r2, outer, ref)
		if err != nil {
			t.Fatalf("CutInnerHole(r2=%v): %v", r2, err)
		}

		if r2 == 0 && cut.Area() != outer.Area() {
			t.Errorf("r2=0 changed the wedge: %.6f != %.6f", cut.Area(), outer.Area())
		}
		if cut.Area() >= prev {
			t.Errorf("area not strictly decreasing at r2=%v: %.6f >= %.6f", r2, cut.Area(), prev)
		}
		prev = cut.Area()
	}
}

// TestCutInnerHoleArea checks the arcband area formula (r1^2 - r2^2) *
// theta / 2 for a quarter wedge.
func TestCutInnerHoleArea(t *testing.T) {
	ref := meterRef(t)
	eng := clip.NewEngine()
	b := wedge.NewSectorBuilder(eng)

	outer, err := b.BuildSector(0, 0, 0, 90, 10, ref)
	if err != nil {
		t.Fatalf("BuildSector: %v", err)
	}
	cut, err := wedge.CutInnerHole(eng, 0, 0, 5, outer, ref)
	if err != nil {
		t.Fatalf("CutInnerHole: %v", err)
	}

	want := sectorArea(10, 90) - sectorArea(5, 90)
	if !approx(cut.Area(), want, want*0.005) {
		t.Errorf("arcband area = %.4f, want %.4f", cut.Area(), want)
	}
}
