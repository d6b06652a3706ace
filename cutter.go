package wedge

import "fmt"

// CutInnerHole removes a concentric inner-radius disk from a wedge,
// producing the final arcband (annular sector). A zero inner radius means no
// inner radius was requested and returns the wedge unchanged.
func CutInnerHole(eng Engine, cx, cy, r2 float64, wedge Polygon, ref SpatialRef) (Polygon, error) {
	if r2 <= 0 {
		return wedge, nil
	}

	disk, err := eng.DiskOf(Pt(cx, cy), r2, ref)
	if err != nil {
		return Polygon{}, fmt.Errorf("wedge: inner disk: %w", err)
	}

	out, err := Erase(eng, wedge, disk)
	if err != nil {
		return Polygon{}, fmt.Errorf("wedge: inner cut: %w", err)
	}
	return out, nil
}
