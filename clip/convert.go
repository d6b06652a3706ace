package clip

import (
	polyclip "github.com/akavel/polyclip-go"

	wedge "github.com/sf-apex/wedge-maker-4-gis"
)

// toContour converts a ring to a polyclip contour. Both representations
// leave the closing edge implied.
func toContour(r wedge.Ring) polyclip.Contour {
	c := make(polyclip.Contour, len(r))
	for i, p := range r {
		c[i] = polyclip.Point{X: p.X, Y: p.Y}
	}
	return c
}

func toPolyclip(p wedge.Polygon) polyclip.Polygon {
	out := make(polyclip.Polygon, len(p.Rings))
	for i, r := range p.Rings {
		out[i] = toContour(r)
	}
	return out
}

// fromPolyclip converts a clipper result back into a wedge.Polygon,
// normalizing ring orientation on the way: outer boundaries become
// counter-clockwise (positive signed area) and holes clockwise, so the
// polygon's summed signed areas give its net area. The clipper does not
// guarantee any particular output orientation, so it is re-derived here from
// containment depth.
func fromPolyclip(pc polyclip.Polygon, ref wedge.SpatialRef) wedge.Polygon {
	rings := make([]wedge.Ring, 0, len(pc))
	for _, c := range pc {
		if len(c) < 3 {
			continue
		}
		r := make(wedge.Ring, len(c))
		for i, p := range c {
			r[i] = wedge.Pt(p.X, p.Y)
		}
		rings = append(rings, r)
	}
	normalizeOrientation(rings)
	return wedge.Polygon{Rings: rings, Ref: ref}
}

// normalizeOrientation orients each ring by its containment depth: rings
// inside an even number of other rings are outer boundaries (forced
// counter-clockwise), odd depths are holes (forced clockwise). Depth is
// probed with a single vertex, which is exact for the disjoint-or-nested
// rings the clipper emits.
func normalizeOrientation(rings []wedge.Ring) {
	for i, r := range rings {
		depth := 0
		for j, other := range rings {
			if i == j {
				continue
			}
			if other.Contains(r[0]) {
				depth++
			}
		}

		ccw := r.Area() > 0
		if depth%2 == 0 {
			if !ccw {
				rings[i] = r.Reversed()
			}
		} else if ccw {
			rings[i] = r.Reversed()
		}
	}
}
