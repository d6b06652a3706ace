package wedge

import "fmt"

// Erase removes eraseRegion from input, emulating boolean difference on an
// Engine that has no native subtract primitive.
//
// The emulation unions the two shapes and filters the overlay fragments by
// provenance: a fragment survives iff it derives from the input and not from
// the erase region. The erase region's attributes are excluded from the
// merged schema, and no provenance information leaks into the result, whose
// schema is exactly the input's; an input attribute keeps its value even when
// the erase region carries one with the same name.
//
// The area identity area(result) = area(input) - area(input ∩ eraseRegion)
// holds for any valid operands; eraseRegion may be multi-part. Neither
// operand is mutated.
func Erase(eng Engine, input, eraseRegion Polygon) (Polygon, error) {
	// Hide what the erase region contributes to the merged schema. Names
	// the input also carries stay visible: they belong to the input side.
	var excluded []string
	for _, name := range eraseRegion.AttrNames() {
		if _, ok := input.Attr(name); !ok {
			excluded = append(excluded, name)
		}
	}

	frags, err := eng.Union(input, eraseRegion)
	if err != nil {
		return Polygon{}, fmt.Errorf("wedge: erase union: %w", err)
	}

	result := Polygon{Ref: input.Ref}
	for _, f := range frags {
		if f.FromInput && !f.FromErase {
			result.Rings = append(result.Rings, f.Polygon.Rings...)
		}
	}

	// The kept result's schema is the input's, minus fields only the erase
	// region contributed.
	result.CloneAttrsFrom(input, excluded...)
	return result, nil
}
