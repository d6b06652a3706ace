package wedge

// Housekeeping attribute names introduced by engine primitives and removed
// from the final output schema by the Processor.
const (
	// BuffDistField records the buffer distance, in meters, on disks
	// produced by Engine.DiskOf.
	BuffDistField = "BUFF_DIST"

	// OrigFIDField records the generating feature id on disks and merged
	// multi-part shapes.
	OrigFIDField = "ORIG_FID"

	// WIDField carries the input record's id on every output polygon.
	WIDField = "WID"
)

// Fragment is one piece of a union overlay, annotated with explicit
// provenance: which of the two union operands the piece derives from.
// A fragment overlapping both operands has both flags set.
type Fragment struct {
	Polygon Polygon

	// FromInput reports that the fragment overlaps the first operand.
	FromInput bool

	// FromErase reports that the fragment overlaps the second operand.
	// The name reflects the flag's consumer: Erase keeps exactly the
	// fragments with FromInput set and FromErase clear.
	FromErase bool
}

// Engine is the boolean-geometry contract the synthesis algorithms are built
// on. Implementations must treat their arguments as immutable and return
// freshly allocated results. All calls are blocking and atomic; a failed
// call leaves no partial state behind.
//
// The clip subpackage provides the standard implementation.
type Engine interface {
	// DiskOf returns a polygon approximating the circle of the given
	// radius (in meters, converted to ref's linear units) around center.
	// The result carries the BuffDistField and OrigFIDField attributes.
	DiskOf(center Point, radiusMeters float64, ref SpatialRef) (Polygon, error)

	// Intersect returns the region common to a and b. The result keeps
	// a's attribute schema.
	Intersect(a, b Polygon) (Polygon, error)

	// Union overlays a and b into disjoint fragments, each annotated with
	// provenance flags relative to the operands (a is the "input" side,
	// b the "erase" side). Fragments with empty geometry are omitted.
	Union(a, b Polygon) ([]Fragment, error)

	// MergeParts combines the parts into one multi-part polygon without
	// dissolving shared boundaries. Merging zero parts is an error.
	MergeParts(parts []Polygon) (Polygon, error)

	// Dissolve planar-unions a multi-part polygon's touching parts into a
	// single shape, dropping the attribute schema.
	Dissolve(p Polygon) (Polygon, error)
}
