package wedge

import "fmt"

// FeetPerMeter converts meters to US survey-adjacent international feet,
// matching the factor the original tooling applies for Foot_US projections.
const FeetPerMeter = 3.2808399

// Record is one validated input row: a wedge center with two lines of
// bearing and one or two radii. Records are immutable values; each is
// consumed exactly once by a batch run.
type Record struct {
	ID     int
	X, Y   float64 // center, projected coordinates
	AngleA float64 // start bearing, degrees
	AngleB float64 // end bearing, degrees

	// OuterRadius is the outer (or only) radius in meters; must be > 0.
	OuterRadius float64

	// InnerRadius is the optional inner radius in meters; zero means absent.
	InnerRadius float64
}

// Validate checks the record's radii. Bearings are not range-checked here:
// the Processor normalizes them into [0,360).
func (r Record) Validate() error {
	if r.OuterRadius <= 0 {
		return fmt.Errorf("wedge: record %d: outer radius must be > 0, got %v", r.ID, r.OuterRadius)
	}
	if r.InnerRadius < 0 {
		return fmt.Errorf("wedge: record %d: inner radius must be >= 0, got %v", r.ID, r.InnerRadius)
	}
	if r.InnerRadius >= r.OuterRadius && r.InnerRadius > 0 {
		return fmt.Errorf("wedge: record %d: inner radius %v must be smaller than outer radius %v",
			r.ID, r.InnerRadius, r.OuterRadius)
	}
	return nil
}

// SpatialRef identifies the linear unit of a projected coordinate reference
// system. Only "Meter" (e.g. UTM) and "Foot_US" (e.g. US State Plane) are
// accepted; geographic coordinate systems are rejected up front because the
// trigonometric construction assumes planar linear units.
type SpatialRef struct {
	unit string
}

// NewSpatialRef creates a spatial reference for the named linear unit.
func NewSpatialRef(unit string) (SpatialRef, error) {
	switch unit {
	case "Meter", "Foot_US":
		return SpatialRef{unit: unit}, nil
	case "", "Unknown":
		return SpatialRef{}, fmt.Errorf("wedge: input has no projection information")
	default:
		return SpatialRef{}, fmt.Errorf(
			"wedge: unsupported linear unit %q: reproject to a CRS intended for analysis, "+
				"e.g. local UTM (Meter) or local State Plane (Foot_US)", unit)
	}
}

// Unit returns the linear-unit name, "Meter" or "Foot_US".
func (s SpatialRef) Unit() string { return s.unit }

// MetersToUnits converts a length in meters to the reference's linear units.
func (s SpatialRef) MetersToUnits(m float64) float64 {
	if s.unit == "Foot_US" {
		return m * FeetPerMeter
	}
	return m
}
