package wedge

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s1"
)

// ErrUnsafeSpan reports a sector span inside the numerically unsafe band
// around 180 degrees, where the apex distance r/cos(theta/2) grows without
// bound. Callers must bisect such spans into two safe sub-wedges (see
// Processor) instead of building them directly.
var ErrUnsafeSpan = errors.New("wedge: span too close to 180 degrees for direct construction")

// defaultUnsafeHalfwidth matches the bisection policy of the Processor:
// spans with wrapped theta in (135, 225) are rejected.
const defaultUnsafeHalfwidth = 45.0

// SectorBuilder constructs a single circular-sector polygon from a center,
// two bearings and an outer radius, using an Engine for the boolean work.
type SectorBuilder struct {
	eng        Engine
	unsafeHalf float64
}

// BuilderOption configures a SectorBuilder during creation.
type BuilderOption func(*SectorBuilder)

// WithUnsafeBand sets the halfwidth, in degrees, of the rejected band around
// a 180-degree span. The default of 45 rejects wrapped spans in (135, 225),
// mirroring the bisection policy of the Processor. Non-positive halfwidths
// disable the precondition entirely; doing so reintroduces the unbounded
// apex-distance failure mode and is only intended for tests.
func WithUnsafeBand(halfwidthDeg float64) BuilderOption {
	return func(b *SectorBuilder) {
		b.unsafeHalf = halfwidthDeg
	}
}

// NewSectorBuilder creates a sector builder on the given engine.
func NewSectorBuilder(eng Engine, opts ...BuilderOption) *SectorBuilder {
	b := &SectorBuilder{eng: eng, unsafeHalf: defaultUnsafeHalfwidth}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// wrapDegrees reduces an angle to the range [0, 360). Unlike math.Mod, the
// result is never negative, matching modulo arithmetic on bearings.
func wrapDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// radians converts a bearing in degrees to radians.
func radians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

// BuildSector builds one sector polygon spanning clockwise from bearing
// angleA to bearing angleB around (cx, cy), bounded by the disk of radius r
// (meters). Callers normalize both bearings into [0,360); the only exception
// is a span that is an exact multiple of 360 degrees, which yields the full
// disk.
//
// Spans whose wrapped width is at most a half-turn are built as disk
// intersect triangle; wider ("Pac-Man") spans as disk minus the
// complementary triangle. Both decisions are taken on the wrapped width, so
// they are invariant under adding whole turns to either bearing.
//
// Spans inside the configured unsafe band around 180 degrees return
// ErrUnsafeSpan.
func (b *SectorBuilder) BuildSector(cx, cy, angleA, angleB, r float64, ref SpatialRef) (Polygon, error) {
	// theta is the clockwise span between the two lines of bearing. It may
	// be negative when the span crosses north; the wrapped value drives
	// the strategy choice.
	theta := angleB - angleA
	wrapped := wrapDegrees(theta)
	reflex := wrapped > 180

	if theta != 0 && b.unsafeHalf > 0 && math.Abs(wrapped-180) < b.unsafeHalf {
		return Polygon{}, fmt.Errorf("%w: theta %.4f at (%v, %v)", ErrUnsafeSpan, wrapped, cx, cy)
	}

	disk, err := b.eng.DiskOf(Pt(cx, cy), r, ref)
	if err != nil {
		return Polygon{}, fmt.Errorf("wedge: outer disk: %w", err)
	}

	// A span that is an exact multiple of 360 degrees is the full disk; no
	// triangle is constructed at all.
	if theta == 0 {
		return disk, nil
	}

	aRad := radians(angleA)
	bRad := radians(angleB)
	thetaRad := radians(theta)

	// The triangle is laid out in the projection's linear units, so the
	// radius joins them before any trigonometry.
	rAdj := ref.MetersToUnits(r)

	// Distance from the center to each apex such that the triangle's legs
	// exactly bound the sector within the outer disk. |cos| keeps the
	// distance invariant under whole-turn offsets in theta.
	hyp := math.Abs(rAdj / math.Cos(thetaRad/2))

	apexA := Pt(cx+hyp*math.Sin(aRad), cy+hyp*math.Cos(aRad))
	apexB := Pt(cx+hyp*math.Sin(bRad), cy+hyp*math.Cos(bRad))
	triangle := NewPolygon(ref, Ring{Pt(cx, cy), apexA, apexB})

	if reflex {
		// Pac-Man: the triangle covers the complementary span, so carve
		// it out of the full disk.
		out, err := Erase(b.eng, disk, triangle)
		if err != nil {
			return Polygon{}, fmt.Errorf("wedge: reflex sector: %w", err)
		}
		return out, nil
	}

	out, err := b.eng.Intersect(disk, triangle)
	if err != nil {
		return Polygon{}, fmt.Errorf("wedge: convex sector: %w", err)
	}
	return out, nil
}
