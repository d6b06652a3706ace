// Package wedge synthesizes circular-sector ("wedge") and annular-sector
// ("arcband") polygons from point records carrying a center, two lines of
// bearing, and one or two radii.
//
// # Overview
//
// Each input Record describes a directional coverage shape: a center point in
// projected coordinates, a start and end bearing measured clockwise from
// north, an outer radius in meters, and an optional inner radius. The
// Processor converts every record into an exact polygon boundary by combining
// trigonometric triangle construction with boolean polygon operations
// supplied by a pluggable Engine (disk generation, intersection,
// union-with-provenance, merge, dissolve).
//
// # Quick Start
//
//	import (
//	    "github.com/sf-apex/wedge-maker-4-gis"
//	    "github.com/sf-apex/wedge-maker-4-gis/clip"
//	)
//
//	ref, _ := wedge.NewSpatialRef("Meter")
//	proc := wedge.NewProcessor(clip.NewEngine())
//	out, err := proc.ProcessBatch([]wedge.Record{
//	    {ID: 1, X: 0, Y: 0, AngleA: 0, AngleB: 90, OuterRadius: 10},
//	}, ref)
//
// # Construction Strategy
//
// Spans under a half-turn are built as "disk intersect triangle": the two
// triangle legs run along the bearings, with the apexes pushed far enough
// out that the legs exactly bound the sector within the outer disk. Spans
// over a half-turn are built as "disk minus complementary triangle", which
// is numerically safer than clipping a non-convex region. Near 180 degrees
// neither form is stable (the apex distance grows without bound), so the
// Processor bisects such spans into two safe sub-wedges and dissolves the
// halves back together. The SectorBuilder rejects spans inside the unsafe
// band; the bisection in the Processor is the mandatory mitigation, not an
// internal safeguard of the builder.
//
// # Boolean Difference
//
// The Engine contract has no subtract primitive. Erase emulates it with a
// union whose result fragments carry explicit provenance flags, keeping only
// fragments that derive from the input and not from the erase region.
//
// # Coordinate System
//
// Bearings follow the surveying convention: 0 degrees is north, angles
// increase clockwise, so X = sin(bearing) and Y = cos(bearing). Coordinates
// are planar projected values in the units of the SpatialRef ("Meter" or
// "Foot_US"); radii are always meters and are converted where needed.
package wedge
