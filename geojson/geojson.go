// Package geojson reads wedge input records from GeoJSON point features and
// writes finished collections back out as GeoJSON polygon features.
//
// Input features must be Points carrying numeric a1/a2/r1 properties (start
// bearing, end bearing, outer radius in meters) and optionally r2 (inner
// radius). Output features carry a "wid" property with the source record's
// id.
package geojson

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	orbjson "github.com/paulmach/orb/geojson"

	wedge "github.com/sf-apex/wedge-maker-4-gis"
)

// RequiredProps are the point-feature properties every input record needs.
var RequiredProps = []string{"a1", "a2", "r1"}

// OptionalProp is the inner-radius property; absence means no inner radius.
const OptionalProp = "r2"

// ReadRecords decodes a GeoJSON FeatureCollection of point features into
// wedge records. A feature's id comes from its "id" property when present,
// otherwise from its 1-based position in the collection.
func ReadRecords(r io.Reader) ([]wedge.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("geojson: read input: %w", err)
	}

	fc, err := orbjson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("geojson: decode feature collection: %w", err)
	}

	records := make([]wedge.Record, 0, len(fc.Features))
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("geojson: feature %d: geometry is %T, want Point", i+1, f.Geometry)
		}

		rec := wedge.Record{ID: i + 1, X: pt.X(), Y: pt.Y()}
		if id, ok := numericProp(f, "id"); ok {
			rec.ID = int(id)
		}

		var missing []string
		for _, name := range RequiredProps {
			if _, ok := numericProp(f, name); !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("geojson: feature %d: missing numeric fields %v", i+1, missing)
		}

		rec.AngleA, _ = numericProp(f, "a1")
		rec.AngleB, _ = numericProp(f, "a2")
		rec.OuterRadius, _ = numericProp(f, "r1")
		if r2, ok := numericProp(f, OptionalProp); ok {
			rec.InnerRadius = r2
		}
		records = append(records, rec)
	}
	return records, nil
}

// numericProp fetches a property as float64, accepting the numeric types a
// JSON decode can produce.
func numericProp(f *orbjson.Feature, name string) (float64, bool) {
	v, ok := f.Properties[name]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		x, err := n.Float64()
		return x, err == nil
	default:
		return 0, false
	}
}

// WriteCollection encodes a finished batch as a GeoJSON FeatureCollection,
// one polygon feature per record, tagged with its wid.
func WriteCollection(w io.Writer, c wedge.Collection) error {
	fc := orbjson.NewFeatureCollection()
	for _, t := range c.Features {
		f := orbjson.NewFeature(Geometry(t.Polygon))
		f.Properties["wid"] = t.WID
		fc.Append(f)
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("geojson: encode feature collection: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("geojson: write output: %w", err)
	}
	return nil
}

// Geometry converts a polygon into an orb geometry, grouping holes under the
// outer boundary that contains them. A single outer ring becomes an
// orb.Polygon; several become an orb.MultiPolygon.
func Geometry(p wedge.Polygon) orb.Geometry {
	var polys []orb.Polygon
	var outers []wedge.Ring

	for _, r := range p.Rings {
		if r.Area() > 0 {
			outers = append(outers, r)
			polys = append(polys, orb.Polygon{closedRing(r)})
		}
	}
	for _, r := range p.Rings {
		if r.Area() > 0 || len(r) == 0 {
			continue
		}
		for i, outer := range outers {
			if outer.Contains(r[0]) {
				polys[i] = append(polys[i], closedRing(r))
				break
			}
		}
	}

	if len(polys) == 1 {
		return polys[0]
	}
	mp := make(orb.MultiPolygon, len(polys))
	copy(mp, polys)
	return mp
}

// closedRing converts a ring to an orb ring with the closing vertex
// repeated, as GeoJSON requires.
func closedRing(r wedge.Ring) orb.Ring {
	out := make(orb.Ring, 0, len(r)+1)
	for _, p := range r {
		out = append(out, orb.Point{p.X, p.Y})
	}
	if len(out) > 0 {
		out = append(out, out[0])
	}
	return out
}
