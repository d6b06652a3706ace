// Package records reads and validates wedge input records from CSV.
//
// The expected layout is a header row naming at least id, x, y, a1, a2 and
// r1 columns (any order, case-insensitive), with r2 optional. Bearings are
// degrees, radii meters. Validation failures name every missing or
// malformed field so a bad input is fixed in one round trip.
package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	wedge "github.com/sf-apex/wedge-maker-4-gis"
)

// required lists the mandatory CSV columns.
var required = []string{"id", "x", "y", "a1", "a2", "r1"}

// optionalField is the inner-radius column; absence means no inner radii.
const optionalField = "r2"

// ReadCSV decodes wedge records from CSV data.
func ReadCSV(r io.Reader) ([]wedge.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("records: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("records: read header: %w", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var recs []wedge.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("records: line %d: %w", line, err)
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("records: line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// indexColumns maps lower-cased header names to their positions and checks
// that every required column is present.
func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("records: missing fields: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseRow(row []string, cols map[string]int) (wedge.Record, error) {
	field := func(name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	var rec wedge.Record
	var bad []string

	if s, _ := field("id"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			bad = append(bad, "id")
		}
		rec.ID = id
	} else {
		bad = append(bad, "id")
	}

	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"x", &rec.X},
		{"y", &rec.Y},
		{"a1", &rec.AngleA},
		{"a2", &rec.AngleB},
		{"r1", &rec.OuterRadius},
	} {
		s, _ := field(f.name)
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			bad = append(bad, f.name)
			continue
		}
		*f.dst = v
	}

	// r2 is optional: an absent column or empty cell means no inner radius.
	if s, ok := field(optionalField); ok && s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			bad = append(bad, optionalField)
		}
		rec.InnerRadius = v
	}

	if len(bad) > 0 {
		return wedge.Record{}, fmt.Errorf("mismatched fields: %s", strings.Join(bad, ", "))
	}
	return rec, rec.Validate()
}
