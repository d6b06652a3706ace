// Command wedgemaker builds wedge and arcband polygons from a file of point
// records and writes the result as GeoJSON, optionally mirroring it into a
// SQLite file and a PNG preview.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	wedge "github.com/sf-apex/wedge-maker-4-gis"
	"github.com/sf-apex/wedge-maker-4-gis/clip"
	"github.com/sf-apex/wedge-maker-4-gis/geojson"
	"github.com/sf-apex/wedge-maker-4-gis/records"
	"github.com/sf-apex/wedge-maker-4-gis/render"
	"github.com/sf-apex/wedge-maker-4-gis/sqlitesink"
)

func main() {
	var (
		input    = flag.String("input", "", "input records: .csv or .geojson/.json point features")
		output   = flag.String("output", "", "output GeoJSON path (default: input path with _buff suffix)")
		unit     = flag.String("unit", "Meter", "linear unit of the projected CRS: Meter or Foot_US")
		sqlite   = flag.String("sqlite", "", "also write the collection into this SQLite file")
		pngOut   = flag.String("png", "", "also write a PNG preview to this path")
		pngWidth = flag.Int("png-width", 800, "preview image width in pixels")
		segments = flag.Int("segments", clip.DefaultSegments, "vertices per full circle")
		onError  = flag.String("on-error", "abort", "per-record failure policy: abort or continue")
		verbose  = flag.Bool("v", false, "log per-record progress to stderr")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	wedge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*input, *output, *unit, *sqlite, *pngOut, *pngWidth, *segments, *onError); err != nil {
		log.Fatalf("wedgemaker: %v", err)
	}
}

func run(input, output, unit, sqlite, pngOut string, pngWidth, segments int, onError string) error {
	ref, err := wedge.NewSpatialRef(unit)
	if err != nil {
		return err
	}

	policy := wedge.FailFast
	switch onError {
	case "abort":
	case "continue":
		policy = wedge.CollectErrors
	default:
		return fmt.Errorf("unknown -on-error value %q (want abort or continue)", onError)
	}

	recs, err := readRecords(input)
	if err != nil {
		return err
	}

	if output == "" {
		output = defaultOutput(input)
	}

	proc := wedge.NewProcessor(
		clip.NewEngine(clip.WithSegments(segments)),
		wedge.WithErrorPolicy(policy),
	)
	coll, err := proc.ProcessBatch(recs, ref)
	if err != nil && policy == wedge.FailFast {
		return err
	}
	if err != nil {
		// continue mode: report the failed records but keep the output.
		fmt.Fprintf(os.Stderr, "wedgemaker: some records failed:\n%v\n", err)
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := geojson.WriteCollection(out, coll); err != nil {
		return err
	}

	if sqlite != "" {
		if err := sqlitesink.Write(context.Background(), sqlite, coll); err != nil {
			return err
		}
	}
	if pngOut != "" {
		f, err := os.Create(pngOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := render.PNG(f, coll, pngWidth); err != nil {
			return err
		}
	}

	fmt.Printf("complete: %s (%d features)\n", output, len(coll.Features))
	return nil
}

// readRecords dispatches on the input extension.
func readRecords(path string) ([]wedge.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return records.ReadCSV(f)
	case ".geojson", ".json":
		return geojson.ReadRecords(f)
	default:
		return nil, fmt.Errorf("unsupported input extension %q (want .csv, .geojson or .json)", filepath.Ext(path))
	}
}

// defaultOutput derives the output path from the input path, keeping the
// original tool's _buff naming.
func defaultOutput(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_buff.geojson"
}
