// Package sqlitesink persists a finished wedge collection into a SQLite
// database file, one row per output polygon with its wid, area and WKT
// geometry. The file is self-contained and needs no running server, which
// suits the batch tool's single-run lifecycle.
package sqlitesink

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paulmach/orb/encoding/wkt"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	wedge "github.com/sf-apex/wedge-maker-4-gis"
	"github.com/sf-apex/wedge-maker-4-gis/geojson"
)

const schema = `
CREATE TABLE IF NOT EXISTS wedges (
	wid  INTEGER NOT NULL,
	area REAL    NOT NULL,
	geom TEXT    NOT NULL
);`

// Write stores every feature of the collection into the SQLite file at
// path, creating the table if needed. Existing rows are kept; repeat runs
// append. The whole collection is written in one transaction so a failed
// run leaves no partial rows behind.
func Write(ctx context.Context, path string, c wedge.Collection) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("sqlitesink: open %s: %w", path, err)
	}
	defer db.Close()

	// WAL keeps the file readable while the batch insert is in flight.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("sqlitesink: set journal mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlitesink: create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlitesink: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO wedges (wid, area, geom) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("sqlitesink: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range c.Features {
		g := geojson.Geometry(t.Polygon)
		if _, err := stmt.ExecContext(ctx, t.WID, t.Polygon.Area(), wkt.MarshalString(g)); err != nil {
			return fmt.Errorf("sqlitesink: insert wid %d: %w", t.WID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlitesink: commit: %w", err)
	}
	return nil
}
