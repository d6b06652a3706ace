package wedge

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrEmptyBatch reports a batch that produced nothing to merge: either the
// input sequence was empty or every record was skipped or failed.
var ErrEmptyBatch = errors.New("wedge: no wedges to merge")

// ErrorPolicy selects how the Processor reacts to a record whose synthesis
// fails.
type ErrorPolicy int

const (
	// FailFast aborts the whole batch on the first failing record. No
	// partial output is returned. This is the default.
	FailFast ErrorPolicy = iota

	// CollectErrors drops failing records, keeps processing, and returns
	// the joined per-record errors alongside the successful collection.
	CollectErrors
)

// Tagged pairs an output polygon with the id of the record it was built
// from. Scope is the record-scoped transient identifier the polygon was
// accumulated under; it has no meaning beyond the run.
type Tagged struct {
	WID     int
	Scope   string
	Polygon Polygon
}

// Collection is the ordered output of a batch run: one tagged polygon per
// non-skipped record, plus the final merged multi-part shape. The Processor
// owns the collection exclusively for the duration of the run; builders only
// ever see transient, record-scoped polygons.
type Collection struct {
	Features []Tagged

	// Combined is the merge of every feature into one multi-part polygon,
	// with housekeeping attributes stripped.
	Combined Polygon
}

// Processor drives the record-at-a-time synthesis pipeline: normalize and
// split unsafe spans, build sectors, cut inner holes, tag and accumulate.
type Processor struct {
	eng     Engine
	builder *SectorBuilder
	policy  ErrorPolicy
}

// ProcessorOption configures a Processor during creation.
type ProcessorOption func(*Processor)

// WithErrorPolicy selects the failure handling for individual records.
// The default is FailFast.
func WithErrorPolicy(p ErrorPolicy) ProcessorOption {
	return func(proc *Processor) {
		proc.policy = p
	}
}

// WithBuilder replaces the default sector builder, e.g. to widen or disable
// its unsafe-span band. The builder must use the same engine.
func WithBuilder(b *SectorBuilder) ProcessorOption {
	return func(proc *Processor) {
		proc.builder = b
	}
}

// NewProcessor creates a batch processor on the given engine.
func NewProcessor(eng Engine, opts ...ProcessorOption) *Processor {
	proc := &Processor{eng: eng}
	for _, opt := range opts {
		opt(proc)
	}
	if proc.builder == nil {
		proc.builder = NewSectorBuilder(eng)
	}
	return proc
}

// workspace scopes one record's transient geometries. Each record gets a
// fresh identifier, so no two records ever share transient state (the
// original tooling used fixed names in a shared scratch workspace, which
// would collide under concurrent processing).
type workspace struct {
	id  string
	wid int
}

func newWorkspace(wid int) workspace {
	return workspace{id: uuid.NewString(), wid: wid}
}

// ProcessBatch synthesizes one polygon per record and merges the results
// into a single collection.
//
// Records with identical bearings are skipped with a warning: a zero-width
// request is meaningless and is never turned into a circle by this path (a
// full circle is requested with bearings a whole turn apart). Spans whose
// normalized width falls in (135, 225) degrees are bisected into two safe
// sub-wedges, merged and dissolved, because direct construction is
// numerically unsafe there.
//
// Under the default FailFast policy any engine failure aborts the batch and
// the returned error identifies the offending record. An empty input
// sequence, or a run in which nothing was produced, returns ErrEmptyBatch.
func (proc *Processor) ProcessBatch(records []Record, ref SpatialRef) (Collection, error) {
	log := Logger()

	if len(records) == 0 {
		return Collection{}, fmt.Errorf("%w: empty input sequence", ErrEmptyBatch)
	}

	var features []Tagged
	var recordErrs []error

	for i, rec := range records {
		// Skip before normalization: bearings a whole turn apart are a
		// deliberate full-circle request and must survive to the builder.
		if rec.AngleA == rec.AngleB {
			log.Warn("skipping zero-degree wedge", "record", i+1, "id", rec.ID)
			continue
		}

		log.Info("creating wedge", "record", i+1, "total", len(records), "id", rec.ID)

		ws := newWorkspace(rec.ID)
		poly, err := proc.processRecord(ws, rec, ref)
		if err != nil {
			err = fmt.Errorf("wedge: record %d: %w", rec.ID, err)
			if proc.policy == FailFast {
				return Collection{}, err
			}
			recordErrs = append(recordErrs, err)
			continue
		}

		poly.SetAttr(WIDField, float64(rec.ID))
		features = append(features, Tagged{WID: rec.ID, Scope: ws.id, Polygon: poly})
		log.Debug("wedge accumulated", "id", rec.ID, "workspace", ws.id, "rings", len(poly.Rings))
	}

	if len(features) == 0 {
		return Collection{}, errors.Join(ErrEmptyBatch, errors.Join(recordErrs...))
	}

	log.Info("merging wedges", "count", len(features))

	parts := make([]Polygon, len(features))
	for i, f := range features {
		parts[i] = f.Polygon
	}
	combined, err := proc.eng.MergeParts(parts)
	if err != nil {
		return Collection{}, fmt.Errorf("wedge: final merge: %w", err)
	}

	// Housekeeping fields introduced by the disk and merge primitives do
	// not belong in the output schema.
	for _, name := range []string{BuffDistField, OrigFIDField} {
		combined.DropAttr(name)
		for i := range features {
			features[i].Polygon.DropAttr(name)
		}
	}

	log.Info("batch complete", "features", len(features), "failed", len(recordErrs))

	out := Collection{Features: features, Combined: combined}
	if len(recordErrs) > 0 {
		return out, errors.Join(recordErrs...)
	}
	return out, nil
}

// processRecord synthesizes a single record's polygon. All geometries it
// creates are scoped to the given workspace and unreachable once it returns.
func (proc *Processor) processRecord(ws workspace, rec Record, ref SpatialRef) (Polygon, error) {
	if err := rec.Validate(); err != nil {
		return Polygon{}, err
	}

	// Reduce both bearings to [0, 360).
	angleA := wrapDegrees(rec.AngleA)
	angleB := wrapDegrees(rec.AngleB)
	theta := wrapDegrees(angleB - angleA)

	var poly Polygon
	var err error

	if 135 < theta && theta < 225 {
		// Too close to a half-turn for one triangle: the apex distance
		// explodes as theta approaches 180. Build two adjacent halves
		// (each safely between 67.5 and 112.5 degrees) and dissolve.
		mid := wrapDegrees(angleA + theta/2)
		end := wrapDegrees(angleA + theta)
		Logger().Debug("bisecting unsafe span", "id", rec.ID, "theta", theta, "workspace", ws.id)

		wedgeA, err := proc.builder.BuildSector(rec.X, rec.Y, angleA, mid, rec.OuterRadius, ref)
		if err != nil {
			return Polygon{}, err
		}
		wedgeB, err := proc.builder.BuildSector(rec.X, rec.Y, mid, end, rec.OuterRadius, ref)
		if err != nil {
			return Polygon{}, err
		}

		merged, err := proc.eng.MergeParts([]Polygon{wedgeA, wedgeB})
		if err != nil {
			return Polygon{}, err
		}
		poly, err = proc.eng.Dissolve(merged)
		if err != nil {
			return Polygon{}, err
		}
	} else {
		poly, err = proc.builder.BuildSector(rec.X, rec.Y, angleA, angleB, rec.OuterRadius, ref)
		if err != nil {
			return Polygon{}, err
		}
	}

	return CutInnerHole(proc.eng, rec.X, rec.Y, rec.InnerRadius, poly, ref)
}
