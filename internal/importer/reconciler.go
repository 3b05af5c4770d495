package importer

import (
	"fmt"
	"strings"
)

// Reconciler turns raw rows of one entity type into classified outcomes.
// Validate builds and checks the record, ResolveReferences fills
// cross-entity IDs, Classify runs it against the duplicate key space.
type Reconciler interface {
	EntityType() string
	Validate(rc *RunContext, row Row) (Record, *RowError)
	ResolveReferences(rc *RunContext, row Row, rec Record)
	Classify(rc *RunContext, row Row, rec Record) Outcome
}

// Engine dispatches rows to the reconciler registered for an entity type
// and aggregates the run. Rows are processed strictly in file order so
// intra-file duplicate detection is deterministic.
type Engine struct {
	reconcilers map[string]Reconciler
}

func NewEngine(rs ...Reconciler) *Engine {
	e := &Engine{reconcilers: make(map[string]Reconciler, len(rs))}
	for _, r := range rs {
		e.reconcilers[r.EntityType()] = r
	}
	return e
}

func (e *Engine) Reconciler(entityType string) (Reconciler, bool) {
	r, ok := e.reconcilers[entityType]
	return r, ok
}

// Run reconciles every row and returns one outcome per non-empty row.
func (e *Engine) Run(rc *RunContext, rows []Row) ([]Outcome, error) {
	r, ok := e.reconcilers[rc.Req.EntityType]
	if !ok {
		return nil, fmt.Errorf("no reconciler for entity type %q", rc.Req.EntityType)
	}
	outcomes := make([]Outcome, 0, len(rows))
	for _, row := range rows {
		if row.IsEmpty() {
			continue
		}
		row.ApplyFixed(rc.Req.FixedValues)
		rec, rowErr := r.Validate(rc, row)
		if rowErr != nil {
			outcomes = append(outcomes, Outcome{Row: row.Index, Status: StatusRejected, Err: rowErr})
			continue
		}
		r.ResolveReferences(rc, row, rec)
		outcomes = append(outcomes, r.Classify(rc, row, rec))
	}
	return outcomes, nil
}

// classifyByKeys is the shared classification path: probe the record's
// keys against the registry, decide per import mode, and claim the keys
// when the row is accepted. In-file collisions skip regardless of mode.
func classifyByKeys(rc *RunContext, row Row, rec Record, set string) Outcome {
	var hit Existing
	var hitKey string
	found := false
	for _, k := range rec.Keys() {
		if e, ok := rc.Dupes.Find(set, k); ok {
			hit, hitKey, found = e, k, true
			break
		}
	}

	if !found {
		if rc.Req.Mode == ModeUpdate {
			rc.Warn(row.Index, "", "no existing record matches, skipped in update mode: "+rec.Label())
			return Outcome{Row: row.Index, Status: StatusSkippedDuplicate, Record: rec}
		}
		rc.Dupes.Claim(set, rec.Keys()...)
		return Outcome{Row: row.Index, Status: StatusCreated, Record: rec}
	}

	if hit.ID == "" {
		return Outcome{Row: row.Index, Status: StatusSkippedDuplicate, Record: rec, Err: &RowError{
			Row:     row.Index,
			Field:   keyKind(hitKey),
			Value:   rec.Label(),
			Message: "duplicate of an earlier row in this file",
		}}
	}

	if rc.Req.Mode == ModeCreate {
		return Outcome{Row: row.Index, Status: StatusSkippedDuplicate, Record: rec, Err: &RowError{
			Row:     row.Index,
			Field:   keyKind(hitKey),
			Value:   rec.Label(),
			Message: "already exists",
		}}
	}

	rc.Dupes.Claim(set, rec.Keys()...)
	if hit.Deleted {
		return Outcome{Row: row.Index, Status: StatusRestored, Record: rec, ExistingID: hit.ID}
	}
	return Outcome{Row: row.Index, Status: StatusUpdated, Record: rec, ExistingID: hit.ID}
}

func keyKind(key string) string {
	if i := strings.IndexByte(key, '|'); i > 0 {
		return key[:i]
	}
	return key
}

// Summarize folds outcomes and run-context diagnostics into a Result.
// sampleCap bounds how many accepted records are echoed back.
func Summarize(rc *RunContext, outcomes []Outcome, preview bool, sampleCap int) Result {
	res := Result{
		EntityType: rc.Req.EntityType,
		Preview:    preview,
		Total:      len(outcomes),
		Records:    []Record{},
		Errors:     []RowError{},
		Warnings:   rc.Warnings,
		Unresolved: rc.Unresolved,
		Outcomes:   outcomes,
	}
	if res.Warnings == nil {
		res.Warnings = []Warning{}
	}
	if res.Unresolved == nil {
		res.Unresolved = []UnresolvedValue{}
	}
	for _, o := range outcomes {
		switch o.Status {
		case StatusCreated:
			res.Created++
		case StatusUpdated:
			res.Updated++
		case StatusRestored:
			res.Restored++
		case StatusSkippedDuplicate:
			res.Skipped++
		case StatusRejected:
			res.Rejected++
		}
		if o.Err != nil {
			res.Errors = append(res.Errors, *o.Err)
		}
		if o.Record != nil && o.Status != StatusRejected && len(res.Records) < sampleCap {
			res.Records = append(res.Records, o.Record)
		}
	}
	return res
}
