package importer

import "time"

// Mode controls how rows that collide with existing records are handled.
type Mode string

const (
	ModeCreate Mode = "create" // duplicates are skipped
	ModeUpdate Mode = "update" // only existing records are touched
	ModeUpsert Mode = "upsert" // create new, update existing
)

// Entity type tags understood by the reconciler registry.
const (
	EntityCustomers = "customers"
	EntityTrucks    = "trucks"
	EntityTrailers  = "trailers"
	EntityDrivers   = "drivers"
	EntityVendors   = "vendors"
	EntityLocations = "locations"
	EntityLoads     = "loads"
	EntityPersonnel = "personnel"
)

// Request carries everything the caller supplies for one import run.
// It is immutable during processing.
type Request struct {
	EntityType       string                       `json:"entity_type"`
	Mode             Mode                         `json:"import_mode"`
	PreviewOnly      bool                         `json:"preview_only"`
	ColumnMapping    map[string]string            `json:"column_mapping"`    // target field -> source header
	ValueResolutions map[string]map[string]string `json:"value_resolutions"` // field -> raw value -> resolved id
	FixedValues      map[string]string            `json:"fixed_values"`      // target field -> default value
	DefaultCarrierID string                       `json:"default_carrier_id"`
	DefaultMC        string                       `json:"mc_number"` // overrides the caller's carrier when it resolves
	CompanyID        string                       `json:"company_id"`
	UserID           string                       `json:"user_id"`
	BatchID          string                       `json:"batch_id"`
}

// Status of one row after reconciliation.
type Status string

const (
	StatusCreated          Status = "CREATED"
	StatusUpdated          Status = "UPDATED"
	StatusRestored         Status = "RESTORED"
	StatusSkippedDuplicate Status = "SKIPPED_DUPLICATE"
	StatusRejected         Status = "REJECTED"
)

type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type Warning struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UnresolvedValue is a free-text reference the resolver could not match.
// These are surfaced for a manual-resolution step, not treated as row errors.
type UnresolvedValue struct {
	Row   int    `json:"row"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// Record is an entity-specific resolved record ready for persistence.
type Record interface {
	// Keys returns the unique keys this record occupies in its entity's
	// duplicate key space, each prefixed with its key kind ("number|...").
	Keys() []string
	// Label identifies the record in error messages.
	Label() string
}

// Outcome is the audit entry for one raw row. Every row produces exactly one.
type Outcome struct {
	Row        int       `json:"row"`
	Status     Status    `json:"status"`
	Record     Record    `json:"record,omitempty"`
	ExistingID string    `json:"existing_id,omitempty"`
	Err        *RowError `json:"error,omitempty"`
}

// Result aggregates the outcomes of one import run.
type Result struct {
	EntityType string            `json:"entity_type"`
	Preview    bool              `json:"preview"`
	Total      int               `json:"total"`
	Created    int               `json:"created"`
	Updated    int               `json:"updated"`
	Restored   int               `json:"restored"`
	Skipped    int               `json:"skipped"`
	Rejected   int               `json:"rejected"`
	Records    []Record          `json:"records"`
	Errors     []RowError        `json:"errors"`
	Warnings   []Warning         `json:"warnings"`
	Unresolved []UnresolvedValue `json:"unresolved_values"`
	Outcomes   []Outcome         `json:"-"`
}

// RunContext is the per-run mutable state: duplicate registry, reference
// index, warnings and unresolved values. One is built per import run and
// discarded afterwards; nothing in this package keeps global state.
type RunContext struct {
	Req        Request
	Refs       *ReferenceIndex
	Dupes      *DuplicateRegistry
	Now        time.Time
	Warnings   []Warning
	Unresolved []UnresolvedValue

	// Fuzzy matching thresholds, tunable via config.
	ContainmentRatio float64
	WordOverlap      float64
}

func NewRunContext(req Request) *RunContext {
	return &RunContext{
		Req:              req,
		Refs:             NewReferenceIndex(),
		Dupes:            NewDuplicateRegistry(),
		Now:              time.Now(),
		ContainmentRatio: 0.7,
		WordOverlap:      0.8,
	}
}

func (rc *RunContext) Warn(row int, field, message string) {
	rc.Warnings = append(rc.Warnings, Warning{Row: row, Field: field, Message: message})
}

func (rc *RunContext) AddUnresolved(row int, field, value string) {
	rc.Unresolved = append(rc.Unresolved, UnresolvedValue{Row: row, Field: field, Value: value})
}

// FutureDate returns "now plus years", the default for required-but-missing
// expiry dates.
func (rc *RunContext) FutureDate(years int) time.Time {
	return rc.Now.AddDate(years, 0, 0)
}
