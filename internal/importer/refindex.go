package importer

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// RefKind names a reference space in the index.
type RefKind string

const (
	RefCarrier  RefKind = "carrier"
	RefCustomer RefKind = "customer"
	RefTruck    RefKind = "truck"
	RefTrailer  RefKind = "trailer"
	RefDriver   RefKind = "driver"
)

// ReferenceIndex resolves free-text references ("ACME Trucking Inc",
// "truck 101") to record IDs. Aliases are indexed verbatim, lowercased
// and in a normalized form with punctuation and corporate suffixes
// stripped; lookups fall back to containment and word-overlap matching.
type ReferenceIndex struct {
	exact map[RefKind]map[string]string
	norm  map[RefKind]map[string]string
	ids   map[RefKind]map[string]bool
}

func NewReferenceIndex() *ReferenceIndex {
	return &ReferenceIndex{
		exact: make(map[RefKind]map[string]string),
		norm:  make(map[RefKind]map[string]string),
		ids:   make(map[RefKind]map[string]bool),
	}
}

// Add indexes one alias for a record.
func (ix *ReferenceIndex) Add(kind RefKind, alias, id string) {
	alias = strings.TrimSpace(alias)
	if alias == "" || id == "" {
		return
	}
	if ix.exact[kind] == nil {
		ix.exact[kind] = make(map[string]string)
		ix.norm[kind] = make(map[string]string)
		ix.ids[kind] = make(map[string]bool)
	}
	ix.exact[kind][alias] = id
	ix.exact[kind][strings.ToLower(alias)] = id
	if n := normalizeAlias(alias); n != "" {
		ix.norm[kind][n] = id
	}
	ix.ids[kind][id] = true
}

var (
	aliasPunct    = regexp.MustCompile(`[^a-z0-9 ]+`)
	corpSuffixes  = map[string]bool{"llc": true, "inc": true, "incorporated": true, "corp": true, "corporation": true, "co": true, "ltd": true}
	romanNumerals = map[string]string{"ii": "2", "iii": "3", "iv": "4"}
)

// normalizeAlias canonicalizes a name for matching: lowercase, strip
// punctuation, drop corporate suffixes, romans to digits.
func normalizeAlias(s string) string {
	s = strings.ToLower(s)
	s = aliasPunct.ReplaceAllString(s, " ")
	tokens := strings.Fields(s)
	out := tokens[:0]
	for _, t := range tokens {
		if corpSuffixes[t] {
			continue
		}
		if d, ok := romanNumerals[t]; ok {
			t = d
		}
		out = append(out, t)
	}
	return strings.Join(out, " ")
}

// Resolve matches raw text against one reference space. Stages, first
// hit wins: known UUID, exact alias, lowercase alias, normalized alias,
// containment (shorter inside longer at a length ratio above
// containment), then word overlap at or above overlap with near-miss
// tokens allowed one edit.
func (ix *ReferenceIndex) Resolve(kind RefKind, raw string, containment, overlap float64) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if _, err := uuid.Parse(raw); err == nil && ix.ids[kind][raw] {
		return raw, true
	}
	if id, ok := ix.exact[kind][raw]; ok {
		return id, true
	}
	if id, ok := ix.exact[kind][strings.ToLower(raw)]; ok {
		return id, true
	}
	q := normalizeAlias(raw)
	if q == "" {
		return "", false
	}
	if id, ok := ix.norm[kind][q]; ok {
		return id, true
	}

	var bestID string
	var bestScore float64
	for alias, id := range ix.norm[kind] {
		if s := containmentScore(q, alias); s > containment && s > bestScore {
			bestID, bestScore = id, s
		}
	}
	if bestID != "" {
		return bestID, true
	}
	for alias, id := range ix.norm[kind] {
		if s := wordOverlapScore(q, alias); s >= overlap && s > bestScore {
			bestID, bestScore = id, s
		}
	}
	if bestID != "" {
		return bestID, true
	}
	return "", false
}

// containmentScore returns the length ratio when one string contains the
// other, 0 otherwise. Both must be long enough to make containment mean
// something.
func containmentScore(a, b string) float64 {
	if len(a) < 6 || len(b) < 6 {
		return 0
	}
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if !strings.Contains(longer, shorter) {
		return 0
	}
	return float64(len(shorter)) / float64(len(longer))
}

// wordOverlapScore is the fraction of significant query tokens that
// appear in the alias, counting one-edit near misses as hits.
func wordOverlapScore(query, alias string) float64 {
	qTokens := significantTokens(query)
	if len(qTokens) == 0 {
		return 0
	}
	aTokens := significantTokens(alias)
	matched := 0
	for _, qt := range qTokens {
		for _, at := range aTokens {
			if qt == at || strings.Contains(at, qt) || strings.Contains(qt, at) ||
				fuzzy.LevenshteinDistance(qt, at) <= 1 {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(qTokens))
}

func significantTokens(s string) []string {
	var out []string
	for _, t := range strings.Fields(s) {
		if len(t) > 2 {
			out = append(out, t)
		}
	}
	if out == nil {
		return strings.Fields(s)
	}
	return out
}

// ResolveRef runs the caller's explicit value resolutions, splits
// multi-valued cells with a warning, then falls through to the index.
// A miss is recorded as an unresolved value, not an error.
func (rc *RunContext) ResolveRef(kind RefKind, row int, field, raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if byField, ok := rc.Req.ValueResolutions[field]; ok {
		if id, ok := byField[raw]; ok && id != "" {
			return id, true
		}
	}
	first, multi := SplitFirst(raw)
	if multi {
		rc.Warn(row, field, "multiple values in cell, using first: "+first)
	}
	if first == "" {
		return "", false
	}
	if id, ok := rc.Refs.Resolve(kind, first, rc.ContainmentRatio, rc.WordOverlap); ok {
		return id, true
	}
	rc.AddUnresolved(row, field, first)
	return "", false
}

// ResolveCarrier resolves a carrier cell, falling back to the run's
// default carrier when the cell is empty or unmatched.
func (rc *RunContext) ResolveCarrier(row int, field, raw string) string {
	if raw = strings.TrimSpace(raw); raw == "" {
		return rc.Req.DefaultCarrierID
	}
	if id, ok := rc.ResolveRef(RefCarrier, row, field, raw); ok {
		return id
	}
	return rc.Req.DefaultCarrierID
}
