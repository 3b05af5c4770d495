package importer

import "strings"

// Row is one data row of an uploaded file. Values is keyed by both the
// literal source header and its normalized form, so lookups survive
// whatever casing and spacing the spreadsheet author used.
type Row struct {
	Index  int // 1-based position in the file, for error reporting
	Values map[string]string
}

// NormalizeHeader lowercases a header and collapses whitespace runs into
// single underscores, so "Truck  Number" and "truck_number" collide.
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.Join(strings.Fields(h), "_")
}

// NewRow builds a Row from raw header/cell pairs, indexing every cell
// under the literal header and the normalized one.
func NewRow(index int, headers []string, cells []string) Row {
	values := make(map[string]string, len(headers)*2)
	for i, h := range headers {
		if h == "" {
			continue
		}
		var v string
		if i < len(cells) {
			v = strings.TrimSpace(cells[i])
		}
		if _, taken := values[h]; !taken || v != "" {
			values[h] = v
		}
		n := NormalizeHeader(h)
		if _, taken := values[n]; !taken || v != "" {
			values[n] = v
		}
	}
	return Row{Index: index, Values: values}
}

// ApplyFixed fills fields from caller-supplied fixed values. Fixed values
// are defaults, not overrides: a non-empty cell wins.
func (r Row) ApplyFixed(fixed map[string]string) {
	for field, v := range fixed {
		key := NormalizeHeader(field)
		if r.Values[key] == "" && r.Values[field] == "" {
			r.Values[key] = v
		}
	}
}

// Get resolves a target field against the row. Precedence:
// caller column-mapping override, then each candidate header in order
// (normalized, then a case-insensitive scan, then literal).
func (r Row) Get(mapping map[string]string, field string, candidates ...string) string {
	if src, ok := mapping[field]; ok && src != "" {
		if v := r.Values[NormalizeHeader(src)]; v != "" {
			return v
		}
		if v := r.Values[src]; v != "" {
			return v
		}
	}
	for _, c := range candidates {
		n := NormalizeHeader(c)
		if v := r.Values[n]; v != "" {
			return v
		}
		for k, v := range r.Values {
			if v != "" && NormalizeHeader(k) == n {
				return v
			}
		}
		if v := r.Values[c]; v != "" {
			return v
		}
	}
	return ""
}

// IsEmpty reports whether the row has no non-blank cell.
func (r Row) IsEmpty() bool {
	for _, v := range r.Values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
