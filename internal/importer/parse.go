package importer

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	multiValueSep = regexp.MustCompile(`[,;|/]`)
	zipPattern    = regexp.MustCompile(`\b(\d{5})(?:-\d{4})?\b`)
	statePattern  = regexp.MustCompile(`\b([A-Za-z]{2})\b\.?\s*$`)
	nonNumeric    = regexp.MustCompile(`[^0-9.\-]`)
)

// SplitFirst takes a possibly multi-valued cell ("T-101, T-102") and
// returns the first value plus whether more than one was present.
func SplitFirst(value string) (string, bool) {
	parts := multiValueSep.Split(value, -1)
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return "", false
	}
	return kept[0], len(kept) > 1
}

// ParseFloat reads a numeric cell, tolerating currency symbols, commas
// and surrounding text. Returns 0 when nothing numeric remains.
func ParseFloat(value string) float64 {
	cleaned := nonNumeric.ReplaceAllString(value, "")
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseInt reads an integer cell with the same tolerance as ParseFloat.
func ParseInt(value string) int {
	return int(ParseFloat(value))
}

// SplitName splits a full name into first and last. A single token
// becomes the first name; everything after the first token is the last.
func SplitName(full string) (first, last string) {
	fields := strings.Fields(strings.TrimSpace(full))
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}

// Address holds the pieces of a single-cell location string.
type Address struct {
	Street string
	City   string
	State  string
	Zip    string
}

// ParseAddress splits a combined location cell such as
// "123 Main St, Dallas, TX 75201" into street, city, state and zip.
// Missing pieces stay empty; the raw text is never discarded by callers.
func ParseAddress(value string) Address {
	var a Address
	value = strings.TrimSpace(value)
	if value == "" {
		return a
	}
	if m := zipPattern.FindStringSubmatch(value); m != nil {
		a.Zip = m[1]
		value = strings.TrimSpace(strings.Replace(value, m[0], "", 1))
	}
	value = strings.TrimRight(value, ", ")
	if m := statePattern.FindStringSubmatch(value); m != nil {
		a.State = strings.ToUpper(m[1])
		value = strings.TrimSpace(value[:len(value)-len(m[0])])
		value = strings.TrimRight(value, ", ")
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch len(parts) {
	case 0:
	case 1:
		a.City = parts[0]
	default:
		a.Street = strings.Join(parts[:len(parts)-1], ", ")
		a.City = parts[len(parts)-1]
	}
	return a
}

// JoinTags normalizes a comma/semicolon separated tag cell into a
// canonical comma-joined list.
func JoinTags(value string) string {
	parts := multiValueSep.Split(value, -1)
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ",")
}
