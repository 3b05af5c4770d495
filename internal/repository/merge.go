package repository

import (
	"strings"
	"time"
)

// mergeSet builds the SET clause for an import merge update. Only
// values that carry data are included, so an empty spreadsheet cell
// never blanks a stored field.
type mergeSet struct {
	cols []string
	args []interface{}
}

func (s *mergeSet) set(column string, value interface{}) {
	if !hasValue(value) {
		return
	}
	s.cols = append(s.cols, column+" = ?")
	s.args = append(s.args, value)
}

// force appends a raw SET expression unconditionally.
func (s *mergeSet) force(expr string) {
	s.cols = append(s.cols, expr)
}

func (s *mergeSet) clause() string { return strings.Join(s.cols, ", ") }

func hasValue(v interface{}) bool {
	switch x := v.(type) {
	case string:
		return x != ""
	case int:
		return x != 0
	case float64:
		return x != 0
	case time.Time:
		return !x.IsZero()
	case *time.Time:
		return x != nil && !x.IsZero()
	default:
		return v != nil
	}
}
