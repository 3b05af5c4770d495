package importer

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var nonDigits = regexp.MustCompile(`\D`)

// PendingNumber builds a placeholder identifier for a record whose file
// row had no usable number. The suffix keeps placeholders unique inside
// a run; a later renumbering step can replace them.
func PendingNumber(prefix string) string {
	return prefix + "-PENDING-" + strings.ToUpper(uuid.NewString()[:8])
}

// IsPendingNumber reports whether a number was generated by PendingNumber.
func IsPendingNumber(n string) bool {
	return strings.Contains(n, "-PENDING-")
}

// DigitsOnly strips everything but digits, for phone-derived identifiers.
func DigitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}
