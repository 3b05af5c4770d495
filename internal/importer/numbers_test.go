package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingNumber(t *testing.T) {
	n := PendingNumber("CUST")
	assert.True(t, strings.HasPrefix(n, "CUST-PENDING-"))
	assert.Len(t, n, len("CUST-PENDING-")+8)
	assert.True(t, IsPendingNumber(n))
	assert.NotEqual(t, n, PendingNumber("CUST"))
}

func TestIsPendingNumber(t *testing.T) {
	assert.False(t, IsPendingNumber("CUST-001"))
	assert.False(t, IsPendingNumber(""))
	assert.True(t, IsPendingNumber("VIN-PENDING-1A2B3C4D"))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "5551234567", DigitsOnly("(555) 123-4567"))
	assert.Equal(t, "", DigitsOnly("no digits"))
}
