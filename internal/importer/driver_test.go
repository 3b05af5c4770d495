package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-web/internal/models"
)

func driverRow(index int, headers, cells []string) Row {
	return NewRow(index, headers, cells)
}

func validateDriver(t *testing.T, rc *RunContext, row Row) *DriverRecord {
	t.Helper()
	rec, rowErr := DriverReconciler{}.Validate(rc, row)
	require.Nil(t, rowErr)
	return rec.(*DriverRecord)
}

func TestDriverValidateFullRow(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityDrivers, CompanyID: "co-1"})
	row := driverRow(2,
		[]string{"Driver Number", "First Name", "Last Name", "Email", "Phone", "CDL", "CDL State", "Pay Type", "Pay Rate", "Status"},
		[]string{"D-100", "John", "Smith", "JSmith@Example.com", "555-123-4567", "TX1234567", "Texas", "per mile", "0.58", "Available"},
	)

	d := validateDriver(t, rc, row)
	assert.Equal(t, "D-100", d.DriverNumber)
	assert.Equal(t, "jsmith@example.com", d.Email)
	assert.Equal(t, "TX", d.LicenseState)
	assert.Equal(t, models.PayPerMile, d.PayType)
	assert.Equal(t, 0.58, d.PayRate)
	assert.Equal(t, models.DriverAvailable, d.Status)
	assert.Empty(t, rc.Warnings)
}

func TestDriverSplitsFullName(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityDrivers})
	row := driverRow(2, []string{"Driver Name", "Driver Number"}, []string{"Mary Anne Johnson", "D-7"})

	d := validateDriver(t, rc, row)
	assert.Equal(t, "Mary", d.FirstName)
	assert.Equal(t, "Anne Johnson", d.LastName)
}

func TestDriverRejectsWhenNameless(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityDrivers})
	row := driverRow(2, []string{"Driver Number", "Phone"}, []string{"D-1", "555-000-1111"})

	_, rowErr := DriverReconciler{}.Validate(rc, row)
	require.NotNil(t, rowErr)
	assert.Equal(t, "name", rowErr.Field)
}

func TestDriverNumberSynthesisChain(t *testing.T) {
	t.Run("phone digits", func(t *testing.T) {
		rc := NewRunContext(Request{EntityType: EntityDrivers})
		row := driverRow(2, []string{"Name", "Phone"}, []string{"John Smith", "(555) 123-4567"})
		d := validateDriver(t, rc, row)
		assert.Equal(t, "5551234567", d.DriverNumber)
		require.Len(t, rc.Warnings, 1)
	})

	t.Run("truck unit", func(t *testing.T) {
		rc := NewRunContext(Request{EntityType: EntityDrivers})
		row := driverRow(2, []string{"Name", "Truck"}, []string{"John Smith", "101"})
		d := validateDriver(t, rc, row)
		assert.Equal(t, "TRK-101", d.DriverNumber)
	})

	t.Run("initials", func(t *testing.T) {
		rc := NewRunContext(Request{EntityType: EntityDrivers})
		row := driverRow(2, []string{"Name"}, []string{"John Smith"})
		d := validateDriver(t, rc, row)
		assert.Equal(t, "JOHSMI", d.DriverNumber)
	})

	t.Run("short phone loses to truck", func(t *testing.T) {
		rc := NewRunContext(Request{EntityType: EntityDrivers})
		row := driverRow(2, []string{"Name", "Phone", "Truck"}, []string{"John Smith", "x201", "T-9"})
		d := validateDriver(t, rc, row)
		assert.Equal(t, "TRK-T-9", d.DriverNumber)
	})
}

func TestDriverPayRateHeuristics(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"0.58", 0.58},
		{"58", 0.58},   // cents per mile
		{"100", 1.0},   // still cents
		{"1500", 1500}, // weekly flat, left alone
		{"", models.DefaultDriverPayRate},
		{"n/a", models.DefaultDriverPayRate},
	}
	for _, tc := range cases {
		rc := NewRunContext(Request{EntityType: EntityDrivers})
		row := driverRow(2, []string{"Name", "Driver Number", "Pay Rate"}, []string{"John Smith", "D-1", tc.raw})
		d := validateDriver(t, rc, row)
		assert.Equal(t, tc.want, d.PayRate, "raw %q", tc.raw)
	}
}

func TestDriverKeysSkipPendingNumber(t *testing.T) {
	d := &DriverRecord{Driver: models.Driver{DriverNumber: "DRV-PENDING-AB12CD34", Email: "a@b.com"}}
	assert.Equal(t, []string{"email|a@b.com"}, d.Keys())

	d = &DriverRecord{Driver: models.Driver{DriverNumber: "D-1"}}
	assert.Equal(t, []string{"number|D-1"}, d.Keys())
}

func TestDriverLabel(t *testing.T) {
	d := &DriverRecord{Driver: models.Driver{FirstName: "John", LastName: "Smith"}}
	assert.Equal(t, "John Smith", d.Label())

	d = &DriverRecord{Driver: models.Driver{DriverNumber: "D-1"}}
	assert.Equal(t, "D-1", d.Label())
}
