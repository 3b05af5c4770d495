package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fleet-web/internal/models"
)

func TestMergeSetSkipsEmptyValues(t *testing.T) {
	s := &mergeSet{}
	s.set("name", "Acme Logistics")
	s.set("phone", "")
	s.set("year", 0)
	s.set("credit_rate", 0.0)
	s.set("license_expiry", time.Time{})
	s.set("delivery_date", (*time.Time)(nil))
	s.force("updated_at = NOW()")

	assert.Equal(t, "name = ?, updated_at = NOW()", s.clause())
	assert.Equal(t, []interface{}{"Acme Logistics"}, s.args)
}

func TestMergeSetKeepsNonEmptyValues(t *testing.T) {
	exp := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	s := &mergeSet{}
	s.set("year", 2020)
	s.set("odometer_reading", 125000.0)
	s.set("registration_expiry", exp)
	s.set("delivery_date", &exp)

	assert.Equal(t,
		"year = ?, odometer_reading = ?, registration_expiry = ?, delivery_date = ?",
		s.clause())
	assert.Len(t, s.args, 4)
}

// A customer resolved without phone or email must not touch those
// columns when merged over an existing row.
func TestCustomerMergeSetLeavesMissingFieldsAlone(t *testing.T) {
	s := customerMergeSet(&models.Customer{
		CustomerNumber: "CUST-001",
		Name:           "Acme Logistics",
		City:           "Dallas",
		State:          "TX",
	})

	clause := s.clause()
	assert.Contains(t, clause, "name = ?")
	assert.Contains(t, clause, "city = ?")
	assert.NotContains(t, clause, "phone")
	assert.NotContains(t, clause, "email")
	assert.NotContains(t, clause, "credit_rate")
	assert.Contains(t, clause, "updated_at = NOW()")
}

func TestTruckMergeSetSkipsZeroDates(t *testing.T) {
	s := truckMergeSet(&models.Truck{
		TruckNumber: "T-101",
		VIN:         "1FUJGLDR0CSBF1234",
	})

	clause := s.clause()
	assert.Contains(t, clause, "truck_number = ?")
	assert.Contains(t, clause, "vin = ?")
	assert.NotContains(t, clause, "registration_expiry")
	assert.NotContains(t, clause, "odometer_reading")
	assert.NotContains(t, clause, "year")
}

func TestRestoreClausesClearDeletionMarker(t *testing.T) {
	s := vendorMergeSet(&models.Vendor{Name: "Best Parts"})
	s.force("deleted_at = NULL")
	s.force("is_active = 1")

	clause := s.clause()
	assert.Contains(t, clause, "deleted_at = NULL")
	assert.Contains(t, clause, "is_active = 1")
}
