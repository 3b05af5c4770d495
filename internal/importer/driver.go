package importer

import (
	"strings"

	"fleet-web/internal/models"
)

// DriverRecord carries the driver profile plus the identity fields the
// writer needs to find or create the linked user. Email is unique across
// companies, so an existing user with the same email gets linked rather
// than duplicated.
type DriverRecord struct {
	models.Driver
}

func (r *DriverRecord) Keys() []string {
	var keys []string
	if !IsPendingNumber(r.DriverNumber) {
		keys = append(keys, "number|"+r.DriverNumber)
	}
	if r.Email != "" {
		keys = append(keys, "email|"+r.Email)
	}
	return keys
}

func (r *DriverRecord) Label() string {
	name := strings.TrimSpace(r.FirstName + " " + r.LastName)
	if name != "" {
		return name
	}
	return r.DriverNumber
}

type DriverReconciler struct{}

func (DriverReconciler) EntityType() string { return EntityDrivers }

func (DriverReconciler) Validate(rc *RunContext, row Row) (Record, *RowError) {
	m := rc.Req.ColumnMapping

	first := row.Get(m, "first_name", "first name", "first")
	last := row.Get(m, "last_name", "last name", "last")
	if first == "" && last == "" {
		first, last = SplitName(row.Get(m, "name", "name", "driver name", "driver", "full name"))
	}
	if first == "" && last == "" {
		return nil, &RowError{Row: row.Index, Field: "name", Message: "driver name is required"}
	}

	email := strings.ToLower(row.Get(m, "email", "email", "email address", "e-mail"))
	phone := row.Get(m, "phone", "phone", "phone number", "cell", "cell phone", "mobile")

	number := row.Get(m, "driver_number", "driver number", "driver #", "driver id", "employee number", "employee id", "emp #")
	if number == "" {
		number = synthesizeDriverNumber(row, m, phone, first, last)
		if number == "" {
			number = PendingNumber("DRV")
		}
		rc.Warn(row.Index, "driver_number", "no driver number, using "+number)
	}

	payRate := ParseFloat(row.Get(m, "pay_rate", "pay rate", "rate", "rate per mile", "cpm"))
	if payRate == 0 {
		payRate = models.DefaultDriverPayRate
	}
	// Rates entered as cents per mile come in as whole numbers.
	if payRate > 5 && payRate <= 100 {
		payRate = payRate / 100
	}

	rec := &DriverRecord{Driver: models.Driver{
		CompanyID:         rc.Req.CompanyID,
		DriverNumber:      number,
		DriverType:        MapDriverType(row.Get(m, "driver_type", "driver type", "type")),
		Status:            MapDriverStatus(row.Get(m, "status", "status")),
		LicenseNumber:     row.Get(m, "license_number", "license number", "license #", "cdl", "cdl number", "cdl #"),
		LicenseState:      NormalizeState(row.Get(m, "license_state", "license state", "cdl state")),
		LicenseExpiry:     ParseDateOr(row.Get(m, "license_expiry", "license expiry", "license expiration", "cdl expiration", "cdl expiry"), rc.FutureDate(1)),
		MedicalCardExpiry: ParseDateOr(row.Get(m, "medical_card_expiry", "medical card expiry", "medical card expiration", "medical expiration", "med card"), rc.FutureDate(1)),
		PayType:           MapPayType(row.Get(m, "pay_type", "pay type", "pay basis")),
		PayRate:           payRate,
		Address:           row.Get(m, "address", "address", "street", "street address"),
		City:              row.Get(m, "city", "city"),
		State:             NormalizeState(row.Get(m, "state", "state", "st")),
		Zip:               row.Get(m, "zip", "zip", "zip code", "postal code"),
		ImportBatchID:     rc.Req.BatchID,
		IsActive:          true,
		Email:             email,
		FirstName:         first,
		LastName:          last,
		Phone:             phone,
	}}
	return rec, nil
}

// synthesizeDriverNumber derives a stable identifier when the file has
// none: phone digits, then the truck cell, then name initials.
func synthesizeDriverNumber(row Row, m map[string]string, phone, first, last string) string {
	if d := DigitsOnly(phone); len(d) >= 7 {
		return d
	}
	if truck := row.Get(m, "truck", "truck", "truck number", "truck #", "unit"); truck != "" {
		return "TRK-" + truck
	}
	initials := strings.ToUpper(prefix(first, 3) + prefix(last, 3))
	if initials == "" {
		return ""
	}
	return initials
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func (DriverReconciler) ResolveReferences(rc *RunContext, row Row, rec Record) {
	d := rec.(*DriverRecord)
	raw := row.Get(rc.Req.ColumnMapping, "carrier", "carrier", "mc number", "mc #", "mc")
	d.CarrierID = rc.ResolveCarrier(row.Index, "carrier", raw)
}

func (DriverReconciler) Classify(rc *RunContext, row Row, rec Record) Outcome {
	return classifyByKeys(rc, row, rec, EntityDrivers)
}
