package importer

import (
	"strings"

	"fleet-web/internal/models"
)

type TrailerRecord struct {
	models.Trailer
}

func (r *TrailerRecord) Keys() []string {
	keys := []string{"number|" + r.TrailerNumber}
	if r.VIN != "" && !IsPendingNumber(r.VIN) {
		keys = append(keys, "vin|"+r.VIN)
	}
	return keys
}

func (r *TrailerRecord) Label() string { return r.TrailerNumber }

type TrailerReconciler struct{}

func (TrailerReconciler) EntityType() string { return EntityTrailers }

func (TrailerReconciler) Validate(rc *RunContext, row Row) (Record, *RowError) {
	m := rc.Req.ColumnMapping
	number := row.Get(m, "trailer_number", "trailer number", "trailer #", "unit number", "unit #", "unit", "trailer")
	if number == "" {
		return nil, &RowError{Row: row.Index, Field: "trailer_number", Message: "trailer number is required"}
	}

	rec := &TrailerRecord{Trailer: models.Trailer{
		CompanyID:          rc.Req.CompanyID,
		TrailerNumber:      number,
		VIN:                strings.ToUpper(row.Get(m, "vin", "vin", "vin number", "serial number", "serial #")),
		Make:               row.Get(m, "make", "make", "manufacturer"),
		Model:              row.Get(m, "model", "model"),
		Year:               ParseInt(row.Get(m, "year", "year", "model year")),
		LicensePlate:       row.Get(m, "license_plate", "license plate", "plate", "plate number", "tag number"),
		State:              NormalizeState(row.Get(m, "state", "state", "plate state", "registration state")),
		Type:               MapEquipmentType(row.Get(m, "type", "type", "trailer type", "equipment type", "equipment")),
		Status:             MapFleetStatus(row.Get(m, "status", "status")),
		RegistrationExpiry: ParseDateOr(row.Get(m, "registration_expiry", "registration expiry", "registration expiration", "registration"), rc.FutureDate(1)),
		InsuranceExpiry:    ParseDateOr(row.Get(m, "insurance_expiry", "insurance expiry", "insurance expiration", "insurance"), rc.FutureDate(1)),
		InspectionExpiry:   ParseDateOr(row.Get(m, "inspection_expiry", "inspection expiry", "inspection expiration", "inspection", "next inspection"), rc.FutureDate(1)),
		ImportBatchID:      rc.Req.BatchID,
		IsActive:           true,
	}}
	return rec, nil
}

func (TrailerReconciler) ResolveReferences(rc *RunContext, row Row, rec Record) {
	t := rec.(*TrailerRecord)
	m := rc.Req.ColumnMapping
	t.CarrierID = rc.ResolveCarrier(row.Index, "carrier", row.Get(m, "carrier", "carrier", "mc number", "mc #", "mc"))
	if raw := row.Get(m, "assigned_truck", "assigned truck", "truck", "truck number", "truck #"); raw != "" {
		if id, ok := rc.ResolveRef(RefTruck, row.Index, "assigned_truck", raw); ok {
			t.AssignedTruckID = id
		}
	}
}

func (TrailerReconciler) Classify(rc *RunContext, row Row, rec Record) Outcome {
	return classifyByKeys(rc, row, rec, EntityTrailers)
}
