package importer

import (
	"strings"

	"fleet-web/internal/models"
)

type TruckRecord struct {
	models.Truck
}

func (r *TruckRecord) Keys() []string {
	keys := []string{"number|" + r.TruckNumber}
	if r.VIN != "" && !IsPendingNumber(r.VIN) {
		keys = append(keys, "vin|"+r.VIN)
	}
	return keys
}

func (r *TruckRecord) Label() string { return r.TruckNumber }

type TruckReconciler struct{}

func (TruckReconciler) EntityType() string { return EntityTrucks }

func (TruckReconciler) Validate(rc *RunContext, row Row) (Record, *RowError) {
	m := rc.Req.ColumnMapping
	number := row.Get(m, "truck_number", "truck number", "truck #", "unit number", "unit #", "unit", "truck")
	if number == "" {
		return nil, &RowError{Row: row.Index, Field: "truck_number", Message: "truck number is required"}
	}

	vin := strings.ToUpper(row.Get(m, "vin", "vin", "vin number", "serial number", "serial #"))
	if vin == "" {
		vin = PendingNumber("VIN")
		rc.Warn(row.Index, "vin", "no VIN, generated "+vin)
	}

	rec := &TruckRecord{Truck: models.Truck{
		CompanyID:          rc.Req.CompanyID,
		TruckNumber:        number,
		VIN:                vin,
		Make:               row.Get(m, "make", "make", "manufacturer"),
		Model:              row.Get(m, "model", "model"),
		Year:               ParseInt(row.Get(m, "year", "year", "model year")),
		LicensePlate:       row.Get(m, "license_plate", "license plate", "plate", "plate number", "tag number"),
		State:              NormalizeState(row.Get(m, "state", "state", "plate state", "registration state")),
		EquipmentType:      MapEquipmentType(row.Get(m, "equipment_type", "equipment type", "equipment", "type")),
		Status:             MapFleetStatus(row.Get(m, "status", "status")),
		OdometerReading:    ParseFloat(row.Get(m, "odometer", "odometer", "odometer reading", "mileage", "miles")),
		Capacity:           ParseFloat(row.Get(m, "capacity", "capacity", "payload", "max weight")),
		RegistrationExpiry: ParseDateOr(row.Get(m, "registration_expiry", "registration expiry", "registration expiration", "registration"), rc.FutureDate(1)),
		InsuranceExpiry:    ParseDateOr(row.Get(m, "insurance_expiry", "insurance expiry", "insurance expiration", "insurance"), rc.FutureDate(1)),
		InspectionExpiry:   ParseDateOr(row.Get(m, "inspection_expiry", "inspection expiry", "inspection expiration", "inspection", "next inspection"), rc.FutureDate(1)),
		ImportBatchID:      rc.Req.BatchID,
		IsActive:           true,
	}}
	return rec, nil
}

func (TruckReconciler) ResolveReferences(rc *RunContext, row Row, rec Record) {
	t := rec.(*TruckRecord)
	m := rc.Req.ColumnMapping
	t.CarrierID = rc.ResolveCarrier(row.Index, "carrier", row.Get(m, "carrier", "carrier", "mc number", "mc #", "mc"))
	if raw := row.Get(m, "driver", "driver", "driver name", "assigned driver"); raw != "" {
		if id, ok := rc.ResolveRef(RefDriver, row.Index, "driver", raw); ok {
			t.DriverID = id
		}
	}
}

func (TruckReconciler) Classify(rc *RunContext, row Row, rec Record) Outcome {
	return classifyByKeys(rc, row, rec, EntityTrucks)
}
