package importer

import (
	"fleet-web/internal/models"
)

type LoadRecord struct {
	models.Load

	// Raw customer cell, kept for the rejection message when the
	// reference cannot be resolved.
	customerRaw string
}

func (r *LoadRecord) Keys() []string {
	if IsPendingNumber(r.LoadNumber) {
		return nil
	}
	return []string{"number|" + r.LoadNumber}
}

func (r *LoadRecord) Label() string { return r.LoadNumber }

type LoadReconciler struct{}

func (LoadReconciler) EntityType() string { return EntityLoads }

func (LoadReconciler) Validate(rc *RunContext, row Row) (Record, *RowError) {
	m := rc.Req.ColumnMapping

	customerRaw := row.Get(m, "customer", "customer", "customer name", "broker", "bill to", "shipper")
	if customerRaw == "" {
		return nil, &RowError{Row: row.Index, Field: "customer", Message: "customer is required"}
	}

	number := row.Get(m, "load_number", "load number", "load #", "load id", "pro number", "pro #", "reference", "ref #", "order number")
	if number == "" {
		number = PendingNumber("LOAD")
		rc.Warn(row.Index, "load_number", "no load number, generated "+number)
	}

	pickupCity := row.Get(m, "pickup_city", "pickup city", "origin city")
	pickupState := NormalizeState(row.Get(m, "pickup_state", "pickup state", "origin state"))
	if pickupCity == "" {
		if a := ParseAddress(row.Get(m, "pickup", "pickup", "origin", "pickup location", "from")); a.City != "" {
			pickupCity = a.City
			if pickupState == "" {
				pickupState = a.State
			}
		}
	}
	deliveryCity := row.Get(m, "delivery_city", "delivery city", "destination city")
	deliveryState := NormalizeState(row.Get(m, "delivery_state", "delivery state", "destination state"))
	if deliveryCity == "" {
		if a := ParseAddress(row.Get(m, "delivery", "delivery", "destination", "delivery location", "to")); a.City != "" {
			deliveryCity = a.City
			if deliveryState == "" {
				deliveryState = a.State
			}
		}
	}

	rec := &LoadRecord{
		Load: models.Load{
			CompanyID:     rc.Req.CompanyID,
			LoadNumber:    number,
			Status:        MapLoadStatus(row.Get(m, "status", "status", "load status")),
			PickupCity:    pickupCity,
			PickupState:   pickupState,
			PickupDate:    ParseDateOr(row.Get(m, "pickup_date", "pickup date", "ship date", "pu date"), rc.Now),
			DeliveryCity:  deliveryCity,
			DeliveryState: deliveryState,
			DeliveryDate:  ParseDate(row.Get(m, "delivery_date", "delivery date", "del date", "due date")),
			Revenue:       ParseFloat(row.Get(m, "revenue", "revenue", "rate", "amount", "total", "linehaul")),
			DriverPay:     ParseFloat(row.Get(m, "driver_pay", "driver pay", "driver rate")),
			TotalMiles:    ParseFloat(row.Get(m, "total_miles", "total miles", "miles", "loaded miles", "distance")),
			ImportBatchID: rc.Req.BatchID,
			IsActive:      true,
		},
		customerRaw: customerRaw,
	}
	return rec, nil
}

func (LoadReconciler) ResolveReferences(rc *RunContext, row Row, rec Record) {
	l := rec.(*LoadRecord)
	m := rc.Req.ColumnMapping

	if id, ok := rc.ResolveRef(RefCustomer, row.Index, "customer", l.customerRaw); ok {
		l.CustomerID = id
	}
	l.CarrierID = rc.ResolveCarrier(row.Index, "carrier", row.Get(m, "carrier", "carrier", "mc number", "mc #", "mc"))
	if raw := row.Get(m, "truck", "truck", "truck number", "truck #", "unit"); raw != "" {
		if id, ok := rc.ResolveRef(RefTruck, row.Index, "truck", raw); ok {
			l.TruckID = id
		}
	}
	if raw := row.Get(m, "trailer", "trailer", "trailer number", "trailer #"); raw != "" {
		if id, ok := rc.ResolveRef(RefTrailer, row.Index, "trailer", raw); ok {
			l.TrailerID = id
		}
	}
	if raw := row.Get(m, "driver", "driver", "driver name"); raw != "" {
		if id, ok := rc.ResolveRef(RefDriver, row.Index, "driver", raw); ok {
			l.DriverID = id
		}
	}
}

func (LoadReconciler) Classify(rc *RunContext, row Row, rec Record) Outcome {
	l := rec.(*LoadRecord)
	if l.CustomerID == "" {
		return Outcome{Row: row.Index, Status: StatusRejected, Err: &RowError{
			Row:     row.Index,
			Field:   "customer",
			Value:   l.customerRaw,
			Message: "customer could not be resolved",
		}}
	}
	return classifyByKeys(rc, row, rec, EntityLoads)
}
