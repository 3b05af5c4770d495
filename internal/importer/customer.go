package importer

import (
	"strings"

	"fleet-web/internal/models"
)

// CustomerRecord is a reconciled customer ready for the writer.
type CustomerRecord struct {
	models.Customer
}

func (r *CustomerRecord) Keys() []string {
	var keys []string
	if !IsPendingNumber(r.CustomerNumber) {
		keys = append(keys, "number|"+r.CustomerNumber)
	}
	if r.Name != "" {
		keys = append(keys, "name|"+r.Name)
	}
	return keys
}

func (r *CustomerRecord) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.CustomerNumber
}

type CustomerReconciler struct{}

func (CustomerReconciler) EntityType() string { return EntityCustomers }

func (CustomerReconciler) Validate(rc *RunContext, row Row) (Record, *RowError) {
	m := rc.Req.ColumnMapping
	name := row.Get(m, "name", "name", "customer name", "customer", "company name", "company")
	if name == "" {
		return nil, &RowError{Row: row.Index, Field: "name", Message: "customer name is required"}
	}

	number := row.Get(m, "customer_number", "customer number", "customer #", "customer id", "account number", "account #", "number")
	if number == "" {
		number = PendingNumber("CUST")
		rc.Warn(row.Index, "customer_number", "no customer number, generated "+number)
	}

	rec := &CustomerRecord{Customer: models.Customer{
		CompanyID:      rc.Req.CompanyID,
		CustomerNumber: number,
		Name:           name,
		Type:           MapCustomerType(row.Get(m, "type", "type", "customer type")),
		Address:        row.Get(m, "address", "address", "street", "street address"),
		City:           row.Get(m, "city", "city"),
		State:          NormalizeState(row.Get(m, "state", "state", "st")),
		Zip:            row.Get(m, "zip", "zip", "zip code", "postal code"),
		Phone:          row.Get(m, "phone", "phone", "phone number", "telephone"),
		Email:          strings.ToLower(row.Get(m, "email", "email", "email address", "e-mail")),
		BillingAddress: row.Get(m, "billing_address", "billing address"),
		BillingEmails:  strings.ToLower(row.Get(m, "billing_emails", "billing email", "billing emails", "invoice email")),
		BillingType:    row.Get(m, "billing_type", "billing type", "payment terms", "terms"),
		Status:         row.Get(m, "status", "status"),
		Tags:           JoinTags(row.Get(m, "tags", "tags", "tag", "labels")),
		Warning:        row.Get(m, "warning", "warning", "alert"),
		CreditRate:     ParseFloat(row.Get(m, "credit_rate", "credit rate", "credit limit")),
		RiskLevel:      row.Get(m, "risk_level", "risk level", "risk"),
		Comments:       row.Get(m, "comments", "comments", "notes", "remarks"),
		ImportBatchID:  rc.Req.BatchID,
		IsActive:       true,
	}}

	// A combined "address" cell with no separate city gets split.
	if rec.City == "" && strings.Contains(rec.Address, ",") {
		a := ParseAddress(rec.Address)
		if a.City != "" {
			rec.Address, rec.City = a.Street, a.City
			if rec.State == "" {
				rec.State = a.State
			}
			if rec.Zip == "" {
				rec.Zip = a.Zip
			}
		}
	}
	return rec, nil
}

func (CustomerReconciler) ResolveReferences(rc *RunContext, row Row, rec Record) {
	c := rec.(*CustomerRecord)
	raw := row.Get(rc.Req.ColumnMapping, "carrier", "carrier", "mc number", "mc #", "mc", "operating authority")
	c.CarrierID = rc.ResolveCarrier(row.Index, "carrier", raw)
}

func (CustomerReconciler) Classify(rc *RunContext, row Row, rec Record) Outcome {
	return classifyByKeys(rc, row, rec, EntityCustomers)
}
