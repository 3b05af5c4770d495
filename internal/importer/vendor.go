package importer

import (
	"strings"

	"fleet-web/internal/models"
)

type VendorRecord struct {
	models.Vendor
}

func (r *VendorRecord) Keys() []string {
	var keys []string
	if !IsPendingNumber(r.VendorNumber) {
		keys = append(keys, "number|"+r.VendorNumber)
	}
	if r.Name != "" {
		keys = append(keys, "name|"+r.Name)
	}
	return keys
}

func (r *VendorRecord) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.VendorNumber
}

type VendorReconciler struct{}

func (VendorReconciler) EntityType() string { return EntityVendors }

func (VendorReconciler) Validate(rc *RunContext, row Row) (Record, *RowError) {
	m := rc.Req.ColumnMapping
	name := row.Get(m, "name", "name", "vendor name", "vendor", "company name", "company")
	if name == "" {
		return nil, &RowError{Row: row.Index, Field: "name", Message: "vendor name is required"}
	}

	number := row.Get(m, "vendor_number", "vendor number", "vendor #", "vendor id", "account number", "account #", "number")
	if number == "" {
		number = PendingNumber("VEND")
		rc.Warn(row.Index, "vendor_number", "no vendor number, generated "+number)
	}

	rec := &VendorRecord{Vendor: models.Vendor{
		CompanyID:     rc.Req.CompanyID,
		VendorNumber:  number,
		Name:          name,
		Type:          MapVendorType(row.Get(m, "type", "type", "vendor type", "category")),
		Email:         strings.ToLower(row.Get(m, "email", "email", "email address", "e-mail")),
		Phone:         row.Get(m, "phone", "phone", "phone number", "telephone"),
		Website:       row.Get(m, "website", "website", "web site", "url"),
		Tag:           JoinTags(row.Get(m, "tag", "tag", "tags", "labels")),
		Address:       row.Get(m, "address", "address", "street", "street address"),
		City:          row.Get(m, "city", "city"),
		State:         NormalizeState(row.Get(m, "state", "state", "st")),
		Zip:           row.Get(m, "zip", "zip", "zip code", "postal code"),
		ImportBatchID: rc.Req.BatchID,
		IsActive:      true,
	}}

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

func (VendorReconciler) ResolveReferences(rc *RunContext, row Row, rec Record) {}

func (VendorReconciler) Classify(rc *RunContext, row Row, rec Record) Outcome {
	return classifyByKeys(rc, row, rec, EntityVendors)
}
