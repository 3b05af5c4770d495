package models

import "time"

// Vendor types
const (
	VendorSupplier        = "SUPPLIER"
	VendorPartsVendor     = "PARTS_VENDOR"
	VendorServiceProvider = "SERVICE_PROVIDER"
	VendorFuelVendor      = "FUEL_VENDOR"
	VendorRepairShop      = "REPAIR_SHOP"
	VendorTireShop        = "TIRE_SHOP"
)

type Vendor struct {
	ID            string     `db:"id" json:"id"`
	CompanyID     string     `db:"company_id" json:"company_id"`
	VendorNumber  string     `db:"vendor_number" json:"vendor_number"`
	Name          string     `db:"name" json:"name"`
	Type          string     `db:"type" json:"type"`
	Email         string     `db:"email" json:"email"`
	Phone         string     `db:"phone" json:"phone"`
	Website       string     `db:"website" json:"website"`
	Tag           string     `db:"tag" json:"tag"`
	Address       string     `db:"address" json:"address"`
	City          string     `db:"city" json:"city"`
	State         string     `db:"state" json:"state"`
	Zip           string     `db:"zip" json:"zip"`
	ImportBatchID string     `db:"import_batch_id" json:"import_batch_id"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	DeletedAt     *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
